package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"sloprate/internal/baseline"
	"sloprate/internal/scorer"
)

func newBaselineCmd() *cobra.Command {
	var (
		window  int
		overlap int
		workers int
	)

	cmd := &cobra.Command{
		Use:   "baseline <dir>",
		Short: "Score a directory of human-written texts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}
			defer log.Sync()

			sc, err := newScorer()
			if err != nil {
				return err
			}

			report, err := baseline.Compute(args[0], sc, baseline.Options{
				Window:  window,
				Overlap: overlap,
				Workers: workers,
			}, log)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}

	cmd.Flags().IntVar(&window, "window", scorer.DefaultWindow, "scan window size in characters")
	cmd.Flags().IntVar(&overlap, "overlap", scorer.DefaultOverlap, "window overlap in characters")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent files (0 = NumCPU)")
	return cmd
}
