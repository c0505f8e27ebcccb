package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	var showHits bool

	cmd := &cobra.Command{
		Use:   "score [file]",
		Short: "Score a single text from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw []byte
			var err error
			if len(args) == 1 {
				raw, err = os.ReadFile(args[0])
			} else {
				raw, err = io.ReadAll(os.Stdin)
			}
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			sc, err := newScorer()
			if err != nil {
				return err
			}
			res, err := sc.Score(string(raw))
			if err != nil {
				return err
			}

			out := map[string]any{
				"chars":       res.Chars,
				"hits":        len(res.Hits),
				"rate_per_1k": res.RatePer1K,
			}
			if showHits {
				out["matches"] = res.Hits
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().BoolVar(&showHits, "hits", false, "include per-hit details in the output")
	return cmd
}
