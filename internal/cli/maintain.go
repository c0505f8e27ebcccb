package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sloprate/internal/db"
	"sloprate/internal/results"
)

func newRecalcCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "recalc <results.json>",
		Short: "Re-score stored outputs with the current rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}
			defer log.Sync()

			f, err := results.Load(args[0])
			if err != nil {
				return err
			}
			sc, err := newScorer()
			if err != nil {
				return err
			}

			for model, run := range f {
				for i := range run.Samples {
					s := &run.Samples[i]
					if s.Error != "" || s.Output == "" {
						continue
					}
					res, err := sc.Score(s.Output)
					if err != nil {
						log.Warn("rescore failed",
							zap.String("model", model),
							zap.Int("prompt_index", s.PromptIndex),
							zap.Error(err))
						continue
					}
					if len(res.Hits) != s.Hits {
						log.Info("hit count changed",
							zap.String("model", model),
							zap.Int("prompt_index", s.PromptIndex),
							zap.Int("old", s.Hits),
							zap.Int("new", len(res.Hits)))
					}
					s.Chars = res.Chars
					s.Hits = len(res.Hits)
					s.RatePer1K = res.RatePer1K
				}
				results.Recompute(run)
				log.Info("recalculated",
					zap.String("model", model),
					zap.Float64("rate_per_1k", run.Summary.RatePer1K))
			}

			if dryRun {
				fmt.Println("dry run: results file not modified")
				return nil
			}
			return results.Save(args[0], f)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes without writing")
	return cmd
}

func newFilterCmd() *cobra.Command {
	var keep int

	cmd := &cobra.Command{
		Use:   "filter <results.json>",
		Short: "Drop samples beyond a prompt index and recompute summaries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := results.Load(args[0])
			if err != nil {
				return err
			}

			for model, run := range f {
				kept := run.Samples[:0]
				for _, s := range run.Samples {
					if s.PromptIndex < keep {
						kept = append(kept, s)
					}
				}
				dropped := len(run.Samples) - len(kept)
				run.Samples = kept
				results.Recompute(run)
				fmt.Printf("%s: dropped %d samples, %d remain\n", model, dropped, len(kept))
			}

			return results.Save(args[0], f)
		},
	}

	cmd.Flags().IntVar(&keep, "keep", 150, "keep samples with prompt_index below this value")
	return cmd
}

func newExportCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "export <results.json>",
		Short: "Export a results file to a SQLite database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := results.Load(args[0])
			if err != nil {
				return err
			}
			if len(f) == 0 {
				return fmt.Errorf("nothing to export: %s has no runs", args[0])
			}
			if err := db.ExportResults(dbPath, f); err != nil {
				return err
			}
			fmt.Printf("exported %d runs to %s\n", len(f), dbPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "results.db", "SQLite database path")
	return cmd
}
