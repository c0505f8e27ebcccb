// Package cli wires the commands: run an evaluation, score text, baseline a
// corpus, and maintain results files.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sloprate/internal/rules"
	"sloprate/internal/scorer"
	"sloprate/internal/tagger"
)

var verbose bool

func Execute() error {
	root := &cobra.Command{
		Use:           "sloprate",
		Short:         "Measure the rate of contrastive boilerplate in generated text",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newRunCmd(),
		newScoreCmd(),
		newBaselineCmd(),
		newRecalcCmd(),
		newFilterCmd(),
		newExportCmd(),
	)
	return root.Execute()
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.DisableStacktrace = true
	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}

func newScorer() (*scorer.Scorer, error) {
	set, err := rules.Load()
	if err != nil {
		return nil, err
	}
	tg, err := tagger.NewProse()
	if err != nil {
		return nil, err
	}
	return scorer.New(set, tg)
}
