package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sloprate/internal/config"
	"sloprate/internal/llm"
	"sloprate/internal/prompts"
	"sloprate/internal/results"
	"sloprate/internal/runner"
)

func newRunCmd() *cobra.Command {
	var (
		model       string
		promptsPath string
		resultsPath string
		nPrompts    int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate completions for the prompt set and score them",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.ValidateRun(); err != nil {
				return err
			}

			log, err := newLogger()
			if err != nil {
				return err
			}
			defer log.Sync()

			if nPrompts == 0 {
				nPrompts = cfg.NPrompts
			}
			promptList, err := prompts.Load(promptsPath, nPrompts)
			if err != nil {
				return err
			}

			client, err := llm.New(cfg.BaseURL, cfg.APIKey, llm.Options{
				Timeout:    cfg.Timeout,
				MaxRetries: cfg.MaxRetries,
				RetryDelay: cfg.RetryDelay,
			})
			if err != nil {
				return err
			}

			sc, err := newScorer()
			if err != nil {
				return err
			}

			store := results.NewStore(resultsPath)
			r, err := runner.New(client, sc, store, log)
			if err != nil {
				return err
			}

			summary, err := r.Run(cmd.Context(), promptList, runner.Options{
				Model:     model,
				Endpoint:  cfg.BaseURL,
				Workers:   cfg.Workers,
				MaxTokens: cfg.MaxTokens,
				Params: map[string]any{
					"max_tokens": cfg.MaxTokens,
					"flavor":     client.Flavor().String(),
				},
			})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "model id to evaluate")
	cmd.Flags().StringVar(&promptsPath, "prompts", "prompts.json", "JSON file with the prompt list")
	cmd.Flags().StringVarP(&resultsPath, "results", "r", "results.json", "results file to write")
	cmd.Flags().IntVarP(&nPrompts, "n-prompts", "n", 0, "number of prompts to run (0 = configured default)")
	if err := cmd.MarkFlagRequired("model"); err != nil {
		panic(fmt.Sprintf("mark model required: %v", err))
	}
	return cmd
}
