// Package runner drives a full evaluation: generate a completion for each
// prompt, score it, and persist every sample as it lands.
package runner

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"sloprate/internal/pipeline"
	"sloprate/internal/prompts"
	"sloprate/internal/results"
	"sloprate/internal/scorer"
)

// Generator produces a completion for one prompt.
type Generator interface {
	Generate(ctx context.Context, model, prompt string, maxTokens int) (string, error)
}

type Options struct {
	Model     string
	Endpoint  string
	Workers   int
	MaxTokens int
	Params    map[string]any
}

type Runner struct {
	gen    Generator
	scorer *scorer.Scorer
	store  *results.Store
	log    *zap.Logger
}

func New(gen Generator, sc *scorer.Scorer, store *results.Store, log *zap.Logger) (*Runner, error) {
	if gen == nil || sc == nil || store == nil {
		return nil, fmt.Errorf("runner: generator, scorer and store are all required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{gen: gen, scorer: sc, store: store, log: log}, nil
}

// Run evaluates every prompt and returns the final summary. A failed prompt
// is recorded as an errored sample and never aborts the other workers.
func (r *Runner) Run(ctx context.Context, promptList []string, opts Options) (results.Summary, error) {
	if len(promptList) == 0 {
		return results.Summary{}, fmt.Errorf("runner: no prompts to run")
	}
	if _, err := r.store.EnsureHeader(opts.Model, opts.Endpoint, opts.Params); err != nil {
		return results.Summary{}, err
	}

	jobs := make([]pipeline.Job, len(promptList))
	for i, p := range promptList {
		jobs[i] = pipeline.Job{Index: i, Text: p}
	}

	errs := pipeline.Run(jobs, opts.Workers, func(job pipeline.Job) error {
		sample := r.evaluate(ctx, job, opts)
		if err := r.store.UpsertSample(opts.Model, sample); err != nil {
			return fmt.Errorf("prompt %d: %w", job.Index, err)
		}
		if sample.Error != "" {
			r.log.Warn("prompt failed",
				zap.Int("prompt_index", job.Index),
				zap.String("error", sample.Error))
		} else {
			r.log.Info("prompt scored",
				zap.Int("prompt_index", job.Index),
				zap.Int("chars", sample.Chars),
				zap.Int("hits", sample.Hits),
				zap.Float64("rate_per_1k", sample.RatePer1K))
		}
		return nil
	})
	if len(errs) > 0 {
		// Persistence failures are fatal; a results file we cannot write
		// makes the whole run meaningless.
		return results.Summary{}, errs[0]
	}

	summary, err := r.store.Complete(opts.Model)
	if err != nil {
		return results.Summary{}, err
	}
	r.log.Info("run complete",
		zap.String("model", opts.Model),
		zap.Int("total_prompts", summary.TotalPrompts),
		zap.Int("total_hits", summary.TotalHits),
		zap.Float64("rate_per_1k", summary.RatePer1K))
	return summary, nil
}

func (r *Runner) evaluate(ctx context.Context, job pipeline.Job, opts Options) results.Sample {
	sample := results.Sample{
		PromptIndex: job.Index,
		Prompt:      job.Text,
	}

	output, err := r.gen.Generate(ctx, opts.Model, prompts.Build(job.Text), opts.MaxTokens)
	if err != nil {
		sample.Error = fmt.Sprintf("generate: %v", err)
		return sample
	}
	sample.Output = output

	res, err := r.scorer.Score(output)
	if err != nil {
		sample.Error = fmt.Sprintf("score: %v", err)
		return sample
	}
	sample.Chars = res.Chars
	sample.Hits = len(res.Hits)
	sample.RatePer1K = res.RatePer1K
	return sample
}
