// Package results persists scoring output as a progressive JSON file keyed
// by model id. Every update rewrites the whole file through a temp file and
// rename, so a crash mid-write never leaves a half-written results file.
package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type Sample struct {
	PromptIndex int     `json:"prompt_index"`
	Prompt      string  `json:"prompt"`
	Output      string  `json:"output"`
	Chars       int     `json:"chars"`
	Hits        int     `json:"hits"`
	RatePer1K   float64 `json:"rate_per_1k"`
	Error       string  `json:"error,omitempty"`
}

type Summary struct {
	TotalPrompts int     `json:"total_prompts"`
	TotalChars   int     `json:"total_chars"`
	TotalHits    int     `json:"total_hits"`
	RatePer1K    float64 `json:"rate_per_1k"`
}

type ModelRun struct {
	TestModel   string         `json:"test_model"`
	Endpoint    string         `json:"endpoint"`
	RunID       string         `json:"run_id,omitempty"`
	Params      map[string]any `json:"params"`
	StartedAt   string         `json:"started_at"`
	CompletedAt *string        `json:"completed_at"`
	Samples     []Sample       `json:"samples"`
	Summary     Summary        `json:"summary"`
}

// File maps model id to its run record.
type File map[string]*ModelRun

// Recompute rebuilds the run summary from its samples. Errored samples count
// toward total_prompts but contribute nothing to chars or hits; the rate is
// hit-weighted, never an average of per-sample rates.
func Recompute(run *ModelRun) {
	chars, hits := 0, 0
	for _, s := range run.Samples {
		if s.Error != "" {
			continue
		}
		chars += s.Chars
		hits += s.Hits
	}
	run.Summary = Summary{
		TotalPrompts: len(run.Samples),
		TotalChars:   chars,
		TotalHits:    hits,
		RatePer1K:    rate(hits, chars),
	}
}

func rate(hits, chars int) float64 {
	if chars <= 0 {
		return 0
	}
	return float64(hits) * 1000.0 / float64(chars)
}

// Load reads a results file. A missing file is an empty File; a file that
// exists but cannot be parsed is an error, never silently discarded.
func Load(path string) (File, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return File{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("results: read %s: %w", path, err)
	}
	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("results: parse %s: %w", path, err)
	}
	if f == nil {
		f = File{}
	}
	return f, nil
}

// Save writes the whole file atomically: marshal, write a temp file in the
// same directory, rename over the target.
func Save(path string, f File) error {
	raw, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("results: marshal: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("results: mkdir: %w", err)
	}
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("results: write temp: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("results: replace %s: %w", path, err)
	}
	return nil
}
