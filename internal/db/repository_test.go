package db

import (
	"path/filepath"
	"testing"

	"sloprate/internal/results"
)

func TestExportResults(t *testing.T) {
	completed := "2026-08-23T10:00:00Z"
	f := results.File{
		"model-a": &results.ModelRun{
			TestModel:   "model-a",
			Endpoint:    "https://api.example.com/v1",
			RunID:       "run-1",
			StartedAt:   "2026-08-23T09:00:00Z",
			CompletedAt: &completed,
			Samples: []results.Sample{
				{PromptIndex: 0, Prompt: "p0", Output: "o0", Chars: 1000, Hits: 2, RatePer1K: 2},
				{PromptIndex: 1, Prompt: "p1", Error: "generate: boom"},
			},
			Summary: results.Summary{TotalPrompts: 2, TotalChars: 1000, TotalHits: 2, RatePer1K: 2},
		},
		"model-b": &results.ModelRun{
			TestModel: "model-b",
			Endpoint:  "https://api.example.com/v1",
			RunID:     "run-2",
			StartedAt: "2026-08-23T09:30:00Z",
			Samples: []results.Sample{
				{PromptIndex: 0, Prompt: "p0", Output: "o0", Chars: 500, Hits: 0},
			},
			Summary: results.Summary{TotalPrompts: 1, TotalChars: 500},
		},
	}

	dbPath := filepath.Join(t.TempDir(), "results.db")
	if err := ExportResults(dbPath, f); err != nil {
		t.Fatalf("ExportResults: %v", err)
	}

	runs, err := CountRows(dbPath, "runs")
	if err != nil {
		t.Fatalf("count runs: %v", err)
	}
	if runs != 2 {
		t.Fatalf("got %d runs, want 2", runs)
	}

	samples, err := CountRows(dbPath, "samples")
	if err != nil {
		t.Fatalf("count samples: %v", err)
	}
	if samples != 3 {
		t.Fatalf("got %d samples, want 3", samples)
	}
}

func TestExportResultsReplacesPrevious(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "results.db")
	f := results.File{
		"model-a": &results.ModelRun{
			TestModel: "model-a",
			Samples:   []results.Sample{{PromptIndex: 0, Chars: 10}},
		},
	}

	if err := ExportResults(dbPath, f); err != nil {
		t.Fatalf("first export: %v", err)
	}
	if err := ExportResults(dbPath, f); err != nil {
		t.Fatalf("second export: %v", err)
	}

	runs, err := CountRows(dbPath, "runs")
	if err != nil {
		t.Fatalf("count runs: %v", err)
	}
	if runs != 1 {
		t.Fatalf("export must replace, not append: %d runs", runs)
	}
}
