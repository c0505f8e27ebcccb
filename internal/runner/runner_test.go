package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"sloprate/internal/results"
	"sloprate/internal/rules"
	"sloprate/internal/scorer"
	"sloprate/internal/tagger/taggertest"
)

type fakeGen struct {
	outputs map[string]string
	failOn  string
}

func (f *fakeGen) Generate(ctx context.Context, model, prompt string, maxTokens int) (string, error) {
	for key, out := range f.outputs {
		if strings.Contains(prompt, key) {
			return out, nil
		}
	}
	if f.failOn != "" && strings.Contains(prompt, f.failOn) {
		return "", fmt.Errorf("endpoint unavailable")
	}
	return "Nothing notable happened today at the harbor.", nil
}

func newRunnerT(t *testing.T, gen Generator) (*Runner, *results.Store) {
	t.Helper()
	set, err := rules.Load()
	if err != nil {
		t.Fatalf("rules.Load: %v", err)
	}
	sc, err := scorer.New(set, taggertest.New(nil, nil))
	if err != nil {
		t.Fatalf("scorer.New: %v", err)
	}
	store := results.NewStore(filepath.Join(t.TempDir(), "results.json"))
	r, err := New(gen, sc, store, zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r, store
}

func TestRunScoresEveryPrompt(t *testing.T) {
	gen := &fakeGen{
		outputs: map[string]string{
			"first":  "It's not a bug, but a feature. More ordinary text follows here.",
			"second": "The tide came in slowly and the boats rose with it over the hour.",
		},
		failOn: "third",
	}
	r, store := newRunnerT(t, gen)

	summary, err := r.Run(context.Background(), []string{"first", "second", "third"}, Options{
		Model:     "model-a",
		Endpoint:  "https://api.example.com/v1",
		Workers:   2,
		MaxTokens: 512,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if summary.TotalPrompts != 3 {
		t.Fatalf("total prompts %d, want 3", summary.TotalPrompts)
	}
	if summary.TotalHits != 1 {
		t.Fatalf("total hits %d, want 1", summary.TotalHits)
	}

	run, err := store.Get("model-a")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if run.CompletedAt == nil {
		t.Fatal("run must be stamped complete")
	}
	if len(run.Samples) != 3 {
		t.Fatalf("got %d samples, want 3", len(run.Samples))
	}

	byIndex := map[int]results.Sample{}
	for _, s := range run.Samples {
		byIndex[s.PromptIndex] = s
	}
	if byIndex[0].Hits != 1 || byIndex[0].Error != "" {
		t.Fatalf("sample 0: %+v", byIndex[0])
	}
	if byIndex[1].Hits != 0 || byIndex[1].Error != "" {
		t.Fatalf("sample 1: %+v", byIndex[1])
	}
	if byIndex[2].Error == "" || byIndex[2].Chars != 0 {
		t.Fatalf("sample 2 must be an errored sample: %+v", byIndex[2])
	}

	// The failed prompt contributes nothing to the rate denominator.
	wantChars := byIndex[0].Chars + byIndex[1].Chars
	if summary.TotalChars != wantChars {
		t.Fatalf("total chars %d, want %d", summary.TotalChars, wantChars)
	}
}

func TestRunRequiresPrompts(t *testing.T) {
	r, _ := newRunnerT(t, &fakeGen{})
	if _, err := r.Run(context.Background(), nil, Options{Model: "m"}); err == nil {
		t.Fatal("expected error for empty prompt list")
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(nil, nil, nil, nil); err == nil {
		t.Fatal("expected error for missing dependencies")
	}
}
