package baseline

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"sloprate/internal/rules"
	"sloprate/internal/scorer"
	"sloprate/internal/tagger"
	"sloprate/internal/tagger/taggertest"
)

func newScorerT(t *testing.T) *scorer.Scorer {
	t.Helper()
	set, err := rules.Load()
	if err != nil {
		t.Fatalf("rules.Load: %v", err)
	}
	s, err := scorer.New(set, taggertest.New(nil, nil))
	if err != nil {
		t.Fatalf("scorer.New: %v", err)
	}
	return s
}

func TestComputeAggregatesByLength(t *testing.T) {
	dir := t.TempDir()
	write := func(name, text string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(text), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	write("a.txt", "It's not a bug, but a feature. The rest is calm, ordinary prose about nothing much.")
	write("b.txt", "The cat sat on the mat. It purred all afternoon and then it slept until dusk fell.")
	write("notes.epub", "unsupported, must be ignored")

	report, err := Compute(dir, newScorerT(t), Options{Workers: 2}, zap.NewNop())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if len(report.Files) != 2 {
		t.Fatalf("got %d files, want 2: %+v", len(report.Files), report.Files)
	}
	if filepath.Base(report.Files[0].Path) != "a.txt" {
		t.Fatalf("files must be in path order: %+v", report.Files)
	}
	if report.Files[0].Hits != 1 || report.Files[1].Hits != 0 {
		t.Fatalf("unexpected hit counts: %+v", report.Files)
	}

	wantChars := report.Files[0].Chars + report.Files[1].Chars
	if report.Chars != wantChars || report.Hits != 1 {
		t.Fatalf("aggregate chars %d hits %d, want %d and 1", report.Chars, report.Hits, wantChars)
	}
	if want := scorer.Rate(1, wantChars); report.RatePer1K != want {
		t.Fatalf("aggregate rate %v, want %v", report.RatePer1K, want)
	}
}

func TestComputeEmptyDir(t *testing.T) {
	if _, err := Compute(t.TempDir(), newScorerT(t), Options{}, zap.NewNop()); err == nil {
		t.Fatal("expected error for a directory with no supported files")
	}
}

// Calibration against a real corpus with the real tagger; skipped unless a
// corpus directory is provided.
func TestComputeRealCorpus(t *testing.T) {
	dir := os.Getenv("SLOPRATE_BASELINE_DIR")
	if dir == "" {
		t.Skip("SLOPRATE_BASELINE_DIR not set")
	}

	set, err := rules.Load()
	if err != nil {
		t.Fatalf("rules.Load: %v", err)
	}
	tg, err := tagger.NewProse()
	if err != nil {
		t.Fatalf("tagger.NewProse: %v", err)
	}
	s, err := scorer.New(set, tg)
	if err != nil {
		t.Fatalf("scorer.New: %v", err)
	}

	report, err := Compute(dir, s, Options{}, zap.NewNop())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if report.Chars == 0 {
		t.Fatal("corpus scored zero characters")
	}
	// Human prose sits well under one contrast construction per 1k chars.
	if report.RatePer1K > 1.0 {
		t.Fatalf("baseline rate %v is implausibly high", report.RatePer1K)
	}
}
