package prompts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuildWrapsPrompt(t *testing.T) {
	got := Build("A lighthouse keeper finds a message in a bottle.")
	if !strings.HasPrefix(got, "Write approximately 1,000 words") {
		t.Fatalf("instruction missing: %q", got)
	}
	if !strings.HasSuffix(got, "A lighthouse keeper finds a message in a bottle.") {
		t.Fatalf("prompt missing: %q", got)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.json")
	if err := os.WriteFile(path, []byte(`["one", "two", "three"]`), 0o644); err != nil {
		t.Fatalf("write prompts: %v", err)
	}

	all, err := Load(path, 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d prompts, want 3", len(all))
	}

	limited, err := Load(path, 2)
	if err != nil {
		t.Fatalf("Load limited: %v", err)
	}
	if len(limited) != 2 || limited[1] != "two" {
		t.Fatalf("limit must keep the first prompts in order: %v", limited)
	}
}

func TestLoadRejectsNonList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.json")
	if err := os.WriteFile(path, []byte(`{"prompts": []}`), 0o644); err != nil {
		t.Fatalf("write prompts: %v", err)
	}
	if _, err := Load(path, 0); err == nil {
		t.Fatal("expected error for a non-list prompts file")
	}
}
