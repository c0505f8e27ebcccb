// Package prompts loads the prompt list and builds the fixed generation
// instruction wrapped around each user prompt.
package prompts

import (
	"encoding/json"
	"fmt"
	"os"
)

const instruction = "Write approximately 1,000 words on the following writing prompt. " +
	"Do not use tables.\n\nPrompt: "

// Build wraps a user prompt with the longform writing instruction.
func Build(prompt string) string {
	return instruction + prompt
}

// Load reads a JSON list of prompt strings. A non-list or a list containing
// non-strings is a configuration error. When limit > 0 the list is truncated
// to the first limit prompts.
func Load(path string, limit int) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prompts: read %s: %w", path, err)
	}

	var prompts []string
	if err := json.Unmarshal(raw, &prompts); err != nil {
		return nil, fmt.Errorf("prompts: %s must be a JSON list of strings: %w", path, err)
	}

	if limit > 0 && len(prompts) > limit {
		prompts = prompts[:limit]
	}
	return prompts, nil
}
