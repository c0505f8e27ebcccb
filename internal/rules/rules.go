// Package rules holds the fixed contrast-pattern rule sets: surface rules
// matched against raw text and tagged rules matched against the POS tag
// stream. The sets are compiled and validated once via Load; scoring code
// receives the validated set as an explicit dependency.
package rules

import (
	"errors"
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

const (
	surfaceRuleCount = 10
	taggedRuleCount  = 35

	// A runaway pattern on hostile input surfaces as a per-document error
	// instead of hanging a worker.
	matchTimeout = 10 * time.Second
)

// ErrRuleCount indicates the compiled rule sets do not have the expected
// sizes. Scoring must not run with a partial rule set: it would silently
// under-report rates.
var ErrRuleCount = errors.New("rules: rule count mismatch")

type Stage uint8

const (
	StageSurface Stage = 1
	StageTagged  Stage = 2
)

func (s Stage) String() string {
	switch s {
	case StageSurface:
		return "surface"
	case StageTagged:
		return "tagged"
	default:
		return "unknown"
	}
}

// Match is a half-open rune interval of one rule firing.
type Match struct {
	Start int
	End   int
}

// Rule is a named, immutable compiled matcher.
type Rule struct {
	Name  string
	Stage Stage
	re    *regexp2.Regexp
}

// QualifiedName prefixes the rule name with its stage, matching the names
// recorded in results files (S1_NOT_BUT, S2_POS_DOESNT_VERB, ...).
func (r *Rule) QualifiedName() string {
	if r.Stage == StageSurface {
		return "S1_" + r.Name
	}
	return "S2_" + r.Name
}

// FindAll returns every non-overlapping match in input, in rune coordinates.
func (r *Rule) FindAll(input []rune) ([]Match, error) {
	var out []Match
	m, err := r.re.FindRunesMatch(input)
	for err == nil && m != nil {
		out = append(out, Match{Start: m.Index, End: m.Index + m.Length})
		m, err = r.re.FindNextMatch(m)
	}
	if err != nil {
		return nil, fmt.Errorf("rules: %s: %w", r.QualifiedName(), err)
	}
	return out, nil
}

// Set is a validated pair of rule sets.
type Set struct {
	Surface []*Rule
	Tagged  []*Rule
}

type def struct {
	name    string
	pattern string
	opts    regexp2.RegexOptions
}

func compileAll(stage Stage, defs []def) ([]*Rule, error) {
	out := make([]*Rule, 0, len(defs))
	for _, d := range defs {
		re, err := regexp2.Compile(d.pattern, d.opts)
		if err != nil {
			return nil, fmt.Errorf("rules: compile %s: %w", d.name, err)
		}
		re.MatchTimeout = matchTimeout
		out = append(out, &Rule{Name: d.name, Stage: stage, re: re})
	}
	return out, nil
}

// Load compiles both rule sets and validates their sizes. Any failure here is
// a configuration error: callers must abort before scoring anything.
func Load() (*Set, error) {
	surface, err := compileAll(StageSurface, surfaceDefs)
	if err != nil {
		return nil, err
	}
	if len(surface) != surfaceRuleCount {
		return nil, fmt.Errorf("%w: surface set has %d rules, want %d",
			ErrRuleCount, len(surface), surfaceRuleCount)
	}

	tagged, err := compileAll(StageTagged, taggedDefs)
	if err != nil {
		return nil, err
	}
	if len(tagged) != taggedRuleCount {
		return nil, fmt.Errorf("%w: tagged set has %d rules, want %d",
			ErrRuleCount, len(tagged), taggedRuleCount)
	}

	return &Set{Surface: surface, Tagged: tagged}, nil
}
