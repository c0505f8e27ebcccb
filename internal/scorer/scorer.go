// Package scorer converts raw text into a deduplicated contrast-hit count
// and a hits-per-1000-characters rate. It runs both pattern stages against
// the same document and collapses overlapping and cross-sentence matches by
// sentence-span membership.
package scorer

import (
	"fmt"
	"sort"
	"strings"

	"sloprate/internal/rules"
	"sloprate/internal/tagger"
)

// Tagger is the tagging-backend contract. Any implementation producing a
// token/sentence structure with offsets, tags and lemmas is substitutable.
type Tagger interface {
	Tag(text string) (*tagger.Document, error)
}

type Scorer struct {
	rules  *rules.Set
	tagger Tagger
}

// New builds a scorer from a validated rule set and a tagging backend. Both
// are required: running without the tagged stage would silently understate
// rates.
func New(set *rules.Set, tg Tagger) (*Scorer, error) {
	if set == nil {
		return nil, fmt.Errorf("scorer: rule set is required")
	}
	if tg == nil {
		return nil, fmt.Errorf("scorer: tagging backend is required")
	}
	return &Scorer{rules: set, tagger: tg}, nil
}

// Hit is one deduplicated, countable contrast occurrence.
type Hit struct {
	Rule     string      `json:"rule"`
	Stage    rules.Stage `json:"stage"`
	Start    int         `json:"start"`
	End      int         `json:"end"`
	SentLo   int         `json:"sent_lo"`
	SentHi   int         `json:"sent_hi"`
	Text     string      `json:"text"`
	Sentence string      `json:"sentence"`
}

type Result struct {
	Chars     int     `json:"chars"`
	Hits      []Hit   `json:"hits"`
	RatePer1K float64 `json:"rate_per_1k"`
}

// Rate computes hits per 1000 characters. Zero or negative character counts
// yield 0 rather than a division error.
func Rate(hits, chars int) float64 {
	if chars <= 0 {
		return 0
	}
	return float64(hits) * 1000.0 / float64(chars)
}

// Score runs both pattern stages over text and returns the deduplicated hit
// count, character count and rate. Character counts and all offsets are in
// runes of the normalized text.
func (s *Scorer) Score(text string) (*Result, error) {
	norm := Normalize(text)
	if len(norm) == 0 {
		return &Result{}, nil
	}
	spans := tagger.SentenceSpans(norm)

	var cands []candidate

	for _, r := range s.rules.Surface {
		matches, err := r.FindAll(norm)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			lo, hi, ok := coveredSentenceRange(spans, m.Start, m.End)
			if !ok {
				continue
			}
			cands = append(cands, candidate{
				lo: lo, hi: hi,
				rawStart: m.Start, rawEnd: m.End,
				rule:  r.QualifiedName(),
				stage: r.Stage,
				text:  strings.TrimSpace(string(norm[m.Start:m.End])),
			})
		}
	}

	doc, err := s.tagger.Tag(string(norm))
	if err != nil {
		return nil, fmt.Errorf("scorer: tag: %w", err)
	}
	stream, pieces := doc.TagStream()

	for _, r := range s.rules.Tagged {
		matches, err := r.FindAll(stream)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			rawStart, rawEnd, ok := streamToRaw(pieces, m.Start, m.End)
			if !ok {
				continue
			}
			lo, hi, ok := coveredSentenceRange(spans, rawStart, rawEnd)
			if !ok {
				continue
			}
			cands = append(cands, candidate{
				lo: lo, hi: hi,
				rawStart: rawStart, rawEnd: rawEnd,
				rule:  r.QualifiedName(),
				stage: r.Stage,
				text:  strings.TrimSpace(string(norm[rawStart:rawEnd])),
			})
		}
	}

	hits := merge(cands, spans, norm)
	return &Result{
		Chars:     len(norm),
		Hits:      hits,
		RatePer1K: Rate(len(hits), len(norm)),
	}, nil
}

// coveredSentenceRange returns the inclusive range [lo, hi] of sentence
// indices whose spans overlap [start, end) by at least one rune.
func coveredSentenceRange(spans []tagger.Span, start, end int) (int, int, bool) {
	if len(spans) == 0 || start >= end {
		return 0, 0, false
	}
	lo := sort.Search(len(spans), func(i int) bool { return spans[i].End > start })
	hi := sort.Search(len(spans), func(i int) bool { return spans[i].Start >= end }) - 1
	if lo >= len(spans) || hi < 0 || lo > hi {
		return 0, 0, false
	}
	return lo, hi, true
}

// streamToRaw maps a stream span to the raw span of the pieces it touches.
func streamToRaw(pieces []tagger.Piece, ss, se int) (int, int, bool) {
	i := sort.Search(len(pieces), func(k int) bool { return pieces[k].StreamEnd > ss })
	j := sort.Search(len(pieces), func(k int) bool { return pieces[k].StreamStart >= se }) - 1
	if i >= len(pieces) || j < i {
		return 0, 0, false
	}
	return pieces[i].RawStart, pieces[j].RawEnd, true
}
