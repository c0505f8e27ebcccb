package scorer

import (
	"sort"

	"sloprate/internal/chunk"
)

const (
	// Window defaults used for corpus files too large to scan in one pass.
	DefaultWindow  = 20000
	DefaultOverlap = 500
)

// ScoreChunked scores text in overlapping rune windows, deduplicating hits
// across windows by raw-interval overlap. Results match Score for texts that
// fit in one window; for longer texts only matches wider than the overlap
// can be missed. Intended for multi-megabyte corpus files.
func (s *Scorer) ScoreChunked(text string, window, overlap int) (*Result, error) {
	norm := Normalize(text)
	if len(norm) <= window {
		return s.Score(text)
	}

	var all []Hit
	for _, w := range chunk.Windows(len(norm), window, overlap) {
		res, err := s.Score(string(norm[w.Start:w.End]))
		if err != nil {
			return nil, err
		}
		for _, h := range res.Hits {
			h.Start += w.Start
			h.End += w.Start
			// Sentence indices are window-local and meaningless at file
			// scope; dedup below uses raw intervals only.
			h.SentLo, h.SentHi = 0, 0
			all = append(all, h)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Start != all[j].Start {
			return all[i].Start < all[j].Start
		}
		return all[i].End < all[j].End
	})

	var hits []Hit
	maxEnd := -1
	for _, h := range all {
		if h.Start < maxEnd {
			if h.End > maxEnd {
				maxEnd = h.End
				hits[len(hits)-1].End = h.End
			}
			continue
		}
		hits = append(hits, h)
		maxEnd = h.End
	}

	return &Result{
		Chars:     len(norm),
		Hits:      hits,
		RatePer1K: Rate(len(hits), len(norm)),
	}, nil
}
