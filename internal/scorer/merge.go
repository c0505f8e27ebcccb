package scorer

import (
	"sort"
	"strings"

	"sloprate/internal/rules"
	"sloprate/internal/tagger"
)

// candidate is one raw pattern firing, annotated with the inclusive range of
// sentence indices its character span overlaps.
type candidate struct {
	lo, hi           int
	rawStart, rawEnd int
	rule             string
	stage            rules.Stage
	text             string
}

type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p}
}

func (u *unionFind) find(i int) int {
	for u.parent[i] != i {
		u.parent[i] = u.parent[u.parent[i]]
		i = u.parent[i]
	}
	return i
}

func (u *unionFind) union(i, j int) {
	ri, rj := u.find(i), u.find(j)
	if ri != rj {
		u.parent[rj] = ri
	}
}

// merge collapses raw matches into canonical hits. Two matches are linked iff
// their sentence ranges share at least one sentence; connected components of
// that relation each become one hit. Linkage is transitive: A may reach C
// only through B even when A and C share no sentence directly.
func merge(cands []candidate, spans []tagger.Span, text []rune) []Hit {
	if len(cands) == 0 {
		return nil
	}

	sort.Slice(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.lo != b.lo {
			return a.lo < b.lo
		}
		if a.hi != b.hi {
			return a.hi < b.hi
		}
		return a.rawStart < b.rawStart
	})

	uf := newUnionFind(len(cands))

	// With sentence ranges sorted by lo, a candidate links into the current
	// component iff its lo does not pass the component's max hi. Sharing a
	// sentence is the sole criterion; character proximity never merges.
	rep, maxHi := 0, cands[0].hi
	for i := 1; i < len(cands); i++ {
		if cands[i].lo <= maxHi {
			uf.union(rep, i)
			if cands[i].hi > maxHi {
				maxHi = cands[i].hi
			}
		} else {
			rep, maxHi = i, cands[i].hi
		}
	}

	order := make([]int, 0, len(cands))
	groups := make(map[int][]int, len(cands))
	for i := range cands {
		root := uf.find(i)
		if _, seen := groups[root]; !seen {
			order = append(order, root)
		}
		groups[root] = append(groups[root], i)
	}

	hits := make([]Hit, 0, len(order))
	for _, root := range order {
		members := groups[root]
		first := cands[members[0]]
		hit := Hit{
			Rule:   first.rule,
			Stage:  first.stage,
			Start:  first.rawStart,
			End:    first.rawEnd,
			SentLo: first.lo,
			SentHi: first.hi,
			Text:   first.text,
		}
		for _, m := range members[1:] {
			c := cands[m]
			if c.hi > hit.SentHi {
				hit.SentHi = c.hi
			}
			if c.rawEnd > hit.End {
				hit.End = c.rawEnd
			}
		}
		block := text[spans[hit.SentLo].Start:spans[hit.SentHi].End]
		hit.Sentence = strings.TrimSpace(string(block))
		hits = append(hits, hit)
	}
	return hits
}
