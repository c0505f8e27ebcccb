package tagger

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jdkato/prose/v2"
)

// ErrAlignment is returned when a token produced by the tagging backend
// cannot be located in the source text, so offsets cannot be trusted.
var ErrAlignment = errors.New("tagger: token alignment failed")

// Prose tags text with the prose perceptron model and golem lemmas.
// Construction failure is a configuration error for the whole pipeline.
type Prose struct {
	lemmas *golem.Lemmatizer
}

func NewProse() (*Prose, error) {
	lem, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("tagger: init lemmatizer: %w", err)
	}
	return &Prose{lemmas: lem}, nil
}

// taggingView replaces dashes and emphasis markers with spaces so that
// dash-joined and *emphasized* words tokenize as plain words. The mapping is
// rune-for-rune, so offsets in the view are offsets in the original.
func taggingView(text []rune) []rune {
	view := make([]rune, len(text))
	for i, r := range text {
		switch r {
		case '-', '*', '_', '~':
			view[i] = ' '
		default:
			view[i] = r
		}
	}
	return view
}

func (p *Prose) Tag(text string) (*Document, error) {
	src := []rune(text)
	view := taggingView(src)

	doc, err := prose.NewDocument(string(view), prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("tagger: %w", err)
	}

	tokens, err := alignTokens(view, doc.Tokens())
	if err != nil {
		return nil, err
	}
	for i := range tokens {
		tokens[i].Lemma = p.lemmas.Lemma(strings.ToLower(tokens[i].Text))
	}

	return Assemble(src, tokens), nil
}

// alignTokens recovers rune offsets for backend tokens by scanning the view
// left to right. The backend emits surface forms in order, so each token is
// expected at the cursor after optional whitespace; a short forward search
// absorbs characters the tokenizer dropped.
func alignTokens(view []rune, toks []prose.Token) ([]Token, error) {
	const slack = 12

	out := make([]Token, 0, len(toks))
	cur := 0
	for _, pt := range toks {
		want := []rune(pt.Text)
		if len(want) == 0 {
			continue
		}
		for cur < len(view) && unicode.IsSpace(view[cur]) {
			cur++
		}
		start := -1
		for off := 0; off <= slack && cur+off+len(want) <= len(view); off++ {
			if runesEqual(view[cur+off:cur+off+len(want)], want) {
				start = cur + off
				break
			}
		}
		if start < 0 {
			return nil, fmt.Errorf("%w: %q near offset %d", ErrAlignment, pt.Text, cur)
		}
		out = append(out, Token{
			Text:  pt.Text,
			Tag:   pt.Tag,
			Start: start,
			End:   start + len(want),
		})
		cur = start + len(want)
	}
	return out, nil
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
