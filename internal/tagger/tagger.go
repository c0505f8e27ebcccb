// Package tagger annotates text with per-token part-of-speech and lemma
// information, keeping rune offsets that round-trip exactly to the input.
package tagger

import "strings"

// Span is a half-open rune interval [Start, End) in the document text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type Token struct {
	Text  string `json:"text"`
	Tag   string `json:"tag"`
	Lemma string `json:"lemma"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type Sentence struct {
	Span
	Tokens []Token `json:"tokens"`
}

// Document is an immutable tagged view of one text.
type Document struct {
	Text      []rune
	Sentences []Sentence
}

// Piece maps a span of the tag stream back to a span of the raw text.
type Piece struct {
	StreamStart int
	StreamEnd   int
	RawStart    int
	RawEnd      int
}

// SentenceSpans partitions text into sentence spans. Every rune belongs to
// exactly one span: a sentence extends up to and including one terminator
// rune, and any trailing text without a terminator forms the final span.
func SentenceSpans(text []rune) []Span {
	spans := make([]Span, 0, 16)
	start := 0
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			spans = append(spans, Span{Start: start, End: i + 1})
			start = i + 1
		}
	}
	if start < len(text) {
		spans = append(spans, Span{Start: start, End: len(text)})
	}
	return spans
}

// Assemble groups an ordered token slice into sentences using the canonical
// sentence partition. Tokens must be ordered and lie within the text bounds.
func Assemble(text []rune, tokens []Token) *Document {
	spans := SentenceSpans(text)
	sentences := make([]Sentence, len(spans))
	for i, sp := range spans {
		sentences[i] = Sentence{Span: sp}
	}

	si := 0
	for _, tok := range tokens {
		for si < len(sentences)-1 && tok.Start >= sentences[si].End {
			si++
		}
		sentences[si].Tokens = append(sentences[si].Tokens, tok)
	}

	return &Document{Text: text, Sentences: sentences}
}

// Tokens returns the document's tokens in order.
func (d *Document) Tokens() []Token {
	var out []Token
	for _, s := range d.Sentences {
		out = append(out, s.Tokens...)
	}
	return out
}

// Forms of be and do stay literal in the tag stream: the contrast patterns
// key on negated auxiliaries ("doesn't", "wasn't") as surface words.
var auxiliaryForms = map[string]struct{}{
	"am": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "being": {},
	"do": {}, "does": {}, "did": {},
	"'s": {}, "'re": {}, "'m": {}, "ai": {},
}

func streamClass(tok Token) string {
	if strings.HasPrefix(tok.Tag, "JJ") {
		return "ADJ"
	}
	if strings.HasPrefix(tok.Tag, "VB") {
		if _, aux := auxiliaryForms[strings.ToLower(tok.Text)]; !aux {
			return "VERB"
		}
	}
	return ""
}

// TagStream renders the document as a single stream in which lexical verbs
// become "VERB", adjectives become "ADJ", and every other token and all
// inter-token text appear verbatim. The returned pieces map stream spans back
// to raw spans so matches can be recovered in document coordinates.
func (d *Document) TagStream() ([]rune, []Piece) {
	var stream []rune
	var pieces []Piece

	emit := func(s []rune, rawStart, rawEnd int) {
		pieces = append(pieces, Piece{
			StreamStart: len(stream),
			StreamEnd:   len(stream) + len(s),
			RawStart:    rawStart,
			RawEnd:      rawEnd,
		})
		stream = append(stream, s...)
	}

	prev := 0
	for _, tok := range d.Tokens() {
		if tok.Start > prev {
			emit(d.Text[prev:tok.Start], prev, tok.Start)
		}
		if class := streamClass(tok); class != "" {
			emit([]rune(class), tok.Start, tok.End)
		} else {
			emit(d.Text[tok.Start:tok.End], tok.Start, tok.End)
		}
		prev = tok.End
	}
	if prev < len(d.Text) {
		emit(d.Text[prev:], prev, len(d.Text))
	}

	return stream, pieces
}
