package tagger

import (
	"testing"
)

func TestSentenceSpansPartition(t *testing.T) {
	text := []rune("First one. Second! Third? trailing fragment")
	spans := SentenceSpans(text)
	if len(spans) != 4 {
		t.Fatalf("expected 4 spans, got %d: %v", len(spans), spans)
	}

	// Every rune belongs to exactly one span.
	prev := 0
	for i, sp := range spans {
		if sp.Start != prev {
			t.Fatalf("span %d starts at %d, want %d", i, sp.Start, prev)
		}
		if sp.End <= sp.Start {
			t.Fatalf("span %d is empty or inverted: %+v", i, sp)
		}
		prev = sp.End
	}
	if prev != len(text) {
		t.Fatalf("spans end at %d, want %d", prev, len(text))
	}

	if got := string(text[spans[0].Start:spans[0].End]); got != "First one." {
		t.Fatalf("first span %q", got)
	}
	if got := string(text[spans[3].Start:spans[3].End]); got != " trailing fragment" {
		t.Fatalf("trailing span %q", got)
	}
}

func TestSentenceSpansNoTerminator(t *testing.T) {
	spans := SentenceSpans([]rune("no terminator at all"))
	if len(spans) != 1 {
		t.Fatalf("expected single span, got %v", spans)
	}
	if spans[0].Start != 0 || spans[0].End != len("no terminator at all") {
		t.Fatalf("span must cover whole text: %+v", spans[0])
	}
}

func TestSentenceSpansEmpty(t *testing.T) {
	if spans := SentenceSpans(nil); len(spans) != 0 {
		t.Fatalf("expected no spans for empty text, got %v", spans)
	}
}

func TestAssembleGroupsTokensBySentence(t *testing.T) {
	text := []rune("He left. She stayed.")
	tokens := []Token{
		{Text: "He", Tag: "PRP", Start: 0, End: 2},
		{Text: "left", Tag: "VBD", Start: 3, End: 7},
		{Text: "She", Tag: "PRP", Start: 9, End: 12},
		{Text: "stayed", Tag: "VBD", Start: 13, End: 19},
	}
	doc := Assemble(text, tokens)
	if len(doc.Sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(doc.Sentences))
	}
	if got := len(doc.Sentences[0].Tokens); got != 2 {
		t.Fatalf("sentence 0 has %d tokens, want 2", got)
	}
	if doc.Sentences[1].Tokens[0].Text != "She" {
		t.Fatalf("sentence 1 starts with %q", doc.Sentences[1].Tokens[0].Text)
	}
	if got := len(doc.Tokens()); got != 4 {
		t.Fatalf("Tokens() returned %d, want 4", got)
	}
}

func TestTagStreamSubstitution(t *testing.T) {
	text := []rune("He whispers quietly.")
	doc := Assemble(text, []Token{
		{Text: "He", Tag: "PRP", Start: 0, End: 2},
		{Text: "whispers", Tag: "VBZ", Start: 3, End: 11},
		{Text: "quietly", Tag: "RB", Start: 12, End: 19},
	})
	stream, _ := doc.TagStream()
	if got := string(stream); got != "He VERB quietly." {
		t.Fatalf("stream %q", got)
	}
}

func TestTagStreamAuxiliariesStayLiteral(t *testing.T) {
	text := []rune("It was empty.")
	doc := Assemble(text, []Token{
		{Text: "It", Tag: "PRP", Start: 0, End: 2},
		{Text: "was", Tag: "VBD", Start: 3, End: 6},
		{Text: "empty", Tag: "JJ", Start: 7, End: 12},
	})
	stream, _ := doc.TagStream()
	if got := string(stream); got != "It was ADJ." {
		t.Fatalf("stream %q", got)
	}
}

func TestTagStreamPiecesRoundTrip(t *testing.T) {
	text := []rune("She runs fast, he walks.")
	doc := Assemble(text, []Token{
		{Text: "She", Tag: "PRP", Start: 0, End: 3},
		{Text: "runs", Tag: "VBZ", Start: 4, End: 8},
		{Text: "fast", Tag: "JJ", Start: 9, End: 13},
		{Text: "he", Tag: "PRP", Start: 15, End: 17},
		{Text: "walks", Tag: "VBZ", Start: 18, End: 23},
	})
	stream, pieces := doc.TagStream()

	// Pieces tile the stream contiguously and map into raw bounds in order.
	prevStream, prevRaw := 0, 0
	for i, p := range pieces {
		if p.StreamStart != prevStream {
			t.Fatalf("piece %d stream start %d, want %d", i, p.StreamStart, prevStream)
		}
		if p.RawStart < prevRaw || p.RawEnd > len(text) || p.RawStart > p.RawEnd {
			t.Fatalf("piece %d raw span out of order: %+v", i, p)
		}
		prevStream = p.StreamEnd
		prevRaw = p.RawEnd
	}
	if prevStream != len(stream) {
		t.Fatalf("pieces end at stream %d, want %d", prevStream, len(stream))
	}
	if prevRaw != len(text) {
		t.Fatalf("pieces end at raw %d, want %d", prevRaw, len(text))
	}
}
