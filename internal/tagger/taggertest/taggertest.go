// Package taggertest provides a deterministic lexicon-backed tagger for
// tests. It tokenizes word runs, splits common contractions the way a real
// tagger does, and assigns tags by table lookup, so scorer tests never depend
// on a statistical model.
package taggertest

import (
	"strings"
	"unicode"

	"sloprate/internal/tagger"
)

var defaultTags = map[string]string{
	"empty": "JJ", "thick": "JJ", "quiet": "JJ", "loud": "JJ",
	"speaking": "VBG", "dying": "VBG", "living": "VBG",
	"whispers": "VBZ", "whisper": "VB", "whispered": "VBD",
	"screams": "VBZ", "scream": "VB",
	"is": "VBZ", "are": "VBP", "was": "VBD", "were": "VBD",
	"be": "VB", "been": "VBN", "being": "VBG",
	"do": "VBP", "does": "VBZ", "did": "VBD",
	"n't": "RB", "not": "RB", "no": "DT",
	"it": "PRP", "they": "PRP", "this": "DT", "that": "DT", "the": "DT", "a": "DT", "an": "DT",
	"but": "CC", "and": "CC",
	"'s": "VBZ", "'re": "VBP", "'m": "VBP",
}

var defaultLemmas = map[string]string{
	"whispers": "whisper", "whispered": "whisper",
	"screams": "scream", "screamed": "scream",
	"dying": "die", "living": "live",
	"is": "be", "are": "be", "was": "be", "were": "be",
}

// Lexicon tags tokens by lookup; unknown words default to NN.
type Lexicon struct {
	tags   map[string]string
	lemmas map[string]string
}

// New builds a Lexicon with the built-in tables plus any overrides.
func New(tagOverrides, lemmaOverrides map[string]string) *Lexicon {
	tags := make(map[string]string, len(defaultTags)+len(tagOverrides))
	for k, v := range defaultTags {
		tags[k] = v
	}
	for k, v := range tagOverrides {
		tags[strings.ToLower(k)] = v
	}
	lemmas := make(map[string]string, len(defaultLemmas)+len(lemmaOverrides))
	for k, v := range defaultLemmas {
		lemmas[k] = v
	}
	for k, v := range lemmaOverrides {
		lemmas[strings.ToLower(k)] = v
	}
	return &Lexicon{tags: tags, lemmas: lemmas}
}

func (l *Lexicon) Tag(text string) (*tagger.Document, error) {
	src := []rune(text)
	var tokens []tagger.Token

	i := 0
	for i < len(src) {
		if !wordRune(src[i]) {
			i++
			continue
		}
		start := i
		for i < len(src) && wordRune(src[i]) {
			i++
		}
		tokens = append(tokens, l.split(src, start, i)...)
	}

	return tagger.Assemble(src, tokens), nil
}

// split breaks one word run into tokens, separating contraction suffixes so
// "wasn't" becomes "was" + "n't" and "it's" becomes "it" + "'s".
func (l *Lexicon) split(src []rune, start, end int) []tagger.Token {
	word := []rune(strings.ToLower(string(src[start:end])))

	for _, suffix := range []string{"n't", "'s", "'re", "'m", "'ll", "'ve", "'d"} {
		sfx := []rune(suffix)
		if len(word) > len(sfx) && string(word[len(word)-len(sfx):]) == suffix {
			cut := end - len(sfx)
			return []tagger.Token{
				l.token(src, start, cut),
				l.token(src, cut, end),
			}
		}
	}
	return []tagger.Token{l.token(src, start, end)}
}

func (l *Lexicon) token(src []rune, start, end int) tagger.Token {
	text := string(src[start:end])
	key := strings.ToLower(text)

	tag, ok := l.tags[key]
	if !ok {
		tag = "NN"
	}
	lemma, ok := l.lemmas[key]
	if !ok {
		lemma = key
	}
	return tagger.Token{Text: text, Tag: tag, Lemma: lemma, Start: start, End: end}
}

func wordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\''
}
