package scorer

// Normalization maps each typographic variant to a single ASCII rune, so the
// normalized text has exactly as many runes as the input and offsets carry
// over unchanged.
var normReplacements = map[rune]rune{
	'“': '"',  // left double quote
	'”': '"',  // right double quote
	'‘': '\'', // left single quote
	'’': '\'', // right single quote
	'—': '-',  // em dash
	'–': '-',  // en dash
}

// Normalize straightens curly quotes and collapses em/en dashes, returning
// the text as a rune slice in which all scoring offsets are expressed.
func Normalize(text string) []rune {
	out := []rune(text)
	for i, r := range out {
		if repl, ok := normReplacements[r]; ok {
			out[i] = repl
		}
	}
	return out
}
