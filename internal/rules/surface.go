package rules

import "github.com/dlclark/regexp2"

// Surface rules run against raw normalized text (curly quotes straightened,
// em/en dashes collapsed to "-"). They are written in free-spacing mode;
// whitespace in the text is always matched explicitly with \s.

const (
	pron  = `(?:it|they|this|that)`
	be    = `(?:is|are|was|were)`
	beNeg = `(?:is\s+not|are\s+not|was\s+not|were\s+not|isn't|aren't|wasn't|weren't|ain't)`

	// Reporter frames ("she knew that it wasn't...") describe beliefs, not
	// rhetorical contrasts.
	reporterGuard = `(?![^.?!]{0,80}\b(?:knew|know|thought|think|said|says|told|heard|learned)\b[^.?!]{0,40}?\bthat\b)`

	// Start of string or just after a sentence boundary.
	sentStart = `(?:\A|(?<=[.?!]\s))`
)

const (
	freeSpacing = regexp2.IgnorePatternWhitespace
	caseFold    = regexp2.IgnoreCase | regexp2.IgnorePatternWhitespace
)

var surfaceDefs = []def{
	// "not X, but Y"
	{"NOT_BUT", `
		\b(?:` + beNeg + `|not(?!\s+(?:that|only)\b))\s+
		(?:(?!\bbut\b|[.?!]).){1,100}?
		[,;:]\s*but\s+
		(?!when\b|while\b|which\b|who\b|whom\b|whose\b|where\b|if\b|that\b|as\b|because\b|although\b|though\b|till\b|until\b|unless\b|
		   here\b|there\b|then\b|my\b|we\b|I\b|you\b|it\s+seems\b|it\s+appears\b|it\s+felt\b|it\s+looks?\b|anything\b)
	`, caseFold},

	// Dash form "... not/n't ... - pron + (BE or lexical verb) ..."
	{"NOT_DASH", `
		\b(?:\w+n't|not)\s+(?:just|only|merely)?\s+
		(?:(?![.?!]).){1,160}?
		(?:-|\s-\s|[—–])\s*
		` + pron + `\s+(?:(?:'re|are|'s|is|were|was)\b|(?!'re|are|'s|is|were|was)[*_~]*[a-z]\w*)
	`, caseFold},

	// Pronoun-led "It/They ... not ... . It/They BE ..."
	{"PRON_BE_NOT_SEP_BE", `
		` + sentStart + `\s*["']?
		(?:(?:` + pron + `\s+` + be + `\s+not)|(?:` + pron + `\s+` + be + `n't)|(?:it's|they're|that's)\s+not)\b
		[^.?!]{0,160}[.;:?!]\s*["']?
		` + pron + `\s+(?:` + be + `|(?:'s|'re))\b(?!\s+not\b)
	`, caseFold},

	// NP-led "... wasn't ... . It/They BE ..." with reporter-frame and
	// "not put"/"not without" guards.
	{"NP_BE_NOT_SEP_THEY_BE", `
		` + sentStart + `\s*
		` + reporterGuard + `
		(?!\s*not\s+without\b)
		(?![^.?!]{0,50}\bnot\s+put\b)
		[^.?!]{0,160}?\b` + beNeg + `\b[^.?!]{0,160}[.;:?!]\s*
		["']?` + pron + `\b(?:'re|\s+(?:are|were|is|was))\b(?!\s+not\b)
	`, caseFold},

	// "no longer ... ; it/they was ..."
	{"NO_LONGER", `
		` + sentStart + `\s*[^.?!]{0,160}\bno\s+longer\b[^.;:?!]{0,160}
		[.;:?!]\s*` + pron + `\s+` + be + `\b(?!\s+not\b)
	`, caseFold},

	// "not just ... . It/They ..."
	{"NOT_JUST_SEP", `
		` + sentStart + `\s*["']?
		` + pron + `\b(?:'s|'re|\s+` + be + `)?\s+not\s+just\b[^.?!]{0,160}[.?!]\s*["']?
		` + pron + `\b(?:'s|'re|\s+` + be + `)\b(?!\s+not\b)
	`, caseFold},

	// Cross-sentence same-verb: "didn't V. It/They V..."
	{"NOT_PERIOD_SAMEVERB", `
		` + sentStart + `[^.?!]*?\b(?:do|does|did)n't\b\s+
		(?:(?:\w+\s+){0,2})([a-z]{3,})\b[^.?!]*[.?!]\s*
		` + pron + `\s+\1(?:ed|es|s|ing)?\b
	`, caseFold},

	// Simple BE: "... isn't/wasn't ... . It's/It is ..."
	{"SIMPLE_BE_NOT_IT_BE", `
		` + sentStart + `\s*["']?
		(?!he\b|she\b|i\b|you\b|we\b)
		` + reporterGuard + `
		[^.?!]{0,160}?\b` + beNeg + `\b[^.?!]{0,160}[.;:?!]\s*
		["']?it(?:'s|\s+` + be + `)\b
	`, caseFold},

	// Embedded "not just ... ; It/They ..." (allows a lead-in like "That means ...")
	{"EMBEDDED_NOT_JUST_SEP", `
		` + sentStart + `
		[^.?!]{0,80}?\b(?:(?:it|they)\s+(?:is|are)|(?:it's|they're))\s+not\s+just\b
		[^.?!]{0,160}[.?!]\s*
		(?:(?:it|they)\s+(?:is|are)|(?:it's|they're))\b
	`, caseFold},

	// Dialogue-aware: "You're not just X," <said Y>. "You're Z."
	{"DIALOGUE_NOT_JUST", `
		["']?` + pron + `(?:'re|'s|\s+` + be + `)\s+not\s+just\b[^"']{0,160}["']?\s*
		(?:[^.?!]{0,80}\b(?:said|asked|whispered|muttered|replied|added|shouted|cried)\b[^.?!]{0,80}[.?!]\s*)?
		["']?` + pron + `(?:'re|'s|\s+` + be + `)\s+[*_~]?[a-z]\w*
	`, caseFold},
}
