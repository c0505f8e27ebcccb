package rules

// Tagged rules run against the tag stream, where lexical verbs appear as
// VERB, adjectives as ADJ, and all other tokens keep their surface form
// (auxiliaries like "doesn't" and "wasn't" stay literal). Because the stream
// covers the whole document, these rules match across sentence boundaries.

var taggedDefs = []def{
	// "doesn't VERB. It VERB" regardless of the specific verb.
	{"POS_DOESNT_VERB", `
		["']\s*
		(?:[Tt]he\s+\w+|[Ii]t|[Tt]hey|[Yy]ou)\s+
		doesn't\s+VERB
		[^.!?]*?
		[.!?]\s*
		(?:it|they|you|that)\s+
		[*_~]?(?:VERB|whispers?|reminds?|signals?|tests?|speaks?)
	`, caseFold},

	// "don't just VERB - they VERB"
	{"POS_DONT_JUST_VERB", `
		["']\s*
		(?:[Tt]hey|[Yy]ou|[Ii]t)\s+
		don't\s+just\s+VERB
		[^.!?]*?
		[—-]\s*
		they\s+[*_~]?VERB
	`, caseFold},

	// Gerund fragment "Not just VERBing. VERBing."
	{"POS_GERUND_FRAGMENT", `
		["']\s*
		Not\s+just\s+VERB
		[.!?]\s+
		[*_~]?VERB
		[.!?]
	`, freeSpacing},

	// "not ADJ. They were ADJ"
	{"POS_NOT_ADJ", `
		\b(?:(?:is|are|was|were|ai)n't|not)\s+
		ADJ
		[.!?;]\s+
		(?:[Tt]hey|[Ii]t|[Tt]his|[Tt]hat)\s+(?:were|was|are|is|'re|'s)\s+
		[*_~]?ADJ
	`, caseFold},

	// Dash with VERB: "wasn't just VERB ... - it was VERB"
	{"POS_DASH_VERB", `
		\b(?:wasn't|weren't|isn't|aren't)\s+
		just\s+
		(?:VERB|a\s+\w+)
		[^-]{0,30}?
		-\s*
		(?:it|they)\s+
		(?:was|were|is|are|'s|'re)\s+
		[*_~]?(?:VERB|a\s+[*_~]?\w+)
	`, caseFold},

	// "was not just VERB. It was VERB"
	{"POS_NOT_JUST_VERB_PAST", `
		\b(?:was|were)\s+
		not\s+just\s+
		(?:VERB|a\s+\w+)
		[.!?]\s+
		(?:[Ii]t|[Tt]hey)\s+
		(?:was|were)\s+
		[*_~]?(?:VERB|a\s+[*_~]?\w+)
	`, caseFold},

	// Colon separator: ": the N was not just VERB. It was VERB"
	{"POS_COLON_VERB", `
		:\s+
		(?:the\s+\w+|it|they)\s+
		(?:was|were)\s+
		not\s+just\s+
		VERB
		[.!?]\s+
		(?:[Ii]t|[Tt]hey)\s+
		(?:was|were)\s+
		[*_~]?VERB
	`, caseFold},

	// "isn't just VERB - it's VERB" within quotes.
	{"POS_ISNT_JUST_VERB", `
		["']\s*
		(?:[^"']{0,100}?\b)?
		(?:The\s+\w+|It|They|You)\s+
		(?:isn't|aren't|wasn't|weren't)\s+just\s+
		VERB
		[^"'.!?]{0,40}?
		[—-]\s*
		(?:it's|they're)\s+
		[*_~]?VERB
	`, caseFold},

	// Multi-sentence quote: "... not just VERB ... . It's VERB"
	{"POS_QUOTE_MULTI_VERB", `
		["']\s*
		[^"']{0,150}?\b
		(?:not\s+just|isn't|aren't)\s+
		(?:VERB|a\s+\w+)
		[^"'.!?]{0,60}?
		[.!?]\s+
		(?:[^"']{0,40}?\b)?
		(?:It's|They're|You're|That's)\s+
		[*_~]?(?:VERB|a\s+[*_~]?\w+)
	`, caseFold},

	// Ellipsis with VERB.
	{"POS_ELLIPSIS_VERB", `
		["']\s*
		[^"']{0,100}?\b
		(?:not\s+just|isn't)\s+
		VERB
		[^"']{0,30}?
		[.…]\s*[.…]\s*
		(?:they're|it's|you're)\s+
		[*_~]?VERB
	`, caseFold},

	// "That's not a NOUN. It's a NOUN"
	{"POS_NOT_NOUN", `
		["']\s*
		(?:That's|It's)\s+
		not\s+
		(?:a\s+)?(sign|message|warning|pattern|test|phenomenon|one\s+\w+)
		[.!?]\s+
		(?:That's|It's)\s+
		(?:a\s+|\*?all\s+)?[*_~]?(warning|question|language|symbol|test|presence|story|challenge|\w+)
	`, caseFold},

	// "doesn't VERB. It *VERB" with emphasis markers.
	{"POS_DOESNT_VERB_EMPHASIS", `
		["']\s*
		(?:The\s+\w+|It|They)\s+
		doesn't\s+
		(?:VERB|react|warn|speak)
		[.!?]\s+
		It\s+
		\*(?:VERB|whispers?|reminds?|signals?)
	`, caseFold},

	// Broader dash pattern.
	{"POS_DASH_VERB_BROAD", `
		\b(?:wasn't|weren't|isn't|aren't|don't|doesn't)\s+
		just\s+
		(?:VERB|(?:the|a)\s+\w+)
		[^-]{0,40}?
		-\s*
		(?:it|they)\s+
		(?:was|were|is|are|'s|'re)?\s*
		[*_~]?(?:VERB|(?:the|a)\s+[*_~]?\w+)
	`, caseFold},

	// Broader ellipsis pattern.
	{"POS_ELLIPSIS_BROAD", `
		["']\s*
		(?:[^"']{0,100}?\b)?
		(?:They're|You're|This)\s+
		(?:not\s+just|isn't)\s+
		(?:VERB|a\s+\w+)
		[^"']{0,40}?
		[.…]\s*[.…]\s*
		(?:they're|it's|you're|this)\s+
		(?:VERB|a\s+\w+)
	`, caseFold},

	// "it's not because X. It's because Y"
	{"POS_NOT_BECAUSE", `
		\bit's\s+not\s+because\s+
		[^.!?]{5,60}?
		[.!?]\s+
		(?:It's|That's)\s+because\s+
		[^.!?]{5,60}
	`, caseFold},

	// Gerund fragment with emphasis marker: "Not just VERBing. *VERBing"
	{"POS_GERUND_BROAD", `
		["']\s*
		Not\s+just\s+
		VERB
		[.!?]\s+
		\*VERB
		[.!?]?
	`, freeSpacing},

	// Quoted "You're not VERB..., You're VERB"
	{"POS_QUOTE_VERBING", `
		["']\s*
		(?:You're|They're|It's)\s+
		not\s+
		(?:just\s+)?
		VERB
		[^"'.!?]{0,30}?
		[.,]\s+
		[^"']{0,50}?
		(?:You're|They're|It's)\s+
		(?:VERB|waiting)
	`, caseFold},

	// "doesn't verb. It *verb*" where the verb stays literal under emphasis.
	{"POS_DOESNT_LITERAL", `
		["']\s*
		(?:The\s+\w+|It|They)\s+
		doesn't\s+
		(?:VERB|react|warn|speak|listen)\s*
		[.!?]\s+
		It\s+
		\*\w+\*
	`, caseFold},

	// "not just a NOUN - it was a *NOUN*"
	{"POS_DASH_NOUN_SWAP", `
		\b(?:was|were|is|are)\s+
		not\s+just\s+
		a\s+\w+
		[^-]{0,10}?
		-\s*
		(?:it|they)\s+
		(?:was|were|is|are)\s+
		(?:a\s+)?\*\w+\*
	`, caseFold},

	// "isn't just VERB/noun - it's *word*"
	{"POS_ISNT_DASH_EMPHASIS", `
		["']\s*
		(?:The\s+\w+|It|They)\s+
		(?:isn't|aren't|wasn't|weren't)\s+
		just\s+
		(?:VERB|a\s+\w+)
		[^-]{0,40}?
		-\s*
		(?:it's|they're)\s+
		\*\w+\*
	`, caseFold},

	// "That's not a NOUN. That's a *NOUN*"
	{"POS_THATS_NOT_NOUN", `
		["']\s*
		That's\s+not\s+
		(?:a\s+)?(?:sign|message|pattern|phenomenon|test|one\s+\w+|\w+)
		[.!?]\s+
		(?:That's|It's)\s+
		(?:a\s+)?\*\w+\*
	`, caseFold},

	// "Not just VERBing. *Capitalized*"
	{"POS_GERUND_EMPHASIS", `
		["']\s*
		Not\s+just\s+
		(?:VERB|reacting|dying|\w+ing)
		[.!?]\s+
		\*[A-Z]\w+\*
	`, freeSpacing},

	// "are not just VERBing," <attribution>. "They're VERBing"
	{"POS_QUOTE_ATTRIBUTION_VERB", `
		["']\s*
		(?:The\s+\w+|They)\s+
		(?:are|were|'re)\s+
		not\s+just\s+
		VERB
		,"\s+
		[^"']{0,30}?
		\.\s+
		"They're\s+
		\*?VERB
	`, caseFold},

	// "isn't just a NOUN. It's a *NOUN*"
	{"POS_ISNT_NOUN", `
		["']\s*
		(?:This|That|It)\s+
		isn't\s+just\s+
		a\s+\w+
		[.!?]\s+
		It's\s+
		(?:a\s+)?\*\w+\*
	`, caseFold},

	// "It's not just NOUN. It's *NOUN*"
	{"POS_ITS_NOT_JUST", `
		["']\s*
		It's\s+not\s+just\s+
		(?:one\s+)?(\w+)
		[.!?]\s+
		It's\s+
		\*(?:all|every|each|\w+)\*
	`, caseFold},

	// "They're not just VERBing a NOUN - they're *VERBing*"
	{"POS_DASH_GERUND_OBJ", `
		["']\s*
		(?:They're|You're|It's)\s+
		not\s+just\s+
		(?:VERB|emitting|dying|\w+ing)\s+
		(?:a|an|the)\s+\w+
		[^-]{0,10}?
		-\s*
		(?:they're|you're|it's)\s+
		\*\w+\*
	`, caseFold},

	// Ellipsis with dialogue attribution.
	{"POS_ELLIPSIS_DIALOGUE", `
		["']\s*
		(?:They're|You're|It's)\s+
		not\s+just\s+
		VERB
		,"\s+
		[^"']{5,40}?\.\s+
		"(?:They're|You're|It's)[…\s]+
		(?:VERB|\w+ing)
	`, caseFold},

	// "were not just NOUN; they were a NOUN"
	{"POS_SEMI_NOUN", `
		\b(?:were|was|are|is)\s+
		not\s+just\s+
		(?:folklore|\w+)
		;\s+
		(?:they|it)\s+
		(?:were|was|are|is)\s+
		a\s+\w+
	`, caseFold},

	// "isn't just a ADJ NOUN. It's a *NOUN*"
	{"POS_ISNT_ADJ_NOUN", `
		["']\s*
		(?:[^"']{0,30}?\b)?
		(?:this|that|it)\s+
		isn't\s+just\s+
		a\s+
		(?:ADJ\s+)?\w+
		[.!?]\s+
		It's\s+
		(?:a\s+)?\*\w+\*
	`, caseFold},

	// Dialogue attribution: "not just X," he said. "Y"
	{"POS_DIALOGUE_ATTR", `
		["']\s*
		(?:You're|They're|It's|The\s+\w+)\s+
		(?:(?:are|is|'re|'s)\s+)?
		not\s+just\s+
		(?:VERB(?:\s+\w+)?|a\s+\w+)
		,"\s+
		[^"']{3,50}?\.\s+
		"(?:You're|They're|It's)\s+
		(?:a\s+)?\*\w+\*
	`, caseFold},

	// "To VERB that X isn't just Y. It's *Z*"
	{"POS_TO_VERB_ISNT", `
		["']\s*
		To\s+VERB\s+
		(?:that\s+)?
		[^"']{5,50}?
		isn't\s+just\s+
		a\s+\w+
		[.!?]\s+
		It's\s+
		(?:a\s+)?\*\w+\*
	`, caseFold},

	// "I am not VERBing X; it is Y"
	{"POS_I_AM_NOT_SEMI", `
		\bI\s+am\s+not\s+
		VERB
		[^;]{5,80}?
		;\s*
		it\s+is\b
	`, caseFold},

	// "It's not NAME anymore. It's NAME"
	{"POS_NOT_ANYMORE_ITS", `
		\bIt's\s+not\s+
		[A-Z]\w+
		\s+anymore
		[.!?]\s+
		It's\s+
		[A-Z]\w+
	`, freeSpacing},

	// "That/This ain't X. They/It Y"
	{"POS_AINT_SIMPLE", `
		\b(?:That|This)\s+
		ain't\s+
		[^.!?]{3,40}?
		[.!?]\s+
		(?:They|It)\s+
		\w+
	`, caseFold},

	// Same verb lemma reappearing across a contrast boundary.
	{"LEMMA_SAME_VERB", `
		\b(REACT|SPEAK|LISTEN|LEARN|SIGNAL|WARN|DIE|LIVE|TEST|TEACH|AMPLIFY|INTERPRET|TRANSLATE|DECODE|EMIT)\b
		[^.!?]{5,80}?
		[.!?;—-]\s*
		[^.!?]{0,40}?
		\1
	`, caseFold},
}
