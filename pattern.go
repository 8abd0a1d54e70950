package dawg

import "fmt"

// Pattern tokens use an int16 letter space so the two anchors can sit
// outside the A-Z/'?' byte range without a separate discriminant field.
const (
	startAnchorLetter = int16(0)
	endAnchorLetter   = int16(-1)
	wildcardLetter    = int16('?')
)

// patternToken is one compiled unit of a subword pattern: either a
// specific letter, a '?' wildcard, or a start/end anchor. required is
// false only for a pattern's first letter/wildcard token when the
// pattern carries no leading '$' -- the "open prefix" case (spec §4.3).
type patternToken struct {
	letter   int16
	required bool
}

// compilePattern turns a pattern string into the token sequence the
// search engine walks. Pattern grammar: an optional leading '$' (anchor
// to the start of the word), a run of uppercase letters and '?'
// wildcards, and an optional trailing '$' (anchor to the end of the
// word). An empty pattern compiles to no tokens -- every token in a
// Subwords search becomes implicitly optional.
func compilePattern(pattern string) ([]patternToken, error) {
	if pattern == "" {
		return nil, nil
	}

	body := pattern
	leadingAnchor := false
	if body[0] == '$' {
		leadingAnchor = true
		body = body[1:]
	}
	trailingAnchor := false
	if len(body) > 0 && body[len(body)-1] == '$' {
		trailingAnchor = true
		body = body[:len(body)-1]
	}

	tokens := make([]patternToken, 0, len(body)+2)
	if leadingAnchor {
		tokens = append(tokens, patternToken{letter: startAnchorLetter, required: true})
	}

	for i := 0; i < len(body); i++ {
		c := body[i]
		var letter int16
		switch {
		case c == '?':
			letter = wildcardLetter
		case c >= 'A' && c <= 'Z':
			letter = int16(c)
		case c >= 'a' && c <= 'z':
			letter = int16(c - ('a' - 'A'))
		default:
			return nil, fmt.Errorf("dawg: invalid pattern character %q in %q", c, pattern)
		}

		// The first body token is optional only when nothing anchors it
		// to the start of the word.
		required := leadingAnchor || i > 0
		tokens = append(tokens, patternToken{letter: letter, required: required})
	}

	if trailingAnchor {
		tokens = append(tokens, patternToken{letter: endAnchorLetter, required: true})
	}

	return tokens, nil
}
