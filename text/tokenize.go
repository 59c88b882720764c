package text

import (
	"strings"
	"unicode"

	"github.com/poiesic/prosecheck/core"
)

const enDash = '–'

// Tokenize splits s into words using the given boundary policy.
// Punctuation at either edge of a word is trimmed and words that consist
// only of punctuation are dropped. Empty input yields an empty slice.
func Tokenize(s string, policy core.BoundaryPolicy) []string {
	fields := strings.FieldsFunc(s, separator(policy))
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		cleaned := strings.TrimFunc(field, unicode.IsPunct)
		if cleaned != "" {
			tokens = append(tokens, cleaned)
		}
	}
	return tokens
}

func separator(policy core.BoundaryPolicy) func(rune) bool {
	if policy == core.BoundaryWithHyphen {
		return func(r rune) bool {
			return unicode.IsSpace(r) || r == '-' || r == enDash
		}
	}
	return unicode.IsSpace
}
