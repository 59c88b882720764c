package openai

import (
	"strings"
	"unicode"
)

// stripCodeFence removes a surrounding markdown code fence, if any.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// repairJSON fixes formatting slips small models make in JSON mode:
// keys missing their opening quote (`{word":`) and trailing commas before
// a closing bracket. String contents are left untouched.
func repairJSON(s string) string {
	in := []rune(s)
	out := make([]rune, 0, len(in)+16)

	inString := false
	for i := 0; i < len(in); i++ {
		ch := in[i]

		if inString {
			out = append(out, ch)
			switch ch {
			case '\\':
				if i+1 < len(in) {
					i++
					out = append(out, in[i])
				}
			case '"':
				inString = false
			}
			continue
		}

		switch {
		case ch == '"':
			inString = true
			out = append(out, ch)
		case ch == ',' && nextSignificant(in, i+1) != 0 && strings.ContainsRune("]}", nextSignificant(in, i+1)):
			// drop trailing comma
		case unicode.IsLetter(ch) && afterObjectStart(out):
			end := i
			for end < len(in) && (unicode.IsLetter(in[end]) || in[end] == '_') {
				end++
			}
			if end+1 < len(in) && in[end] == '"' && in[end+1] == ':' {
				out = append(out, '"')
				out = append(out, in[i:end]...)
				out = append(out, '"')
				i = end
				continue
			}
			out = append(out, ch)
		default:
			out = append(out, ch)
		}
	}
	return string(out)
}

// nextSignificant returns the first non-space rune at or after i, or 0.
func nextSignificant(in []rune, i int) rune {
	for ; i < len(in); i++ {
		if !unicode.IsSpace(in[i]) {
			return in[i]
		}
	}
	return 0
}

// afterObjectStart reports whether the last non-space rune written opens an
// object or separates its members.
func afterObjectStart(out []rune) bool {
	for i := len(out) - 1; i >= 0; i-- {
		if unicode.IsSpace(out[i]) {
			continue
		}
		return out[i] == '{' || out[i] == ','
	}
	return false
}
