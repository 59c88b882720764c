package text

import (
	"strings"
)

// Occurrence reports how often a phrase was found and where it first starts.
// Position is a rune offset into the haystack, or -1 when Count is 0.
type Occurrence struct {
	Count    int
	Position int
}

// Found reports whether the phrase occurred at least once.
func (o Occurrence) Found() bool {
	return o.Count > 0
}

// Locate finds whole-word occurrences of phrase in haystack.
//
// Unless caseSensitive is set, both strings are lowercased with the locale's
// casing rules. Diacritics are always folded, typographic quotes unified and
// whitespace runs, including no-break spaces, compared as a single space.
// The phrase is compared rune by rune, so characters that would be special to
// a pattern language carry no meaning. Occurrences do not overlap; all are
// counted and the offset of the first is returned.
func Locate(haystack, phrase, locale string, caseSensitive bool) Occurrence {
	notFound := Occurrence{Position: -1}

	f := newFolder(locale, caseSensitive)
	needle, _ := f.foldIndexed(strings.TrimSpace(phrase))
	if len(needle) == 0 {
		return notFound
	}
	hay, origin := f.foldIndexed(haystack)

	needStartBoundary := isWordRune(needle[0])
	needEndBoundary := isWordRune(needle[len(needle)-1])

	result := notFound
	for i := 0; i+len(needle) <= len(hay); {
		if !runesEqualAt(hay, needle, i) {
			i++
			continue
		}
		end := i + len(needle)
		if needStartBoundary && i > 0 && isWordRune(hay[i-1]) {
			i++
			continue
		}
		if needEndBoundary && end < len(hay) && isWordRune(hay[end]) {
			i++
			continue
		}

		if result.Count == 0 {
			result.Position = origin[i]
		}
		result.Count++
		i = end
	}
	return result
}

func runesEqualAt(hay, needle []rune, at int) bool {
	for j, r := range needle {
		if hay[at+j] != r {
			return false
		}
	}
	return true
}

// edgePunctuation is trimmed from keyphrase ends. Marks that can belong to
// a word, such as '#' in "C#", are not in the set.
const edgePunctuation = ".,;:!?¡¿…()[]{}"

// TrimEdgePunctuation removes sentence punctuation and brackets from both
// ends of s. Punctuation between words is kept.
func TrimEdgePunctuation(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), edgePunctuation))
}
