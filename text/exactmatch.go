package text

import (
	"strings"
	"unicode/utf8"
)

// ExactMatchRequest is the result of inspecting a keyphrase for surrounding quotes.
type ExactMatchRequest struct {
	ExactMatchRequested bool
	Keyphrase           string
}

// quotePairs maps an opening quotation mark to the marks that may close it.
var quotePairs = map[rune]string{
	'"': `"`,
	'“': "”“",
	'„': "“”",
	'‟': "”",
	'«': "»",
	'»': "«",
	'「': "」",
	'『': "』",
	'〝': "〞〟",
}

// ParseExactMatchRequest detects a keyphrase wrapped in a matched pair of
// quotation marks. The quotes are stripped and the request flagged only when
// the pair wraps the whole keyphrase and no closing mark of the same pair
// appears inside it. Otherwise the keyphrase is returned unchanged.
func ParseExactMatchRequest(raw string) ExactMatchRequest {
	notRequested := ExactMatchRequest{Keyphrase: raw}

	trimmed := strings.TrimSpace(raw)
	open, openSize := utf8.DecodeRuneInString(trimmed)
	closing, closeSize := utf8.DecodeLastRuneInString(trimmed)
	if openSize == 0 || len(trimmed) <= openSize+closeSize {
		return notRequested
	}

	closers, ok := quotePairs[open]
	if !ok || !strings.ContainsRune(closers, closing) {
		return notRequested
	}

	inner := trimmed[openSize : len(trimmed)-closeSize]
	if strings.ContainsAny(inner, closers) || strings.TrimSpace(inner) == "" {
		return notRequested
	}

	return ExactMatchRequest{
		ExactMatchRequested: true,
		Keyphrase:           strings.TrimSpace(inner),
	}
}
