package text

import "github.com/poiesic/prosecheck/core"

// NormalizePosition collapses a match position to 0 when everything in the
// title before it is function words, so "The Kitchen Sink" and "Kitchen Sink"
// score the same for the keyphrase "kitchen sink".
//
// rawPosition is a rune offset into title. Positions of 0 or below, an empty
// function-word list, and out-of-range positions are returned unchanged.
func NormalizePosition(title string, rawPosition int, functionWords []string, locale string) int {
	if rawPosition <= 0 || len(functionWords) == 0 {
		return rawPosition
	}

	titleRunes := []rune(title)
	if rawPosition > len(titleRunes) {
		return rawPosition
	}

	prefix := string(titleRunes[:rawPosition])
	tokens := Tokenize(prefix, core.BoundaryWithHyphen)
	if ConsistsOnlyOfFunctionWords(tokens, functionWords, locale) {
		return 0
	}
	return rawPosition
}
