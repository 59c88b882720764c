package morphology

import (
	"slices"

	"github.com/poiesic/prosecheck/core"
	"github.com/poiesic/prosecheck/text"
)

// ContentWords splits a keyphrase into lowercased words and drops the built-in
// function words for the locale. If only function words remain, all words are kept.
func ContentWords(keyphrase, locale string) []string {
	tokens := text.Tokenize(keyphrase, core.BoundaryPlain)
	words := make([]string, 0, len(tokens))
	for _, token := range tokens {
		words = append(words, text.Lower(token, locale))
	}

	functionWords := text.FunctionWords(locale)
	if len(functionWords) == 0 {
		return words
	}

	stop := make(map[string]struct{}, len(functionWords))
	for _, word := range functionWords {
		stop[text.Lower(word, locale)] = struct{}{}
	}

	content := make([]string, 0, len(words))
	for _, word := range words {
		if _, ok := stop[word]; !ok {
			content = append(content, word)
		}
	}
	if len(content) == 0 {
		return words
	}
	return content
}

// NewWordForms returns a form list that starts with word and contains each
// of forms once, in order. Empty forms are skipped.
func NewWordForms(word string, forms ...string) []string {
	out := make([]string, 0, len(forms)+1)
	out = append(out, word)
	for _, form := range forms {
		if form == "" || slices.Contains(out, form) {
			continue
		}
		out = append(out, form)
	}
	return out
}
