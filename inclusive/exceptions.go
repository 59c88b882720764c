package inclusive

import (
	"github.com/poiesic/prosecheck/core"
	"github.com/poiesic/prosecheck/text"
)

// NotPrecededBy vetoes matches immediately preceded by any of words.
// A word may span several tokens ("very much"). Comparison ignores case
// and diacritics.
func NotPrecededBy(words ...string) Exception {
	contexts := contextTokens(words)
	return func(tokens []string, candidates []core.PhraseMatch) []core.PhraseMatch {
		return filterMatches(candidates, func(m core.PhraseMatch) bool {
			for _, ctx := range contexts {
				start := m.StartToken - len(ctx)
				if start >= 0 && tokensEqual(tokens[start:m.StartToken], ctx) {
					return false
				}
			}
			return true
		})
	}
}

// NotFollowedBy vetoes matches immediately followed by any of words.
func NotFollowedBy(words ...string) Exception {
	contexts := contextTokens(words)
	return func(tokens []string, candidates []core.PhraseMatch) []core.PhraseMatch {
		return filterMatches(candidates, func(m core.PhraseMatch) bool {
			for _, ctx := range contexts {
				end := m.EndToken + len(ctx)
				if end <= len(tokens) && tokensEqual(tokens[m.EndToken:end], ctx) {
					return false
				}
			}
			return true
		})
	}
}

// Chain applies exceptions in order; a match survives only if every one keeps it.
func Chain(exceptions ...Exception) Exception {
	return func(tokens []string, candidates []core.PhraseMatch) []core.PhraseMatch {
		for _, exception := range exceptions {
			if exception == nil {
				continue
			}
			candidates = exception(tokens, candidates)
			if len(candidates) == 0 {
				break
			}
		}
		return candidates
	}
}

// contextTokens tokenizes and folds each context word; blank words are dropped.
func contextTokens(words []string) [][]string {
	contexts := make([][]string, 0, len(words))
	for _, word := range words {
		tokens := text.Tokenize(word, core.BoundaryPlain)
		if len(tokens) == 0 {
			continue
		}
		for i, token := range tokens {
			tokens[i] = text.Fold(token, "")
		}
		contexts = append(contexts, tokens)
	}
	return contexts
}

// tokensEqual compares raw tokens to already folded ones.
func tokensEqual(tokens, folded []string) bool {
	for i, token := range tokens {
		if text.Fold(token, "") != folded[i] {
			return false
		}
	}
	return true
}

func filterMatches(candidates []core.PhraseMatch, keep func(core.PhraseMatch) bool) []core.PhraseMatch {
	kept := make([]core.PhraseMatch, 0, len(candidates))
	for _, m := range candidates {
		if keep(m) {
			kept = append(kept, m)
		}
	}
	return kept
}
