// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package inclusive

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/poiesic/prosecheck/core"
	"github.com/poiesic/prosecheck/text"
)

// Engine evaluates rules against text. It holds only configuration and is
// safe for concurrent use.
type Engine struct {
	locale string
	policy core.BoundaryPolicy
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLocale sets the locale used for case folding.
// Default is locale-neutral folding.
func WithLocale(locale string) Option {
	return func(e *Engine) error {
		e.locale = locale
		return nil
	}
}

// WithBoundaryPolicy sets how text and phrases are split into tokens.
// Default is core.BoundaryPlain, which keeps hyphenated words whole.
func WithBoundaryPolicy(policy core.BoundaryPolicy) Option {
	return func(e *Engine) error {
		e.policy = policy
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine creates a new rule engine.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		policy: core.BoundaryPlain,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Evaluate returns the surviving matches of every rule, keyed by rule ID.
// Rules without matches have no entry. Matches are ordered by StartToken,
// then by phrase declaration order.
func (e *Engine) Evaluate(input string, rules []Rule) map[string][]core.PhraseMatch {
	results := make(map[string][]core.PhraseMatch)
	if len(rules) == 0 {
		return results
	}

	doc := e.newDocument(input)
	for _, rule := range rules {
		matches := e.evaluateRule(doc, rule)
		if len(matches) > 0 {
			results[rule.ID] = matches
		}
	}

	e.logger.Debug("evaluated inclusive language rules",
		"tokens", len(doc.tokens),
		"rules", len(rules),
		"matched", len(results))
	return results
}

// Result is a rule's matches together with its presentation metadata.
type Result struct {
	RuleID       string
	Category     string
	LearnMoreURL string
	Score        core.Score
	Matches      []core.PhraseMatch
	Feedback     string
}

// Assess evaluates rules and returns one Result per matching rule, in rule
// order. Feedback is rendered from the first match.
func (e *Engine) Assess(input string, rules []Rule) []Result {
	doc := e.newDocument(input)
	results := make([]Result, 0)
	for _, rule := range rules {
		matches := e.evaluateRule(doc, rule)
		if len(matches) == 0 {
			continue
		}

		first := matches[0]
		results = append(results, Result{
			RuleID:       rule.ID,
			Category:     rule.Category,
			LearnMoreURL: rule.LearnMoreURL,
			Score:        rule.Score,
			Matches:      matches,
			Feedback:     rule.Feedback(strings.Join(doc.tokens[first.StartToken:first.EndToken], " ")),
		})
	}
	return results
}

// document is a tokenized input with tokens folded once for
// case-insensitive comparison.
type document struct {
	tokens []string
	folded []string
}

func (e *Engine) newDocument(input string) document {
	tokens := text.Tokenize(input, e.policy)
	folded := make([]string, len(tokens))
	for i, token := range tokens {
		folded[i] = text.Fold(token, e.locale)
	}
	return document{tokens: tokens, folded: folded}
}

func (e *Engine) evaluateRule(doc document, rule Rule) []core.PhraseMatch {
	haystack := doc.folded
	if rule.CaseSensitive {
		haystack = doc.tokens
	}

	type span struct{ start, end int }
	seen := make(map[span]struct{})
	var matches []core.PhraseMatch

	for _, phrase := range rule.NonInclusivePhrases {
		needle := text.Tokenize(phrase, e.policy)
		if len(needle) == 0 {
			continue
		}
		if !rule.CaseSensitive {
			for i, token := range needle {
				needle[i] = text.Fold(token, e.locale)
			}
		}

		for start := 0; start+len(needle) <= len(haystack); start++ {
			if !slices.Equal(haystack[start:start+len(needle)], needle) {
				continue
			}
			s := span{start, start + len(needle)}
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			matches = append(matches, core.PhraseMatch{
				Phrase:     phrase,
				StartToken: s.start,
				EndToken:   s.end,
			})
		}
	}

	// Stable sort keeps phrase order among matches starting at the same token.
	slices.SortStableFunc(matches, func(a, b core.PhraseMatch) int {
		return a.StartToken - b.StartToken
	})

	if rule.Exception != nil && len(matches) > 0 {
		matches = rule.Exception(doc.tokens, matches)
	}
	return matches
}
