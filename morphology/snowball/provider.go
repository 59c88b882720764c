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

// Package snowball derives word forms from Snowball stemmers.
//
// Forms are the word itself, its stem, and regular inflections built from
// both. The result over-generates rather than under-generates: a form that
// never occurs in a title does no harm.
package snowball

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kljensen/snowball"
	"github.com/poiesic/prosecheck/core"
	"github.com/poiesic/prosecheck/morphology"
	"github.com/poiesic/prosecheck/text"
)

// stemmerLanguages maps base language codes to snowball language names.
var stemmerLanguages = map[string]string{
	"en": "english",
	"es": "spanish",
	"fr": "french",
	"ru": "russian",
	"sv": "swedish",
	"no": "norwegian",
	"nb": "norwegian",
}

// Provider implements morphology.Provider with snowball stemming.
type Provider struct {
	logger *slog.Logger
}

var _ morphology.Provider = (*Provider)(nil)

// Option configures a Provider.
type Option func(*Provider) error

// WithLogger sets the logger for the provider.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Provider) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		p.logger = logger
		return nil
	}
}

// NewProvider creates a snowball-backed provider.
func NewProvider(opts ...Option) (*Provider, error) {
	p := &Provider{logger: slog.Default()}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	p.logger = p.logger.With("component", "snowball-morphology")
	return p, nil
}

// Supports reports whether the locale's language has a stemmer.
func Supports(locale string) bool {
	_, ok := stemmerLanguages[text.Language(locale)]
	return ok
}

// TopicForms implements morphology.Provider.
func (p *Provider) TopicForms(ctx context.Context, keyphrase, locale string) (*core.TopicForms, error) {
	lang := text.Language(locale)
	stemmerLang, ok := stemmerLanguages[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", morphology.ErrUnsupportedLocale, locale)
	}

	words := morphology.ContentWords(keyphrase, locale)
	forms := make([][]string, 0, len(words))
	for _, word := range words {
		stem, err := snowball.Stem(word, stemmerLang, true)
		if err != nil {
			p.logger.Warn("stemming failed", "word", word, "language", stemmerLang, "err", err)
			stem = word
		}
		forms = append(forms, NewForms(lang, word, stem))
	}
	return &core.TopicForms{KeyphraseForms: forms}, nil
}

// NewForms builds the form list for word given its stem.
func NewForms(lang, word, stem string) []string {
	candidates := []string{stem}
	switch lang {
	case "en":
		candidates = append(candidates, englishInflections(word)...)
		if stem != word {
			candidates = append(candidates, englishInflections(stem)...)
		}
	case "fr", "es":
		candidates = append(candidates, plural(word), plural(stem))
	}
	return morphology.NewWordForms(word, candidates...)
}

// englishInflections returns the regular plural of word, or its singular
// when word already looks plural.
func englishInflections(word string) []string {
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 3:
		return []string{word[:len(word)-3] + "y"}
	case strings.HasSuffix(word, "ss"):
		return []string{word + "es"}
	case strings.HasSuffix(word, "s"):
		return []string{strings.TrimSuffix(word, "s")}
	case hasAnySuffix(word, "x", "z", "ch", "sh"):
		return []string{word + "es"}
	case strings.HasSuffix(word, "y") && len(word) > 1 && !isVowel(word[len(word)-2]):
		return []string{word[:len(word)-1] + "ies"}
	case strings.HasSuffix(word, "i") && len(word) > 1:
		// snowball rewrites a final y to i ("happy" -> "happi")
		base := word[:len(word)-1]
		return []string{base + "y", base + "ies"}
	default:
		return []string{word + "s"}
	}
}

func plural(word string) string {
	if strings.HasSuffix(word, "s") || strings.HasSuffix(word, "x") {
		return word
	}
	return word + "s"
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func isVowel(b byte) bool {
	return strings.IndexByte("aeiou", b) >= 0
}
