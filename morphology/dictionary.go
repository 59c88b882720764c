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

package morphology

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/prosecheck/core"
	"github.com/poiesic/prosecheck/storage"
)

// DictionaryProvider resolves forms from a stored dictionary.
// Words without an entry are sent to the fallback provider, if one is set,
// and otherwise contribute only themselves.
type DictionaryProvider struct {
	repo     storage.FormsRepository
	fallback Provider
	logger   *slog.Logger
}

// DictionaryOption configures a DictionaryProvider.
type DictionaryOption func(*DictionaryProvider) error

// WithFallback sets the provider consulted for words missing from the dictionary.
func WithFallback(fallback Provider) DictionaryOption {
	return func(p *DictionaryProvider) error {
		p.fallback = fallback
		return nil
	}
}

// WithLogger sets the logger for the provider.
func WithLogger(logger *slog.Logger) DictionaryOption {
	return func(p *DictionaryProvider) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		p.logger = logger
		return nil
	}
}

// NewDictionaryProvider creates a provider backed by repo.
func NewDictionaryProvider(repo storage.FormsRepository, opts ...DictionaryOption) (*DictionaryProvider, error) {
	if repo == nil {
		return nil, ErrFormsRepositoryRequired
	}

	p := &DictionaryProvider{
		repo:   repo,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	p.logger = p.logger.With("component", "dictionary-morphology")
	return p, nil
}

// TopicForms implements Provider.
func (p *DictionaryProvider) TopicForms(ctx context.Context, keyphrase, locale string) (*core.TopicForms, error) {
	words := ContentWords(keyphrase, locale)
	forms := make([][]string, len(words))

	var missing []int
	for i, word := range words {
		entry, err := p.repo.GetForms(ctx, locale, word)
		switch {
		case err == nil:
			forms[i] = NewWordForms(word, entry.Forms...)
		case errors.Is(err, storage.ErrNotFound):
			missing = append(missing, i)
		default:
			return nil, fmt.Errorf("failed to look up forms for %q: %w", word, err)
		}
	}

	if len(missing) > 0 {
		p.resolveMissing(ctx, locale, words, missing, forms)
	}

	return &core.TopicForms{KeyphraseForms: forms}, nil
}

// resolveMissing fills forms[i] for each missing index, asking the fallback
// for all missing words in one call.
func (p *DictionaryProvider) resolveMissing(ctx context.Context, locale string, words []string, missing []int, forms [][]string) {
	var fallbackForms [][]string
	if p.fallback != nil {
		query := make([]string, len(missing))
		for j, i := range missing {
			query[j] = words[i]
		}

		result, err := p.fallback.TopicForms(ctx, strings.Join(query, " "), locale)
		switch {
		case err != nil:
			p.logger.Warn("fallback morphology failed", "locale", locale, "words", query, "err", err)
		case result == nil:
			p.logger.Warn("fallback returned no forms", "locale", locale, "words", query)
		case len(result.KeyphraseForms) != len(missing):
			p.logger.Warn("fallback returned unexpected number of form lists",
				"expected", len(missing), "got", len(result.KeyphraseForms))
		default:
			fallbackForms = result.KeyphraseForms
		}
	}

	for j, i := range missing {
		if fallbackForms != nil {
			forms[i] = NewWordForms(words[i], fallbackForms[j]...)
		} else {
			forms[i] = []string{words[i]}
		}
	}
	p.logger.Debug("resolved words missing from dictionary", "count", len(missing), "fallback", fallbackForms != nil)
}
