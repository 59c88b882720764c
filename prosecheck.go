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

// Package prosecheck scores written content against linguistic rules.
//
// A Checker bundles the keyphrase-in-title assessor and the inclusive
// language engine with their collaborators: a morphology provider, a rule
// set and per-locale function words.
package prosecheck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/prosecheck/assess"
	"github.com/poiesic/prosecheck/core"
	"github.com/poiesic/prosecheck/inclusive"
	"github.com/poiesic/prosecheck/morphology"
	"github.com/poiesic/prosecheck/morphology/openai"
	"github.com/poiesic/prosecheck/morphology/snowball"
	"github.com/poiesic/prosecheck/storage"
	"github.com/poiesic/prosecheck/storage/badger"
	"github.com/poiesic/prosecheck/text"
)

// Checker runs title and inclusive-language assessments.
// It is safe for concurrent use.
type Checker struct {
	backend       *badger.Backend
	forms         storage.FormsRepository
	provider      morphology.Provider
	assessor      *assess.TitleAssessor
	rules         *inclusive.RuleSet
	functionWords map[string][]string
	pool          *ants.Pool
	logger        *slog.Logger
}

// Option configures a Checker.
type Option func(*checkerOptions) error

type checkerOptions struct {
	provider       morphology.Provider
	dictionaryPath string
	llmConfig      *openai.Config
	rules          *inclusive.RuleSet
	functionWords  map[string][]string
	poolSize       int
	logger         *slog.Logger
}

// WithMorphology sets the morphology provider, bypassing dictionary and
// stemmer setup.
func WithMorphology(provider morphology.Provider) Option {
	return func(o *checkerOptions) error {
		if provider == nil {
			return assess.ErrMorphologyRequired
		}
		o.provider = provider
		return nil
	}
}

// WithDictionary opens a forms dictionary at path. Words missing from it
// fall back to the LLM provider if configured, else to the stemmer.
func WithDictionary(path string) Option {
	return func(o *checkerOptions) error {
		o.dictionaryPath = path
		return nil
	}
}

// WithLLM derives forms from an OpenAI-compatible chat model instead of the stemmer.
func WithLLM(config *openai.Config) Option {
	return func(o *checkerOptions) error {
		o.llmConfig = config
		return nil
	}
}

// WithRules sets the inclusive language rules.
// Default is inclusive.DefaultRules().
func WithRules(rules *inclusive.RuleSet) Option {
	return func(o *checkerOptions) error {
		if rules == nil {
			return errors.New("rules cannot be nil")
		}
		o.rules = rules
		return nil
	}
}

// WithFunctionWords overrides the built-in function words for a locale's language.
// An empty list disables position normalization for that language.
//
// The override applies to position normalization only. Morphology providers
// pick a keyphrase's content words with the built-in list (see
// morphology.ContentWords), so coverage checks are unaffected.
func WithFunctionWords(locale string, words []string) Option {
	return func(o *checkerOptions) error {
		lang := text.Language(locale)
		if lang == "" {
			return fmt.Errorf("unrecognized locale %q", locale)
		}
		o.functionWords[lang] = append([]string{}, words...)
		return nil
	}
}

// WithPoolSize sets the worker pool size for batch assessments.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(o *checkerOptions) error {
		if size < 1 {
			size = 1
		}
		o.poolSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *checkerOptions) error {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
		return nil
	}
}

// NewChecker creates a Checker.
func NewChecker(opts ...Option) (*Checker, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	options := &checkerOptions{
		functionWords: make(map[string][]string),
		poolSize:      poolSize,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	c := &Checker{
		rules:         options.rules,
		functionWords: options.functionWords,
		logger:        options.logger,
	}
	if c.rules == nil {
		c.rules = inclusive.DefaultRules()
	}

	if err := c.setupMorphology(options); err != nil {
		return nil, err
	}

	assessor, err := assess.NewTitleAssessor(c.provider, assess.WithLogger(c.logger))
	if err != nil {
		c.Close()
		return nil, err
	}
	c.assessor = assessor

	pool, err := ants.NewPool(options.poolSize)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.pool = pool

	return c, nil
}

func (c *Checker) setupMorphology(options *checkerOptions) error {
	if options.provider != nil {
		c.provider = options.provider
		return nil
	}

	var fallback morphology.Provider
	if options.llmConfig != nil {
		llm, err := openai.NewProvider(options.llmConfig, openai.WithLogger(c.logger))
		if err != nil {
			return err
		}
		fallback = llm
	} else {
		stemmer, err := snowball.NewProvider(snowball.WithLogger(c.logger))
		if err != nil {
			return err
		}
		fallback = stemmer
	}

	if options.dictionaryPath == "" {
		c.provider = fallback
		return nil
	}

	backend, err := badger.OpenBackendWithLogger(options.dictionaryPath, false, c.logger)
	if err != nil {
		return err
	}
	forms, err := badger.NewFormsRepository(backend)
	if err != nil {
		backend.Close()
		return err
	}
	provider, err := morphology.NewDictionaryProvider(forms,
		morphology.WithFallback(fallback),
		morphology.WithLogger(c.logger))
	if err != nil {
		forms.Close()
		backend.Close()
		return err
	}

	c.backend = backend
	c.forms = forms
	c.provider = provider
	return nil
}

// Close releases the worker pool and the dictionary, if one was opened.
func (c *Checker) Close() error {
	if c.pool != nil {
		c.pool.Release()
	}
	if c.forms != nil {
		if err := c.forms.Close(); err != nil {
			c.logger.Error("error closing forms repository", "err", err)
		}
	}
	if c.backend != nil {
		if err := c.backend.Close(); err != nil {
			c.logger.Error("error closing dictionary storage", "err", err)
			return err
		}
	}
	return nil
}

// FormsRepository returns the dictionary, or nil when none was opened.
func (c *Checker) FormsRepository() storage.FormsRepository {
	return c.forms
}

// Rules returns the inclusive language rules in use.
func (c *Checker) Rules() *inclusive.RuleSet {
	return c.rules
}

// LocaleConfigFor returns the function words for a locale: an override set
// with WithFunctionWords, else the built-in list.
func (c *Checker) LocaleConfigFor(locale string) core.LocaleConfig {
	words, ok := c.functionWords[text.Language(locale)]
	if !ok {
		words = text.FunctionWords(locale)
	}
	return core.LocaleConfig{
		Locale:        locale,
		FunctionWords: words,
	}
}

// AssessTitle checks whether the paper's title contains its keyphrase.
func (c *Checker) AssessTitle(ctx context.Context, paper core.Paper) core.MatchResult {
	return c.assessor.Assess(ctx, paper, c.LocaleConfigFor(paper.Locale))
}

// RateTitle assesses and rates the paper's title.
func (c *Checker) RateTitle(ctx context.Context, paper core.Paper) (core.MatchResult, assess.Rating) {
	result := c.AssessTitle(ctx, paper)
	return result, assess.RateTitle(result)
}

// AssessTitles assesses papers concurrently on the worker pool.
// Results are in input order.
func (c *Checker) AssessTitles(ctx context.Context, papers []core.Paper) ([]core.MatchResult, error) {
	results := make([]core.MatchResult, len(papers))

	var wg sync.WaitGroup
	for i, paper := range papers {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}

		wg.Add(1)
		err := c.pool.Submit(func() {
			defer wg.Done()
			results[i] = c.AssessTitle(ctx, paper)
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("failed to submit paper %d: %w", paper.ID(), err)
		}
	}
	wg.Wait()

	c.logger.Debug("assessed titles", "count", len(papers))
	return results, nil
}

// CheckInclusive returns surviving matches per rule ID for text.
func (c *Checker) CheckInclusive(input, locale string) map[string][]core.PhraseMatch {
	return c.engine(locale).Evaluate(input, c.rules.Rules())
}

// AssessInclusive returns one result with rendered feedback per matching rule.
func (c *Checker) AssessInclusive(input, locale string) []inclusive.Result {
	return c.engine(locale).Assess(input, c.rules.Rules())
}

func (c *Checker) engine(locale string) *inclusive.Engine {
	// WithLocale and WithLogger never fail
	engine, _ := inclusive.NewEngine(inclusive.WithLocale(locale), inclusive.WithLogger(c.logger))
	return engine
}
