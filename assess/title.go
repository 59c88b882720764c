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

package assess

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/prosecheck/core"
	"github.com/poiesic/prosecheck/morphology"
	"github.com/poiesic/prosecheck/text"
)

// TitleAssessor checks whether a paper's title contains its keyphrase.
// It holds no per-call state and is safe for concurrent use.
type TitleAssessor struct {
	morphology morphology.Provider
	logger     *slog.Logger
}

// Option configures a TitleAssessor.
type Option func(*TitleAssessor) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *TitleAssessor) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// NewTitleAssessor creates a new title assessor.
func NewTitleAssessor(provider morphology.Provider, opts ...Option) (*TitleAssessor, error) {
	if provider == nil {
		return nil, ErrMorphologyRequired
	}

	a := &TitleAssessor{
		morphology: provider,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// Assess checks the paper's title against its keyphrase.
// cfg.Locale overrides paper.Locale when set; cfg.FunctionWords drives
// position normalization and may be empty.
func (a *TitleAssessor) Assess(ctx context.Context, paper core.Paper, cfg core.LocaleConfig) core.MatchResult {
	return a.AssessWithMonitor(ctx, paper, cfg, nil)
}

// AssessWithMonitor is Assess with callbacks at each stage.
func (a *TitleAssessor) AssessWithMonitor(ctx context.Context, paper core.Paper, cfg core.LocaleConfig, monitor Monitor) core.MatchResult {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(paper)

	result := a.assess(ctx, paper, cfg, monitor)

	monitor.Finish(result)
	return result
}

func (a *TitleAssessor) assess(ctx context.Context, paper core.Paper, cfg core.LocaleConfig, monitor Monitor) core.MatchResult {
	result := core.NoMatch()
	if !IsApplicable(paper) {
		return result
	}

	locale := cfg.Locale
	if locale == "" {
		locale = paper.Locale
	}

	request := text.ParseExactMatchRequest(paper.Keyphrase)
	monitor.AfterExactMatchRequest(request)
	result.ExactMatchKeyphrase = request.ExactMatchRequested

	// 1. Exact match on the keyphrase as written
	keyphrase := strings.TrimSpace(request.Keyphrase)
	occurrence := text.Locate(paper.Title, keyphrase, locale, false)
	monitor.AfterLocate(keyphrase, occurrence)

	// 2. Retry without sentence punctuation at either end ("kitchen sink!")
	if trimmed := text.TrimEdgePunctuation(keyphrase); !occurrence.Found() && trimmed != "" && trimmed != keyphrase {
		occurrence = text.Locate(paper.Title, trimmed, locale, false)
		monitor.AfterLocate(trimmed, occurrence)
	}

	if occurrence.Found() {
		result.ExactMatchFound = true
		result.AllWordsFound = true
		result.Position = text.NormalizePosition(paper.Title, occurrence.Position, cfg.FunctionWords, locale)
		return result
	}

	if request.ExactMatchRequested {
		return result
	}

	// 3. Coverage of the keyphrase's own forms
	forms, err := a.morphology.TopicForms(ctx, keyphrase, locale)
	if err != nil {
		a.logger.Warn("morphology unavailable, skipping coverage check",
			"paper", paper.ID(),
			"locale", locale,
			"err", err)
		return result
	}

	percent := CoveragePercent(forms, paper.Title, locale)
	monitor.AfterCoverage(forms, percent)
	result.AllWordsFound = percent == 100

	a.logger.Debug("coverage check complete", "paper", paper.ID(), "percent", percent)
	return result
}

// CoveragePercent returns the share of content words, 0 to 100, with at
// least one form occurring as a whole word in title. An empty form set covers 0.
func CoveragePercent(forms *core.TopicForms, title, locale string) float64 {
	if forms == nil || len(forms.KeyphraseForms) == 0 {
		return 0
	}

	found := 0
	for _, wordForms := range forms.KeyphraseForms {
		for _, form := range wordForms {
			if text.Locate(title, form, locale, false).Found() {
				found++
				break
			}
		}
	}

	if found == len(forms.KeyphraseForms) {
		return 100
	}
	return float64(found) * 100 / float64(len(forms.KeyphraseForms))
}

// IsApplicable reports whether the paper has both a title and a keyphrase.
func IsApplicable(paper core.Paper) bool {
	return core.ValidatePaper(paper) == nil
}
