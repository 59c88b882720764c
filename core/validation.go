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

package core

import (
	"fmt"
	"strings"
)

// ValidatePaper checks that a Paper can be assessed for keyphrase-in-title.
//
// Validation rules:
//   - Title must not be blank
//   - Keyphrase must not be blank
//
// NOT validated:
//   - Locale (an empty locale falls back to locale-neutral folding)
func ValidatePaper(paper Paper) error {
	if strings.TrimSpace(paper.Title) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPaper, ErrEmptyTitle)
	}
	if strings.TrimSpace(paper.Keyphrase) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPaper, ErrEmptyKeyphrase)
	}
	return nil
}

// ValidateWordForms validates a dictionary entry before it is stored.
//
// Validation rules:
//   - Locale must not be empty
//   - Word must not be empty
//
// Forms may be empty; the word itself is always treated as one of its forms.
func ValidateWordForms(forms *WordForms) error {
	if forms == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidWordForms)
	}
	if forms.Locale == "" {
		return fmt.Errorf("%w: %w", ErrInvalidWordForms, ErrEmptyLocale)
	}
	if strings.TrimSpace(forms.Word) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidWordForms, ErrEmptyWord)
	}
	return nil
}

// ValidateScore validates that a Score has a known value.
func ValidateScore(score Score) error {
	if score != ScoreNonInclusive && score != ScorePotentiallyNonInclusive {
		return fmt.Errorf("%w: value %d", ErrInvalidScore, score)
	}
	return nil
}
