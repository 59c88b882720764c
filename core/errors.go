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

import "errors"

// Domain validation errors
var (
	// ErrInvalidPaper indicates a Paper failed validation.
	ErrInvalidPaper = errors.New("invalid paper")

	// ErrEmptyTitle indicates the Title field is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyKeyphrase indicates the Keyphrase field is empty.
	ErrEmptyKeyphrase = errors.New("keyphrase cannot be empty")

	// ErrInvalidWordForms indicates a WordForms entry failed validation.
	ErrInvalidWordForms = errors.New("invalid word forms")

	// ErrEmptyWord indicates the Word field is empty.
	ErrEmptyWord = errors.New("word cannot be empty")

	// ErrEmptyLocale indicates the Locale field is empty.
	ErrEmptyLocale = errors.New("locale cannot be empty")

	// ErrInvalidScore indicates a Score value outside the known set.
	ErrInvalidScore = errors.New("invalid score")
)
