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

package storage

import (
	"context"

	"github.com/poiesic/prosecheck/core"
)

// FormsRepository stores morphological forms per (locale, word).
// Implementations must be thread-safe and support concurrent access.
//
// Words are matched case-insensitively using the locale's casing rules.
type FormsRepository interface {
	// PutForms inserts or replaces one or more dictionary entries.
	// Entries are validated with core.ValidateWordForms.
	PutForms(ctx context.Context, entries ...*core.WordForms) error

	// GetForms retrieves the entry for a word.
	// Returns ErrNotFound if the word has no entry in the locale.
	GetForms(ctx context.Context, locale, word string) (*core.WordForms, error)

	// DeleteForms removes entries by word.
	// Returns ErrNotFound if any word has no entry.
	DeleteForms(ctx context.Context, locale string, words ...string) error

	// CountForms returns the number of entries stored for a locale.
	CountForms(ctx context.Context, locale string) (int, error)

	// Close releases resources held by the repository.
	Close() error
}
