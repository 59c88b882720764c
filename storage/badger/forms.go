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

package badger

import (
	"context"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/prosecheck/core"
	"github.com/poiesic/prosecheck/storage"
	"github.com/poiesic/prosecheck/text"
)

// FormsRepository implements storage.FormsRepository for BadgerDB.
type FormsRepository struct {
	backend *Backend
}

var _ storage.FormsRepository = (*FormsRepository)(nil)

// NewFormsRepository creates a new FormsRepository.
func NewFormsRepository(backend *Backend) (storage.FormsRepository, error) {
	if backend == nil {
		return nil, storage.ErrBackendRequired
	}
	return &FormsRepository{backend: backend}, nil
}

// Close is a no-op; the backend is owned by the caller.
func (r *FormsRepository) Close() error {
	return nil
}

// PutForms inserts or replaces one or more dictionary entries.
func (r *FormsRepository) PutForms(ctx context.Context, entries ...*core.WordForms) error {
	for _, entry := range entries {
		if err := core.ValidateWordForms(entry); err != nil {
			return err
		}
	}
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, entry := range entries {
			if err := ctx.Err(); err != nil {
				return err
			}
			key := makeWordFormsKey(entry.Locale, entry.Word)
			if err := tx.Set(key, storage.MarshalWordForms(entry)); err != nil {
				return fmt.Errorf("failed to store forms for %q: %w", entry.Word, err)
			}
		}
		return tx.Commit()
	}, true)
}

// GetForms retrieves the entry for a word.
func (r *FormsRepository) GetForms(ctx context.Context, locale, word string) (*core.WordForms, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var entry *core.WordForms
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		entry, err = readWordForms(tx, locale, word)
		if err != nil {
			return err
		}
		if entry == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteForms removes entries by word.
func (r *FormsRepository) DeleteForms(ctx context.Context, locale string, words ...string) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, word := range words {
			entry, err := readWordForms(tx, locale, word)
			if err != nil {
				return err
			}
			if entry == nil {
				return fmt.Errorf("%w: %q", storage.ErrNotFound, word)
			}
			if err := tx.Delete(makeWordFormsKey(locale, word)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// CountForms returns the number of entries stored for a locale.
func (r *FormsRepository) CountForms(ctx context.Context, locale string) (int, error) {
	if r.backend.IsClosed() {
		return 0, storage.ErrStorageClosed
	}

	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeLocalePrefix(locale)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// readWordForms returns nil without error when the word has no entry.
// IDs are content hashes, so the stored word is compared to rule out a collision.
func readWordForms(tx *badger.Txn, locale, word string) (*core.WordForms, error) {
	item, err := tx.Get(makeWordFormsKey(locale, word))
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var entry *core.WordForms
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		entry, unmarshalErr = storage.UnmarshalWordForms(val)
		return unmarshalErr
	})
	if err != nil {
		return nil, err
	}

	norm := normalizeLocale(locale)
	if text.Lower(strings.TrimSpace(entry.Word), norm) != text.Lower(strings.TrimSpace(word), norm) {
		return nil, nil
	}
	return entry, nil
}
