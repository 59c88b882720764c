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

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/poiesic/prosecheck/core"
	"github.com/poiesic/prosecheck/storage"
	"github.com/poiesic/prosecheck/storage/badger"
	"github.com/urfave/cli/v2"
)

// parseForms reads dictionary entries, one per line:
//
//	word<TAB>form,form,...
//
// The form list may be omitted. Blank lines and lines starting with '#' are skipped.
func parseForms(r io.Reader, locale string) ([]*core.WordForms, error) {
	var entries []*core.WordForms

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		word, formList, _ := strings.Cut(line, "\t")
		word = strings.TrimSpace(word)
		if word == "" {
			return nil, fmt.Errorf("line %d: missing word", lineNo)
		}

		var forms []string
		for _, form := range strings.Split(formList, ",") {
			if form = strings.TrimSpace(form); form != "" {
				forms = append(forms, form)
			}
		}

		entries = append(entries, &core.WordForms{
			Locale: locale,
			Word:   word,
			Forms:  forms,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read forms: %w", err)
	}
	return entries, nil
}

func openForms(path string) (storage.FormsRepository, *badger.Backend, error) {
	backend, err := badger.OpenBackendWithLogger(path, false, slog.Default())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	repo, err := badger.NewFormsRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, fmt.Errorf("failed to create repository: %w", err)
	}
	return repo, backend, nil
}

func formsImportCommand(c *cli.Context) error {
	batchSize := c.Int("batch-size")
	if batchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if c.Int("report-interval") <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}

	input, closeInput, err := openInput(c)
	if err != nil {
		return err
	}
	defer closeInput()

	locale := c.String("locale")
	entries, err := parseForms(input, locale)
	if err != nil {
		return err
	}

	repo, backend, err := openForms(c.String("dict"))
	if err != nil {
		return err
	}
	defer backend.Close()
	defer repo.Close()

	slog.Info("importing forms", "entries", len(entries), "locale", locale, "dict", c.String("dict"))

	tracker := newProgressTracker(c.App.ErrWriter, len(entries), c.Int("report-interval"))
	tracker.Start()
	for start := 0; start < len(entries); start += batchSize {
		end := min(start+batchSize, len(entries))
		if err := repo.PutForms(c.Context, entries[start:end]...); err != nil {
			return fmt.Errorf("failed to import entries %d-%d: %w", start+1, end, err)
		}
		tracker.Increment(end - start)
	}
	tracker.Finish()

	count, err := repo.CountForms(c.Context, locale)
	if err != nil {
		return fmt.Errorf("failed to count entries: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "Imported %d entries; %s dictionary holds %d words\n", len(entries), locale, count)
	return nil
}

func formsShowCommand(c *cli.Context) error {
	repo, backend, err := openForms(c.String("dict"))
	if err != nil {
		return err
	}
	defer backend.Close()
	defer repo.Close()

	locale := c.String("locale")
	if c.NArg() == 0 {
		count, err := repo.CountForms(c.Context, locale)
		if err != nil {
			return fmt.Errorf("failed to count entries: %w", err)
		}
		fmt.Fprintf(c.App.Writer, "%s dictionary holds %d words\n", locale, count)
		return nil
	}

	for _, word := range c.Args().Slice() {
		entry, err := repo.GetForms(c.Context, locale, word)
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Fprintf(c.App.Writer, "%s: not found\n", word)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to look up %q: %w", word, err)
		}
		fmt.Fprintf(c.App.Writer, "%s: %s\n", entry.Word, strings.Join(entry.Forms, ", "))
	}
	return nil
}

func formsDeleteCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("at least one word is required")
	}

	repo, backend, err := openForms(c.String("dict"))
	if err != nil {
		return err
	}
	defer backend.Close()
	defer repo.Close()

	words := c.Args().Slice()
	if err := repo.DeleteForms(c.Context, c.String("locale"), words...); err != nil {
		return fmt.Errorf("failed to delete entries: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "Deleted %d entries\n", len(words))
	return nil
}
