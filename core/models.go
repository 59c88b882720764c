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
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a content-derived identifier.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Paper is the unit of content being assessed.
// The engine never mutates a Paper.
type Paper struct {
	Title     string
	Keyphrase string
	Locale    string
}

// ID returns a deterministic identifier for the paper's contents.
// Used to correlate log lines and batch results.
func (p Paper) ID() ID {
	return IDFromContent(p.Locale + "\x00" + p.Keyphrase + "\x00" + p.Title)
}

// LocaleConfig carries the per-locale data an assessment needs.
// It is supplied with every call and never retained by the engine.
type LocaleConfig struct {
	Locale        string
	FunctionWords []string
}

// WordForms is the set of morphological variants of a single content word.
type WordForms struct {
	Locale string
	Word   string
	Forms  []string
}

// Key returns the dictionary key for the word in its locale.
func (w *WordForms) Key() string {
	return w.Locale + ":" + w.Word
}

// TopicForms holds the forms of every content word in a keyphrase,
// in keyphrase order. Each inner slice contains at least the word itself.
type TopicForms struct {
	KeyphraseForms [][]string
}

// MatchResult is the outcome of locating a keyphrase inside a title.
//
// Invariants:
//   - Position >= 0 implies ExactMatchFound
//   - Position == -1 whenever no exact occurrence exists
type MatchResult struct {
	ExactMatchFound     bool
	AllWordsFound       bool
	Position            int
	ExactMatchKeyphrase bool
}

// NoMatch returns the all-false result.
func NoMatch() MatchResult {
	return MatchResult{Position: -1}
}

// PhraseMatch locates a phrase inside a token sequence.
// EndToken is exclusive: the matched tokens are tokens[StartToken:EndToken].
type PhraseMatch struct {
	Phrase     string
	StartToken int
	EndToken   int
}

// Len returns the number of tokens covered by the match.
func (m PhraseMatch) Len() int {
	return m.EndToken - m.StartToken
}

// BoundaryPolicy selects which runes separate words during tokenization.
type BoundaryPolicy int

const (
	// BoundaryPlain splits on whitespace only.
	BoundaryPlain BoundaryPolicy = iota
	// BoundaryWithHyphen splits on whitespace, hyphen-minus and en-dash.
	BoundaryWithHyphen
)

// String implements fmt.Stringer.
func (b BoundaryPolicy) String() string {
	switch b {
	case BoundaryPlain:
		return "plain"
	case BoundaryWithHyphen:
		return "with-hyphen"
	default:
		return "unknown"
	}
}

// Score rates how strongly a phrase is flagged by an inclusive-language rule.
type Score int

const (
	// ScoreNonInclusive marks phrases that should be replaced.
	ScoreNonInclusive Score = 3
	// ScorePotentiallyNonInclusive marks phrases that depend on context.
	ScorePotentiallyNonInclusive Score = 6
)

// String implements fmt.Stringer.
func (s Score) String() string {
	switch s {
	case ScoreNonInclusive:
		return "non-inclusive"
	case ScorePotentiallyNonInclusive:
		return "potentially-non-inclusive"
	default:
		return "unknown"
	}
}
