package badger

import (
	"encoding/binary"
	"strings"

	"github.com/poiesic/prosecheck/core"
	"github.com/poiesic/prosecheck/text"
)

// Key prefixes for different data types
const (
	wordFormsPrefix = "wforms"
)

// normalizeLocale makes "en_US" and "en-us" address the same keyspace.
func normalizeLocale(locale string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
}

// wordFormsID derives the ID under which a word's entry is stored.
// The word is lowercased with the locale's casing rules first.
func wordFormsID(locale, word string) core.ID {
	locale = normalizeLocale(locale)
	return core.IDFromContent(locale + ":" + text.Lower(strings.TrimSpace(word), locale))
}

// makeWordFormsKey generates a composite key for a dictionary entry.
// Format: prefix:locale:id
func makeWordFormsKey(locale, word string) []byte {
	prefix := makeLocalePrefix(locale)
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(wordFormsID(locale, word)))
	return buf
}

// makeLocalePrefix generates the key prefix shared by all entries of a locale.
// Format: prefix:locale:
func makeLocalePrefix(locale string) []byte {
	return []byte(wordFormsPrefix + ":" + normalizeLocale(locale) + ":")
}
