package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// LanguageTag parses a locale such as "en_US" or "nl-BE".
// Unparseable or empty locales map to language.Und.
func LanguageTag(locale string) language.Tag {
	locale = strings.TrimSpace(strings.ReplaceAll(locale, "_", "-"))
	if locale == "" {
		return language.Und
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und
	}
	return tag
}

// Language returns the base language code of a locale ("en_US" -> "en").
func Language(locale string) string {
	tag := LanguageTag(locale)
	if tag == language.Und {
		return ""
	}
	base, _ := tag.Base()
	return base.String()
}

// Lower lowercases s using the casing rules of the locale.
func Lower(s, locale string) string {
	return cases.Lower(LanguageTag(locale)).String(s)
}

// Fold lowercases s with locale rules, strips diacritics and unifies quote characters.
func Fold(s, locale string) string {
	f := newFolder(locale, false)
	var b strings.Builder
	for _, r := range s {
		b.WriteString(f.fold(r))
	}
	return b.String()
}

// folder folds single runes. Casers and transformers carry state,
// so a folder must not be shared between goroutines.
type folder struct {
	caser         cases.Caser
	strip         transform.Transformer
	caseSensitive bool
}

func newFolder(locale string, caseSensitive bool) *folder {
	return &folder{
		caser:         cases.Lower(LanguageTag(locale)),
		strip:         transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		caseSensitive: caseSensitive,
	}
}

// fold returns the folded form of r, which may be empty (a lone combining mark)
// or longer than one rune.
func (f *folder) fold(r rune) string {
	s := string(normalizeQuote(r))
	if !f.caseSensitive {
		s = f.caser.String(s)
	}
	stripped, _, err := transform.String(f.strip, s)
	if err != nil {
		return s
	}
	return stripped
}

// foldIndexed folds s rune by rune and records, for every folded rune,
// the rune offset in s it came from. A run of whitespace folds to one space
// that points at the first rune of the run.
func (f *folder) foldIndexed(s string) ([]rune, []int) {
	folded := make([]rune, 0, len(s))
	origin := make([]int, 0, len(s))
	i := 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			if n := len(folded); n == 0 || folded[n-1] != ' ' {
				folded = append(folded, ' ')
				origin = append(origin, i)
			}
			i++
			continue
		}
		for _, fr := range f.fold(r) {
			folded = append(folded, fr)
			origin = append(origin, i)
		}
		i++
	}
	return folded, origin
}

func normalizeQuote(r rune) rune {
	switch r {
	case '‘', '’', '‚', '‛', '′', '´', '`':
		return '\''
	case '“', '”', '„', '‟', '″', '«', '»':
		return '"'
	default:
		return r
	}
}

// isWordRune reports whether r can be part of a word.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Mn, r) || r == '_'
}
