package text

import (
	"slices"
)

// ConsistsOnlyOfFunctionWords reports whether every token is a function word.
// Tokens and function words are lowercased with the locale's casing rules and
// compared whole. An empty token sequence is vacuously true.
func ConsistsOnlyOfFunctionWords(tokens []string, functionWords []string, locale string) bool {
	if len(tokens) == 0 {
		return true
	}
	if len(functionWords) == 0 {
		return false
	}

	set := make(map[string]struct{}, len(functionWords))
	for _, word := range functionWords {
		set[Lower(word, locale)] = struct{}{}
	}

	for _, token := range tokens {
		if _, ok := set[Lower(token, locale)]; !ok {
			return false
		}
	}
	return true
}

// FunctionWords returns a copy of the built-in function-word list for the
// locale's language, or nil if there is none.
func FunctionWords(locale string) []string {
	words, ok := builtinFunctionWords[Language(locale)]
	if !ok {
		return nil
	}
	return slices.Clone(words)
}

// SupportedFunctionWordLanguages lists the languages with a built-in list.
func SupportedFunctionWordLanguages() []string {
	langs := make([]string, 0, len(builtinFunctionWords))
	for lang := range builtinFunctionWords {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

var builtinFunctionWords = map[string][]string{
	"en": {
		// articles and determiners
		"the", "a", "an", "this", "that", "these", "those", "some", "any", "each", "every",
		"either", "neither", "another", "such", "what", "which", "whose", "all", "both",
		"no", "other", "many", "much", "more", "most", "few", "fewer", "less", "least",
		"several", "enough",
		// pronouns
		"i", "me", "my", "mine", "myself", "you", "your", "yours", "yourself", "yourselves",
		"he", "him", "his", "himself", "she", "her", "hers", "herself", "it", "its", "itself",
		"we", "us", "our", "ours", "ourselves", "they", "them", "their", "theirs", "themselves",
		"who", "whom", "whoever", "whatever", "whichever", "something", "anything", "nothing",
		"everything", "someone", "anyone", "everyone", "nobody", "somebody", "anybody",
		// prepositions
		"about", "above", "across", "after", "against", "along", "amid", "among", "around",
		"as", "at", "before", "behind", "below", "beneath", "beside", "besides", "between",
		"beyond", "by", "despite", "down", "during", "except", "for", "from", "in", "inside",
		"into", "like", "near", "of", "off", "on", "onto", "out", "outside", "over", "past",
		"since", "through", "throughout", "till", "to", "toward", "towards", "under",
		"underneath", "until", "up", "upon", "via", "with", "within", "without",
		// conjunctions
		"and", "but", "or", "nor", "so", "yet", "because", "although", "though", "while",
		"whereas", "if", "unless", "whether", "than", "once", "when", "whenever", "where",
		"wherever", "how", "why",
		// auxiliaries and modals
		"be", "am", "is", "are", "was", "were", "been", "being", "have", "has", "had",
		"having", "do", "does", "did", "doing", "can", "could", "may", "might", "must",
		"shall", "should", "will", "would", "ought",
		// adverbs and particles
		"not", "very", "too", "also", "just", "only", "even", "still", "already", "again",
		"here", "there", "then", "now", "ever", "never", "always", "often", "quite", "rather",
	},
	"nl": {
		"de", "het", "een", "dit", "dat", "deze", "die", "ik", "jij", "je", "u", "hij", "zij",
		"ze", "wij", "we", "jullie", "mijn", "jouw", "zijn", "haar", "ons", "onze", "hun",
		"in", "op", "aan", "van", "voor", "met", "bij", "naar", "uit", "over", "onder",
		"door", "tot", "om", "tegen", "tussen", "zonder", "en", "of", "maar", "want", "dus",
		"als", "dan", "is", "was", "waren", "ben", "bent", "heb", "hebt", "heeft", "hebben",
		"niet", "geen", "ook", "wel", "nog", "al", "er", "hier", "daar",
	},
	"de": {
		"der", "die", "das", "den", "dem", "des", "ein", "eine", "einen", "einem", "einer",
		"eines", "dieser", "diese", "dieses", "ich", "du", "er", "sie", "es", "wir", "ihr",
		"mein", "dein", "sein", "unser", "euer", "in", "im", "an", "am", "auf", "aus", "bei",
		"mit", "nach", "von", "vom", "zu", "zum", "zur", "für", "über", "unter", "vor",
		"hinter", "durch", "gegen", "ohne", "um", "und", "oder", "aber", "denn", "sondern",
		"als", "wie", "ist", "sind", "war", "waren", "hat", "haben", "wird", "werden",
		"nicht", "kein", "keine", "auch", "noch", "schon",
	},
	"fr": {
		"le", "la", "les", "l", "un", "une", "des", "du", "de", "d", "ce", "cet", "cette",
		"ces", "je", "tu", "il", "elle", "on", "nous", "vous", "ils", "elles", "mon", "ma",
		"mes", "ton", "ta", "tes", "son", "sa", "ses", "notre", "votre", "leur", "leurs",
		"à", "au", "aux", "en", "dans", "sur", "sous", "avec", "sans", "pour", "par",
		"chez", "entre", "vers", "et", "ou", "mais", "donc", "car", "ni", "que", "qui",
		"est", "sont", "était", "a", "ont", "ne", "pas", "plus", "très",
	},
	"es": {
		"el", "la", "los", "las", "un", "una", "unos", "unas", "lo", "este", "esta",
		"estos", "estas", "ese", "esa", "yo", "tú", "él", "ella", "nosotros", "vosotros",
		"ellos", "ellas", "mi", "tu", "su", "nuestro", "vuestro", "a", "al", "de", "del",
		"en", "con", "sin", "por", "para", "sobre", "entre", "hacia", "desde", "hasta",
		"y", "e", "o", "u", "pero", "sino", "que", "si", "es", "son", "era", "fue", "ha",
		"han", "no", "muy", "más", "ya",
	},
}
