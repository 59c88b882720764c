package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsistsOnlyOfFunctionWords(t *testing.T) {
	tests := []struct {
		name          string
		tokens        []string
		functionWords []string
		locale        string
		want          bool
	}{
		{"empty tokens with words", nil, []string{"the"}, "en", true},
		{"empty tokens without words", []string{}, nil, "en", true},
		{"empty tokens unknown locale", []string{}, []string{"x"}, "xx", true},
		{"single function word", []string{"the"}, []string{"the"}, "en", true},
		{"case folded", []string{"The"}, []string{"THE"}, "en", true},
		{"several function words", []string{"On", "the"}, []string{"on", "the", "a"}, "en", true},
		{"content word present", []string{"the", "best"}, []string{"the"}, "en", false},
		{"whole token only", []string{"theory"}, []string{"the"}, "en", false},
		{"no function words", []string{"the"}, nil, "en", false},
		{"turkish dotted capital", []string{"İLE"}, []string{"ile"}, "tr_TR", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConsistsOnlyOfFunctionWords(tt.tokens, tt.functionWords, tt.locale))
		})
	}
}

func TestFunctionWords(t *testing.T) {
	t.Run("english", func(t *testing.T) {
		words := FunctionWords("en_US")
		require.NotEmpty(t, words)
		assert.Contains(t, words, "the")
	})

	t.Run("language only locale", func(t *testing.T) {
		assert.Contains(t, FunctionWords("nl"), "het")
		assert.Contains(t, FunctionWords("de_DE"), "der")
	})

	t.Run("unknown locale", func(t *testing.T) {
		assert.Nil(t, FunctionWords("xx_XX"))
		assert.Nil(t, FunctionWords(""))
	})

	t.Run("returns a copy", func(t *testing.T) {
		words := FunctionWords("en")
		words[0] = "mutated"
		assert.NotEqual(t, "mutated", FunctionWords("en")[0])
	})
}

func TestSupportedFunctionWordLanguages(t *testing.T) {
	assert.Equal(t, []string{"de", "en", "es", "fr", "nl"}, SupportedFunctionWordLanguages())
}

func TestLanguage(t *testing.T) {
	assert.Equal(t, "en", Language("en_US"))
	assert.Equal(t, "nl", Language("nl-BE"))
	assert.Equal(t, "", Language(""))
	assert.Equal(t, "", Language("!!"))
}
