package inclusive

import (
	"testing"

	"github.com/poiesic/prosecheck/core"
	"github.com/stretchr/testify/assert"
)

func TestNotPrecededBy(t *testing.T) {
	tokens := []string{"a", "Mentally", "normal", "person", "and", "a", "normal", "person"}
	candidates := []core.PhraseMatch{
		{Phrase: "normal person", StartToken: 2, EndToken: 4},
		{Phrase: "normal person", StartToken: 6, EndToken: 8},
	}

	t.Run("single word, case-insensitive", func(t *testing.T) {
		kept := NotPrecededBy("mentally")(tokens, candidates)
		assert.Equal(t, candidates[1:], kept)
	})

	t.Run("multi-token context", func(t *testing.T) {
		kept := NotPrecededBy("and a")(tokens, candidates)
		assert.Equal(t, candidates[:1], kept)
	})

	t.Run("context longer than prefix", func(t *testing.T) {
		kept := NotPrecededBy("one two three")(tokens, candidates[:1])
		assert.Equal(t, candidates[:1], kept)
	})

	t.Run("match at start of text", func(t *testing.T) {
		atStart := []core.PhraseMatch{{Phrase: "a", StartToken: 0, EndToken: 1}}
		assert.Equal(t, atStart, NotPrecededBy("mentally")(tokens, atStart))
	})

	t.Run("blank words ignored", func(t *testing.T) {
		assert.Equal(t, candidates, NotPrecededBy("", " ")(tokens, candidates))
	})
}

func TestNotFollowedBy(t *testing.T) {
	tokens := []string{"the", "blacklist", "Pen", "and", "the", "blacklist"}
	candidates := []core.PhraseMatch{
		{Phrase: "blacklist", StartToken: 1, EndToken: 2},
		{Phrase: "blacklist", StartToken: 5, EndToken: 6},
	}

	assert.Equal(t, candidates[1:], NotFollowedBy("pen")(tokens, candidates))
	assert.Equal(t, candidates[1:], NotFollowedBy("pen and")(tokens, candidates))
	assert.Equal(t, candidates, NotFollowedBy("pencil")(tokens, candidates))
}

func TestChain(t *testing.T) {
	tokens := []string{"x", "normal", "person", "y", "normal", "person", "z", "normal", "person"}
	candidates := []core.PhraseMatch{
		{Phrase: "normal person", StartToken: 1, EndToken: 3},
		{Phrase: "normal person", StartToken: 4, EndToken: 6},
		{Phrase: "normal person", StartToken: 7, EndToken: 9},
	}

	chained := Chain(NotPrecededBy("x"), nil, NotFollowedBy("z"))
	assert.Equal(t, []core.PhraseMatch{candidates[2]}, chained(tokens, candidates))

	assert.Equal(t, candidates, Chain()(tokens, candidates))
}
