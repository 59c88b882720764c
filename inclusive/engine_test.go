package inclusive

import (
	"log/slog"
	"testing"

	"github.com/poiesic/prosecheck/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := NewEngine(opts...)
	require.NoError(t, err)
	return e
}

var (
	normalPersonRule = Rule{
		ID:                    "normalPerson",
		NonInclusivePhrases:   []string{"normal person"},
		InclusiveAlternatives: []string{"typical person"},
		Score:                 core.ScorePotentiallyNonInclusive,
		Exception:             NotPrecededBy("mentally"),
	}
	mentallyNormalRule = Rule{
		ID:                    "mentallyNormal",
		NonInclusivePhrases:   []string{"mentally normal"},
		InclusiveAlternatives: []string{"mentally healthy"},
		Score:                 core.ScoreNonInclusive,
	}
)

func TestNewEngine(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		e := newTestEngine(t)
		assert.Equal(t, core.BoundaryPlain, e.policy)
		assert.Equal(t, slog.Default(), e.logger)
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		e := newTestEngine(t, WithLogger(nil))
		assert.Equal(t, slog.Default(), e.logger)
	})

	t.Run("options", func(t *testing.T) {
		e := newTestEngine(t, WithLocale("tr"), WithBoundaryPolicy(core.BoundaryWithHyphen))
		assert.Equal(t, "tr", e.locale)
		assert.Equal(t, core.BoundaryWithHyphen, e.policy)
	})
}

func TestEvaluate_ExceptionVetoesMatch(t *testing.T) {
	e := newTestEngine(t)

	results := e.Evaluate("a mentally normal person", []Rule{normalPersonRule, mentallyNormalRule})

	assert.NotContains(t, results, "normalPerson")
	require.Contains(t, results, "mentallyNormal")
	assert.Equal(t, []core.PhraseMatch{
		{Phrase: "mentally normal", StartToken: 1, EndToken: 3},
	}, results["mentallyNormal"])
}

func TestEvaluate_ExceptionKeepsOtherMatches(t *testing.T) {
	e := newTestEngine(t)

	results := e.Evaluate("A normal person and a mentally normal person.", []Rule{normalPersonRule})

	assert.Equal(t, []core.PhraseMatch{
		{Phrase: "normal person", StartToken: 1, EndToken: 3},
	}, results["normalPerson"])
}

func TestEvaluate_CaseSensitivity(t *testing.T) {
	e := newTestEngine(t)
	caseSensitive := Rule{
		ID:                  "normalPeopleCapitalized",
		NonInclusivePhrases: []string{"Normal people"},
		Score:               core.ScorePotentiallyNonInclusive,
		CaseSensitive:       true,
	}
	caseInsensitive := Rule{
		ID:                  "normalPeople",
		NonInclusivePhrases: []string{"Normal people"},
		Score:               core.ScorePotentiallyNonInclusive,
	}

	results := e.Evaluate("normal people", []Rule{caseSensitive, caseInsensitive})
	assert.NotContains(t, results, "normalPeopleCapitalized")
	assert.Contains(t, results, "normalPeople")

	results = e.Evaluate("Normal people agree.", []Rule{caseSensitive})
	assert.Len(t, results["normalPeopleCapitalized"], 1)
}

func TestEvaluate_MultiplePhrasesMergedInOrder(t *testing.T) {
	e := newTestEngine(t)
	rule := Rule{
		ID:                  "wheelchairBound",
		NonInclusivePhrases: []string{"confined to a wheelchair", "wheelchair-bound"},
		Score:               core.ScoreNonInclusive,
	}

	results := e.Evaluate("She is wheelchair-bound, not confined to a wheelchair.", []Rule{rule})

	assert.Equal(t, []core.PhraseMatch{
		{Phrase: "wheelchair-bound", StartToken: 2, EndToken: 3},
		{Phrase: "confined to a wheelchair", StartToken: 4, EndToken: 8},
	}, results["wheelchairBound"])
}

func TestEvaluate_DuplicateSpansKeptOnce(t *testing.T) {
	e := newTestEngine(t)
	rule := Rule{
		ID:                  "normalPeople",
		NonInclusivePhrases: []string{"normal people", "Normal people"},
		Score:               core.ScorePotentiallyNonInclusive,
	}

	results := e.Evaluate("Normal people", []Rule{rule})
	assert.Equal(t, []core.PhraseMatch{
		{Phrase: "normal people", StartToken: 0, EndToken: 2},
	}, results["normalPeople"])
}

func TestEvaluate_WholeTokensOnly(t *testing.T) {
	e := newTestEngine(t)
	rule := Rule{ID: "chairman", NonInclusivePhrases: []string{"chairman"}, Score: core.ScorePotentiallyNonInclusive}

	assert.Empty(t, e.Evaluate("The chairmanship changed hands.", []Rule{rule}))
	assert.Len(t, e.Evaluate("Ask the Chairman!", []Rule{rule})["chairman"], 1)
}

func TestEvaluate_FoldsDiacritics(t *testing.T) {
	e := newTestEngine(t)
	rule := Rule{ID: "naive", NonInclusivePhrases: []string{"naive"}, Score: core.ScorePotentiallyNonInclusive}

	assert.Len(t, e.Evaluate("a naïve plan", []Rule{rule})["naive"], 1)
}

func TestEvaluate_HyphenPolicy(t *testing.T) {
	rule := Rule{ID: "manMade", NonInclusivePhrases: []string{"man made"}, Score: core.ScorePotentiallyNonInclusive}

	plain := newTestEngine(t)
	assert.Empty(t, plain.Evaluate("man-made lakes", []Rule{rule}))

	hyphen := newTestEngine(t, WithBoundaryPolicy(core.BoundaryWithHyphen))
	assert.Len(t, hyphen.Evaluate("man-made lakes", []Rule{rule})["manMade"], 1)
}

func TestEvaluate_EmptyInputs(t *testing.T) {
	e := newTestEngine(t)

	assert.Empty(t, e.Evaluate("", []Rule{normalPersonRule}))
	assert.Empty(t, e.Evaluate("a normal person", nil))
	assert.NotNil(t, e.Evaluate("a normal person", nil))

	blank := Rule{ID: "blank", NonInclusivePhrases: []string{"  "}, Score: core.ScoreNonInclusive}
	assert.Empty(t, e.Evaluate("a normal person", []Rule{blank}))
}

func TestEvaluate_Deterministic(t *testing.T) {
	e := newTestEngine(t)
	rules := DefaultRules().Rules()
	input := "The chairman met senior citizens and a normal person about the blacklist."

	first := e.Evaluate(input, rules)
	second := e.Evaluate(input, rules)
	assert.Equal(t, first, second)
	assert.Len(t, first, 4)
}

func TestAssess(t *testing.T) {
	e := newTestEngine(t)
	rules, err := Register(Category{
		Name:         "disability",
		LearnMoreURL: "/learn#disability",
		Rules:        []Rule{normalPersonRule, mentallyNormalRule},
	})
	require.NoError(t, err)

	results := e.Assess("He is a Normal Person, and mentally normal.", rules.Rules())
	require.Len(t, results, 2)

	assert.Equal(t, "normalPerson", results[0].RuleID)
	assert.Equal(t, "disability", results[0].Category)
	assert.Equal(t, "/learn#disability", results[0].LearnMoreURL)
	assert.Equal(t, core.ScorePotentiallyNonInclusive, results[0].Score)
	assert.Equal(t,
		"Be careful when using <i>Normal Person</i> as it is potentially harmful. "+
			"Consider using an alternative, such as typical person, unless referring to someone "+
			"who explicitly wants to be referred to with this term.",
		results[0].Feedback)

	assert.Equal(t, "mentallyNormal", results[1].RuleID)
	assert.Equal(t,
		"Avoid using <i>mentally normal</i> as it is potentially harmful. Consider using an alternative, such as mentally healthy.",
		results[1].Feedback)
}

func TestAssess_NoMatches(t *testing.T) {
	e := newTestEngine(t)
	results := e.Assess("Nothing to see here.", DefaultRules().Rules())
	assert.Empty(t, results)
	assert.NotNil(t, results)
}
