package inclusive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poiesic/prosecheck/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRuleFile = `
categories:
  - name: disability
    learnMoreUrl: /learn#disability
    rules:
      - id: normalPerson
        phrases: [normal person]
        alternatives: ["<i>typical person</i>"]
        score: potentially-non-inclusive
        notPrecededBy: [mentally]
      - id: mentallyNormal
        phrases: [mentally normal]
        alternatives: [mentally healthy]
        score: non-inclusive
        feedbackFormat: "Avoid %1$s; try %2$s."
  - name: other
    learnMoreUrl: /learn#other
    rules:
      - id: blacklist
        phrases: [blacklist]
        alternatives: [blocklist]
        score: "6"
        caseSensitive: true
        notPrecededBy: [the]
        notFollowedBy: [pen]
`

func TestLoadRules(t *testing.T) {
	rules, err := LoadRules(strings.NewReader(testRuleFile))
	require.NoError(t, err)
	assert.Equal(t, 3, rules.Len())

	mentally, ok := rules.Get("mentallyNormal")
	require.True(t, ok)
	assert.Equal(t, core.ScoreNonInclusive, mentally.Score)
	assert.Equal(t, "Avoid mentally normal; try mentally healthy.", mentally.Feedback("mentally normal"))

	blacklist, ok := rules.Get("blacklist")
	require.True(t, ok)
	assert.True(t, blacklist.CaseSensitive)
	assert.Equal(t, core.ScorePotentiallyNonInclusive, blacklist.Score)
	assert.Equal(t, "/learn#other", blacklist.LearnMoreURL)

	e := newTestEngine(t)
	results := e.Evaluate("a mentally normal person", rules.Rules())
	assert.NotContains(t, results, "normalPerson")
	assert.Contains(t, results, "mentallyNormal")

	results = e.Evaluate("blacklist pen, the blacklist, a blacklist. Blacklist", rules.Rules())
	assert.Equal(t, []core.PhraseMatch{
		{Phrase: "blacklist", StartToken: 5, EndToken: 6},
	}, results["blacklist"])
}

func TestLoadRules_Empty(t *testing.T) {
	rules, err := LoadRules(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, rules.Len())
}

func TestLoadRules_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"malformed YAML", "categories: [", ErrInvalidRuleFile},
		{"unknown field", "categories:\n  - name: a\n    colour: red\n", ErrInvalidRuleFile},
		{"bad score", "categories:\n  - name: a\n    rules:\n      - id: x\n        phrases: [x]\n        score: awful\n", core.ErrInvalidScore},
		{"missing phrases", "categories:\n  - name: a\n    rules:\n      - id: x\n        score: non-inclusive\n", ErrNoPhrases},
		{"duplicate ID", "categories:\n  - name: a\n    rules:\n      - {id: x, phrases: [x], score: \"3\"}\n      - {id: x, phrases: [y], score: \"3\"}\n", ErrDuplicateRule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRules(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadRulesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testRuleFile), 0644))

	rules, err := LoadRulesFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, rules.Len())

	_, err = LoadRulesFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseScore(t *testing.T) {
	score, err := ParseScore("Non-Inclusive")
	require.NoError(t, err)
	assert.Equal(t, core.ScoreNonInclusive, score)

	score, err = ParseScore(" 6 ")
	require.NoError(t, err)
	assert.Equal(t, core.ScorePotentiallyNonInclusive, score)

	_, err = ParseScore("")
	assert.ErrorIs(t, err, core.ErrInvalidScore)
}
