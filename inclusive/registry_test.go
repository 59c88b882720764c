package inclusive

import (
	"testing"

	"github.com/poiesic/prosecheck/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	rules, err := Register(
		Category{
			Name:         "disability",
			LearnMoreURL: "/learn#disability",
			Rules: []Rule{
				normalPersonRule,
				{ID: "custom", NonInclusivePhrases: []string{"x"}, Score: core.ScoreNonInclusive, LearnMoreURL: "/own"},
			},
		},
		Category{
			Name:  "age",
			Rules: []Rule{{ID: "theElderly", NonInclusivePhrases: []string{"the elderly"}, Score: core.ScorePotentiallyNonInclusive}},
		},
	)
	require.NoError(t, err)

	assert.Equal(t, 3, rules.Len())
	assert.Equal(t, []string{"disability", "age"}, rules.Categories())

	rule, ok := rules.Get("normalPerson")
	require.True(t, ok)
	assert.Equal(t, "disability", rule.Category)
	assert.Equal(t, "/learn#disability", rule.LearnMoreURL)
	assert.Equal(t, FormatBeCareful, rule.FeedbackFormat)

	custom, ok := rules.Get("custom")
	require.True(t, ok)
	assert.Equal(t, "/own", custom.LearnMoreURL)
	assert.Equal(t, FormatAvoid, custom.FeedbackFormat)

	_, ok = rules.Get("missing")
	assert.False(t, ok)

	ids := make([]string, 0, rules.Len())
	for _, r := range rules.Rules() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"normalPerson", "custom", "theElderly"}, ids)
}

func TestRegister_Duplicate(t *testing.T) {
	_, err := Register(
		Category{Name: "a", Rules: []Rule{normalPersonRule}},
		Category{Name: "b", Rules: []Rule{normalPersonRule}},
	)
	assert.ErrorIs(t, err, ErrDuplicateRule)
}

func TestRegister_Invalid(t *testing.T) {
	_, err := Register(Category{Name: "a", Rules: []Rule{{ID: "x", Score: core.ScoreNonInclusive}}})
	assert.ErrorIs(t, err, ErrNoPhrases)
}

func TestRuleSet_ReturnsCopies(t *testing.T) {
	source := []Rule{{ID: "chairman", NonInclusivePhrases: []string{"chairman"}, Score: core.ScorePotentiallyNonInclusive}}
	rules, err := Register(Category{Name: "gender", Rules: source})
	require.NoError(t, err)

	source[0].NonInclusivePhrases[0] = "changed"
	got := rules.Rules()
	got[0].NonInclusivePhrases[0] = "mutated"

	rule, ok := rules.Get("chairman")
	require.True(t, ok)
	assert.Equal(t, []string{"chairman"}, rule.NonInclusivePhrases)
}

func TestRuleSet_Filter(t *testing.T) {
	rules := DefaultRules().Filter("age")
	assert.Equal(t, []string{"age"}, rules.Categories())
	assert.Equal(t, 2, rules.Len())

	_, ok := rules.Get("mankind")
	assert.False(t, ok)
	_, ok = rules.Get("theElderly")
	assert.True(t, ok)
}
