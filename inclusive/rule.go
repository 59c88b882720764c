package inclusive

import (
	"fmt"
	"strings"

	"github.com/poiesic/prosecheck/core"
)

// Exception filters candidate matches for a rule and returns those to keep.
// tokens is the full token sequence of the text being scanned.
type Exception func(tokens []string, candidates []core.PhraseMatch) []core.PhraseMatch

// Rule describes one non-inclusive phrase family.
type Rule struct {
	// ID identifies the rule in results. Unique within a RuleSet.
	ID string

	// NonInclusivePhrases are matched independently as whole token windows.
	NonInclusivePhrases []string

	// InclusiveAlternatives are suggested replacements, in preference order.
	InclusiveAlternatives []string

	Score core.Score

	// FeedbackFormat is the message template; see the package documentation.
	// Register fills in a default based on Score when empty.
	FeedbackFormat string

	// CaseSensitive disables case folding for this rule's phrases.
	CaseSensitive bool

	// Exception, if set, may veto candidate matches.
	Exception Exception

	// Category and LearnMoreURL are set by Register and only carried
	// through to results.
	Category     string
	LearnMoreURL string
}

// Default feedback templates.
const (
	FormatAvoid = "Avoid using <i>%1$s</i> as it is potentially harmful. " +
		"Consider using an alternative, such as %2$s."
	FormatBeCareful = "Be careful when using <i>%1$s</i> as it is potentially harmful. " +
		"Consider using an alternative, such as %2$s, unless referring to someone " +
		"who explicitly wants to be referred to with this term."
)

// ValidateRule checks that a rule can be evaluated.
//
// Validation rules:
//   - ID must not be blank
//   - At least one phrase must be non-blank
//   - Score must be a known value
func ValidateRule(rule Rule) error {
	if strings.TrimSpace(rule.ID) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRule, ErrEmptyRuleID)
	}

	hasPhrase := false
	for _, phrase := range rule.NonInclusivePhrases {
		if strings.TrimSpace(phrase) != "" {
			hasPhrase = true
			break
		}
	}
	if !hasPhrase {
		return fmt.Errorf("%w: %s: %w", ErrInvalidRule, rule.ID, ErrNoPhrases)
	}

	if err := core.ValidateScore(rule.Score); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidRule, rule.ID, err)
	}
	return nil
}

// defaultFeedbackFormat picks a template for rules that do not set one.
func defaultFeedbackFormat(score core.Score) string {
	if score == core.ScoreNonInclusive {
		return FormatAvoid
	}
	return FormatBeCareful
}

// Feedback renders the rule's template for one match.
// matched is the phrase as written in the text.
func (r Rule) Feedback(matched string) string {
	format := r.FeedbackFormat
	if format == "" {
		format = defaultFeedbackFormat(r.Score)
	}
	return strings.NewReplacer(
		"%1$s", matched,
		"%2$s", strings.Join(r.InclusiveAlternatives, ", "),
	).Replace(format)
}

// clone returns a copy that shares no slices with r.
func (r Rule) clone() Rule {
	r.NonInclusivePhrases = append([]string(nil), r.NonInclusivePhrases...)
	r.InclusiveAlternatives = append([]string(nil), r.InclusiveAlternatives...)
	return r
}
