package inclusive

import (
	"fmt"
	"slices"
)

// Category groups rules that share a learn-more page.
type Category struct {
	Name         string
	LearnMoreURL string
	Rules        []Rule
}

// RuleSet is an immutable, validated collection of rules.
// Accessors return copies, so a RuleSet can be shared between goroutines.
type RuleSet struct {
	rules []Rule
	byID  map[string]int
}

// Register validates the rules of every category and annotates each with
// its category name and, unless the rule sets its own, the category's
// learn-more URL. Rules keep their declaration order.
func Register(categories ...Category) (*RuleSet, error) {
	set := &RuleSet{byID: make(map[string]int)}

	for _, category := range categories {
		for _, rule := range category.Rules {
			if err := ValidateRule(rule); err != nil {
				return nil, err
			}
			if _, exists := set.byID[rule.ID]; exists {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateRule, rule.ID)
			}

			rule = rule.clone()
			rule.Category = category.Name
			if rule.LearnMoreURL == "" {
				rule.LearnMoreURL = category.LearnMoreURL
			}
			if rule.FeedbackFormat == "" {
				rule.FeedbackFormat = defaultFeedbackFormat(rule.Score)
			}

			set.byID[rule.ID] = len(set.rules)
			set.rules = append(set.rules, rule)
		}
	}

	return set, nil
}

// Rules returns the rules in registration order.
func (s *RuleSet) Rules() []Rule {
	rules := make([]Rule, len(s.rules))
	for i, rule := range s.rules {
		rules[i] = rule.clone()
	}
	return rules
}

// Len returns the number of rules.
func (s *RuleSet) Len() int {
	return len(s.rules)
}

// Get returns the rule with the given ID.
func (s *RuleSet) Get(id string) (Rule, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Rule{}, false
	}
	return s.rules[i].clone(), true
}

// Categories returns the distinct category names in registration order.
func (s *RuleSet) Categories() []string {
	var names []string
	for _, rule := range s.rules {
		if !slices.Contains(names, rule.Category) {
			names = append(names, rule.Category)
		}
	}
	return names
}

// Filter returns a new RuleSet holding only the rules in the named categories.
func (s *RuleSet) Filter(categories ...string) *RuleSet {
	filtered := &RuleSet{byID: make(map[string]int)}
	for _, rule := range s.rules {
		if slices.Contains(categories, rule.Category) {
			filtered.byID[rule.ID] = len(filtered.rules)
			filtered.rules = append(filtered.rules, rule.clone())
		}
	}
	return filtered
}
