package inclusive

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/poiesic/prosecheck/core"
	"gopkg.in/yaml.v3"
)

// ruleFile is the YAML layout read by LoadRules:
//
//	categories:
//	  - name: disability
//	    learnMoreUrl: /docs/inclusive-language#disability
//	    rules:
//	      - id: normalPerson
//	        phrases: [normal person]
//	        alternatives: [typical person]
//	        score: potentially-non-inclusive
//	        notPrecededBy: [mentally]
type ruleFile struct {
	Categories []categoryEntry `yaml:"categories"`
}

type categoryEntry struct {
	Name         string      `yaml:"name"`
	LearnMoreURL string      `yaml:"learnMoreUrl"`
	Rules        []ruleEntry `yaml:"rules"`
}

type ruleEntry struct {
	ID             string   `yaml:"id"`
	Phrases        []string `yaml:"phrases"`
	Alternatives   []string `yaml:"alternatives"`
	Score          string   `yaml:"score"`
	FeedbackFormat string   `yaml:"feedbackFormat"`
	CaseSensitive  bool     `yaml:"caseSensitive"`
	LearnMoreURL   string   `yaml:"learnMoreUrl"`
	NotPrecededBy  []string `yaml:"notPrecededBy"`
	NotFollowedBy  []string `yaml:"notFollowedBy"`
}

// LoadRules reads a YAML rule table and registers it.
func LoadRules(r io.Reader) (*RuleSet, error) {
	var file ruleFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return Register()
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidRuleFile, err)
	}

	categories := make([]Category, 0, len(file.Categories))
	for _, entry := range file.Categories {
		category := Category{
			Name:         entry.Name,
			LearnMoreURL: entry.LearnMoreURL,
			Rules:        make([]Rule, 0, len(entry.Rules)),
		}
		for _, re := range entry.Rules {
			rule, err := re.toRule()
			if err != nil {
				return nil, err
			}
			category.Rules = append(category.Rules, rule)
		}
		categories = append(categories, category)
	}

	return Register(categories...)
}

// LoadRulesFile reads a YAML rule table from path.
func LoadRulesFile(path string) (*RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadRules(f)
}

func (re ruleEntry) toRule() (Rule, error) {
	score, err := ParseScore(re.Score)
	if err != nil {
		return Rule{}, fmt.Errorf("%w: rule %q: %w", ErrInvalidRuleFile, re.ID, err)
	}

	rule := Rule{
		ID:                    re.ID,
		NonInclusivePhrases:   re.Phrases,
		InclusiveAlternatives: re.Alternatives,
		Score:                 score,
		FeedbackFormat:        re.FeedbackFormat,
		CaseSensitive:         re.CaseSensitive,
		LearnMoreURL:          re.LearnMoreURL,
	}

	var exceptions []Exception
	if len(re.NotPrecededBy) > 0 {
		exceptions = append(exceptions, NotPrecededBy(re.NotPrecededBy...))
	}
	if len(re.NotFollowedBy) > 0 {
		exceptions = append(exceptions, NotFollowedBy(re.NotFollowedBy...))
	}
	switch len(exceptions) {
	case 0:
	case 1:
		rule.Exception = exceptions[0]
	default:
		rule.Exception = Chain(exceptions...)
	}
	return rule, nil
}

// ParseScore accepts a score's name ("non-inclusive") or its number ("3").
func ParseScore(s string) (core.Score, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case core.ScoreNonInclusive.String(), "3":
		return core.ScoreNonInclusive, nil
	case core.ScorePotentiallyNonInclusive.String(), "6":
		return core.ScorePotentiallyNonInclusive, nil
	default:
		return 0, fmt.Errorf("%w: %q", core.ErrInvalidScore, s)
	}
}
