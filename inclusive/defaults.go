package inclusive

import (
	"sync"

	"github.com/poiesic/prosecheck/core"
)

const learnMoreBase = "/docs/inclusive-language"

var defaultRules = sync.OnceValue(func() *RuleSet {
	set, err := Register(defaultCategories()...)
	if err != nil {
		panic("inclusive: invalid built-in rules: " + err.Error())
	}
	return set
})

// DefaultRules returns the built-in rule table.
func DefaultRules() *RuleSet {
	return defaultRules()
}

func defaultCategories() []Category {
	return []Category{
		{
			Name:         "disability",
			LearnMoreURL: learnMoreBase + "#disability",
			Rules: []Rule{
				{
					ID:                    "normalPerson",
					NonInclusivePhrases:   []string{"normal person"},
					InclusiveAlternatives: []string{"<i>typical person</i>"},
					Score:                 core.ScorePotentiallyNonInclusive,
					Exception:             NotPrecededBy("mentally"),
				},
				{
					ID:                    "normalPeople",
					NonInclusivePhrases:   []string{"normal people"},
					InclusiveAlternatives: []string{"<i>typical people</i>"},
					Score:                 core.ScorePotentiallyNonInclusive,
					Exception:             NotPrecededBy("mentally"),
				},
				{
					ID:                    "mentallyNormal",
					NonInclusivePhrases:   []string{"mentally normal"},
					InclusiveAlternatives: []string{"<i>mentally healthy</i>", "<i>without a mental illness</i>"},
					Score:                 core.ScoreNonInclusive,
				},
				{
					ID:                    "handicapped",
					NonInclusivePhrases:   []string{"handicapped"},
					InclusiveAlternatives: []string{"<i>disabled</i>", "<i>person with a disability</i>"},
					Score:                 core.ScoreNonInclusive,
				},
				{
					ID:                    "wheelchairBound",
					NonInclusivePhrases:   []string{"wheelchair-bound", "wheelchair bound", "confined to a wheelchair"},
					InclusiveAlternatives: []string{"<i>uses a wheelchair</i>", "<i>is a wheelchair user</i>"},
					Score:                 core.ScoreNonInclusive,
				},
				{
					ID:                    "crippled",
					NonInclusivePhrases:   []string{"crippled"},
					InclusiveAlternatives: []string{"<i>has a physical disability</i>", "<i>is physically disabled</i>"},
					Score:                 core.ScoreNonInclusive,
				},
				{
					ID:                    "deafMute",
					NonInclusivePhrases:   []string{"deaf-mute", "deaf and dumb"},
					InclusiveAlternatives: []string{"<i>deaf</i>"},
					Score:                 core.ScoreNonInclusive,
				},
			},
		},
		{
			Name:         "age",
			LearnMoreURL: learnMoreBase + "#age",
			Rules: []Rule{
				{
					ID:                    "seniorCitizens",
					NonInclusivePhrases:   []string{"senior citizen", "senior citizens"},
					InclusiveAlternatives: []string{"<i>older person</i>", "<i>older people</i>"},
					Score:                 core.ScorePotentiallyNonInclusive,
				},
				{
					ID:                    "theElderly",
					NonInclusivePhrases:   []string{"the elderly"},
					InclusiveAlternatives: []string{"<i>older people</i>"},
					Score:                 core.ScorePotentiallyNonInclusive,
				},
			},
		},
		{
			Name:         "gender",
			LearnMoreURL: learnMoreBase + "#gender",
			Rules: []Rule{
				{
					ID:                    "mankind",
					NonInclusivePhrases:   []string{"mankind"},
					InclusiveAlternatives: []string{"<i>humanity</i>", "<i>humankind</i>", "<i>people</i>"},
					Score:                 core.ScorePotentiallyNonInclusive,
				},
				{
					ID:                    "manMade",
					NonInclusivePhrases:   []string{"man-made", "manmade"},
					InclusiveAlternatives: []string{"<i>artificial</i>", "<i>synthetic</i>", "<i>machine-made</i>"},
					Score:                 core.ScorePotentiallyNonInclusive,
				},
				{
					ID:                    "firemen",
					NonInclusivePhrases:   []string{"fireman", "firemen"},
					InclusiveAlternatives: []string{"<i>firefighter</i>", "<i>firefighters</i>"},
					Score:                 core.ScorePotentiallyNonInclusive,
				},
				{
					ID:                    "chairman",
					NonInclusivePhrases:   []string{"chairman"},
					InclusiveAlternatives: []string{"<i>chair</i>", "<i>chairperson</i>"},
					Score:                 core.ScorePotentiallyNonInclusive,
				},
				{
					ID:                    "policeman",
					NonInclusivePhrases:   []string{"policeman", "policemen"},
					InclusiveAlternatives: []string{"<i>police officer</i>", "<i>police officers</i>"},
					Score:                 core.ScorePotentiallyNonInclusive,
				},
				{
					ID:                    "oppositeSex",
					NonInclusivePhrases:   []string{"opposite sex"},
					InclusiveAlternatives: []string{"<i>another sex</i>", "<i>other sexes</i>"},
					Score:                 core.ScoreNonInclusive,
				},
			},
		},
		{
			Name:         "other",
			LearnMoreURL: learnMoreBase + "#other",
			Rules: []Rule{
				{
					ID:                    "blacklist",
					NonInclusivePhrases:   []string{"blacklist", "blacklisted", "blacklisting"},
					InclusiveAlternatives: []string{"<i>blocklist</i>", "<i>denylist</i>"},
					Score:                 core.ScorePotentiallyNonInclusive,
				},
				{
					ID:                    "whitelist",
					NonInclusivePhrases:   []string{"whitelist", "whitelisted", "whitelisting"},
					InclusiveAlternatives: []string{"<i>allowlist</i>"},
					Score:                 core.ScorePotentiallyNonInclusive,
				},
				{
					ID:                    "thirdWorld",
					NonInclusivePhrases:   []string{"third world", "third-world"},
					InclusiveAlternatives: []string{"<i>low-income countries</i>", "<i>developing countries</i>"},
					Score:                 core.ScoreNonInclusive,
				},
				{
					ID:                    "illegalImmigrant",
					NonInclusivePhrases:   []string{"illegal immigrant", "illegal immigrants", "illegal alien", "illegal aliens"},
					InclusiveAlternatives: []string{"<i>undocumented immigrant</i>", "<i>undocumented people</i>"},
					Score:                 core.ScoreNonInclusive,
				},
				{
					ID:                    "spiritAnimal",
					NonInclusivePhrases:   []string{"spirit animal", "spirit animals"},
					InclusiveAlternatives: []string{"<i>favorite</i>", "<i>kindred spirit</i>"},
					Score:                 core.ScoreNonInclusive,
				},
			},
		},
	}
}
