package inclusive

import "errors"

var (
	// ErrInvalidRule indicates that a rule failed validation.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrEmptyRuleID indicates that a rule has no identifier.
	ErrEmptyRuleID = errors.New("rule ID cannot be empty")

	// ErrNoPhrases indicates that a rule lists no non-inclusive phrases.
	ErrNoPhrases = errors.New("rule must have at least one phrase")

	// ErrDuplicateRule indicates that two rules share an identifier.
	ErrDuplicateRule = errors.New("duplicate rule ID")

	// ErrInvalidRuleFile indicates that a rule file could not be parsed.
	ErrInvalidRuleFile = errors.New("invalid rule file")
)
