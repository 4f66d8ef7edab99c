package game

import (
	"errors"
	"fmt"
)

// RuleError is a rejected request: wrong turn, illegal action, premature
// deal. It is an ordinary error for the caller to relay to the player; the
// engine guarantees no state was mutated when one is returned.
type RuleError struct {
	Message string
}

func (e *RuleError) Error() string {
	return e.Message
}

func ruleErrorf(format string, args ...any) error {
	return &RuleError{Message: fmt.Sprintf(format, args...)}
}

// IsRuleError reports whether err is a player-facing rule rejection rather
// than an engine failure.
func IsRuleError(err error) bool {
	var re *RuleError
	return errors.As(err, &re)
}
