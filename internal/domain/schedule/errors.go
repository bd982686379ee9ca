package schedule

import "errors"

var (
	ErrRuleSetNotFound = errors.New("rule set not found")
)
