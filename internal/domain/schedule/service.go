package schedule

import (
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/timeutil"
)

// Resolver answers rule questions for one reconciliation run. Implementations
// hold a fully materialized RuleSet and do no I/O.
type Resolver interface {
	// Effective merges the rule layers for one employee. Precedence per
	// attribute: employee override, then source default, then global default.
	Effective(emp employee.Employee) (EffectiveRules, error)
	// ForDay resolves the rules plus the rotational-off calendar lookup for
	// one employee on one date.
	ForDay(emp employee.Employee, date timeutil.Date) (DayRules, error)
}
