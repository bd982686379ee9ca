package schedule

import (
	"time"

	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/timeutil"
)

// RuleAttributes is one layer of attendance rules. Nil fields are "not set
// at this layer" and fall through to the next layer down.
type RuleAttributes struct {
	WeeklyOffDays            *[]time.Weekday
	RotationalOff            *bool
	ExpectedWorkdaysPerWeek  *int
	RotationalDaysOffPerWeek *float64
}

// RuleSet holds every configured rule layer plus the rotational-off calendar
// for one reconciliation run.
type RuleSet struct {
	Global            *RuleAttributes
	SourceDefaults    map[string]RuleAttributes
	EmployeeOverrides map[string]RuleAttributes
	RotationalOffDays map[OffDay]struct{}
}

// OffDay is one granted rotational day off for one employee.
type OffDay struct {
	EmployeeID string
	Date       timeutil.Date
}

// EffectiveRules is the fully merged rule set for one employee, with every
// attribute resolved to a concrete value.
type EffectiveRules struct {
	WeeklyOffDays            []time.Weekday
	RotationalOff            bool
	ExpectedWorkdaysPerWeek  int
	RotationalDaysOffPerWeek float64
}

// IsWeeklyOff reports whether d falls on the employee's weekly off pattern.
func (r EffectiveRules) IsWeeklyOff(d timeutil.Date) bool {
	wd := d.Weekday()
	for _, off := range r.WeeklyOffDays {
		if off == wd {
			return true
		}
	}
	return false
}

// DayRules is the rule outcome for one employee on one specific date.
type DayRules struct {
	Weekend       bool
	RotationalOff bool
	WeeklyOffDays []time.Weekday
}

// ExpectedWorkday reports whether the employee is expected to work on this day.
func (d DayRules) ExpectedWorkday() bool {
	return !d.Weekend && !d.RotationalOff
}
