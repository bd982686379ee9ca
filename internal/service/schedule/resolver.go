package schedule

import (
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/timeutil"
)

type ResolverImpl struct {
	rules *schedule.RuleSet
}

func NewResolver(rules *schedule.RuleSet) schedule.Resolver {
	return &ResolverImpl{rules: rules}
}

// Effective merges the rule layers for one employee, lowest precedence
// first: global default, then the source default, then the employee
// override. Each layer only overrides the attributes it sets.
func (r *ResolverImpl) Effective(emp employee.Employee) (schedule.EffectiveRules, error) {
	merged := schedule.RuleAttributes{}
	applied := false

	if r.rules.Global != nil {
		merged = overlay(merged, *r.rules.Global)
		applied = true
	}
	if attrs, ok := r.rules.SourceDefaults[emp.Source]; ok {
		merged = overlay(merged, attrs)
		applied = true
	}
	if attrs, ok := r.rules.EmployeeOverrides[emp.ID]; ok {
		merged = overlay(merged, attrs)
		applied = true
	}

	if !applied {
		return schedule.EffectiveRules{}, &report.ConfigurationError{
			EmployeeID: emp.ID,
			Reason:     "no attendance rules configured for employee, source or globally",
		}
	}

	return materialize(merged), nil
}

// ForDay resolves the merged rules plus the rotational-off calendar for one
// date. A date missing from the calendar is a working day.
func (r *ResolverImpl) ForDay(emp employee.Employee, date timeutil.Date) (schedule.DayRules, error) {
	rules, err := r.Effective(emp)
	if err != nil {
		return schedule.DayRules{}, err
	}

	day := schedule.DayRules{
		Weekend:       rules.IsWeeklyOff(date),
		WeeklyOffDays: rules.WeeklyOffDays,
	}
	if rules.RotationalOff {
		_, day.RotationalOff = r.rules.RotationalOffDays[schedule.OffDay{
			EmployeeID: emp.ID,
			Date:       date,
		}]
	}

	return day, nil
}

func overlay(base, layer schedule.RuleAttributes) schedule.RuleAttributes {
	if layer.WeeklyOffDays != nil {
		base.WeeklyOffDays = layer.WeeklyOffDays
	}
	if layer.RotationalOff != nil {
		base.RotationalOff = layer.RotationalOff
	}
	if layer.ExpectedWorkdaysPerWeek != nil {
		base.ExpectedWorkdaysPerWeek = layer.ExpectedWorkdaysPerWeek
	}
	if layer.RotationalDaysOffPerWeek != nil {
		base.RotationalDaysOffPerWeek = layer.RotationalDaysOffPerWeek
	}
	return base
}

// materialize turns a merged attribute layer into concrete rules. A source
// with no weekly off pattern and no explicit rotational flag is implicitly
// rotational with one day off per week.
func materialize(attrs schedule.RuleAttributes) schedule.EffectiveRules {
	rules := schedule.EffectiveRules{}

	if attrs.WeeklyOffDays != nil {
		rules.WeeklyOffDays = *attrs.WeeklyOffDays
	}

	switch {
	case attrs.RotationalOff != nil:
		rules.RotationalOff = *attrs.RotationalOff
	case len(rules.WeeklyOffDays) == 0:
		rules.RotationalOff = true
	}

	if attrs.RotationalDaysOffPerWeek != nil {
		rules.RotationalDaysOffPerWeek = *attrs.RotationalDaysOffPerWeek
	} else if rules.RotationalOff {
		rules.RotationalDaysOffPerWeek = 1
	}

	if attrs.ExpectedWorkdaysPerWeek != nil {
		rules.ExpectedWorkdaysPerWeek = *attrs.ExpectedWorkdaysPerWeek
	} else if rules.RotationalOff {
		rules.ExpectedWorkdaysPerWeek = 7 - int(rules.RotationalDaysOffPerWeek)
	} else {
		rules.ExpectedWorkdaysPerWeek = 7 - len(rules.WeeklyOffDays)
	}

	return rules
}
