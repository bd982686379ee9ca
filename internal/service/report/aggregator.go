package report

import (
	"fmt"
	"sort"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/timeutil"
)

type AggregatorImpl struct{}

func NewAggregator() report.Aggregator {
	return &AggregatorImpl{}
}

// Fold accumulates one employee's day records. Accumulation is commutative;
// only the absent date list is ordered, chronologically, at the end.
// Durations stay in whole seconds until formatting.
func (a *AggregatorImpl) Fold(emp employee.Employee, days []attendance.DayRecord, period timeutil.Period) (*report.EmployeeSummary, error) {
	expected := period.Days()
	if len(days) != expected {
		return nil, &report.CoverageError{
			EmployeeID: emp.ID,
			Expected:   expected,
			Got:        len(days),
			Reason:     "day records do not span the period",
		}
	}

	seen := make(map[timeutil.Date]struct{}, expected)
	summary := &report.EmployeeSummary{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Source:       emp.Source,
		Period:       period,
	}

	for _, day := range days {
		if !period.Contains(day.Date) {
			return nil, &report.CoverageError{
				EmployeeID: emp.ID,
				Expected:   expected,
				Got:        len(days),
				Reason:     fmt.Sprintf("day record %s is outside the period", day.Date),
			}
		}
		if _, dup := seen[day.Date]; dup {
			return nil, &report.CoverageError{
				EmployeeID: emp.ID,
				Expected:   expected,
				Got:        len(days),
				Reason:     fmt.Sprintf("date %s classified more than once", day.Date),
			}
		}
		seen[day.Date] = struct{}{}

		if day.OnVacation {
			summary.VacationDays++
		}

		switch day.Classification {
		case attendance.ClassPresent:
			summary.TotalPresentDays++
			summary.TotalShiftSeconds += day.ShiftSeconds
			if day.ShiftSeconds > 0 {
				summary.MeasuredShiftDays++
			}
			if day.SinglePunch {
				summary.CountSinglePunchDays++
			}
			if day.PunchCount > 4 {
				summary.CountHeavyPunchDays++
			}
		case attendance.ClassUnexcusedAbsent:
			summary.TotalAbsentDays++
			summary.FinalAbsentDays++
			summary.FinalAbsentDates = append(summary.FinalAbsentDates, day.Date)
		case attendance.ClassExcusedAbsent:
			summary.TotalAbsentDays++
			summary.ExcusedDays++
		case attendance.ClassOff:
			summary.TotalPeriodOffs++
		case attendance.ClassWeekend:
			summary.ExpectedWeekends++
		default:
			return nil, &report.CoverageError{
				EmployeeID: emp.ID,
				Expected:   expected,
				Got:        len(days),
				Reason:     fmt.Sprintf("date %s has unknown classification %q", day.Date, day.Classification),
			}
		}
	}

	if summary.MeasuredShiftDays > 0 {
		summary.AverageShiftSeconds = summary.TotalShiftSeconds / int64(summary.MeasuredShiftDays)
	}

	sort.Slice(summary.FinalAbsentDates, func(i, j int) bool {
		return summary.FinalAbsentDates[i].Before(summary.FinalAbsentDates[j])
	})

	summary.TotalAbsentAfterPending = summary.FinalAbsentDays

	return summary, nil
}

// ApplyPendingOffs spends earned off credits against the newest final
// absences. The spent dates are kept chronological for the report.
func (a *AggregatorImpl) ApplyPendingOffs(summary *report.EmployeeSummary, balance int) {
	summary.TotalPendingOffs = balance
	if balance <= 0 || len(summary.FinalAbsentDates) == 0 {
		summary.TotalAbsentAfterPending = summary.FinalAbsentDays
		return
	}

	spend := balance
	if spend > len(summary.FinalAbsentDates) {
		spend = len(summary.FinalAbsentDates)
	}

	cut := len(summary.FinalAbsentDates) - spend
	summary.PendingOffDates = append([]timeutil.Date(nil), summary.FinalAbsentDates[cut:]...)
	summary.TotalAbsentAfterPending = summary.FinalAbsentDays - spend
}
