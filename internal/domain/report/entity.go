package report

import (
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/timeutil"
)

// EmployeeSummary is the reconciliation outcome for one employee over one
// report period. Duration totals are kept in whole seconds and formatted on
// the way out.
type EmployeeSummary struct {
	EmployeeID   string
	EmployeeName string
	Source       string
	Period       timeutil.Period

	TotalPresentDays int
	// TotalAbsentDays counts every non-worked expected workday before any
	// excusal is applied. FinalAbsentDays keeps only the unexcused ones.
	TotalAbsentDays  int
	FinalAbsentDays  int
	ExcusedDays      int
	TotalPeriodOffs  int
	ExpectedWeekends int

	CountSinglePunchDays int
	CountHeavyPunchDays  int
	MeasuredShiftDays    int
	TotalShiftSeconds    int64
	AverageShiftSeconds  int64

	// FinalAbsentDates is chronological.
	FinalAbsentDates []timeutil.Date
	VacationDays     int

	// Pending off adjustment, applied after classification.
	TotalPendingOffs        int
	TotalAbsentAfterPending int
	PendingOffDates         []timeutil.Date
}

// AdjustedAbsenceRow is one non-worked expected workday with the excusal
// decision that was applied to it.
type AdjustedAbsenceRow struct {
	EmployeeID   string
	EmployeeName string
	Date         timeutil.Date
	Excused      bool
	Source       attendance.ExcusalSource
	Reason       string
}

// EmployeeFailure records why one employee was dropped from a run. The run
// itself always continues.
type EmployeeFailure struct {
	EmployeeID   string
	EmployeeName string
	Reason       string
}

// RunResult is the complete outcome of one reconciliation run.
type RunResult struct {
	RunID            string
	Period           timeutil.Period
	Source           string
	Summaries        []EmployeeSummary
	AdjustedAbsences []AdjustedAbsenceRow
	Failures         []EmployeeFailure
}
