package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/timeutil"
)

func mustDate(t *testing.T, s string) timeutil.Date {
	t.Helper()
	d, err := timeutil.ParseDate(s)
	require.NoError(t, err)
	return d
}

func mustPeriod(t *testing.T, start, end string) timeutil.Period {
	t.Helper()
	p, err := timeutil.NewPeriod(mustDate(t, start), mustDate(t, end))
	require.NoError(t, err)
	return p
}

func day(employeeID string, date timeutil.Date, class attendance.Classification) attendance.DayRecord {
	return attendance.DayRecord{EmployeeID: employeeID, Date: date, Classification: class}
}

func presentDay(employeeID string, date timeutil.Date, shiftSeconds int64, punchCount int) attendance.DayRecord {
	return attendance.DayRecord{
		EmployeeID:     employeeID,
		Date:           date,
		Classification: attendance.ClassPresent,
		ShiftSeconds:   shiftSeconds,
		PunchCount:     punchCount,
		SinglePunch:    punchCount == 1,
	}
}

func TestAggregatorFold(t *testing.T) {
	t.Parallel()

	emp := employee.Employee{ID: "E-1", Name: "Dana", Source: "store"}
	aggregator := NewAggregator()

	t.Run("full week with weekend pattern", func(t *testing.T) {
		t.Parallel()

		// Monday through Friday worked, Saturday and Sunday weekend.
		period := mustPeriod(t, "2025-03-03", "2025-03-09")
		var days []attendance.DayRecord
		for i := 0; i < 5; i++ {
			days = append(days, presentDay("E-1", period.Start.AddDays(i), 8*3600, 2))
		}
		days = append(days,
			day("E-1", mustDate(t, "2025-03-08"), attendance.ClassWeekend),
			day("E-1", mustDate(t, "2025-03-09"), attendance.ClassWeekend),
		)

		summary, err := aggregator.Fold(emp, days, period)

		require.NoError(t, err)
		assert.Equal(t, 5, summary.TotalPresentDays)
		assert.Equal(t, 2, summary.ExpectedWeekends)
		assert.Equal(t, 0, summary.FinalAbsentDays)
		assert.Equal(t, int64(40*3600), summary.TotalShiftSeconds)
		assert.Equal(t, "40:00:00", timeutil.FormatHMS(summary.TotalShiftSeconds))

		// Coverage identity over the classified buckets.
		total := summary.TotalPresentDays + summary.FinalAbsentDays + summary.ExcusedDays +
			summary.TotalPeriodOffs + summary.ExpectedWeekends
		assert.Equal(t, period.Days(), total)
	})

	t.Run("absent dates stay chronological regardless of input order", func(t *testing.T) {
		t.Parallel()

		period := mustPeriod(t, "2025-03-03", "2025-03-05")
		days := []attendance.DayRecord{
			day("E-1", mustDate(t, "2025-03-05"), attendance.ClassUnexcusedAbsent),
			day("E-1", mustDate(t, "2025-03-03"), attendance.ClassUnexcusedAbsent),
			presentDay("E-1", mustDate(t, "2025-03-04"), 7*3600, 2),
		}

		summary, err := aggregator.Fold(emp, days, period)

		require.NoError(t, err)
		require.Len(t, summary.FinalAbsentDates, 2)
		assert.Equal(t, mustDate(t, "2025-03-03"), summary.FinalAbsentDates[0])
		assert.Equal(t, mustDate(t, "2025-03-05"), summary.FinalAbsentDates[1])
	})

	t.Run("excused absences count toward total but not final", func(t *testing.T) {
		t.Parallel()

		period := mustPeriod(t, "2025-03-03", "2025-03-05")
		days := []attendance.DayRecord{
			day("E-1", mustDate(t, "2025-03-03"), attendance.ClassUnexcusedAbsent),
			attendance.DayRecord{
				EmployeeID:     "E-1",
				Date:           mustDate(t, "2025-03-04"),
				Classification: attendance.ClassExcusedAbsent,
				ExcusalSource:  attendance.ExcusalVacation,
				OnVacation:     true,
			},
			presentDay("E-1", mustDate(t, "2025-03-05"), 7*3600, 2),
		}

		summary, err := aggregator.Fold(emp, days, period)

		require.NoError(t, err)
		assert.Equal(t, 2, summary.TotalAbsentDays)
		assert.Equal(t, 1, summary.FinalAbsentDays)
		assert.Equal(t, 1, summary.ExcusedDays)
		assert.Equal(t, 1, summary.VacationDays)
	})

	t.Run("single punch and heavy punch days counted", func(t *testing.T) {
		t.Parallel()

		period := mustPeriod(t, "2025-03-03", "2025-03-05")
		days := []attendance.DayRecord{
			presentDay("E-1", mustDate(t, "2025-03-03"), 0, 1),
			presentDay("E-1", mustDate(t, "2025-03-04"), 9*3600, 6),
			presentDay("E-1", mustDate(t, "2025-03-05"), 7*3600, 2),
		}

		summary, err := aggregator.Fold(emp, days, period)

		require.NoError(t, err)
		assert.Equal(t, 1, summary.CountSinglePunchDays)
		assert.Equal(t, 1, summary.CountHeavyPunchDays)
		assert.Equal(t, 2, summary.MeasuredShiftDays)
		assert.Equal(t, int64(8*3600), summary.AverageShiftSeconds)
	})

	t.Run("missing day fails with coverage error", func(t *testing.T) {
		t.Parallel()

		period := mustPeriod(t, "2025-03-03", "2025-03-05")
		days := []attendance.DayRecord{
			presentDay("E-1", mustDate(t, "2025-03-03"), 8*3600, 2),
			presentDay("E-1", mustDate(t, "2025-03-04"), 8*3600, 2),
		}

		_, err := aggregator.Fold(emp, days, period)

		var covErr *report.CoverageError
		require.ErrorAs(t, err, &covErr)
		assert.Equal(t, 3, covErr.Expected)
		assert.Equal(t, 2, covErr.Got)
	})

	t.Run("duplicate day fails with coverage error", func(t *testing.T) {
		t.Parallel()

		period := mustPeriod(t, "2025-03-03", "2025-03-05")
		days := []attendance.DayRecord{
			presentDay("E-1", mustDate(t, "2025-03-03"), 8*3600, 2),
			presentDay("E-1", mustDate(t, "2025-03-03"), 8*3600, 2),
			presentDay("E-1", mustDate(t, "2025-03-04"), 8*3600, 2),
		}

		_, err := aggregator.Fold(emp, days, period)

		var covErr *report.CoverageError
		require.ErrorAs(t, err, &covErr)
	})
}

func TestAggregatorApplyPendingOffs(t *testing.T) {
	t.Parallel()

	aggregator := NewAggregator()

	base := func(t *testing.T) *report.EmployeeSummary {
		t.Helper()
		return &report.EmployeeSummary{
			EmployeeID:      "E-1",
			FinalAbsentDays: 3,
			FinalAbsentDates: []timeutil.Date{
				mustDate(t, "2025-03-04"),
				mustDate(t, "2025-03-10"),
				mustDate(t, "2025-03-21"),
			},
			TotalAbsentAfterPending: 3,
		}
	}

	t.Run("credits spend against the newest absences first", func(t *testing.T) {
		t.Parallel()

		summary := base(t)

		aggregator.ApplyPendingOffs(summary, 2)

		assert.Equal(t, 2, summary.TotalPendingOffs)
		assert.Equal(t, 1, summary.TotalAbsentAfterPending)
		require.Len(t, summary.PendingOffDates, 2)
		assert.Equal(t, mustDate(t, "2025-03-10"), summary.PendingOffDates[0])
		assert.Equal(t, mustDate(t, "2025-03-21"), summary.PendingOffDates[1])
	})

	t.Run("credits beyond the absences leave zero, not negative", func(t *testing.T) {
		t.Parallel()

		summary := base(t)

		aggregator.ApplyPendingOffs(summary, 10)

		assert.Equal(t, 0, summary.TotalAbsentAfterPending)
		assert.Len(t, summary.PendingOffDates, 3)
	})

	t.Run("zero balance changes nothing", func(t *testing.T) {
		t.Parallel()

		summary := base(t)

		aggregator.ApplyPendingOffs(summary, 0)

		assert.Equal(t, 3, summary.TotalAbsentAfterPending)
		assert.Empty(t, summary.PendingOffDates)
	})
}
