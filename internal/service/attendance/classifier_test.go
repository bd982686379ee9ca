package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/timeutil"
	scheduleservice "github.com/cmlabs-hris/attendance-recon-go/internal/service/schedule"
)

func mustDate(t *testing.T, s string) timeutil.Date {
	t.Helper()
	d, err := timeutil.ParseDate(s)
	require.NoError(t, err)
	return d
}

func weekendResolver(offDays map[schedule.OffDay]struct{}) schedule.Resolver {
	weekend := []time.Weekday{time.Saturday, time.Sunday}
	return scheduleservice.NewResolver(&schedule.RuleSet{
		SourceDefaults: map[string]schedule.RuleAttributes{
			"store": {WeeklyOffDays: &weekend},
		},
		RotationalOffDays: offDays,
	})
}

func rotationalResolver(offDays map[schedule.OffDay]struct{}) schedule.Resolver {
	return scheduleservice.NewResolver(&schedule.RuleSet{
		SourceDefaults: map[string]schedule.RuleAttributes{
			"store": {},
		},
		RotationalOffDays: offDays,
	})
}

func punchesOn(t *testing.T, date string, clock ...string) *attendance.PunchRecord {
	t.Helper()
	d := mustDate(t, date)
	times := make([]time.Time, 0, len(clock))
	for _, c := range clock {
		parsed, err := time.Parse("15:04", c)
		require.NoError(t, err)
		times = append(times, d.Time().Add(
			time.Duration(parsed.Hour())*time.Hour+time.Duration(parsed.Minute())*time.Minute))
	}
	var shift int64
	if len(times) >= 2 {
		shift = int64(times[len(times)-1].Sub(times[0]).Seconds())
	}
	return &attendance.PunchRecord{
		EmployeeID:    "E-1",
		Date:          d,
		Punches:       times,
		RawPunchCount: len(times),
		ShiftSeconds:  shift,
	}
}

func TestClassifierDecisionOrder(t *testing.T) {
	t.Parallel()

	emp := employee.Employee{ID: "E-1", Name: "Omar", Source: "store"}
	monday := "2025-03-03"
	saturday := "2025-03-01"

	t.Run("present workday with two punches", func(t *testing.T) {
		t.Parallel()

		classifier := NewClassifier(weekendResolver(nil))

		rec, err := classifier.Classify(emp, mustDate(t, monday), attendance.ClassifyInput{
			Punch:    punchesOn(t, monday, "09:00", "17:30"),
			Excusals: leave.ExcusalSet{},
		})

		require.NoError(t, err)
		assert.Equal(t, attendance.ClassPresent, rec.Classification)
		assert.Equal(t, int64(8*3600+30*60), rec.ShiftSeconds)
		assert.False(t, rec.SinglePunch)
	})

	t.Run("weekend wins over punches", func(t *testing.T) {
		t.Parallel()

		classifier := NewClassifier(weekendResolver(nil))

		rec, err := classifier.Classify(emp, mustDate(t, saturday), attendance.ClassifyInput{
			Punch:    punchesOn(t, saturday, "09:00", "17:00"),
			Excusals: leave.ExcusalSet{},
		})

		require.NoError(t, err)
		assert.Equal(t, attendance.ClassWeekend, rec.Classification)
	})

	t.Run("override wins over rotational off", func(t *testing.T) {
		t.Parallel()

		offDate := mustDate(t, monday)
		classifier := NewClassifier(rotationalResolver(map[schedule.OffDay]struct{}{
			{EmployeeID: "E-1", Date: offDate}: {},
		}))

		rec, err := classifier.Classify(emp, offDate, attendance.ClassifyInput{
			Excusals: leave.ExcusalSet{},
			Overrides: map[attendance.DayKey]attendance.OverrideEntry{
				{EmployeeID: "E-1", Date: offDate}: {
					EmployeeID:     "E-1",
					Date:           offDate,
					Classification: attendance.ClassPresent,
					Reason:         "worked the granted day off",
				},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, attendance.ClassPresent, rec.Classification)
		assert.Equal(t, attendance.ExcusalOverride, rec.ExcusalSource)
		assert.Equal(t, "worked the granted day off", rec.Note)
	})

	t.Run("rotational off wins over vacation, flag survives", func(t *testing.T) {
		t.Parallel()

		offDate := mustDate(t, monday)
		classifier := NewClassifier(rotationalResolver(map[schedule.OffDay]struct{}{
			{EmployeeID: "E-1", Date: offDate}: {},
		}))
		excusals := leave.ExcusalSet{}
		excusals.Add("E-1", offDate)

		rec, err := classifier.Classify(emp, offDate, attendance.ClassifyInput{
			Excusals: excusals,
		})

		require.NoError(t, err)
		assert.Equal(t, attendance.ClassOff, rec.Classification)
		assert.True(t, rec.OnVacation)
	})

	t.Run("vacation on a workday is an excused absence", func(t *testing.T) {
		t.Parallel()

		classifier := NewClassifier(weekendResolver(nil))
		excusals := leave.ExcusalSet{}
		excusals.Add("E-1", mustDate(t, monday))

		rec, err := classifier.Classify(emp, mustDate(t, monday), attendance.ClassifyInput{
			Excusals: excusals,
		})

		require.NoError(t, err)
		assert.Equal(t, attendance.ClassExcusedAbsent, rec.Classification)
		assert.Equal(t, attendance.ExcusalVacation, rec.ExcusalSource)
		assert.True(t, rec.OnVacation)
	})

	t.Run("workday without punches is an unexcused absence", func(t *testing.T) {
		t.Parallel()

		classifier := NewClassifier(weekendResolver(nil))

		rec, err := classifier.Classify(emp, mustDate(t, monday), attendance.ClassifyInput{
			Excusals: leave.ExcusalSet{},
		})

		require.NoError(t, err)
		assert.Equal(t, attendance.ClassUnexcusedAbsent, rec.Classification)
	})

	t.Run("single punch day is present with zero duration", func(t *testing.T) {
		t.Parallel()

		classifier := NewClassifier(weekendResolver(nil))

		rec, err := classifier.Classify(emp, mustDate(t, monday), attendance.ClassifyInput{
			Punch:    punchesOn(t, monday, "09:00"),
			Excusals: leave.ExcusalSet{},
		})

		require.NoError(t, err)
		assert.Equal(t, attendance.ClassPresent, rec.Classification)
		assert.True(t, rec.SinglePunch)
		assert.Zero(t, rec.ShiftSeconds)
	})

	t.Run("unknown configuration propagates as configuration error", func(t *testing.T) {
		t.Parallel()

		classifier := NewClassifier(scheduleservice.NewResolver(&schedule.RuleSet{}))

		_, err := classifier.Classify(emp, mustDate(t, monday), attendance.ClassifyInput{
			Excusals: leave.ExcusalSet{},
		})

		require.Error(t, err)
		var confErr *report.ConfigurationError
		assert.ErrorAs(t, err, &confErr)
	})
}

func TestClassifierTotality(t *testing.T) {
	t.Parallel()

	// Every day of a week gets exactly one classification, whatever mix of
	// punches and excusals applies.
	emp := employee.Employee{ID: "E-1", Name: "Omar", Source: "store"}
	classifier := NewClassifier(weekendResolver(nil))

	period, err := timeutil.NewPeriod(mustDate(t, "2025-03-03"), mustDate(t, "2025-03-09"))
	require.NoError(t, err)

	excusals := leave.ExcusalSet{}
	excusals.Add("E-1", mustDate(t, "2025-03-05"))

	for _, date := range period.Dates() {
		var punch *attendance.PunchRecord
		if date.Weekday() == time.Monday || date.Weekday() == time.Tuesday {
			punch = punchesOn(t, date.String(), "08:00", "16:00")
		}

		rec, err := classifier.Classify(emp, date, attendance.ClassifyInput{
			Punch:    punch,
			Excusals: excusals,
		})

		require.NoError(t, err)
		assert.Contains(t, []attendance.Classification{
			attendance.ClassPresent,
			attendance.ClassExcusedAbsent,
			attendance.ClassUnexcusedAbsent,
			attendance.ClassOff,
			attendance.ClassWeekend,
		}, rec.Classification)
	}
}
