package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/timeutil"
)

func weekdays(days ...time.Weekday) *[]time.Weekday {
	return &days
}

func boolPtr(b bool) *bool        { return &b }
func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

func mustDate(t *testing.T, s string) timeutil.Date {
	t.Helper()
	d, err := timeutil.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestResolverEffective(t *testing.T) {
	t.Parallel()

	emp := employee.Employee{ID: "E-1", Name: "Lina", Source: "warehouse"}

	t.Run("employee override beats source default", func(t *testing.T) {
		t.Parallel()

		// Arrange
		resolver := NewResolver(&schedule.RuleSet{
			Global: &schedule.RuleAttributes{
				WeeklyOffDays: weekdays(time.Saturday, time.Sunday),
			},
			SourceDefaults: map[string]schedule.RuleAttributes{
				"warehouse": {WeeklyOffDays: weekdays(time.Friday)},
			},
			EmployeeOverrides: map[string]schedule.RuleAttributes{
				"E-1": {WeeklyOffDays: weekdays(time.Sunday)},
			},
		})

		// Act
		rules, err := resolver.Effective(emp)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []time.Weekday{time.Sunday}, rules.WeeklyOffDays)
		assert.False(t, rules.RotationalOff)
		assert.Equal(t, 6, rules.ExpectedWorkdaysPerWeek)
	})

	t.Run("source default fills attributes the override leaves unset", func(t *testing.T) {
		t.Parallel()

		resolver := NewResolver(&schedule.RuleSet{
			SourceDefaults: map[string]schedule.RuleAttributes{
				"warehouse": {
					WeeklyOffDays:           weekdays(time.Saturday, time.Sunday),
					ExpectedWorkdaysPerWeek: intPtr(5),
				},
			},
			EmployeeOverrides: map[string]schedule.RuleAttributes{
				"E-1": {RotationalOff: boolPtr(false)},
			},
		})

		rules, err := resolver.Effective(emp)

		require.NoError(t, err)
		assert.Equal(t, []time.Weekday{time.Saturday, time.Sunday}, rules.WeeklyOffDays)
		assert.Equal(t, 5, rules.ExpectedWorkdaysPerWeek)
		assert.False(t, rules.RotationalOff)
	})

	t.Run("empty weekly off pattern is implicitly rotational", func(t *testing.T) {
		t.Parallel()

		resolver := NewResolver(&schedule.RuleSet{
			SourceDefaults: map[string]schedule.RuleAttributes{
				"warehouse": {},
			},
		})

		rules, err := resolver.Effective(emp)

		require.NoError(t, err)
		assert.True(t, rules.RotationalOff)
		assert.Equal(t, 1.0, rules.RotationalDaysOffPerWeek)
		assert.Equal(t, 6, rules.ExpectedWorkdaysPerWeek)
	})

	t.Run("explicit rotational rate is kept", func(t *testing.T) {
		t.Parallel()

		resolver := NewResolver(&schedule.RuleSet{
			SourceDefaults: map[string]schedule.RuleAttributes{
				"warehouse": {
					RotationalOff:            boolPtr(true),
					RotationalDaysOffPerWeek: floatPtr(2),
				},
			},
		})

		rules, err := resolver.Effective(emp)

		require.NoError(t, err)
		assert.True(t, rules.RotationalOff)
		assert.Equal(t, 2.0, rules.RotationalDaysOffPerWeek)
		assert.Equal(t, 5, rules.ExpectedWorkdaysPerWeek)
	})

	t.Run("unknown employee with no layers is a configuration error", func(t *testing.T) {
		t.Parallel()

		resolver := NewResolver(&schedule.RuleSet{
			SourceDefaults: map[string]schedule.RuleAttributes{
				"office": {WeeklyOffDays: weekdays(time.Sunday)},
			},
		})

		_, err := resolver.Effective(emp)

		require.Error(t, err)
		var confErr *report.ConfigurationError
		require.ErrorAs(t, err, &confErr)
		assert.Equal(t, "E-1", confErr.EmployeeID)
	})
}

func TestResolverForDay(t *testing.T) {
	t.Parallel()

	emp := employee.Employee{ID: "E-1", Name: "Lina", Source: "warehouse"}

	t.Run("weekend per pattern", func(t *testing.T) {
		t.Parallel()

		resolver := NewResolver(&schedule.RuleSet{
			SourceDefaults: map[string]schedule.RuleAttributes{
				"warehouse": {WeeklyOffDays: weekdays(time.Saturday, time.Sunday)},
			},
		})

		saturday := mustDate(t, "2025-03-01")
		monday := mustDate(t, "2025-03-03")

		day, err := resolver.ForDay(emp, saturday)
		require.NoError(t, err)
		assert.True(t, day.Weekend)
		assert.False(t, day.ExpectedWorkday())

		day, err = resolver.ForDay(emp, monday)
		require.NoError(t, err)
		assert.False(t, day.Weekend)
		assert.True(t, day.ExpectedWorkday())
	})

	t.Run("rotational calendar hit marks the day off", func(t *testing.T) {
		t.Parallel()

		offDate := mustDate(t, "2025-03-05")
		resolver := NewResolver(&schedule.RuleSet{
			SourceDefaults: map[string]schedule.RuleAttributes{
				"warehouse": {},
			},
			RotationalOffDays: map[schedule.OffDay]struct{}{
				{EmployeeID: "E-1", Date: offDate}: {},
			},
		})

		day, err := resolver.ForDay(emp, offDate)
		require.NoError(t, err)
		assert.True(t, day.RotationalOff)
		assert.False(t, day.ExpectedWorkday())
	})

	t.Run("missing calendar entry fails open to a working day", func(t *testing.T) {
		t.Parallel()

		resolver := NewResolver(&schedule.RuleSet{
			SourceDefaults: map[string]schedule.RuleAttributes{
				"warehouse": {},
			},
		})

		day, err := resolver.ForDay(emp, mustDate(t, "2025-03-05"))
		require.NoError(t, err)
		assert.False(t, day.RotationalOff)
		assert.True(t, day.ExpectedWorkday())
	})

	t.Run("rotational calendar of another employee is ignored", func(t *testing.T) {
		t.Parallel()

		offDate := mustDate(t, "2025-03-05")
		resolver := NewResolver(&schedule.RuleSet{
			SourceDefaults: map[string]schedule.RuleAttributes{
				"warehouse": {},
			},
			RotationalOffDays: map[schedule.OffDay]struct{}{
				{EmployeeID: "E-2", Date: offDate}: {},
			},
		})

		day, err := resolver.ForDay(emp, offDate)
		require.NoError(t, err)
		assert.False(t, day.RotationalOff)
	})
}
