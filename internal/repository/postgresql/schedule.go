package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/timeutil"
)

type ruleRepositoryImpl struct {
	db *database.DB
}

func NewRuleRepository(db *database.DB) schedule.RuleRepository {
	return &ruleRepositoryImpl{db: db}
}

const (
	ruleScopeGlobal   = "global"
	ruleScopeSource   = "source"
	ruleScopeEmployee = "employee"
)

// GetRuleSet implements schedule.RuleRepository. Weekday values are stored
// as integers 0 (Sunday) through 6 (Saturday). A NULL column means the
// attribute is not set at that layer; an empty array is a deliberately
// empty weekly off pattern.
func (r *ruleRepositoryImpl) GetRuleSet(ctx context.Context, period timeutil.Period) (*schedule.RuleSet, error) {
	q := GetQuerier(ctx, r.db)

	ruleSet := &schedule.RuleSet{
		SourceDefaults:    make(map[string]schedule.RuleAttributes),
		EmployeeOverrides: make(map[string]schedule.RuleAttributes),
		RotationalOffDays: make(map[schedule.OffDay]struct{}),
	}

	query := `
		SELECT scope, scope_key, weekly_off_days, rotational_off,
		       expected_workdays_per_week, rotational_days_off_per_week
		FROM attendance_rules
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			scope         string
			scopeKey      string
			weeklyOffDays *[]int64
			attrs         schedule.RuleAttributes
		)
		if err := rows.Scan(&scope, &scopeKey, &weeklyOffDays,
			&attrs.RotationalOff, &attrs.ExpectedWorkdaysPerWeek,
			&attrs.RotationalDaysOffPerWeek); err != nil {
			return nil, err
		}

		if weeklyOffDays != nil {
			days := make([]time.Weekday, 0, len(*weeklyOffDays))
			for _, d := range *weeklyOffDays {
				days = append(days, time.Weekday(d))
			}
			attrs.WeeklyOffDays = &days
		}

		switch scope {
		case ruleScopeGlobal:
			global := attrs
			ruleSet.Global = &global
		case ruleScopeSource:
			ruleSet.SourceDefaults[scopeKey] = attrs
		case ruleScopeEmployee:
			ruleSet.EmployeeOverrides[scopeKey] = attrs
		default:
			return nil, fmt.Errorf("unknown attendance rule scope %q", scope)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	offQuery := `
		SELECT employee_id, day
		FROM rotational_off_days
		WHERE day >= $1 AND day <= $2
	`

	offRows, err := q.Query(ctx, offQuery, period.Start.Time(), period.End.Time())
	if err != nil {
		return nil, err
	}
	defer offRows.Close()

	for offRows.Next() {
		var (
			employeeID string
			day        time.Time
		)
		if err := offRows.Scan(&employeeID, &day); err != nil {
			return nil, err
		}
		ruleSet.RotationalOffDays[schedule.OffDay{
			EmployeeID: employeeID,
			Date:       timeutil.DateOf(day),
		}] = struct{}{}
	}

	return ruleSet, offRows.Err()
}
