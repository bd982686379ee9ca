package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/timeutil"
)

type overrideRepositoryImpl struct {
	db *database.DB
}

func NewOverrideRepository(db *database.DB) attendance.OverrideRepository {
	return &overrideRepositoryImpl{db: db}
}

var validOverrideClassifications = map[attendance.Classification]struct{}{
	attendance.ClassPresent:         {},
	attendance.ClassExcusedAbsent:   {},
	attendance.ClassUnexcusedAbsent: {},
	attendance.ClassOff:             {},
	attendance.ClassWeekend:         {},
}

// ListOverrides implements attendance.OverrideRepository.
func (r *overrideRepositoryImpl) ListOverrides(ctx context.Context, source string, from, to time.Time) ([]attendance.OverrideEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT o.employee_id, o.day, o.classification, o.reason
		FROM attendance_overrides o
		INNER JOIN employees e ON o.employee_id = e.id
		WHERE o.day >= $1 AND o.day < $2
		  AND ($3 = '' OR e.source = $3)
		ORDER BY o.employee_id, o.day
	`

	rows, err := q.Query(ctx, query, from, to, source)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []attendance.OverrideEntry
	for rows.Next() {
		var (
			entry          attendance.OverrideEntry
			day            time.Time
			classification string
		)
		if err := rows.Scan(&entry.EmployeeID, &day, &classification, &entry.Reason); err != nil {
			return nil, err
		}

		entry.Date = timeutil.DateOf(day)
		entry.Classification = attendance.Classification(classification)
		if _, ok := validOverrideClassifications[entry.Classification]; !ok {
			return nil, fmt.Errorf("%w: %q for employee %s on %s",
				attendance.ErrInvalidClassification, classification, entry.EmployeeID, entry.Date)
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
