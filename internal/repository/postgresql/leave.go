package postgresql

import (
	"context"
	"time"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/timeutil"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

// ListGrants implements leave.LeaveRepository. Grants of every status are
// returned; the adjuster decides which ones count.
func (r *leaveRepositoryImpl) ListGrants(ctx context.Context, source string, period timeutil.Period) ([]leave.VacationGrant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT g.id, g.employee_id, g.kind, g.start_date, g.end_date, g.status
		FROM leave_grants g
		INNER JOIN employees e ON g.employee_id = e.id
		WHERE g.start_date <= $2 AND g.end_date >= $1
		  AND ($3 = '' OR e.source = $3)
		ORDER BY g.employee_id, g.start_date
	`

	rows, err := q.Query(ctx, query, period.Start.Time(), period.End.Time(), source)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grants []leave.VacationGrant
	for rows.Next() {
		var (
			grant      leave.VacationGrant
			kind       string
			status     string
			start, end time.Time
		)
		if err := rows.Scan(&grant.ID, &grant.EmployeeID, &kind, &start, &end, &status); err != nil {
			return nil, err
		}
		grant.Kind = leave.GrantKind(kind)
		grant.Status = leave.GrantStatus(status)
		grant.StartDate = timeutil.DateOf(start)
		grant.EndDate = timeutil.DateOf(end)
		grants = append(grants, grant)
	}

	return grants, rows.Err()
}

// ListPendingOffCredits implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListPendingOffCredits(ctx context.Context, source string) ([]leave.PendingOffCredit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.employee_id, c.days
		FROM pending_off_credits c
		INNER JOIN employees e ON c.employee_id = e.id
		WHERE ($1 = '' OR e.source = $1)
		ORDER BY c.employee_id
	`

	rows, err := q.Query(ctx, query, source)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var credits []leave.PendingOffCredit
	for rows.Next() {
		var credit leave.PendingOffCredit
		if err := rows.Scan(&credit.EmployeeID, &credit.Days); err != nil {
			return nil, err
		}
		credits = append(credits, credit)
	}

	return credits, rows.Err()
}

// ListEmploymentEvents implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListEmploymentEvents(ctx context.Context, source string, period timeutil.Period) ([]leave.EmploymentEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ev.employee_id, ev.kind, ev.day
		FROM employment_events ev
		INNER JOIN employees e ON ev.employee_id = e.id
		WHERE ev.day >= $1 AND ev.day <= $2
		  AND ($3 = '' OR e.source = $3)
		ORDER BY ev.employee_id, ev.day
	`

	rows, err := q.Query(ctx, query, period.Start.Time(), period.End.Time(), source)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []leave.EmploymentEvent
	for rows.Next() {
		var (
			event leave.EmploymentEvent
			kind  string
			day   time.Time
		)
		if err := rows.Scan(&event.EmployeeID, &kind, &day); err != nil {
			return nil, err
		}
		event.Kind = leave.EventKind(kind)
		event.Date = timeutil.DateOf(day)
		events = append(events, event)
	}

	return events, rows.Err()
}
