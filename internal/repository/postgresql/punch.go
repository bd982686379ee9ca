package postgresql

import (
	"context"
	"time"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/database"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) attendance.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// ListRawPunches implements attendance.PunchRepository.
func (r *punchRepositoryImpl) ListRawPunches(ctx context.Context, source string, from, to time.Time) ([]attendance.RawPunch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, source, punched_at
		FROM raw_punches
		WHERE punched_at >= $1 AND punched_at < $2
		  AND ($3 = '' OR source = $3)
		ORDER BY employee_id, punched_at
	`

	rows, err := q.Query(ctx, query, from, to, source)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var punches []attendance.RawPunch
	for rows.Next() {
		var p attendance.RawPunch
		if err := rows.Scan(&p.EmployeeID, &p.Source, &p.At); err != nil {
			return nil, err
		}
		punches = append(punches, p)
	}

	return punches, rows.Err()
}
