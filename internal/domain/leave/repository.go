package leave

import (
	"context"

	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/timeutil"
)

type LeaveRepository interface {
	// ListGrants returns every grant overlapping the period, any status.
	ListGrants(ctx context.Context, source string, period timeutil.Period) ([]VacationGrant, error)
	// ListPendingOffCredits returns the per-employee pending off balance.
	ListPendingOffCredits(ctx context.Context, source string) ([]PendingOffCredit, error)
	// ListEmploymentEvents returns hire/leave boundary events overlapping
	// the period.
	ListEmploymentEvents(ctx context.Context, source string, period timeutil.Period) ([]EmploymentEvent, error)
}
