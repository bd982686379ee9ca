package leave

import (
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/timeutil"
)

// Adjuster expands leave inputs into the per-day lookups the classifier and
// aggregator consume. Implementations are pure and do no I/O.
type Adjuster interface {
	// Expand turns approved grants into a per-day excusal set clipped to
	// the period. Grants that fail integrity checks are reported per
	// employee without aborting the expansion.
	Expand(grants []VacationGrant, period timeutil.Period) (ExcusalSet, map[string]error)
	// EffectiveWindows shrinks the period per employee based on hire and
	// stop-working events. Employees without events are not in the map and
	// keep the full period.
	EffectiveWindows(events []EmploymentEvent, period timeutil.Period) map[string]timeutil.Period
	// PendingOffBalances sums pending off credits per employee.
	PendingOffBalances(credits []PendingOffCredit) map[string]int
}
