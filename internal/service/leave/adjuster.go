package leave

import (
	"fmt"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/timeutil"
)

type AdjusterImpl struct{}

func NewAdjuster() leave.Adjuster {
	return &AdjusterImpl{}
}

// Expand walks every approved grant and marks each covered day inside the
// period as excused. Expansion is idempotent: overlapping grants collapse
// into the same set entries. A grant ending before it starts poisons only
// its own employee.
func (a *AdjusterImpl) Expand(grants []leave.VacationGrant, period timeutil.Period) (leave.ExcusalSet, map[string]error) {
	excusals := make(leave.ExcusalSet)
	failures := make(map[string]error)

	for _, grant := range grants {
		if grant.Status != leave.GrantApproved {
			continue
		}
		if _, excused := leave.ExcusedKinds[grant.Kind]; !excused {
			continue
		}
		if grant.EndDate.Before(grant.StartDate) {
			failures[grant.EmployeeID] = &report.DataIntegrityError{
				EmployeeID: grant.EmployeeID,
				Reason: fmt.Sprintf("grant %s ends %s before it starts %s",
					grant.ID, grant.EndDate, grant.StartDate),
			}
			continue
		}

		clipped, ok := period.Clip(grant.StartDate, grant.EndDate)
		if !ok {
			continue
		}
		for _, date := range clipped.Dates() {
			excusals.Add(grant.EmployeeID, date)
		}
	}

	return excusals, failures
}

// EffectiveWindows computes the employment window of each employee with
// boundary events. Multiple start markers take the latest, multiple stop
// markers the earliest, both clipped to the period.
func (a *AdjusterImpl) EffectiveWindows(events []leave.EmploymentEvent, period timeutil.Period) map[string]timeutil.Period {
	starts := make(map[string]timeutil.Date)
	ends := make(map[string]timeutil.Date)
	seen := make(map[string]struct{})

	for _, event := range events {
		seen[event.EmployeeID] = struct{}{}
		switch event.Kind {
		case leave.EventNewHire, leave.EventBackFromVacation:
			if current, ok := starts[event.EmployeeID]; !ok || event.Date.After(current) {
				starts[event.EmployeeID] = event.Date
			}
		case leave.EventStopWorking:
			if current, ok := ends[event.EmployeeID]; !ok || event.Date.Before(current) {
				ends[event.EmployeeID] = event.Date
			}
		}
	}

	windows := make(map[string]timeutil.Period, len(seen))
	for employeeID := range seen {
		start := period.Start
		if s, ok := starts[employeeID]; ok {
			start = timeutil.MaxDate(start, s)
		}
		end := period.End
		if e, ok := ends[employeeID]; ok {
			end = timeutil.MinDate(end, e)
		}
		if end.Before(start) {
			// Stop marker precedes the start marker: nothing of the
			// period is effective. A zero window signals that.
			windows[employeeID] = timeutil.Period{}
			continue
		}
		windows[employeeID] = timeutil.Period{Start: start, End: end}
	}

	return windows
}

func (a *AdjusterImpl) PendingOffBalances(credits []leave.PendingOffCredit) map[string]int {
	balances := make(map[string]int, len(credits))
	for _, credit := range credits {
		if credit.Days <= 0 {
			continue
		}
		balances[credit.EmployeeID] += credit.Days
	}
	return balances
}
