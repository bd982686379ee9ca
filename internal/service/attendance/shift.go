package attendance

import (
	"fmt"
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/timeutil"
)

type PunchBuilderImpl struct {
	consolidationWindow time.Duration
}

func NewPunchBuilder(consolidationWindow time.Duration) attendance.PunchBuilder {
	return &PunchBuilderImpl{consolidationWindow: consolidationWindow}
}

// Build groups raw punches into employee-days, cleans each group and
// measures the shift as last minus first cleaned punch. Punches between
// 00:00 and 00:59 close the previous day's shift, except on the first day
// of the period where no previous shift exists.
func (b *PunchBuilderImpl) Build(punches []attendance.RawPunch, period timeutil.Period) (map[attendance.DayKey]attendance.PunchRecord, map[string]error) {
	grouped := make(map[attendance.DayKey][]time.Time)
	failures := make(map[string]error)

	for _, punch := range punches {
		date := timeutil.DateOf(punch.At)
		if punch.At.Hour() == 0 && date != period.Start {
			date = date.AddDays(-1)
		}

		if !period.Contains(date) {
			failures[punch.EmployeeID] = &report.DataIntegrityError{
				EmployeeID: punch.EmployeeID,
				Reason:     fmt.Sprintf("punch at %s falls outside the report period", punch.At.Format(time.RFC3339)),
			}
			continue
		}

		key := attendance.DayKey{EmployeeID: punch.EmployeeID, Date: date}
		grouped[key] = append(grouped[key], punch.At)
	}

	records := make(map[attendance.DayKey]attendance.PunchRecord, len(grouped))
	for key, times := range grouped {
		if _, bad := failures[key.EmployeeID]; bad {
			continue
		}

		sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
		cleaned := b.consolidate(times)

		var shiftSeconds int64
		if len(cleaned) >= 2 {
			shiftSeconds = int64(cleaned[len(cleaned)-1].Sub(cleaned[0]).Seconds())
		}

		records[key] = attendance.PunchRecord{
			EmployeeID:    key.EmployeeID,
			Date:          key.Date,
			Punches:       cleaned,
			RawPunchCount: len(times),
			ShiftSeconds:  shiftSeconds,
		}
	}

	return records, failures
}

// consolidate always keeps the first and last punch. Intermediate punches
// are kept only when they are further than the consolidation window from
// the previously kept punch. Exact duplicate timestamps collapse.
func (b *PunchBuilderImpl) consolidate(sorted []time.Time) []time.Time {
	if len(sorted) == 0 {
		return nil
	}

	kept := []time.Time{sorted[0]}
	for i := 1; i < len(sorted)-1; i++ {
		if sorted[i].Sub(kept[len(kept)-1]) > b.consolidationWindow {
			kept = append(kept, sorted[i])
		}
	}

	last := sorted[len(sorted)-1]
	if len(sorted) > 1 && !last.Equal(kept[len(kept)-1]) {
		kept = append(kept, last)
	}

	return kept
}
