package attendance

import (
	"time"

	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/timeutil"
)

// RawPunch is one biometric device event, exactly as recorded.
type RawPunch struct {
	EmployeeID string
	Source     string
	At         time.Time
}

// PunchRecord is the cleaned punch activity of one employee on one work day.
// Punches holds the consolidated timestamps; RawPunchCount keeps the count
// before cleaning.
type PunchRecord struct {
	EmployeeID    string
	Date          timeutil.Date
	Punches       []time.Time
	RawPunchCount int
	ShiftSeconds  int64
}

// SinglePunch reports whether the day collapsed to exactly one punch, which
// makes the shift duration unmeasurable.
func (p PunchRecord) SinglePunch() bool {
	return len(p.Punches) == 1
}

type Classification string

const (
	ClassPresent         Classification = "present"
	ClassExcusedAbsent   Classification = "excused_absent"
	ClassUnexcusedAbsent Classification = "unexcused_absent"
	ClassOff             Classification = "off"
	ClassWeekend         Classification = "weekend"
)

// ExcusalSource records which adjustment excused an absence.
type ExcusalSource string

const (
	ExcusalVacation ExcusalSource = "vacation"
	ExcusalOverride ExcusalSource = "override"
	ExcusalWindow   ExcusalSource = "employment_window"
)

// DayRecord is the classification outcome for one employee on one date.
// OnVacation is tracked independently of the classification: a vacation day
// that lands on a weekend or rotational off keeps its weekend/off
// classification but still carries the vacation flag.
type DayRecord struct {
	EmployeeID     string
	Date           timeutil.Date
	Classification Classification
	ExcusalSource  ExcusalSource
	OnVacation     bool
	ShiftSeconds   int64
	PunchCount     int
	SinglePunch    bool
	Note           string
}

// OverrideEntry is a manual per-day correction entered by an admin. It wins
// over every other rule for its date.
type OverrideEntry struct {
	EmployeeID     string
	Date           timeutil.Date
	Classification Classification
	Reason         string
}

// DayKey addresses one employee-day in run-scoped lookup tables.
type DayKey struct {
	EmployeeID string
	Date       timeutil.Date
}
