package leave

import (
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/timeutil"
)

type GrantStatus string

const (
	GrantApproved GrantStatus = "approved"
	GrantPending  GrantStatus = "pending"
	GrantRejected GrantStatus = "rejected"
)

type GrantKind string

const (
	KindVacation  GrantKind = "vacation"
	KindSick      GrantKind = "sick"
	KindEmergency GrantKind = "emergency"
	KindUnpaid    GrantKind = "unpaid"
)

// ExcusedKinds are the leave kinds that excuse an absence.
var ExcusedKinds = map[GrantKind]struct{}{
	KindVacation:  {},
	KindSick:      {},
	KindEmergency: {},
	KindUnpaid:    {},
}

// VacationGrant is one approved-or-pending leave request covering a closed
// date range.
type VacationGrant struct {
	ID         string
	EmployeeID string
	Kind       GrantKind
	StartDate  timeutil.Date
	EndDate    timeutil.Date
	Status     GrantStatus
}

// Excusal marks one employee-day as excused.
type Excusal struct {
	EmployeeID string
	Date       timeutil.Date
}

// ExcusalSet is the expanded per-day view of every effective grant in a run.
type ExcusalSet map[Excusal]struct{}

func (s ExcusalSet) Add(employeeID string, date timeutil.Date) {
	s[Excusal{EmployeeID: employeeID, Date: date}] = struct{}{}
}

func (s ExcusalSet) Contains(employeeID string, date timeutil.Date) bool {
	_, ok := s[Excusal{EmployeeID: employeeID, Date: date}]
	return ok
}

// PendingOffCredit is a bank of earned days off that offsets final absences.
type PendingOffCredit struct {
	EmployeeID string
	Days       int
}

type EventKind string

const (
	EventNewHire          EventKind = "new_hire"
	EventBackFromVacation EventKind = "back_from_vacation"
	EventStopWorking      EventKind = "stop_working"
)

// EmploymentEvent marks a boundary of an employee's effective employment
// window inside a report period.
type EmploymentEvent struct {
	EmployeeID string
	Kind       EventKind
	Date       timeutil.Date
}
