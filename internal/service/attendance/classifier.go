package attendance

import (
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/timeutil"
)

type ClassifierImpl struct {
	resolver schedule.Resolver
}

func NewClassifier(resolver schedule.Resolver) attendance.Classifier {
	return &ClassifierImpl{resolver: resolver}
}

// Classify applies the decision ladder for one employee-day. First match
// wins: manual override, weekend, rotational off, vacation excusal, missing
// punches, present. The vacation flag is carried independently so a grant
// that lands on a weekend or off day stays visible downstream.
func (c *ClassifierImpl) Classify(emp employee.Employee, date timeutil.Date, in attendance.ClassifyInput) (attendance.DayRecord, error) {
	day, err := c.resolver.ForDay(emp, date)
	if err != nil {
		return attendance.DayRecord{}, err
	}

	rec := attendance.DayRecord{
		EmployeeID: emp.ID,
		Date:       date,
		OnVacation: in.Excusals.Contains(emp.ID, date),
	}
	if in.Punch != nil {
		rec.ShiftSeconds = in.Punch.ShiftSeconds
		rec.PunchCount = in.Punch.RawPunchCount
		rec.SinglePunch = in.Punch.SinglePunch()
	}

	override, hasOverride := in.Overrides[attendance.DayKey{EmployeeID: emp.ID, Date: date}]

	switch {
	case hasOverride:
		rec.Classification = override.Classification
		rec.ExcusalSource = attendance.ExcusalOverride
		rec.Note = override.Reason
	case day.Weekend:
		rec.Classification = attendance.ClassWeekend
	case day.RotationalOff:
		rec.Classification = attendance.ClassOff
	case rec.OnVacation:
		rec.Classification = attendance.ClassExcusedAbsent
		rec.ExcusalSource = attendance.ExcusalVacation
	case in.Punch == nil || len(in.Punch.Punches) == 0:
		rec.Classification = attendance.ClassUnexcusedAbsent
	default:
		// Zero measured duration is still a presence. Single punch days
		// are flagged, never reclassified.
		rec.Classification = attendance.ClassPresent
	}

	return rec, nil
}
