package attendance

import (
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/timeutil"
)

// PunchBuilder turns raw device punches into per-day punch records.
type PunchBuilder interface {
	// Build groups, cleans and measures raw punches per employee-day.
	// Employees with punches outside the period are reported in the second
	// return value and excluded from the records.
	Build(punches []RawPunch, period timeutil.Period) (map[DayKey]PunchRecord, map[string]error)
}

// ClassifyInput carries the per-day lookups one classification needs.
type ClassifyInput struct {
	Punch     *PunchRecord
	Excusals  leave.ExcusalSet
	Overrides map[DayKey]OverrideEntry
}

// Classifier decides the classification of one employee-day.
type Classifier interface {
	Classify(emp employee.Employee, date timeutil.Date, in ClassifyInput) (DayRecord, error)
}
