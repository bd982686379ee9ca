package report

import (
	"context"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/timeutil"
)

// Aggregator folds classified days into one summary per employee.
type Aggregator interface {
	// Fold accumulates the day records of one employee in a single pass.
	// The records must cover every date of the period exactly once or Fold
	// fails with a CoverageError.
	Fold(emp employee.Employee, days []attendance.DayRecord, period timeutil.Period) (*EmployeeSummary, error)
	// ApplyPendingOffs deducts earned off credits from the newest final
	// absences of an already folded summary.
	ApplyPendingOffs(summary *EmployeeSummary, balance int)
}

type ReportService interface {
	// RunAttendanceReport reconciles punches against rules for every
	// employee in scope. Per-employee failures are collected in the
	// response, never aborting the run.
	RunAttendanceReport(ctx context.Context, req *RunReportRequest) (*RunReportResponse, error)
	// ExportAttendanceReport runs the reconciliation and renders the result
	// as an xlsx workbook.
	ExportAttendanceReport(ctx context.Context, req *RunReportRequest) ([]byte, string, error)
}
