package report

import (
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/validator"
)

// ========================================
// REPORT DTOs
// ========================================

type RunReportRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Source    string `json:"source,omitempty"`
}

func (r *RunReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) == 0 {
		start, _ := validator.IsValidDate(r.StartDate)
		end, _ := validator.IsValidDate(r.EndDate)
		if end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeSummaryResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Source       string `json:"source"`
	PeriodStart  string `json:"period_start"`
	PeriodEnd    string `json:"period_end"`
	PeriodDays   int    `json:"period_days"`

	TotalPresentDays int `json:"total_present_days"`
	TotalAbsentDays  int `json:"total_absent_days"`
	FinalAbsentDays  int `json:"final_absent_days"`
	ExcusedDays      int `json:"excused_days"`
	TotalPeriodOffs  int `json:"total_employee_period_offs"`
	ExpectedWeekends int `json:"total_expected_weekends_in_period"`

	CountSinglePunchDays int `json:"count_single_punch_days"`
	CountHeavyPunchDays  int `json:"count_more_than_4_punches_days"`

	TotalShiftDurations  string `json:"total_shift_durations"`
	AverageShiftDuration string `json:"average_shift_duration"`

	AbsentDates  string `json:"absent_dates"`
	VacationDays int    `json:"vacation_days"`

	TotalPendingOffs        int    `json:"total_pending_offs"`
	TotalAbsentAfterPending int    `json:"total_absent_after_pending"`
	PendingOffDates         string `json:"pending_off_dates"`
}

type AdjustedAbsenceResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	Excused      bool   `json:"excused"`
	Source       string `json:"source,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

type EmployeeFailureResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Reason       string `json:"reason"`
}

type RunReportResponse struct {
	RunID            string                    `json:"run_id"`
	PeriodStart      string                    `json:"period_start"`
	PeriodEnd        string                    `json:"period_end"`
	Source           string                    `json:"source,omitempty"`
	Summaries        []EmployeeSummaryResponse `json:"summaries"`
	AdjustedAbsences []AdjustedAbsenceResponse `json:"adjusted_absences"`
	Failures         []EmployeeFailureResponse `json:"failures"`
}
