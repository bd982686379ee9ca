package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var confErr *report.ConfigurationError
	var covErr *report.CoverageError
	var integrityErr *report.DataIntegrityError

	switch {
	// Report domain errors
	case errors.Is(err, report.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)
	case errors.As(err, &confErr),
		errors.As(err, &covErr),
		errors.As(err, &integrityErr):
		BadRequest(w, err.Error(), nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrRuleSetNotFound):
		NotFound(w, "Rule set not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidClassification):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
