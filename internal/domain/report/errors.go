package report

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPeriod = errors.New("invalid report period")
)

// ConfigurationError means no attendance rule layer applies to an employee.
// It is fatal for that employee only.
type ConfigurationError struct {
	EmployeeID string
	Reason     string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error for employee %s: %s", e.EmployeeID, e.Reason)
}

// CoverageError means the classified days of an employee do not cover the
// report period exactly once.
type CoverageError struct {
	EmployeeID string
	Expected   int
	Got        int
	Reason     string
}

func (e *CoverageError) Error() string {
	return fmt.Sprintf("coverage error for employee %s: expected %d classified days, got %d (%s)",
		e.EmployeeID, e.Expected, e.Got, e.Reason)
}

// DataIntegrityError means an input record for an employee is internally
// inconsistent, e.g. a grant ending before it starts.
type DataIntegrityError struct {
	EmployeeID string
	Reason     string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("data integrity error for employee %s: %s", e.EmployeeID, e.Reason)
}
