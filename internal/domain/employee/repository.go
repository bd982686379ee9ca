package employee

import "context"

type EmployeeRepository interface {
	// List returns employees, optionally filtered by source. An empty source
	// returns every active employee.
	List(ctx context.Context, source string) ([]Employee, error)
	GetByID(ctx context.Context, id string) (*Employee, error)
}
