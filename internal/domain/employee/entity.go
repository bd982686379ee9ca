package employee

// Employee is a worker known to the punch source. Source identifies the
// device location or team the employee's punches and default rules come from.
type Employee struct {
	ID     string
	Name   string
	Source string
	Active bool
}
