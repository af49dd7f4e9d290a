package employee

import "context"

// EmployeeService defines business logic for employee master records
type EmployeeService interface {
	// ListEmployees returns a filtered, paginated page of the master table
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeesResponse, error)

	// GetEmployee retrieves a single employee by employee_id
	GetEmployee(ctx context.Context, employeeID string) (EmployeeResponse, error)

	// CreateEmployee creates an individual record
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee applies a partial update by employee_id
	UpdateEmployee(ctx context.Context, employeeID string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes a record by employee_id
	DeleteEmployee(ctx context.Context, employeeID string) error

	// UploadEmployees replaces the whole master table with spreadsheet rows
	UploadEmployees(ctx context.Context, req UploadEmployeesRequest) (UploadResult, error)

	// GetFacets returns distinct filter values for dropdowns
	GetFacets(ctx context.Context) (Facets, error)
}
