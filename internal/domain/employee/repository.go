package employee

import "context"

type EmployeeRepository interface {
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	GetAll(ctx context.Context) ([]Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, employeeID string, req UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, employeeID string) error

	// ReplaceAll deletes every employee row and inserts the given set in a
	// single transaction (spreadsheet upload).
	ReplaceAll(ctx context.Context, employees []Employee) (int, error)

	// ReporteeIDs returns employee_ids of direct reports of managerID.
	ReporteeIDs(ctx context.Context, managerID string) ([]string, error)

	// NamesByEmployeeIDs resolves employee_id -> employee_name for the ids
	// present in the table.
	NamesByEmployeeIDs(ctx context.Context, employeeIDs []string) (map[string]string, error)

	// CountByException counts employees whose exception equals name.
	CountByException(ctx context.Context, name string) (int64, error)

	// DistinctExceptions returns non-empty exception names in use.
	DistinctExceptions(ctx context.Context) ([]string, error)

	Facets(ctx context.Context) (Facets, error)
}
