package employee

// Employee is the master record uploaded from the HR spreadsheet.
// employee_id is the external natural key; the hierarchy fields are
// denormalized names and ids with no referential integrity, used only to
// scope reportee views.
type Employee struct {
	ID                   int
	EmployeeID           string
	EmployeeName         string
	ReportingManagerID   *string
	ReportingManagerName *string
	VerticalHeadID       *string
	VerticalHeadName     *string
	Vertical             *string
	Status               *string
	Exception            *string
}

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)
