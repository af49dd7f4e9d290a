package compliance

import "time"

// Compliance status values as rendered in the pivot grid.
const (
	StatusCompliant    = "Compliant"
	StatusNotCompliant = "Not Compliant"
	StatusNoData       = "No Data"
)

// WeeklyCompliance is one employee's rollup for one Mon-Fri work week.
// Employee master fields are denormalized at calculation time so the pivot
// reflects the hierarchy as it stood when the week was computed.
type WeeklyCompliance struct {
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
	WeeklyDays           *float64
	WeeklyHours          *float64
	WeekNumber           int
	WeekStart            time.Time
	WeekEnd              time.Time
	TotalDaysPresent     float64
	TotalHoursWorked     float64
	IsCompliant          *float64 // 1 compliant, 0 not, nil no data
	ComplianceStatus     string
	CreatedAt            time.Time
}

type MonthlyCompliance struct {
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
	MonthlyDays          *float64
	MonthlyHours         *float64
	Month                int
	Year                 int
	MonthStart           time.Time
	MonthEnd             time.Time
	TotalDaysPresent     float64
	TotalHoursWorked     float64
	IsCompliant          *int
	ComplianceStatus     string
	CreatedAt            time.Time
}

type QuarterlyCompliance struct {
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
	QuarterlyDays        *float64
	QuarterlyHours       *float64
	Quarter              int
	Year                 int
	QuarterStart         time.Time
	QuarterEnd           time.Time
	TotalDaysPresent     float64
	TotalHoursWorked     float64
	IsCompliant          *int
	ComplianceStatus     string
	CreatedAt            time.Time
}
