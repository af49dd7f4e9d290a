package compliance

import "encoding/json"

// ========================================
// PIVOT DTOs
// ========================================

// PivotFilter carries the query parameters of the pivot endpoints. Zero
// values (and the literal "all") disable a filter.
type PivotFilter struct {
	Year      int
	Month     int
	Status    string
	Search    string
	Exception string
	Page      int
	PageSize  int
}

// WeekDescriptor identifies one week column. KeyStr is the join key the
// client uses against each employee row's weeks map, so descriptor and map
// must always agree on it.
type WeekDescriptor struct {
	KeyStr     string `json:"key_str"`
	Label      string `json:"label"`
	WeekNumber int    `json:"week_number"`
	WeekStart  string `json:"week_start"`
	WeekEnd    string `json:"week_end"`
}

type MonthDescriptor struct {
	Key        string `json:"key"`
	Label      string `json:"label"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
	MonthStart string `json:"month_start"`
	MonthEnd   string `json:"month_end"`
}

type QuarterDescriptor struct {
	Key          string `json:"key"`
	Label        string `json:"label"`
	Quarter      int    `json:"quarter"`
	Year         int    `json:"year"`
	QuarterStart string `json:"quarter_start"`
	QuarterEnd   string `json:"quarter_end"`
}

type WeekCell struct {
	ComplianceStatus string  `json:"compliance_status"`
	TotalDaysPresent float64 `json:"total_days_present"`
	TotalHoursWorked float64 `json:"total_hours_worked"`
	WeeklyDays       float64 `json:"weekly_days"`
	WeeklyHours      float64 `json:"weekly_hours"`
}

type MonthCell struct {
	ComplianceStatus string  `json:"compliance_status"`
	TotalDaysPresent float64 `json:"total_days_present"`
	TotalHoursWorked float64 `json:"total_hours_worked"`
	MonthlyDays      float64 `json:"monthly_days"`
	MonthlyHours     float64 `json:"monthly_hours"`
}

type QuarterCell struct {
	ComplianceStatus string  `json:"compliance_status"`
	TotalDaysPresent float64 `json:"total_days_present"`
	TotalHoursWorked float64 `json:"total_hours_worked"`
	QuarterlyDays    float64 `json:"quarterly_days"`
	QuarterlyHours   float64 `json:"quarterly_hours"`
}

type WeeklyRow struct {
	EmployeeID           string              `json:"employee_id"`
	EmployeeName         string              `json:"employee_name"`
	ReportingManagerID   *string             `json:"reporting_manager_id"`
	ReportingManagerName *string             `json:"reporting_manager_name"`
	VerticalHeadID       *string             `json:"vertical_head_id"`
	VerticalHeadName     *string             `json:"vertical_head_name"`
	Vertical             *string             `json:"vertical"`
	Status               *string             `json:"status"`
	Exception            *string             `json:"exception"`
	Weeks                map[string]WeekCell `json:"weeks"`
}

type MonthlyRow struct {
	EmployeeID           string               `json:"employee_id"`
	EmployeeName         string               `json:"employee_name"`
	ReportingManagerID   *string              `json:"reporting_manager_id"`
	ReportingManagerName *string              `json:"reporting_manager_name"`
	VerticalHeadID       *string              `json:"vertical_head_id"`
	VerticalHeadName     *string              `json:"vertical_head_name"`
	Vertical             *string              `json:"vertical"`
	Status               *string              `json:"status"`
	Exception            *string              `json:"exception"`
	Months               map[string]MonthCell `json:"months"`
}

type QuarterlyRow struct {
	EmployeeID           string                 `json:"employee_id"`
	EmployeeName         string                 `json:"employee_name"`
	ReportingManagerID   *string                `json:"reporting_manager_id"`
	ReportingManagerName *string                `json:"reporting_manager_name"`
	VerticalHeadID       *string                `json:"vertical_head_id"`
	VerticalHeadName     *string                `json:"vertical_head_name"`
	Vertical             *string                `json:"vertical"`
	Status               *string                `json:"status"`
	Exception            *string                `json:"exception"`
	Quarters             map[string]QuarterCell `json:"quarters"`
}

// ScopedWeekly is attached only for non-admin callers: their own row (which
// no filter may remove) plus direct reports.
type ScopedWeekly struct {
	CurrentEmployee *WeeklyRow  `json:"current_employee"`
	Reportees       []WeeklyRow `json:"reportees"`
}

type ScopedMonthly struct {
	CurrentEmployee *MonthlyRow  `json:"current_employee"`
	Reportees       []MonthlyRow `json:"reportees"`
}

type ScopedQuarterly struct {
	CurrentEmployee *QuarterlyRow  `json:"current_employee"`
	Reportees       []QuarterlyRow `json:"reportees"`
}

type WeeklyPivotResponse struct {
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
	Employees  []WeeklyRow      `json:"employees"`
	Weeks      []WeekDescriptor `json:"weeks"`
	Scoped     *ScopedWeekly    `json:"-"`
}

// MarshalJSON flattens the scoped fields into the top-level object for
// non-admin callers and omits them entirely for admins, which is the shape
// the client's four-way empty-state branching depends on.
func (r WeeklyPivotResponse) MarshalJSON() ([]byte, error) {
	type alias WeeklyPivotResponse
	if r.Scoped == nil {
		return json.Marshal(alias(r))
	}
	return json.Marshal(struct {
		alias
		*ScopedWeekly
	}{alias(r), r.Scoped})
}

type MonthlyPivotResponse struct {
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
	Employees  []MonthlyRow      `json:"employees"`
	Months     []MonthDescriptor `json:"months"`
	Scoped     *ScopedMonthly    `json:"-"`
}

func (r MonthlyPivotResponse) MarshalJSON() ([]byte, error) {
	type alias MonthlyPivotResponse
	if r.Scoped == nil {
		return json.Marshal(alias(r))
	}
	return json.Marshal(struct {
		alias
		*ScopedMonthly
	}{alias(r), r.Scoped})
}

type QuarterlyPivotResponse struct {
	Total      int                 `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
	Employees  []QuarterlyRow      `json:"employees"`
	Quarters   []QuarterDescriptor `json:"quarters"`
	Scoped     *ScopedQuarterly    `json:"-"`
}

func (r QuarterlyPivotResponse) MarshalJSON() ([]byte, error) {
	type alias QuarterlyPivotResponse
	if r.Scoped == nil {
		return json.Marshal(alias(r))
	}
	return json.Marshal(struct {
		alias
		*ScopedQuarterly
	}{alias(r), r.Scoped})
}

// ========================================
// CALCULATION / MAINTENANCE DTOs
// ========================================

type CalculateResult struct {
	Message           string `json:"message"`
	RecordsCalculated int    `json:"records_calculated"`
	CompliantCount    int    `json:"compliant_count"`
	NonCompliantCount int    `json:"non_compliant_count"`
}

type CleanResult struct {
	Message       string            `json:"message"`
	DeletedCounts map[string]string `json:"deleted_counts"`
	Note          *string           `json:"note"`
}
