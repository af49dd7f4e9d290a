package employee

import (
	"github.com/rtrack/rtrack-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	EmployeeID           string  `json:"employee_id"`
	EmployeeName         string  `json:"employee_name"`
	ReportingManagerID   *string `json:"reporting_manager_id"`
	ReportingManagerName *string `json:"reporting_manager_name"`
	VerticalHeadID       *string `json:"vertical_head_id"`
	VerticalHeadName     *string `json:"vertical_head_name"`
	Vertical             *string `json:"vertical"`
	Status               *string `json:"status"`
	Exception            *string `json:"exception"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_name",
			Message: "employee_name is required",
		})
	}

	if r.Status != nil && !validator.IsValidEmployeeStatus(*r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Active or Inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest is a partial update; nil fields are left untouched.
type UpdateEmployeeRequest struct {
	EmployeeName         *string `json:"employee_name"`
	ReportingManagerID   *string `json:"reporting_manager_id"`
	ReportingManagerName *string `json:"reporting_manager_name"`
	VerticalHeadID       *string `json:"vertical_head_id"`
	VerticalHeadName     *string `json:"vertical_head_name"`
	Vertical             *string `json:"vertical"`
	Status               *string `json:"status"`
	Exception            *string `json:"exception"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeName != nil && validator.IsEmpty(*r.EmployeeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_name",
			Message: "employee_name cannot be empty",
		})
	}

	if r.Status != nil && !validator.IsValidEmployeeStatus(*r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Active or Inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EmployeeFilter carries list filters; zero values mean "no filter".
type EmployeeFilter struct {
	Page      int
	PageSize  int
	Search    string
	Vertical  string
	Status    string
	Exception string
}

type EmployeeResponse struct {
	ID                   int     `json:"id"`
	EmployeeID           string  `json:"employee_id"`
	EmployeeName         string  `json:"employee_name"`
	ReportingManagerID   *string `json:"reporting_manager_id"`
	ReportingManagerName *string `json:"reporting_manager_name"`
	VerticalHeadID       *string `json:"vertical_head_id"`
	VerticalHeadName     *string `json:"vertical_head_name"`
	Vertical             *string `json:"vertical"`
	Status               *string `json:"status"`
	Exception            *string `json:"exception"`
}

type ListEmployeesResponse struct {
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
	Employees  []EmployeeResponse `json:"employees"`
}

// Facets holds the distinct values used to populate filter dropdowns, so
// clients no longer page through the whole collection to build them.
type Facets struct {
	Verticals  []string `json:"verticals"`
	Statuses   []string `json:"statuses"`
	Exceptions []string `json:"exceptions"`
}

type UploadEmployeesRequest struct {
	Filename string
	Content  []byte
}

func (r *UploadEmployeesRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsExcelFilename(r.Filename) {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "Invalid file type. Please upload an Excel file (.xlsx or .xls)",
		})
	}

	if len(r.Content) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "file is empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UploadResult struct {
	Message       string `json:"message"`
	RecordsLoaded int    `json:"records_loaded"`
	Filename      string `json:"filename"`
}
