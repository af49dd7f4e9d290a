package attendance

import (
	"github.com/rtrack/rtrack-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type UploadAttendanceRequest struct {
	Filename string
	Content  []byte
}

func (r *UploadAttendanceRequest) Validate() error {
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

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type UploadResult struct {
	Message       string    `json:"message"`
	RecordsLoaded int       `json:"records_loaded"`
	Filename      string    `json:"filename"`
	DateRange     DateRange `json:"date_range"`
}

type AttendanceResponse struct {
	ID            int      `json:"id"`
	EmployeeID    string   `json:"employee_id"`
	EmployeeName  string   `json:"employee_name"`
	SwipeIn       *string  `json:"swipe_in"`
	SwipeOut      *string  `json:"swipe_out"`
	WorkHours     *string  `json:"work_hours"`
	HoursWorked   *float64 `json:"hours_worked"`
	IsPresent     int      `json:"is_present"`
	Date          string   `json:"date"`
	WeekStart     string   `json:"week_start"`
	WeekEnd       string   `json:"week_end"`
	WeekNumber    int      `json:"week_number"`
	MonthNumber   int      `json:"month_number"`
	QuarterNumber int      `json:"quarter_number"`
	Year          int      `json:"year"`
}

// ListAttendanceResponse returns the latest uploaded week plus the grand
// total across all weeks.
type ListAttendanceResponse struct {
	Total       int64                `json:"total"`
	Attendances []AttendanceResponse `json:"attendances"`
}

type LastUploadInfo struct {
	HasUpload      bool       `json:"has_upload"`
	Message        string     `json:"message,omitempty"`
	WeekStart      string     `json:"week_start,omitempty"`
	WeekEnd        string     `json:"week_end,omitempty"`
	WeekNumber     int        `json:"week_number,omitempty"`
	Year           int        `json:"year,omitempty"`
	DateRange      *DateRange `json:"date_range,omitempty"`
	RecordsCount   int        `json:"records_count,omitempty"`
	EmployeesCount int        `json:"employees_count,omitempty"`
	UploadedAt     *string    `json:"uploaded_at,omitempty"`
}
