package attendance

import (
	"time"

	"github.com/google/uuid"
)

// Attendance is one swipe record per employee per calendar day. Period keys
// are denormalized at ingestion time so weekly/monthly/quarterly rollups
// never re-derive them.
type Attendance struct {
	ID            int
	EmployeeID    string
	EmployeeName  string
	SwipeIn       *string
	SwipeOut      *string
	WorkHours     *string // HH:MM as it appeared in the sheet
	HoursWorked   *float64
	IsPresent     int
	Date          time.Time
	WeekStart     time.Time
	WeekEnd       time.Time
	WeekNumber    int
	MonthNumber   int
	QuarterNumber int
	Year          int
	UploadBatchID *uuid.UUID
	CreatedAt     time.Time
}
