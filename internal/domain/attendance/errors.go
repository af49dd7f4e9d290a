package attendance

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoRecordsInFile = errors.New("no valid attendance records found in the Excel file")
	ErrNoUploads       = errors.New("no attendance data has been uploaded yet")
)

// WeekExistsError rejects a second upload for an already-loaded work week.
type WeekExistsError struct {
	WeekStart time.Time
	WeekEnd   time.Time
}

func (e *WeekExistsError) Error() string {
	return fmt.Sprintf(
		"Attendance data already exists for this week (%s to %s). Please upload data for a different week.",
		e.WeekStart.Format("02 Jan 2006"),
		e.WeekEnd.Format("02 Jan 2006"),
	)
}

// ParseError wraps a structural problem in the uploaded sheet.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Error parsing Excel file: %s", e.Reason)
}
