package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Exception rule names follow {period}_{number}_day, plus the two special
// names that bypass the pattern.
var exceptionNameRegex = regexp.MustCompile(`^(weekly|monthly|quarterly)_(\d+)_day$`)

func IsValidExceptionName(name string) bool {
	lower := strings.ToLower(name)
	if lower == "default" || lower == "other" {
		return true
	}
	return exceptionNameRegex.MatchString(name)
}

// IsSpecialExceptionName reports whether name is one of the special rules
// that carry no threshold of their own.
func IsSpecialExceptionName(name string) bool {
	lower := strings.ToLower(name)
	return lower == "default" || lower == "other"
}

// Employee status values accepted on create/update
func IsValidEmployeeStatus(status string) bool {
	return status == "" || status == "Active" || status == "Inactive"
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// Supported spreadsheet extensions for the bulk uploads
func IsExcelFilename(filename string) bool {
	lower := strings.ToLower(filename)
	return strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xls")
}
