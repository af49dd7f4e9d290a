package exception

import (
	"errors"
	"fmt"
)

var (
	ErrExceptionNotFound = errors.New("exception not found")
	ErrNameExists        = errors.New("exception with this name already exists")
	ErrInvalidNameFormat = errors.New(
		"Exception name must follow format: {period}_{number}_day (e.g., weekly_2_day, monthly_4_day, quarterly_6_day) or be 'default' or 'other'")
)

// InUseError blocks deletion while employees still reference the rule.
type InUseError struct {
	EmployeeCount int64
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("Cannot delete exception. %d employee(s) are currently using it.", e.EmployeeCount)
}
