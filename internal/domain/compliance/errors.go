package compliance

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidMonth   = errors.New("Month must be between 1 and 12")
	ErrInvalidQuarter = errors.New("Quarter must be between 1 and 4")

	// The employee table survives every clean so logins keep working.
	ErrEmployeeTableProtected = errors.New(
		"Cannot delete Employee table. Employee records must be preserved for authentication.")
)

// InvalidTableError rejects unknown table names on the clean endpoint.
type InvalidTableError struct {
	Name  string
	Valid []string
}

func (e *InvalidTableError) Error() string {
	return fmt.Sprintf("Invalid table name '%s'. Valid options: %s", e.Name, strings.Join(e.Valid, ", "))
}
