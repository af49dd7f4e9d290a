package employee

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeIDExists = errors.New("employee with this employee_id already exists")
	ErrEmptyUpload      = errors.New("no employee rows found in the uploaded file")
)

// MissingColumnsError reports spreadsheet headers absent from an employee
// upload.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("Missing required columns: %s", strings.Join(e.Columns, ", "))
}
