package response

import (
	"errors"
	"net/http"

	"github.com/rtrack/rtrack-backend-go/internal/domain/attendance"
	"github.com/rtrack/rtrack-backend-go/internal/domain/auth"
	"github.com/rtrack/rtrack-backend-go/internal/domain/compliance"
	"github.com/rtrack/rtrack-backend-go/internal/domain/employee"
	"github.com/rtrack/rtrack-backend-go/internal/domain/exception"
	"github.com/rtrack/rtrack-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, validationErrs.Error())
		return
	}

	// Structured domain errors
	var missingCols *employee.MissingColumnsError
	if errors.As(err, &missingCols) {
		BadRequest(w, missingCols.Error())
		return
	}
	var weekExists *attendance.WeekExistsError
	if errors.As(err, &weekExists) {
		BadRequest(w, weekExists.Error())
		return
	}
	var parseErr *attendance.ParseError
	if errors.As(err, &parseErr) {
		BadRequest(w, parseErr.Error())
		return
	}
	var inUse *exception.InUseError
	if errors.As(err, &inUse) {
		BadRequest(w, inUse.Error())
		return
	}
	var invalidTable *compliance.InvalidTableError
	if errors.As(err, &invalidTable) {
		BadRequest(w, invalidTable.Error())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidEmployeeID),
		errors.Is(err, auth.ErrInvalidPassword):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		BadRequest(w, "Employee with this employee_id already exists")
	case errors.Is(err, employee.ErrEmptyUpload):
		BadRequest(w, "No employee records found in the Excel file")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrNoRecordsInFile):
		BadRequest(w, "No valid attendance records found in the Excel file")

	// Exception domain errors
	case errors.Is(err, exception.ErrExceptionNotFound):
		NotFound(w, "Exception not found")
	case errors.Is(err, exception.ErrNameExists):
		BadRequest(w, "Exception with this name already exists")
	case errors.Is(err, exception.ErrInvalidNameFormat):
		BadRequest(w, err.Error())

	// Compliance domain errors
	case errors.Is(err, compliance.ErrInvalidMonth),
		errors.Is(err, compliance.ErrInvalidQuarter),
		errors.Is(err, compliance.ErrEmployeeTableProtected):
		BadRequest(w, err.Error())

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
