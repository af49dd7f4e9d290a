package auth

import (
	"github.com/rtrack/rtrack-backend-go/internal/pkg/validator"
)

// LoginRequest maps username to employee_id. Only the built-in admin
// account carries a password; regular employees authenticate by id alone.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type MeResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	IsAdmin      bool   `json:"is_admin"`
	HasReportees bool   `json:"has_reportees"`
}
