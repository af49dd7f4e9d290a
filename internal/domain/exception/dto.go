package exception

import (
	"strings"

	"github.com/rtrack/rtrack-backend-go/internal/pkg/validator"
)

type CreateExceptionRequest struct {
	Name string `json:"name"`
}

func (r *CreateExceptionRequest) Validate() error {
	if !validator.IsValidExceptionName(r.Name) {
		return ErrInvalidNameFormat
	}
	return nil
}

// NormalizedName lowercases the special rule names; pattern names are kept
// as written.
func (r *CreateExceptionRequest) NormalizedName() string {
	if validator.IsSpecialExceptionName(r.Name) {
		return strings.ToLower(r.Name)
	}
	return r.Name
}

type UpdateExceptionRequest struct {
	Name *string `json:"name"`
}

func (r *UpdateExceptionRequest) Validate() error {
	if r.Name != nil && !validator.IsValidExceptionName(*r.Name) {
		return ErrInvalidNameFormat
	}
	return nil
}

func (r *UpdateExceptionRequest) NormalizedName() *string {
	if r.Name == nil {
		return nil
	}
	if validator.IsSpecialExceptionName(*r.Name) {
		lower := strings.ToLower(*r.Name)
		return &lower
	}
	return r.Name
}

type ExceptionResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ListExceptionsResponse struct {
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
	Exceptions []ExceptionResponse `json:"exceptions"`
}

type ExceptionFilter struct {
	Page     int
	PageSize int
}

// PopulateResult summarizes deriving exceptions from employee records.
type PopulateResult struct {
	Message    string `json:"message"`
	Created    int    `json:"created"`
	Skipped    int    `json:"skipped"`
	TotalFound int    `json:"total_found"`
}
