package exception

import "context"

// ExceptionService defines business logic for threshold override rules
type ExceptionService interface {
	ListExceptions(ctx context.Context, filter ExceptionFilter) (ListExceptionsResponse, error)
	GetException(ctx context.Context, id int) (ExceptionResponse, error)
	CreateException(ctx context.Context, req CreateExceptionRequest) (ExceptionResponse, error)
	UpdateException(ctx context.Context, id int, req UpdateExceptionRequest) (ExceptionResponse, error)
	DeleteException(ctx context.Context, id int) error

	// PopulateFromEmployees creates rules for every valid exception name
	// already referenced by employee records
	PopulateFromEmployees(ctx context.Context) (PopulateResult, error)
}
