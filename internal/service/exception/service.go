package exception

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rtrack/rtrack-backend-go/internal/domain/employee"
	"github.com/rtrack/rtrack-backend-go/internal/domain/exception"
	"github.com/rtrack/rtrack-backend-go/internal/pkg/validator"
)

type exceptionServiceImpl struct {
	exceptionRepo exception.ExceptionRepository
	employeeRepo  employee.EmployeeRepository
}

func NewExceptionService(exceptionRepo exception.ExceptionRepository, employeeRepo employee.EmployeeRepository) exception.ExceptionService {
	return &exceptionServiceImpl{
		exceptionRepo: exceptionRepo,
		employeeRepo:  employeeRepo,
	}
}

// ListExceptions implements exception.ExceptionService.
func (s *exceptionServiceImpl) ListExceptions(ctx context.Context, filter exception.ExceptionFilter) (exception.ListExceptionsResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 50
	}

	exceptions, total, err := s.exceptionRepo.List(ctx, filter)
	if err != nil {
		return exception.ListExceptionsResponse{}, err
	}

	responses := make([]exception.ExceptionResponse, 0, len(exceptions))
	for _, exc := range exceptions {
		responses = append(responses, toExceptionResponse(exc))
	}

	return exception.ListExceptionsResponse{
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.PageSize))),
		Exceptions: responses,
	}, nil
}

// GetException implements exception.ExceptionService.
func (s *exceptionServiceImpl) GetException(ctx context.Context, id int) (exception.ExceptionResponse, error) {
	exc, err := s.exceptionRepo.GetByID(ctx, id)
	if err != nil {
		return exception.ExceptionResponse{}, err
	}
	return toExceptionResponse(exc), nil
}

// CreateException implements exception.ExceptionService.
func (s *exceptionServiceImpl) CreateException(ctx context.Context, req exception.CreateExceptionRequest) (exception.ExceptionResponse, error) {
	if err := req.Validate(); err != nil {
		return exception.ExceptionResponse{}, err
	}

	name := req.NormalizedName()

	_, err := s.exceptionRepo.GetByName(ctx, name)
	if err == nil {
		return exception.ExceptionResponse{}, exception.ErrNameExists
	}
	if !errors.Is(err, exception.ErrExceptionNotFound) {
		return exception.ExceptionResponse{}, err
	}

	created, err := s.exceptionRepo.Create(ctx, name)
	if err != nil {
		return exception.ExceptionResponse{}, err
	}

	return toExceptionResponse(created), nil
}

// UpdateException implements exception.ExceptionService.
func (s *exceptionServiceImpl) UpdateException(ctx context.Context, id int, req exception.UpdateExceptionRequest) (exception.ExceptionResponse, error) {
	if err := req.Validate(); err != nil {
		return exception.ExceptionResponse{}, err
	}

	current, err := s.exceptionRepo.GetByID(ctx, id)
	if err != nil {
		return exception.ExceptionResponse{}, err
	}

	name := req.NormalizedName()
	if name == nil || *name == current.Name {
		return toExceptionResponse(current), nil
	}

	if _, err := s.exceptionRepo.GetByName(ctx, *name); err == nil {
		return exception.ExceptionResponse{}, exception.ErrNameExists
	} else if !errors.Is(err, exception.ErrExceptionNotFound) {
		return exception.ExceptionResponse{}, err
	}

	updated, err := s.exceptionRepo.UpdateName(ctx, id, *name)
	if err != nil {
		return exception.ExceptionResponse{}, err
	}

	return toExceptionResponse(updated), nil
}

// DeleteException implements exception.ExceptionService. A rule still
// assigned to employees cannot be removed, or their thresholds would
// silently fall back to the defaults.
func (s *exceptionServiceImpl) DeleteException(ctx context.Context, id int) error {
	exc, err := s.exceptionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.employeeRepo.CountByException(ctx, exc.Name)
	if err != nil {
		return err
	}
	if count > 0 {
		return &exception.InUseError{EmployeeCount: count}
	}

	return s.exceptionRepo.Delete(ctx, id)
}

// PopulateFromEmployees implements exception.ExceptionService. It scans the
// exception names already referenced on employee records and registers the
// valid ones that have no rule yet.
func (s *exceptionServiceImpl) PopulateFromEmployees(ctx context.Context) (exception.PopulateResult, error) {
	names, err := s.employeeRepo.DistinctExceptions(ctx)
	if err != nil {
		return exception.PopulateResult{}, err
	}

	created, skipped := 0, 0
	for _, name := range names {
		if !validator.IsValidExceptionName(name) {
			skipped++
			continue
		}

		_, err := s.exceptionRepo.GetByName(ctx, name)
		if err == nil {
			skipped++
			continue
		}
		if !errors.Is(err, exception.ErrExceptionNotFound) {
			return exception.PopulateResult{}, err
		}

		if _, err := s.exceptionRepo.Create(ctx, name); err != nil {
			return exception.PopulateResult{}, err
		}
		created++
	}

	return exception.PopulateResult{
		Message:    fmt.Sprintf("Populated %d exception(s) from employee records", created),
		Created:    created,
		Skipped:    skipped,
		TotalFound: len(names),
	}, nil
}

func toExceptionResponse(exc exception.Exception) exception.ExceptionResponse {
	return exception.ExceptionResponse{
		ID:        exc.ID,
		Name:      exc.Name,
		CreatedAt: exc.CreatedAt.Format(time.RFC3339),
		UpdatedAt: exc.UpdatedAt.Format(time.RFC3339),
	}
}
