package employee

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rtrack/rtrack-backend-go/internal/domain/employee"
	"github.com/rtrack/rtrack-backend-go/internal/pkg/excel"
	"github.com/rtrack/rtrack-backend-go/internal/pkg/utils"
)

// requiredColumns are the snake_cased headers an employee sheet must carry.
var requiredColumns = []string{
	"employee_id",
	"employee_name",
	"reporting_manager_id",
	"reporting_manager_name",
	"vertical_head_id",
	"vertical_head_name",
	"vertical",
	"status",
	"exception",
}

type employeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &employeeServiceImpl{employeeRepo: employeeRepo}
}

// ListEmployees implements employee.EmployeeService.
func (s *employeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeesResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 50
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toEmployeeResponse(emp))
	}

	return employee.ListEmployeesResponse{
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.PageSize))),
		Employees:  responses,
	}, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *employeeServiceImpl) GetEmployee(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(emp), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *employeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	_, err := s.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeIDExists
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		EmployeeID:           req.EmployeeID,
		EmployeeName:         req.EmployeeName,
		ReportingManagerID:   req.ReportingManagerID,
		ReportingManagerName: req.ReportingManagerName,
		VerticalHeadID:       req.VerticalHeadID,
		VerticalHeadName:     req.VerticalHeadName,
		Vertical:             req.Vertical,
		Status:               req.Status,
		Exception:            req.Exception,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *employeeServiceImpl) UpdateEmployee(ctx context.Context, employeeID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.Update(ctx, employeeID, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *employeeServiceImpl) DeleteEmployee(ctx context.Context, employeeID string) error {
	return s.employeeRepo.Delete(ctx, employeeID)
}

// UploadEmployees implements employee.EmployeeService. The spreadsheet is
// the source of truth for the org hierarchy, so every upload replaces the
// whole table.
func (s *employeeServiceImpl) UploadEmployees(ctx context.Context, req employee.UploadEmployeesRequest) (employee.UploadResult, error) {
	if err := req.Validate(); err != nil {
		return employee.UploadResult{}, err
	}

	grid, err := excel.Rows(req.Content)
	if err != nil {
		return employee.UploadResult{}, fmt.Errorf("read employee sheet: %w", err)
	}
	if len(grid) < 2 {
		return employee.UploadResult{}, employee.ErrEmptyUpload
	}

	columns := make(map[string]int, len(grid[0]))
	for i, header := range grid[0] {
		columns[utils.ToSnakeCase(header)] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := columns[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return employee.UploadResult{}, &employee.MissingColumnsError{Columns: missing}
	}

	cell := func(row []string, col string) string {
		return strings.TrimSpace(row[columns[col]])
	}
	optional := func(row []string, col string) *string {
		v := cell(row, col)
		if v == "" {
			return nil
		}
		return &v
	}

	var employees []employee.Employee
	for _, row := range grid[1:] {
		id := cell(row, "employee_id")
		if id == "" {
			continue
		}

		employees = append(employees, employee.Employee{
			EmployeeID:           id,
			EmployeeName:         cell(row, "employee_name"),
			ReportingManagerID:   optional(row, "reporting_manager_id"),
			ReportingManagerName: optional(row, "reporting_manager_name"),
			VerticalHeadID:       optional(row, "vertical_head_id"),
			VerticalHeadName:     optional(row, "vertical_head_name"),
			Vertical:             optional(row, "vertical"),
			Status:               optional(row, "status"),
			Exception:            optional(row, "exception"),
		})
	}

	if len(employees) == 0 {
		return employee.UploadResult{}, employee.ErrEmptyUpload
	}

	inserted, err := s.employeeRepo.ReplaceAll(ctx, employees)
	if err != nil {
		return employee.UploadResult{}, err
	}

	return employee.UploadResult{
		Message:       fmt.Sprintf("Successfully loaded %d employee records", inserted),
		RecordsLoaded: inserted,
		Filename:      req.Filename,
	}, nil
}

// GetFacets implements employee.EmployeeService.
func (s *employeeServiceImpl) GetFacets(ctx context.Context) (employee.Facets, error) {
	return s.employeeRepo.Facets(ctx)
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:                   emp.ID,
		EmployeeID:           emp.EmployeeID,
		EmployeeName:         emp.EmployeeName,
		ReportingManagerID:   emp.ReportingManagerID,
		ReportingManagerName: emp.ReportingManagerName,
		VerticalHeadID:       emp.VerticalHeadID,
		VerticalHeadName:     emp.VerticalHeadName,
		Vertical:             emp.Vertical,
		Status:               emp.Status,
		Exception:            emp.Exception,
	}
}
