package employee

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rtrack/rtrack-backend-go/internal/domain/employee"
	"github.com/rtrack/rtrack-backend-go/internal/pkg/validator"
)

// fakeEmployeeRepo is an in-memory stand-in for the PostgreSQL repository.
type fakeEmployeeRepo struct {
	byID      map[string]employee.Employee
	listTotal int64
	listRows  []employee.Employee
	replaced  []employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return f.listRows, f.listTotal, nil
}

func (f *fakeEmployeeRepo) GetAll(ctx context.Context) ([]employee.Employee, error) {
	var all []employee.Employee
	for _, emp := range f.byID {
		all = append(all, emp)
	}
	return all, nil
}

func (f *fakeEmployeeRepo) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	emp, ok := f.byID[employeeID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	newEmployee.ID = len(f.byID) + 1
	f.byID[newEmployee.EmployeeID] = newEmployee
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, employeeID string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	emp, ok := f.byID[employeeID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if req.EmployeeName != nil {
		emp.EmployeeName = *req.EmployeeName
	}
	if req.Status != nil {
		emp.Status = req.Status
	}
	f.byID[employeeID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, employeeID string) error {
	if _, ok := f.byID[employeeID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(f.byID, employeeID)
	return nil
}

func (f *fakeEmployeeRepo) ReplaceAll(ctx context.Context, employees []employee.Employee) (int, error) {
	f.replaced = employees
	f.byID = make(map[string]employee.Employee)
	for _, emp := range employees {
		f.byID[emp.EmployeeID] = emp
	}
	return len(employees), nil
}

func (f *fakeEmployeeRepo) ReporteeIDs(ctx context.Context, managerID string) ([]string, error) {
	var ids []string
	for _, emp := range f.byID {
		if emp.ReportingManagerID != nil && *emp.ReportingManagerID == managerID {
			ids = append(ids, emp.EmployeeID)
		}
	}
	return ids, nil
}

func (f *fakeEmployeeRepo) NamesByEmployeeIDs(ctx context.Context, employeeIDs []string) (map[string]string, error) {
	names := make(map[string]string)
	for _, id := range employeeIDs {
		if emp, ok := f.byID[id]; ok {
			names[id] = emp.EmployeeName
		}
	}
	return names, nil
}

func (f *fakeEmployeeRepo) CountByException(ctx context.Context, name string) (int64, error) {
	var count int64
	for _, emp := range f.byID {
		if emp.Exception != nil && *emp.Exception == name {
			count++
		}
	}
	return count, nil
}

func (f *fakeEmployeeRepo) DistinctExceptions(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var names []string
	for _, emp := range f.byID {
		if emp.Exception == nil || *emp.Exception == "" {
			continue
		}
		if _, ok := seen[*emp.Exception]; !ok {
			seen[*emp.Exception] = struct{}{}
			names = append(names, *emp.Exception)
		}
	}
	return names, nil
}

func (f *fakeEmployeeRepo) Facets(ctx context.Context) (employee.Facets, error) {
	return employee.Facets{}, nil
}

func buildEmployeeWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		require.NoError(t, f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+1), &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

var employeeHeader = []interface{}{
	"Employee ID", "Employee Name", "Reporting Manager ID", "Reporting Manager Name",
	"Vertical Head ID", "Vertical Head Name", "Vertical", "Status", "Exception",
}

func TestUploadEmployeesReplacesTable(t *testing.T) {
	repo := newFakeEmployeeRepo()
	repo.byID["OLD1"] = employee.Employee{EmployeeID: "OLD1", EmployeeName: "Old"}
	svc := NewEmployeeService(repo)

	content := buildEmployeeWorkbook(t, [][]interface{}{
		employeeHeader,
		{"GCC101", "Alice", "GCC100", "Mara", "GCC001", "Head", "Engineering", "Active", "weekly_3_day"},
		{"GCC102", "Bob", "", "", "", "", "", "", ""},
		{"", "skipped row without id", "", "", "", "", "", "", ""},
	})

	result, err := svc.UploadEmployees(context.Background(), employee.UploadEmployeesRequest{
		Filename: "employees.xlsx",
		Content:  content,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.RecordsLoaded)
	assert.Equal(t, "employees.xlsx", result.Filename)
	assert.Contains(t, result.Message, "2 employee records")

	require.Len(t, repo.replaced, 2)
	alice := repo.replaced[0]
	assert.Equal(t, "GCC101", alice.EmployeeID)
	assert.Equal(t, "Alice", alice.EmployeeName)
	require.NotNil(t, alice.Exception)
	assert.Equal(t, "weekly_3_day", *alice.Exception)

	// Blank optional cells come through as nil, not empty strings.
	bob := repo.replaced[1]
	assert.Nil(t, bob.ReportingManagerID)
	assert.Nil(t, bob.Status)

	// The previous table contents are gone.
	_, err = repo.GetByEmployeeID(context.Background(), "OLD1")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUploadEmployeesMissingColumns(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	content := buildEmployeeWorkbook(t, [][]interface{}{
		{"Employee ID", "Employee Name", "Vertical"},
		{"GCC101", "Alice", "Engineering"},
	})

	_, err := svc.UploadEmployees(context.Background(), employee.UploadEmployeesRequest{
		Filename: "employees.xlsx",
		Content:  content,
	})

	var missing *employee.MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Contains(t, missing.Columns, "reporting_manager_id")
	assert.Contains(t, missing.Columns, "status")
	assert.NotContains(t, missing.Columns, "vertical")
}

func TestUploadEmployeesRejectsNonExcel(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	_, err := svc.UploadEmployees(context.Background(), employee.UploadEmployeesRequest{
		Filename: "employees.csv",
		Content:  []byte("employee_id,employee_name"),
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
}

func TestListEmployeesPagination(t *testing.T) {
	repo := newFakeEmployeeRepo()
	repo.listTotal = 101
	repo.listRows = []employee.Employee{{EmployeeID: "GCC101", EmployeeName: "Alice"}}
	svc := NewEmployeeService(repo)

	resp, err := svc.ListEmployees(context.Background(), employee.EmployeeFilter{Page: 2, PageSize: 50})
	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.Total)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 3, resp.TotalPages)
	require.Len(t, resp.Employees, 1)
}

func TestCreateEmployeeDuplicate(t *testing.T) {
	repo := newFakeEmployeeRepo()
	repo.byID["GCC101"] = employee.Employee{EmployeeID: "GCC101", EmployeeName: "Alice"}
	svc := NewEmployeeService(repo)

	_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		EmployeeID:   "GCC101",
		EmployeeName: "Alice Again",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)
}
