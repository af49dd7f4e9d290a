package exception

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtrack/rtrack-backend-go/internal/domain/employee"
	"github.com/rtrack/rtrack-backend-go/internal/domain/exception"
)

type fakeExceptionRepo struct {
	byName  map[string]exception.Exception
	nextID  int
	deleted []int
}

func newFakeExceptionRepo(names ...string) *fakeExceptionRepo {
	repo := &fakeExceptionRepo{byName: make(map[string]exception.Exception), nextID: 1}
	for _, name := range names {
		_, _ = repo.Create(context.Background(), name)
	}
	return repo
}

func (f *fakeExceptionRepo) List(ctx context.Context, filter exception.ExceptionFilter) ([]exception.Exception, int64, error) {
	var all []exception.Exception
	for _, exc := range f.byName {
		all = append(all, exc)
	}
	return all, int64(len(all)), nil
}

func (f *fakeExceptionRepo) GetByID(ctx context.Context, id int) (exception.Exception, error) {
	for _, exc := range f.byName {
		if exc.ID == id {
			return exc, nil
		}
	}
	return exception.Exception{}, exception.ErrExceptionNotFound
}

func (f *fakeExceptionRepo) GetByName(ctx context.Context, name string) (exception.Exception, error) {
	exc, ok := f.byName[name]
	if !ok {
		return exception.Exception{}, exception.ErrExceptionNotFound
	}
	return exc, nil
}

func (f *fakeExceptionRepo) Create(ctx context.Context, name string) (exception.Exception, error) {
	exc := exception.Exception{ID: f.nextID, Name: name, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	f.nextID++
	f.byName[name] = exc
	return exc, nil
}

func (f *fakeExceptionRepo) UpdateName(ctx context.Context, id int, name string) (exception.Exception, error) {
	exc, err := f.GetByID(ctx, id)
	if err != nil {
		return exception.Exception{}, err
	}
	delete(f.byName, exc.Name)
	exc.Name = name
	f.byName[name] = exc
	return exc, nil
}

func (f *fakeExceptionRepo) Delete(ctx context.Context, id int) error {
	exc, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	delete(f.byName, exc.Name)
	f.deleted = append(f.deleted, id)
	return nil
}

// exceptionEmployeeRepo stubs only what the exception service touches.
type exceptionEmployeeRepo struct {
	exceptionCounts map[string]int64
	distinct        []string
}

func (f *exceptionEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *exceptionEmployeeRepo) GetAll(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *exceptionEmployeeRepo) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *exceptionEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	return newEmployee, nil
}

func (f *exceptionEmployeeRepo) Update(ctx context.Context, employeeID string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *exceptionEmployeeRepo) Delete(ctx context.Context, employeeID string) error {
	return nil
}

func (f *exceptionEmployeeRepo) ReplaceAll(ctx context.Context, employees []employee.Employee) (int, error) {
	return len(employees), nil
}

func (f *exceptionEmployeeRepo) ReporteeIDs(ctx context.Context, managerID string) ([]string, error) {
	return nil, nil
}

func (f *exceptionEmployeeRepo) NamesByEmployeeIDs(ctx context.Context, employeeIDs []string) (map[string]string, error) {
	return map[string]string{}, nil
}

func (f *exceptionEmployeeRepo) CountByException(ctx context.Context, name string) (int64, error) {
	return f.exceptionCounts[name], nil
}

func (f *exceptionEmployeeRepo) DistinctExceptions(ctx context.Context) ([]string, error) {
	return f.distinct, nil
}

func (f *exceptionEmployeeRepo) Facets(ctx context.Context) (employee.Facets, error) {
	return employee.Facets{}, nil
}

func TestCreateExceptionNormalizesAndRejectsDuplicates(t *testing.T) {
	repo := newFakeExceptionRepo("other")
	svc := NewExceptionService(repo, &exceptionEmployeeRepo{})

	created, err := svc.CreateException(context.Background(), exception.CreateExceptionRequest{Name: "weekly_3_day"})
	require.NoError(t, err)
	assert.Equal(t, "weekly_3_day", created.Name)

	// Special names are lowercased before the duplicate check.
	_, err = svc.CreateException(context.Background(), exception.CreateExceptionRequest{Name: "OTHER"})
	assert.ErrorIs(t, err, exception.ErrNameExists)
}

func TestCreateExceptionInvalidName(t *testing.T) {
	svc := NewExceptionService(newFakeExceptionRepo(), &exceptionEmployeeRepo{})

	_, err := svc.CreateException(context.Background(), exception.CreateExceptionRequest{Name: "three_day_week"})
	assert.Error(t, err)
}

func TestDeleteExceptionInUse(t *testing.T) {
	repo := newFakeExceptionRepo("monthly_4_day")
	employeeRepo := &exceptionEmployeeRepo{exceptionCounts: map[string]int64{"monthly_4_day": 3}}
	svc := NewExceptionService(repo, employeeRepo)

	err := svc.DeleteException(context.Background(), 1)
	var inUse *exception.InUseError
	require.ErrorAs(t, err, &inUse)
	assert.Equal(t, int64(3), inUse.EmployeeCount)
	assert.Empty(t, repo.deleted)

	// Unreferenced rules delete cleanly.
	employeeRepo.exceptionCounts = nil
	require.NoError(t, svc.DeleteException(context.Background(), 1))
	assert.Equal(t, []int{1}, repo.deleted)
}

func TestUpdateExceptionNoOpWhenUnchanged(t *testing.T) {
	repo := newFakeExceptionRepo("other")
	svc := NewExceptionService(repo, &exceptionEmployeeRepo{})

	name := "Other"
	resp, err := svc.UpdateException(context.Background(), 1, exception.UpdateExceptionRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "other", resp.Name)
}

func TestPopulateFromEmployees(t *testing.T) {
	repo := newFakeExceptionRepo("other")
	employeeRepo := &exceptionEmployeeRepo{distinct: []string{"other", "weekly_2_day", "sabbatical", "quarterly_10_day"}}
	svc := NewExceptionService(repo, employeeRepo)

	result, err := svc.PopulateFromEmployees(context.Background())
	require.NoError(t, err)
	// "other" already exists, "sabbatical" is not a recognized pattern.
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, 4, result.TotalFound)
	assert.Equal(t, "Populated 2 exception(s) from employee records", result.Message)

	_, err = repo.GetByName(context.Background(), "weekly_2_day")
	assert.NoError(t, err)
	_, err = repo.GetByName(context.Background(), "sabbatical")
	assert.ErrorIs(t, err, exception.ErrExceptionNotFound)
}
