package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtrack/rtrack-backend-go/internal/domain/attendance"
	"github.com/rtrack/rtrack-backend-go/internal/domain/compliance"
	"github.com/rtrack/rtrack-backend-go/internal/domain/employee"
	"github.com/rtrack/rtrack-backend-go/internal/pkg/validator"
)

type memAttendanceRepo struct {
	rows   []attendance.Attendance
	nextID int
}

func (f *memAttendanceRepo) InsertBatch(ctx context.Context, rows []attendance.Attendance) (int, error) {
	now := time.Now()
	for _, row := range rows {
		f.nextID++
		row.ID = f.nextID
		row.CreatedAt = now
		f.rows = append(f.rows, row)
	}
	return len(rows), nil
}

func (f *memAttendanceRepo) WeekExists(ctx context.Context, weekStart, weekEnd time.Time) (bool, error) {
	for _, row := range f.rows {
		if row.WeekStart.Equal(weekStart) {
			return true, nil
		}
	}
	return false, nil
}

func (f *memAttendanceRepo) GetByWeek(ctx context.Context, weekStart, weekEnd time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, row := range f.rows {
		if row.WeekStart.Equal(weekStart) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *memAttendanceRepo) GetByMonth(ctx context.Context, year, month int) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *memAttendanceRepo) GetByQuarter(ctx context.Context, year, quarter int) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *memAttendanceRepo) LatestUploaded(ctx context.Context) (attendance.Attendance, error) {
	if len(f.rows) == 0 {
		return attendance.Attendance{}, attendance.ErrNoUploads
	}
	latest := f.rows[0]
	for _, row := range f.rows[1:] {
		if row.ID > latest.ID {
			latest = row
		}
	}
	return latest, nil
}

func (f *memAttendanceRepo) LatestWeek(ctx context.Context) (attendance.Attendance, error) {
	if len(f.rows) == 0 {
		return attendance.Attendance{}, attendance.ErrNoUploads
	}
	latest := f.rows[0]
	for _, row := range f.rows[1:] {
		if row.WeekStart.After(latest.WeekStart) {
			latest = row
		}
	}
	return latest, nil
}

func (f *memAttendanceRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.rows)), nil
}

func (f *memAttendanceRepo) DeleteAll(ctx context.Context) error {
	f.rows = nil
	return nil
}

// nameOnlyEmployeeRepo stubs the single lookup the attendance service uses.
type nameOnlyEmployeeRepo struct {
	names map[string]string
}

func (f *nameOnlyEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *nameOnlyEmployeeRepo) GetAll(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *nameOnlyEmployeeRepo) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *nameOnlyEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	return newEmployee, nil
}

func (f *nameOnlyEmployeeRepo) Update(ctx context.Context, employeeID string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *nameOnlyEmployeeRepo) Delete(ctx context.Context, employeeID string) error {
	return nil
}

func (f *nameOnlyEmployeeRepo) ReplaceAll(ctx context.Context, employees []employee.Employee) (int, error) {
	return len(employees), nil
}

func (f *nameOnlyEmployeeRepo) ReporteeIDs(ctx context.Context, managerID string) ([]string, error) {
	return nil, nil
}

func (f *nameOnlyEmployeeRepo) NamesByEmployeeIDs(ctx context.Context, employeeIDs []string) (map[string]string, error) {
	return f.names, nil
}

func (f *nameOnlyEmployeeRepo) CountByException(ctx context.Context, name string) (int64, error) {
	return 0, nil
}

func (f *nameOnlyEmployeeRepo) DistinctExceptions(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (f *nameOnlyEmployeeRepo) Facets(ctx context.Context) (employee.Facets, error) {
	return employee.Facets{}, nil
}

// stubComplianceService records the recalculation trigger.
type stubComplianceService struct {
	calculated []compliance.WeeklyCompliance
	err        error
	weekStart  time.Time
	weekNumber int
}

func (f *stubComplianceService) GetWeeklyPivot(ctx context.Context, filter compliance.PivotFilter) (compliance.WeeklyPivotResponse, error) {
	return compliance.WeeklyPivotResponse{}, nil
}

func (f *stubComplianceService) GetMonthlyPivot(ctx context.Context, filter compliance.PivotFilter) (compliance.MonthlyPivotResponse, error) {
	return compliance.MonthlyPivotResponse{}, nil
}

func (f *stubComplianceService) GetQuarterlyPivot(ctx context.Context, filter compliance.PivotFilter) (compliance.QuarterlyPivotResponse, error) {
	return compliance.QuarterlyPivotResponse{}, nil
}

func (f *stubComplianceService) CalculateWeekly(ctx context.Context, weekStart, weekEnd time.Time, weekNumber int) ([]compliance.WeeklyCompliance, error) {
	f.weekStart = weekStart
	f.weekNumber = weekNumber
	return f.calculated, f.err
}

func (f *stubComplianceService) CalculateMonthly(ctx context.Context, year, month int) (compliance.CalculateResult, error) {
	return compliance.CalculateResult{}, nil
}

func (f *stubComplianceService) CalculateQuarterly(ctx context.Context, year, quarter int) (compliance.CalculateResult, error) {
	return compliance.CalculateResult{}, nil
}

func (f *stubComplianceService) CleanDatabase(ctx context.Context, tableName string) (compliance.CleanResult, error) {
	return compliance.CleanResult{}, nil
}

func uploadRequest(t *testing.T) attendance.UploadAttendanceRequest {
	t.Helper()
	return attendance.UploadAttendanceRequest{
		Filename: "week2.xlsx",
		Content:  swipeExport(t),
	}
}

func TestUploadAttendance(t *testing.T) {
	repo := &memAttendanceRepo{}
	complianceSvc := &stubComplianceService{calculated: make([]compliance.WeeklyCompliance, 4)}
	svc := NewAttendanceService(repo, &nameOnlyEmployeeRepo{names: map[string]string{"GCC101": "Alice"}}, complianceSvc)

	result, err := svc.UploadAttendance(context.Background(), uploadRequest(t))
	require.NoError(t, err)
	assert.Equal(t, 3, result.RecordsLoaded)
	assert.Equal(t, "week2.xlsx", result.Filename)
	assert.Equal(t, "2025-01-06", result.DateRange.Start)
	assert.Equal(t, "2025-01-07", result.DateRange.End)
	assert.Equal(t, "Attendance file uploaded successfully and calculated compliance for 4 employees", result.Message)

	// Recalculation ran for the uploaded week.
	assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), complianceSvc.weekStart)
	assert.Equal(t, 2, complianceSvc.weekNumber)

	// Known employees get their master-table name; every row carries the
	// same batch id.
	require.Len(t, repo.rows, 3)
	assert.Equal(t, "Alice", repo.rows[0].EmployeeName)
	assert.Equal(t, "GCC102", repo.rows[1].EmployeeName)
	require.NotNil(t, repo.rows[0].UploadBatchID)
	assert.Equal(t, repo.rows[0].UploadBatchID, repo.rows[2].UploadBatchID)
}

func TestUploadAttendanceDuplicateWeek(t *testing.T) {
	repo := &memAttendanceRepo{}
	svc := NewAttendanceService(repo, &nameOnlyEmployeeRepo{}, &stubComplianceService{})

	_, err := svc.UploadAttendance(context.Background(), uploadRequest(t))
	require.NoError(t, err)

	_, err = svc.UploadAttendance(context.Background(), uploadRequest(t))
	var weekExists *attendance.WeekExistsError
	require.ErrorAs(t, err, &weekExists)
	assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), weekExists.WeekStart)

	// The rejected upload added nothing.
	assert.Len(t, repo.rows, 3)
}

func TestUploadAttendanceCalculationFailureKeepsRows(t *testing.T) {
	repo := &memAttendanceRepo{}
	complianceSvc := &stubComplianceService{err: errors.New("boom")}
	svc := NewAttendanceService(repo, &nameOnlyEmployeeRepo{}, complianceSvc)

	result, err := svc.UploadAttendance(context.Background(), uploadRequest(t))
	require.NoError(t, err)
	assert.Contains(t, result.Message, "Compliance calculation failed: boom")
	assert.Len(t, repo.rows, 3)
}

func TestUploadAttendanceRejectsNonExcel(t *testing.T) {
	svc := NewAttendanceService(&memAttendanceRepo{}, &nameOnlyEmployeeRepo{}, &stubComplianceService{})

	_, err := svc.UploadAttendance(context.Background(), attendance.UploadAttendanceRequest{
		Filename: "week2.csv",
		Content:  []byte("not a workbook"),
	})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestGetLastUploadInfo(t *testing.T) {
	repo := &memAttendanceRepo{}
	svc := NewAttendanceService(repo, &nameOnlyEmployeeRepo{}, &stubComplianceService{})

	// Nothing uploaded yet.
	info, err := svc.GetLastUploadInfo(context.Background())
	require.NoError(t, err)
	assert.False(t, info.HasUpload)
	assert.Equal(t, "No attendance data has been uploaded yet", info.Message)

	_, err = svc.UploadAttendance(context.Background(), uploadRequest(t))
	require.NoError(t, err)

	info, err = svc.GetLastUploadInfo(context.Background())
	require.NoError(t, err)
	assert.True(t, info.HasUpload)
	assert.Equal(t, "2025-01-06", info.WeekStart)
	assert.Equal(t, "2025-01-10", info.WeekEnd)
	assert.Equal(t, 2, info.WeekNumber)
	assert.Equal(t, 2025, info.Year)
	assert.Equal(t, 3, info.RecordsCount)
	// GCC101 appears twice, GCC102 once.
	assert.Equal(t, 2, info.EmployeesCount)
	require.NotNil(t, info.DateRange)
	assert.Equal(t, "2025-01-06", info.DateRange.Start)
	assert.Equal(t, "2025-01-07", info.DateRange.End)
	require.NotNil(t, info.UploadedAt)

	// A database clean leaves the endpoint reporting no uploads again.
	require.NoError(t, repo.DeleteAll(context.Background()))
	info, err = svc.GetLastUploadInfo(context.Background())
	require.NoError(t, err)
	assert.False(t, info.HasUpload)
}

func TestGetAttendanceEmpty(t *testing.T) {
	svc := NewAttendanceService(&memAttendanceRepo{}, &nameOnlyEmployeeRepo{}, &stubComplianceService{})

	resp, err := svc.GetAttendance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Total)
	assert.Empty(t, resp.Attendances)
}
