package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rtrack/rtrack-backend-go/internal/domain/attendance"
	"github.com/rtrack/rtrack-backend-go/internal/domain/compliance"
	"github.com/rtrack/rtrack-backend-go/internal/domain/employee"
)

type attendanceServiceImpl struct {
	attendanceRepo    attendance.AttendanceRepository
	employeeRepo      employee.EmployeeRepository
	complianceService compliance.ComplianceService
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	complianceService compliance.ComplianceService,
) attendance.AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo:    attendanceRepo,
		employeeRepo:      employeeRepo,
		complianceService: complianceService,
	}
}

// UploadAttendance implements attendance.AttendanceService. One upload
// covers one Mon-Fri week; re-uploading an existing week is rejected rather
// than merged. Weekly compliance is recomputed afterwards, but a failure
// there never rolls back the loaded rows.
func (s *attendanceServiceImpl) UploadAttendance(ctx context.Context, req attendance.UploadAttendanceRequest) (attendance.UploadResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.UploadResult{}, err
	}

	records, err := parseWorkbook(req.Content)
	if err != nil {
		return attendance.UploadResult{}, err
	}
	if len(records) == 0 {
		return attendance.UploadResult{}, attendance.ErrNoRecordsInFile
	}

	weekStart := records[0].WeekStart
	weekEnd := records[0].WeekEnd
	weekNumber := records[0].WeekNumber

	exists, err := s.attendanceRepo.WeekExists(ctx, weekStart, weekEnd)
	if err != nil {
		return attendance.UploadResult{}, err
	}
	if exists {
		return attendance.UploadResult{}, &attendance.WeekExistsError{WeekStart: weekStart, WeekEnd: weekEnd}
	}

	ids := make([]string, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.EmployeeID)
	}
	names, err := s.employeeRepo.NamesByEmployeeIDs(ctx, ids)
	if err != nil {
		return attendance.UploadResult{}, err
	}

	batchID := uuid.New()
	for i := range records {
		if name, ok := names[records[i].EmployeeID]; ok {
			records[i].EmployeeName = name
		}
		records[i].UploadBatchID = &batchID
	}

	inserted, err := s.attendanceRepo.InsertBatch(ctx, records)
	if err != nil {
		return attendance.UploadResult{}, err
	}

	message := "Attendance file uploaded successfully"
	if calculated, err := s.complianceService.CalculateWeekly(ctx, weekStart, weekEnd, weekNumber); err != nil {
		message += fmt.Sprintf(" (Note: Compliance calculation failed: %s)", err)
	} else {
		message += fmt.Sprintf(" and calculated compliance for %d employees", len(calculated))
	}

	minDate, maxDate := records[0].Date, records[0].Date
	for _, rec := range records[1:] {
		if rec.Date.Before(minDate) {
			minDate = rec.Date
		}
		if rec.Date.After(maxDate) {
			maxDate = rec.Date
		}
	}

	return attendance.UploadResult{
		Message:       message,
		RecordsLoaded: inserted,
		Filename:      req.Filename,
		DateRange: attendance.DateRange{
			Start: minDate.Format("2006-01-02"),
			End:   maxDate.Format("2006-01-02"),
		},
	}, nil
}

// GetAttendance implements attendance.AttendanceService. It returns the
// most recently loaded week's rows plus the grand total across all weeks.
func (s *attendanceServiceImpl) GetAttendance(ctx context.Context) (attendance.ListAttendanceResponse, error) {
	total, err := s.attendanceRepo.CountAll(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	resp := attendance.ListAttendanceResponse{
		Total:       total,
		Attendances: []attendance.AttendanceResponse{},
	}

	latest, err := s.attendanceRepo.LatestWeek(ctx)
	if err != nil {
		if err == attendance.ErrNoUploads {
			return resp, nil
		}
		return attendance.ListAttendanceResponse{}, err
	}

	records, err := s.attendanceRepo.GetByWeek(ctx, latest.WeekStart, latest.WeekEnd)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	for _, rec := range records {
		resp.Attendances = append(resp.Attendances, toAttendanceResponse(rec))
	}

	return resp, nil
}

// GetLastUploadInfo implements attendance.AttendanceService.
func (s *attendanceServiceImpl) GetLastUploadInfo(ctx context.Context) (attendance.LastUploadInfo, error) {
	latest, err := s.attendanceRepo.LatestUploaded(ctx)
	if err != nil {
		if err == attendance.ErrNoUploads {
			return attendance.LastUploadInfo{
				HasUpload: false,
				Message:   "No attendance data has been uploaded yet",
			}, nil
		}
		return attendance.LastUploadInfo{}, err
	}

	records, err := s.attendanceRepo.GetByWeek(ctx, latest.WeekStart, latest.WeekEnd)
	if err != nil {
		return attendance.LastUploadInfo{}, err
	}

	minDate, maxDate := latest.Date, latest.Date
	uniqueEmployees := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if rec.Date.Before(minDate) {
			minDate = rec.Date
		}
		if rec.Date.After(maxDate) {
			maxDate = rec.Date
		}
		uniqueEmployees[rec.EmployeeID] = struct{}{}
	}

	uploadedAt := latest.CreatedAt.Format(time.RFC3339)

	return attendance.LastUploadInfo{
		HasUpload:  true,
		WeekStart:  latest.WeekStart.Format("2006-01-02"),
		WeekEnd:    latest.WeekEnd.Format("2006-01-02"),
		WeekNumber: latest.WeekNumber,
		Year:       latest.Year,
		DateRange: &attendance.DateRange{
			Start: minDate.Format("2006-01-02"),
			End:   maxDate.Format("2006-01-02"),
		},
		RecordsCount:   len(records),
		EmployeesCount: len(uniqueEmployees),
		UploadedAt:     &uploadedAt,
	}, nil
}

func toAttendanceResponse(rec attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		EmployeeName:  rec.EmployeeName,
		SwipeIn:       rec.SwipeIn,
		SwipeOut:      rec.SwipeOut,
		WorkHours:     rec.WorkHours,
		HoursWorked:   rec.HoursWorked,
		IsPresent:     rec.IsPresent,
		Date:          rec.Date.Format("2006-01-02"),
		WeekStart:     rec.WeekStart.Format("2006-01-02"),
		WeekEnd:       rec.WeekEnd.Format("2006-01-02"),
		WeekNumber:    rec.WeekNumber,
		MonthNumber:   rec.MonthNumber,
		QuarterNumber: rec.QuarterNumber,
		Year:          rec.Year,
	}
}
