package compliance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rtrack/rtrack-backend-go/internal/domain/attendance"
	"github.com/rtrack/rtrack-backend-go/internal/domain/compliance"
	"github.com/rtrack/rtrack-backend-go/internal/domain/employee"
	"github.com/rtrack/rtrack-backend-go/internal/pkg/jwt"
)

type complianceServiceImpl struct {
	complianceRepo compliance.ComplianceRepository
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewComplianceService(
	complianceRepo compliance.ComplianceRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) compliance.ComplianceService {
	return &complianceServiceImpl{
		complianceRepo: complianceRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// periodTotals is one employee's attendance rolled up over a period.
type periodTotals struct {
	days    float64
	hours   float64
	minDate time.Time
	maxDate time.Time
}

func aggregate(records []attendance.Attendance) map[string]*periodTotals {
	totals := make(map[string]*periodTotals)
	for _, rec := range records {
		t, ok := totals[rec.EmployeeID]
		if !ok {
			t = &periodTotals{minDate: rec.Date, maxDate: rec.Date}
			totals[rec.EmployeeID] = t
		}
		t.days += float64(rec.IsPresent)
		if rec.HoursWorked != nil {
			t.hours += *rec.HoursWorked
		}
		if rec.Date.Before(t.minDate) {
			t.minDate = rec.Date
		}
		if rec.Date.After(t.maxDate) {
			t.maxDate = rec.Date
		}
	}
	return totals
}

// CalculateWeekly implements compliance.ComplianceService. Every employee in
// the master table gets a row for the week: those without attendance come
// out as No Data rather than being skipped, so the pivot grid never has
// holes.
func (s *complianceServiceImpl) CalculateWeekly(ctx context.Context, weekStart, weekEnd time.Time, weekNumber int) ([]compliance.WeeklyCompliance, error) {
	attendances, err := s.attendanceRepo.GetByWeek(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	if len(attendances) == 0 {
		return []compliance.WeeklyCompliance{}, nil
	}

	totals := aggregate(attendances)

	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]compliance.WeeklyCompliance, 0, len(employees))
	for _, emp := range employees {
		req := compliance.ParseRequirements(emp.Exception)

		var days, hours float64
		t, hasData := totals[emp.EmployeeID]
		if hasData {
			days, hours = t.days, t.hours
		}

		status := compliance.Classify(req, compliance.PeriodWeekly, hasData, days, hours)

		rec := compliance.WeeklyCompliance{
			EmployeeID:           emp.EmployeeID,
			EmployeeName:         emp.EmployeeName,
			ReportingManagerID:   emp.ReportingManagerID,
			ReportingManagerName: emp.ReportingManagerName,
			VerticalHeadID:       emp.VerticalHeadID,
			VerticalHeadName:     emp.VerticalHeadName,
			Vertical:             emp.Vertical,
			Status:               emp.Status,
			Exception:            emp.Exception,
			WeekNumber:           weekNumber,
			WeekStart:            weekStart,
			WeekEnd:              weekEnd,
			TotalDaysPresent:     days,
			TotalHoursWorked:     hours,
			ComplianceStatus:     status,
		}
		if !req.Exempt {
			weeklyDays, weeklyHours := req.Threshold(compliance.PeriodWeekly)
			rec.WeeklyDays = &weeklyDays
			rec.WeeklyHours = &weeklyHours
		}
		switch status {
		case compliance.StatusCompliant:
			one := 1.0
			rec.IsCompliant = &one
		case compliance.StatusNotCompliant:
			zero := 0.0
			rec.IsCompliant = &zero
		}

		records = append(records, rec)
	}

	if err := s.complianceRepo.ReplaceWeekly(ctx, weekStart, weekEnd, records); err != nil {
		return nil, err
	}

	return records, nil
}

// CalculateMonthly implements compliance.ComplianceService.
func (s *complianceServiceImpl) CalculateMonthly(ctx context.Context, year, month int) (compliance.CalculateResult, error) {
	if month < 1 || month > 12 {
		return compliance.CalculateResult{}, compliance.ErrInvalidMonth
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	attendances, err := s.attendanceRepo.GetByMonth(ctx, year, month)
	if err != nil {
		return compliance.CalculateResult{}, err
	}

	message := fmt.Sprintf("Monthly compliance calculated for %d-%02d", year, month)
	if len(attendances) == 0 {
		return compliance.CalculateResult{Message: message}, nil
	}

	totals := aggregate(attendances)

	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return compliance.CalculateResult{}, err
	}

	compliantCount := 0
	records := make([]compliance.MonthlyCompliance, 0, len(employees))
	for _, emp := range employees {
		req := compliance.ParseRequirements(emp.Exception)

		var days, hours float64
		periodStart, periodEnd := monthStart, monthEnd
		t, hasData := totals[emp.EmployeeID]
		if hasData {
			days, hours = t.days, t.hours
			periodStart, periodEnd = t.minDate, t.maxDate
		}

		status := compliance.Classify(req, compliance.PeriodMonthly, hasData, days, hours)

		rec := compliance.MonthlyCompliance{
			EmployeeID:           emp.EmployeeID,
			EmployeeName:         emp.EmployeeName,
			ReportingManagerID:   emp.ReportingManagerID,
			ReportingManagerName: emp.ReportingManagerName,
			VerticalHeadID:       emp.VerticalHeadID,
			VerticalHeadName:     emp.VerticalHeadName,
			Vertical:             emp.Vertical,
			Status:               emp.Status,
			Exception:            emp.Exception,
			Month:                month,
			Year:                 year,
			MonthStart:           periodStart,
			MonthEnd:             periodEnd,
			TotalDaysPresent:     days,
			TotalHoursWorked:     hours,
			ComplianceStatus:     status,
		}
		if !req.Exempt {
			monthlyDays, monthlyHours := req.Threshold(compliance.PeriodMonthly)
			rec.MonthlyDays = &monthlyDays
			rec.MonthlyHours = &monthlyHours
		}
		switch status {
		case compliance.StatusCompliant:
			one := 1
			rec.IsCompliant = &one
			compliantCount++
		case compliance.StatusNotCompliant:
			zero := 0
			rec.IsCompliant = &zero
		}

		records = append(records, rec)
	}

	if err := s.complianceRepo.ReplaceMonthly(ctx, year, month, records); err != nil {
		return compliance.CalculateResult{}, err
	}

	return compliance.CalculateResult{
		Message:           message,
		RecordsCalculated: len(records),
		CompliantCount:    compliantCount,
		NonCompliantCount: len(records) - compliantCount,
	}, nil
}

// CalculateQuarterly implements compliance.ComplianceService.
func (s *complianceServiceImpl) CalculateQuarterly(ctx context.Context, year, quarter int) (compliance.CalculateResult, error) {
	if quarter < 1 || quarter > 4 {
		return compliance.CalculateResult{}, compliance.ErrInvalidQuarter
	}

	quarterStart := time.Date(year, time.Month((quarter-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
	quarterEnd := quarterStart.AddDate(0, 3, -1)

	attendances, err := s.attendanceRepo.GetByQuarter(ctx, year, quarter)
	if err != nil {
		return compliance.CalculateResult{}, err
	}

	message := fmt.Sprintf("Quarterly compliance calculated for Q%d %d", quarter, year)
	if len(attendances) == 0 {
		return compliance.CalculateResult{Message: message}, nil
	}

	totals := aggregate(attendances)

	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return compliance.CalculateResult{}, err
	}

	compliantCount := 0
	records := make([]compliance.QuarterlyCompliance, 0, len(employees))
	for _, emp := range employees {
		req := compliance.ParseRequirements(emp.Exception)

		var days, hours float64
		periodStart, periodEnd := quarterStart, quarterEnd
		t, hasData := totals[emp.EmployeeID]
		if hasData {
			days, hours = t.days, t.hours
			periodStart, periodEnd = t.minDate, t.maxDate
		}

		status := compliance.Classify(req, compliance.PeriodQuarterly, hasData, days, hours)

		rec := compliance.QuarterlyCompliance{
			EmployeeID:           emp.EmployeeID,
			EmployeeName:         emp.EmployeeName,
			ReportingManagerID:   emp.ReportingManagerID,
			ReportingManagerName: emp.ReportingManagerName,
			VerticalHeadID:       emp.VerticalHeadID,
			VerticalHeadName:     emp.VerticalHeadName,
			Vertical:             emp.Vertical,
			Status:               emp.Status,
			Exception:            emp.Exception,
			Quarter:              quarter,
			Year:                 year,
			QuarterStart:         periodStart,
			QuarterEnd:           periodEnd,
			TotalDaysPresent:     days,
			TotalHoursWorked:     hours,
			ComplianceStatus:     status,
		}
		if !req.Exempt {
			quarterlyDays, quarterlyHours := req.Threshold(compliance.PeriodQuarterly)
			rec.QuarterlyDays = &quarterlyDays
			rec.QuarterlyHours = &quarterlyHours
		}
		switch status {
		case compliance.StatusCompliant:
			one := 1
			rec.IsCompliant = &one
			compliantCount++
		case compliance.StatusNotCompliant:
			zero := 0
			rec.IsCompliant = &zero
		}

		records = append(records, rec)
	}

	if err := s.complianceRepo.ReplaceQuarterly(ctx, year, quarter, records); err != nil {
		return compliance.CalculateResult{}, err
	}

	return compliance.CalculateResult{
		Message:           message,
		RecordsCalculated: len(records),
		CompliantCount:    compliantCount,
		NonCompliantCount: len(records) - compliantCount,
	}, nil
}

// GetWeeklyPivot implements compliance.ComplianceService.
func (s *complianceServiceImpl) GetWeeklyPivot(ctx context.Context, filter compliance.PivotFilter) (compliance.WeeklyPivotResponse, error) {
	identity, scope, err := s.callerScope(ctx)
	if err != nil {
		return compliance.WeeklyPivotResponse{}, err
	}

	records, err := s.complianceRepo.ListWeekly(ctx, compliance.WeeklyQuery{
		Year:        filter.Year,
		Month:       filter.Month,
		EmployeeIDs: scope,
	})
	if err != nil {
		return compliance.WeeklyPivotResponse{}, err
	}

	return buildWeeklyPivot(records, identity, filter), nil
}

// GetMonthlyPivot implements compliance.ComplianceService.
func (s *complianceServiceImpl) GetMonthlyPivot(ctx context.Context, filter compliance.PivotFilter) (compliance.MonthlyPivotResponse, error) {
	identity, scope, err := s.callerScope(ctx)
	if err != nil {
		return compliance.MonthlyPivotResponse{}, err
	}

	records, err := s.complianceRepo.ListMonthly(ctx, compliance.PeriodQuery{
		Year:        filter.Year,
		EmployeeIDs: scope,
	})
	if err != nil {
		return compliance.MonthlyPivotResponse{}, err
	}

	return buildMonthlyPivot(records, identity, filter), nil
}

// GetQuarterlyPivot implements compliance.ComplianceService.
func (s *complianceServiceImpl) GetQuarterlyPivot(ctx context.Context, filter compliance.PivotFilter) (compliance.QuarterlyPivotResponse, error) {
	identity, scope, err := s.callerScope(ctx)
	if err != nil {
		return compliance.QuarterlyPivotResponse{}, err
	}

	records, err := s.complianceRepo.ListQuarterly(ctx, compliance.PeriodQuery{
		Year:        filter.Year,
		EmployeeIDs: scope,
	})
	if err != nil {
		return compliance.QuarterlyPivotResponse{}, err
	}

	return buildQuarterlyPivot(records, identity, filter), nil
}

// callerScope resolves the caller and, for non-admins, the employee ids
// they may see: themselves plus direct reports.
func (s *complianceServiceImpl) callerScope(ctx context.Context) (jwt.Identity, []string, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return jwt.Identity{}, nil, err
	}

	if identity.IsAdmin {
		return identity, nil, nil
	}

	reportees, err := s.employeeRepo.ReporteeIDs(ctx, identity.EmployeeID)
	if err != nil {
		return jwt.Identity{}, nil, err
	}

	return identity, append([]string{identity.EmployeeID}, reportees...), nil
}

// cleanableTables lists what the maintenance endpoint may wipe, in deletion
// order.
var cleanableTables = []string{"quarterly_compliance", "monthly_compliance", "weekly_compliance", "attendance"}

// CleanDatabase implements compliance.ComplianceService.
func (s *complianceServiceImpl) CleanDatabase(ctx context.Context, tableName string) (compliance.CleanResult, error) {
	cleaners := map[string]func(context.Context) error{
		"attendance":           s.attendanceRepo.DeleteAll,
		"weekly_compliance":    s.complianceRepo.DeleteAllWeekly,
		"monthly_compliance":   s.complianceRepo.DeleteAllMonthly,
		"quarterly_compliance": s.complianceRepo.DeleteAllQuarterly,
	}

	name := strings.ToLower(strings.TrimSpace(tableName))

	if name == "employee" || name == "employees" {
		return compliance.CleanResult{}, compliance.ErrEmployeeTableProtected
	}

	deleted := make(map[string]string)

	if name != "" {
		clean, ok := cleaners[name]
		if !ok {
			return compliance.CleanResult{}, &compliance.InvalidTableError{
				Name:  tableName,
				Valid: []string{"attendance", "weekly_compliance", "monthly_compliance", "quarterly_compliance"},
			}
		}

		if err := clean(ctx); err != nil {
			return compliance.CleanResult{}, err
		}
		deleted[name] = "all"

		return compliance.CleanResult{
			Message:       fmt.Sprintf("Data from '%s' table has been deleted.", name),
			DeletedCounts: deleted,
		}, nil
	}

	for _, table := range cleanableTables {
		if err := cleaners[table](ctx); err != nil {
			return compliance.CleanResult{}, err
		}
		deleted[table] = "all"
	}

	note := "Employee records were preserved to maintain authentication capability"
	return compliance.CleanResult{
		Message:       "All data from attendance and compliance tables has been deleted. Employee records preserved.",
		DeletedCounts: deleted,
		Note:          &note,
	}, nil
}
