package compliance

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rtrack/rtrack-backend-go/internal/domain/compliance"
	"github.com/rtrack/rtrack-backend-go/internal/pkg/jwt"
)

// Cell threshold fallbacks when a record carries no targets (exempt rules).
const (
	fallbackWeeklyDays     = 5.0
	fallbackWeeklyHours    = 40.0
	fallbackMonthlyDays    = 8.0
	fallbackMonthlyHours   = 62.0
	fallbackQuarterlyDays  = 24.0
	fallbackQuarterlyHours = 186.0
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func orElse(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

// rowMeta is the employee descriptor shared by all three pivot row shapes.
type rowMeta struct {
	employeeID string
	name       string
	status     *string
	exception  *string
}

// matchesFilter applies the reportee-level filters. The literal "all"
// disables a filter, matching the dropdowns that send it.
func matchesFilter(m rowMeta, filter compliance.PivotFilter) bool {
	if filter.Status != "" && !strings.EqualFold(filter.Status, "all") {
		if m.status == nil || *m.status != filter.Status {
			return false
		}
	}
	if filter.Exception != "" && !strings.EqualFold(filter.Exception, "all") {
		if m.exception == nil || *m.exception != filter.Exception {
			return false
		}
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(m.employeeID), needle) &&
			!strings.Contains(strings.ToLower(m.name), needle) {
			return false
		}
	}
	return true
}

// paginate slices one page out of n rows. PageSize <= 0 disables paging.
func paginate(n int, filter compliance.PivotFilter) (lo, hi, page, pageSize, totalPages int) {
	if filter.PageSize <= 0 {
		return 0, n, 1, n, 1
	}

	page = filter.Page
	if page < 1 {
		page = 1
	}
	pageSize = filter.PageSize
	totalPages = int(math.Ceil(float64(n) / float64(pageSize)))

	lo = (page - 1) * pageSize
	if lo > n {
		lo = n
	}
	hi = lo + pageSize
	if hi > n {
		hi = n
	}
	return lo, hi, page, pageSize, totalPages
}

func buildWeeklyPivot(records []compliance.WeeklyCompliance, identity jwt.Identity, filter compliance.PivotFilter) compliance.WeeklyPivotResponse {
	rows := make(map[string]*compliance.WeeklyRow)
	var order []string
	weeks := make(map[string]compliance.WeekDescriptor)

	for _, rec := range records {
		keyStr := fmt.Sprintf("%s_%s_%d",
			rec.WeekStart.Format("2006-01-02"), rec.WeekEnd.Format("2006-01-02"), rec.WeekNumber)

		if _, ok := weeks[keyStr]; !ok {
			weeks[keyStr] = compliance.WeekDescriptor{
				KeyStr: keyStr,
				Label: fmt.Sprintf("Week %d (%s → %s)",
					rec.WeekNumber, rec.WeekStart.Format("Jan 02"), rec.WeekEnd.Format("Jan 02")),
				WeekNumber: rec.WeekNumber,
				WeekStart:  rec.WeekStart.Format("2006-01-02"),
				WeekEnd:    rec.WeekEnd.Format("2006-01-02"),
			}
		}

		row, ok := rows[rec.EmployeeID]
		if !ok {
			row = &compliance.WeeklyRow{
				EmployeeID:           rec.EmployeeID,
				EmployeeName:         rec.EmployeeName,
				ReportingManagerID:   rec.ReportingManagerID,
				ReportingManagerName: rec.ReportingManagerName,
				VerticalHeadID:       rec.VerticalHeadID,
				VerticalHeadName:     rec.VerticalHeadName,
				Vertical:             rec.Vertical,
				Status:               rec.Status,
				Exception:            rec.Exception,
				Weeks:                make(map[string]compliance.WeekCell),
			}
			rows[rec.EmployeeID] = row
			order = append(order, rec.EmployeeID)
		}

		row.Weeks[keyStr] = compliance.WeekCell{
			ComplianceStatus: rec.ComplianceStatus,
			TotalDaysPresent: rec.TotalDaysPresent,
			TotalHoursWorked: rec.TotalHoursWorked,
			WeeklyDays:       orElse(rec.WeeklyDays, fallbackWeeklyDays),
			WeeklyHours:      orElse(rec.WeeklyHours, fallbackWeeklyHours),
		}
	}

	descriptors := make([]compliance.WeekDescriptor, 0, len(weeks))
	for _, desc := range weeks {
		descriptors = append(descriptors, desc)
	}
	sort.Slice(descriptors, func(i, j int) bool {
		return descriptors[i].WeekStart < descriptors[j].WeekStart
	})

	meta := func(r *compliance.WeeklyRow) rowMeta {
		return rowMeta{employeeID: r.EmployeeID, name: r.EmployeeName, status: r.Status, exception: r.Exception}
	}

	resp := compliance.WeeklyPivotResponse{
		Employees: []compliance.WeeklyRow{},
		Weeks:     descriptors,
	}

	if identity.IsAdmin {
		var filtered []compliance.WeeklyRow
		for _, id := range order {
			if matchesFilter(meta(rows[id]), filter) {
				filtered = append(filtered, *rows[id])
			}
		}
		lo, hi, page, pageSize, totalPages := paginate(len(filtered), filter)
		resp.Total = len(filtered)
		resp.Page = page
		resp.PageSize = pageSize
		resp.TotalPages = totalPages
		resp.Employees = append(resp.Employees, filtered[lo:hi]...)
		return resp
	}

	// The caller's own row bypasses the filters so the page never loses
	// its anchor; filters and paging act on reportees only.
	scoped := &compliance.ScopedWeekly{Reportees: []compliance.WeeklyRow{}}
	var reportees []compliance.WeeklyRow
	for _, id := range order {
		if id == identity.EmployeeID {
			current := *rows[id]
			scoped.CurrentEmployee = &current
			continue
		}
		if matchesFilter(meta(rows[id]), filter) {
			reportees = append(reportees, *rows[id])
		}
	}

	lo, hi, page, pageSize, totalPages := paginate(len(reportees), filter)
	scoped.Reportees = append(scoped.Reportees, reportees[lo:hi]...)

	resp.Total = len(reportees)
	if scoped.CurrentEmployee != nil {
		resp.Total++
		resp.Employees = append(resp.Employees, *scoped.CurrentEmployee)
	}
	resp.Page = page
	resp.PageSize = pageSize
	resp.TotalPages = totalPages
	resp.Employees = append(resp.Employees, scoped.Reportees...)
	resp.Scoped = scoped
	return resp
}

func buildMonthlyPivot(records []compliance.MonthlyCompliance, identity jwt.Identity, filter compliance.PivotFilter) compliance.MonthlyPivotResponse {
	rows := make(map[string]*compliance.MonthlyRow)
	var order []string
	months := make(map[string]compliance.MonthDescriptor)

	for _, rec := range records {
		key := fmt.Sprintf("%d_%d", rec.Year, rec.Month)

		if _, ok := months[key]; !ok {
			months[key] = compliance.MonthDescriptor{
				Key:        key,
				Label:      fmt.Sprintf("%s %d", monthNames[rec.Month-1], rec.Year),
				Month:      rec.Month,
				Year:       rec.Year,
				MonthStart: rec.MonthStart.Format("2006-01-02"),
				MonthEnd:   rec.MonthEnd.Format("2006-01-02"),
			}
		}

		row, ok := rows[rec.EmployeeID]
		if !ok {
			row = &compliance.MonthlyRow{
				EmployeeID:           rec.EmployeeID,
				EmployeeName:         rec.EmployeeName,
				ReportingManagerID:   rec.ReportingManagerID,
				ReportingManagerName: rec.ReportingManagerName,
				VerticalHeadID:       rec.VerticalHeadID,
				VerticalHeadName:     rec.VerticalHeadName,
				Vertical:             rec.Vertical,
				Status:               rec.Status,
				Exception:            rec.Exception,
				Months:               make(map[string]compliance.MonthCell),
			}
			rows[rec.EmployeeID] = row
			order = append(order, rec.EmployeeID)
		}

		row.Months[key] = compliance.MonthCell{
			ComplianceStatus: rec.ComplianceStatus,
			TotalDaysPresent: rec.TotalDaysPresent,
			TotalHoursWorked: rec.TotalHoursWorked,
			MonthlyDays:      orElse(rec.MonthlyDays, fallbackMonthlyDays),
			MonthlyHours:     orElse(rec.MonthlyHours, fallbackMonthlyHours),
		}
	}

	descriptors := make([]compliance.MonthDescriptor, 0, len(months))
	for _, desc := range months {
		descriptors = append(descriptors, desc)
	}
	sort.Slice(descriptors, func(i, j int) bool {
		if descriptors[i].Year != descriptors[j].Year {
			return descriptors[i].Year < descriptors[j].Year
		}
		return descriptors[i].Month < descriptors[j].Month
	})

	meta := func(r *compliance.MonthlyRow) rowMeta {
		return rowMeta{employeeID: r.EmployeeID, name: r.EmployeeName, status: r.Status, exception: r.Exception}
	}

	resp := compliance.MonthlyPivotResponse{
		Employees: []compliance.MonthlyRow{},
		Months:    descriptors,
	}

	if identity.IsAdmin {
		var filtered []compliance.MonthlyRow
		for _, id := range order {
			if matchesFilter(meta(rows[id]), filter) {
				filtered = append(filtered, *rows[id])
			}
		}
		lo, hi, page, pageSize, totalPages := paginate(len(filtered), filter)
		resp.Total = len(filtered)
		resp.Page = page
		resp.PageSize = pageSize
		resp.TotalPages = totalPages
		resp.Employees = append(resp.Employees, filtered[lo:hi]...)
		return resp
	}

	scoped := &compliance.ScopedMonthly{Reportees: []compliance.MonthlyRow{}}
	var reportees []compliance.MonthlyRow
	for _, id := range order {
		if id == identity.EmployeeID {
			current := *rows[id]
			scoped.CurrentEmployee = &current
			continue
		}
		if matchesFilter(meta(rows[id]), filter) {
			reportees = append(reportees, *rows[id])
		}
	}

	lo, hi, page, pageSize, totalPages := paginate(len(reportees), filter)
	scoped.Reportees = append(scoped.Reportees, reportees[lo:hi]...)

	resp.Total = len(reportees)
	if scoped.CurrentEmployee != nil {
		resp.Total++
		resp.Employees = append(resp.Employees, *scoped.CurrentEmployee)
	}
	resp.Page = page
	resp.PageSize = pageSize
	resp.TotalPages = totalPages
	resp.Employees = append(resp.Employees, scoped.Reportees...)
	resp.Scoped = scoped
	return resp
}

func buildQuarterlyPivot(records []compliance.QuarterlyCompliance, identity jwt.Identity, filter compliance.PivotFilter) compliance.QuarterlyPivotResponse {
	rows := make(map[string]*compliance.QuarterlyRow)
	var order []string
	quarters := make(map[string]compliance.QuarterDescriptor)

	for _, rec := range records {
		key := fmt.Sprintf("%d_Q%d", rec.Year, rec.Quarter)

		if _, ok := quarters[key]; !ok {
			quarters[key] = compliance.QuarterDescriptor{
				Key:          key,
				Label:        fmt.Sprintf("Q%d %d", rec.Quarter, rec.Year),
				Quarter:      rec.Quarter,
				Year:         rec.Year,
				QuarterStart: rec.QuarterStart.Format("2006-01-02"),
				QuarterEnd:   rec.QuarterEnd.Format("2006-01-02"),
			}
		}

		row, ok := rows[rec.EmployeeID]
		if !ok {
			row = &compliance.QuarterlyRow{
				EmployeeID:           rec.EmployeeID,
				EmployeeName:         rec.EmployeeName,
				ReportingManagerID:   rec.ReportingManagerID,
				ReportingManagerName: rec.ReportingManagerName,
				VerticalHeadID:       rec.VerticalHeadID,
				VerticalHeadName:     rec.VerticalHeadName,
				Vertical:             rec.Vertical,
				Status:               rec.Status,
				Exception:            rec.Exception,
				Quarters:             make(map[string]compliance.QuarterCell),
			}
			rows[rec.EmployeeID] = row
			order = append(order, rec.EmployeeID)
		}

		row.Quarters[key] = compliance.QuarterCell{
			ComplianceStatus: rec.ComplianceStatus,
			TotalDaysPresent: rec.TotalDaysPresent,
			TotalHoursWorked: rec.TotalHoursWorked,
			QuarterlyDays:    orElse(rec.QuarterlyDays, fallbackQuarterlyDays),
			QuarterlyHours:   orElse(rec.QuarterlyHours, fallbackQuarterlyHours),
		}
	}

	descriptors := make([]compliance.QuarterDescriptor, 0, len(quarters))
	for _, desc := range quarters {
		descriptors = append(descriptors, desc)
	}
	sort.Slice(descriptors, func(i, j int) bool {
		if descriptors[i].Year != descriptors[j].Year {
			return descriptors[i].Year < descriptors[j].Year
		}
		return descriptors[i].Quarter < descriptors[j].Quarter
	})

	meta := func(r *compliance.QuarterlyRow) rowMeta {
		return rowMeta{employeeID: r.EmployeeID, name: r.EmployeeName, status: r.Status, exception: r.Exception}
	}

	resp := compliance.QuarterlyPivotResponse{
		Employees: []compliance.QuarterlyRow{},
		Quarters:  descriptors,
	}

	if identity.IsAdmin {
		var filtered []compliance.QuarterlyRow
		for _, id := range order {
			if matchesFilter(meta(rows[id]), filter) {
				filtered = append(filtered, *rows[id])
			}
		}
		lo, hi, page, pageSize, totalPages := paginate(len(filtered), filter)
		resp.Total = len(filtered)
		resp.Page = page
		resp.PageSize = pageSize
		resp.TotalPages = totalPages
		resp.Employees = append(resp.Employees, filtered[lo:hi]...)
		return resp
	}

	scoped := &compliance.ScopedQuarterly{Reportees: []compliance.QuarterlyRow{}}
	var reportees []compliance.QuarterlyRow
	for _, id := range order {
		if id == identity.EmployeeID {
			current := *rows[id]
			scoped.CurrentEmployee = &current
			continue
		}
		if matchesFilter(meta(rows[id]), filter) {
			reportees = append(reportees, *rows[id])
		}
	}

	lo, hi, page, pageSize, totalPages := paginate(len(reportees), filter)
	scoped.Reportees = append(scoped.Reportees, reportees[lo:hi]...)

	resp.Total = len(reportees)
	if scoped.CurrentEmployee != nil {
		resp.Total++
		resp.Employees = append(resp.Employees, *scoped.CurrentEmployee)
	}
	resp.Page = page
	resp.PageSize = pageSize
	resp.TotalPages = totalPages
	resp.Employees = append(resp.Employees, scoped.Reportees...)
	resp.Scoped = scoped
	return resp
}
