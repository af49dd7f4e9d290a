package compliance

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtrack/rtrack-backend-go/internal/domain/compliance"
	"github.com/rtrack/rtrack-backend-go/internal/pkg/jwt"
)

func strPtr(s string) *string { return &s }

func weeklyRecord(employeeID, name string, weekStart time.Time, weekNumber int, status string) compliance.WeeklyCompliance {
	days, hours := 2.0, 15.5
	return compliance.WeeklyCompliance{
		EmployeeID:       employeeID,
		EmployeeName:     name,
		WeeklyDays:       &days,
		WeeklyHours:      &hours,
		WeekNumber:       weekNumber,
		WeekStart:        weekStart,
		WeekEnd:          weekStart.AddDate(0, 0, 4),
		TotalDaysPresent: 3,
		TotalHoursWorked: 24,
		ComplianceStatus: status,
	}
}

func TestBuildWeeklyPivotAdmin(t *testing.T) {
	week1 := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	week2 := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)

	records := []compliance.WeeklyCompliance{
		weeklyRecord("GCC001", "Alice", week1, 2, compliance.StatusCompliant),
		weeklyRecord("GCC002", "Bob", week1, 2, compliance.StatusNotCompliant),
		weeklyRecord("GCC001", "Alice", week2, 3, compliance.StatusNoData),
	}

	resp := buildWeeklyPivot(records, jwt.Identity{EmployeeID: "ADMIN", IsAdmin: true}, compliance.PivotFilter{})

	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Employees, 2)
	require.Len(t, resp.Weeks, 2)

	// Descriptor key must match the row map keys exactly.
	assert.Equal(t, "2025-01-06_2025-01-10_2", resp.Weeks[0].KeyStr)
	assert.Equal(t, "2025-01-13_2025-01-17_3", resp.Weeks[1].KeyStr)
	assert.Equal(t, "Week 2 (Jan 06 → Jan 10)", resp.Weeks[0].Label)

	alice := resp.Employees[0]
	assert.Equal(t, "GCC001", alice.EmployeeID)
	require.Contains(t, alice.Weeks, "2025-01-06_2025-01-10_2")
	require.Contains(t, alice.Weeks, "2025-01-13_2025-01-17_3")
	assert.Equal(t, compliance.StatusCompliant, alice.Weeks["2025-01-06_2025-01-10_2"].ComplianceStatus)

	// Admin payloads carry no scoped keys at all.
	assert.Nil(t, resp.Scoped)
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "current_employee")
	assert.NotContains(t, string(raw), "reportees")
}

func TestBuildWeeklyPivotNonAdminScoping(t *testing.T) {
	week1 := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	manager := weeklyRecord("GCC100", "Mara", week1, 2, compliance.StatusCompliant)
	managerStatus := "Inactive"
	manager.Status = &managerStatus

	active := "Active"
	r1 := weeklyRecord("GCC101", "Ravi", week1, 2, compliance.StatusCompliant)
	r1.Status = &active
	r2 := weeklyRecord("GCC102", "Lena", week1, 2, compliance.StatusNotCompliant)
	inactive := "Inactive"
	r2.Status = &inactive

	records := []compliance.WeeklyCompliance{manager, r1, r2}
	identity := jwt.Identity{EmployeeID: "GCC100", IsAdmin: false}

	// Status filter hits reportees only; the caller's own row survives it.
	resp := buildWeeklyPivot(records, identity, compliance.PivotFilter{Status: "Active"})

	require.NotNil(t, resp.Scoped)
	require.NotNil(t, resp.Scoped.CurrentEmployee)
	assert.Equal(t, "GCC100", resp.Scoped.CurrentEmployee.EmployeeID)
	require.Len(t, resp.Scoped.Reportees, 1)
	assert.Equal(t, "GCC101", resp.Scoped.Reportees[0].EmployeeID)
	assert.Equal(t, 2, resp.Total)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"current_employee"`)
	assert.Contains(t, string(raw), `"reportees"`)
}

func TestBuildWeeklyPivotNonAdminWithoutOwnRow(t *testing.T) {
	week1 := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	records := []compliance.WeeklyCompliance{
		weeklyRecord("GCC101", "Ravi", week1, 2, compliance.StatusCompliant),
	}

	resp := buildWeeklyPivot(records, jwt.Identity{EmployeeID: "GCC100"}, compliance.PivotFilter{})

	require.NotNil(t, resp.Scoped)
	assert.Nil(t, resp.Scoped.CurrentEmployee)
	require.Len(t, resp.Scoped.Reportees, 1)

	// current_employee must still appear in the payload, as null.
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"current_employee":null`)
}

func TestBuildWeeklyPivotSearchFilter(t *testing.T) {
	week1 := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	records := []compliance.WeeklyCompliance{
		weeklyRecord("GCC001", "Alice Smith", week1, 2, compliance.StatusCompliant),
		weeklyRecord("GCC002", "Bob Jones", week1, 2, compliance.StatusCompliant),
	}
	admin := jwt.Identity{EmployeeID: "ADMIN", IsAdmin: true}

	resp := buildWeeklyPivot(records, admin, compliance.PivotFilter{Search: "smith"})
	require.Len(t, resp.Employees, 1)
	assert.Equal(t, "GCC001", resp.Employees[0].EmployeeID)

	resp = buildWeeklyPivot(records, admin, compliance.PivotFilter{Search: "gcc002"})
	require.Len(t, resp.Employees, 1)
	assert.Equal(t, "GCC002", resp.Employees[0].EmployeeID)

	// "all" disables dropdown filters.
	resp = buildWeeklyPivot(records, admin, compliance.PivotFilter{Status: "all", Exception: "All"})
	assert.Len(t, resp.Employees, 2)
}

func TestBuildWeeklyPivotPagination(t *testing.T) {
	week1 := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	var records []compliance.WeeklyCompliance
	for _, id := range []string{"GCC001", "GCC002", "GCC003", "GCC004", "GCC005"} {
		records = append(records, weeklyRecord(id, id, week1, 2, compliance.StatusCompliant))
	}
	admin := jwt.Identity{EmployeeID: "ADMIN", IsAdmin: true}

	resp := buildWeeklyPivot(records, admin, compliance.PivotFilter{Page: 2, PageSize: 2})
	assert.Equal(t, 5, resp.Total)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 3, resp.TotalPages)
	require.Len(t, resp.Employees, 2)
	assert.Equal(t, "GCC003", resp.Employees[0].EmployeeID)

	// Out-of-range pages come back empty instead of erroring.
	resp = buildWeeklyPivot(records, admin, compliance.PivotFilter{Page: 9, PageSize: 2})
	assert.Empty(t, resp.Employees)
}

func TestBuildMonthlyPivotKeysAndLabels(t *testing.T) {
	days, hours := 8.0, 62.0
	rec := compliance.MonthlyCompliance{
		EmployeeID:       "GCC001",
		EmployeeName:     "Alice",
		MonthlyDays:      &days,
		MonthlyHours:     &hours,
		Month:            3,
		Year:             2025,
		MonthStart:       time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		MonthEnd:         time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		TotalDaysPresent: 9,
		TotalHoursWorked: 70,
		ComplianceStatus: compliance.StatusCompliant,
	}

	resp := buildMonthlyPivot([]compliance.MonthlyCompliance{rec}, jwt.Identity{IsAdmin: true}, compliance.PivotFilter{})

	require.Len(t, resp.Months, 1)
	assert.Equal(t, "2025_3", resp.Months[0].Key)
	assert.Equal(t, "March 2025", resp.Months[0].Label)
	require.Len(t, resp.Employees, 1)
	require.Contains(t, resp.Employees[0].Months, "2025_3")
}

func TestBuildQuarterlyPivotExemptFallbacks(t *testing.T) {
	rec := compliance.QuarterlyCompliance{
		EmployeeID:       "GCC001",
		EmployeeName:     "Alice",
		Exception:        strPtr("other"),
		Quarter:          2,
		Year:             2025,
		QuarterStart:     time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		QuarterEnd:       time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		ComplianceStatus: compliance.StatusCompliant,
	}

	resp := buildQuarterlyPivot([]compliance.QuarterlyCompliance{rec}, jwt.Identity{IsAdmin: true}, compliance.PivotFilter{})

	require.Len(t, resp.Quarters, 1)
	assert.Equal(t, "2025_Q2", resp.Quarters[0].Key)
	assert.Equal(t, "Q2 2025", resp.Quarters[0].Label)

	cell := resp.Employees[0].Quarters["2025_Q2"]
	assert.Equal(t, fallbackQuarterlyDays, cell.QuarterlyDays)
	assert.Equal(t, fallbackQuarterlyHours, cell.QuarterlyHours)
}
