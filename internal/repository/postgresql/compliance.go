package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rtrack/rtrack-backend-go/internal/domain/compliance"
	"github.com/rtrack/rtrack-backend-go/internal/pkg/database"
)

type complianceRepositoryImpl struct {
	db *database.DB
}

func NewComplianceRepository(db *database.DB) compliance.ComplianceRepository {
	return &complianceRepositoryImpl{db: db}
}

const weeklyComplianceColumns = `id, employee_id, employee_name, reporting_manager_id, reporting_manager_name,
	vertical_head_id, vertical_head_name, vertical, status, exception,
	weekly_days, weekly_hours, week_number, week_start, week_end,
	total_days_present, total_hours_worked, is_compliant, compliance_status, created_at`

const monthlyComplianceColumns = `id, employee_id, employee_name, reporting_manager_id, reporting_manager_name,
	vertical_head_id, vertical_head_name, vertical, status, exception,
	monthly_days, monthly_hours, month, year, month_start, month_end,
	total_days_present, total_hours_worked, is_compliant, compliance_status, created_at`

const quarterlyComplianceColumns = `id, employee_id, employee_name, reporting_manager_id, reporting_manager_name,
	vertical_head_id, vertical_head_name, vertical, status, exception,
	quarterly_days, quarterly_hours, quarter, year, quarter_start, quarter_end,
	total_days_present, total_hours_worked, is_compliant, compliance_status, created_at`

func scanWeeklyCompliance(row pgx.Row) (compliance.WeeklyCompliance, error) {
	var rec compliance.WeeklyCompliance
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.EmployeeName,
		&rec.ReportingManagerID, &rec.ReportingManagerName,
		&rec.VerticalHeadID, &rec.VerticalHeadName,
		&rec.Vertical, &rec.Status, &rec.Exception,
		&rec.WeeklyDays, &rec.WeeklyHours,
		&rec.WeekNumber, &rec.WeekStart, &rec.WeekEnd,
		&rec.TotalDaysPresent, &rec.TotalHoursWorked,
		&rec.IsCompliant, &rec.ComplianceStatus, &rec.CreatedAt,
	)
	return rec, err
}

func scanMonthlyCompliance(row pgx.Row) (compliance.MonthlyCompliance, error) {
	var rec compliance.MonthlyCompliance
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.EmployeeName,
		&rec.ReportingManagerID, &rec.ReportingManagerName,
		&rec.VerticalHeadID, &rec.VerticalHeadName,
		&rec.Vertical, &rec.Status, &rec.Exception,
		&rec.MonthlyDays, &rec.MonthlyHours,
		&rec.Month, &rec.Year, &rec.MonthStart, &rec.MonthEnd,
		&rec.TotalDaysPresent, &rec.TotalHoursWorked,
		&rec.IsCompliant, &rec.ComplianceStatus, &rec.CreatedAt,
	)
	return rec, err
}

func scanQuarterlyCompliance(row pgx.Row) (compliance.QuarterlyCompliance, error) {
	var rec compliance.QuarterlyCompliance
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.EmployeeName,
		&rec.ReportingManagerID, &rec.ReportingManagerName,
		&rec.VerticalHeadID, &rec.VerticalHeadName,
		&rec.Vertical, &rec.Status, &rec.Exception,
		&rec.QuarterlyDays, &rec.QuarterlyHours,
		&rec.Quarter, &rec.Year, &rec.QuarterStart, &rec.QuarterEnd,
		&rec.TotalDaysPresent, &rec.TotalHoursWorked,
		&rec.IsCompliant, &rec.ComplianceStatus, &rec.CreatedAt,
	)
	return rec, err
}

// ReplaceWeekly implements compliance.ComplianceRepository.
func (c *complianceRepositoryImpl) ReplaceWeekly(ctx context.Context, weekStart, weekEnd time.Time, records []compliance.WeeklyCompliance) error {
	return WithTransaction(ctx, c.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, c.db)

		if _, err := q.Exec(txCtx,
			"DELETE FROM weekly_compliance WHERE week_start = $1 AND week_end = $2",
			weekStart, weekEnd,
		); err != nil {
			return fmt.Errorf("clear weekly compliance: %w", err)
		}

		for _, rec := range records {
			_, err := q.Exec(txCtx, `
				INSERT INTO weekly_compliance (
					employee_id, employee_name, reporting_manager_id, reporting_manager_name,
					vertical_head_id, vertical_head_name, vertical, status, exception,
					weekly_days, weekly_hours, week_number, week_start, week_end,
					total_days_present, total_hours_worked, is_compliant, compliance_status
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
			`,
				rec.EmployeeID, rec.EmployeeName, rec.ReportingManagerID, rec.ReportingManagerName,
				rec.VerticalHeadID, rec.VerticalHeadName, rec.Vertical, rec.Status, rec.Exception,
				rec.WeeklyDays, rec.WeeklyHours, rec.WeekNumber, rec.WeekStart, rec.WeekEnd,
				rec.TotalDaysPresent, rec.TotalHoursWorked, rec.IsCompliant, rec.ComplianceStatus,
			)
			if err != nil {
				return fmt.Errorf("insert weekly compliance for %s: %w", rec.EmployeeID, err)
			}
		}

		return nil
	})
}

// ReplaceMonthly implements compliance.ComplianceRepository.
func (c *complianceRepositoryImpl) ReplaceMonthly(ctx context.Context, year, month int, records []compliance.MonthlyCompliance) error {
	return WithTransaction(ctx, c.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, c.db)

		if _, err := q.Exec(txCtx,
			"DELETE FROM monthly_compliance WHERE year = $1 AND month = $2",
			year, month,
		); err != nil {
			return fmt.Errorf("clear monthly compliance: %w", err)
		}

		for _, rec := range records {
			_, err := q.Exec(txCtx, `
				INSERT INTO monthly_compliance (
					employee_id, employee_name, reporting_manager_id, reporting_manager_name,
					vertical_head_id, vertical_head_name, vertical, status, exception,
					monthly_days, monthly_hours, month, year, month_start, month_end,
					total_days_present, total_hours_worked, is_compliant, compliance_status
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
			`,
				rec.EmployeeID, rec.EmployeeName, rec.ReportingManagerID, rec.ReportingManagerName,
				rec.VerticalHeadID, rec.VerticalHeadName, rec.Vertical, rec.Status, rec.Exception,
				rec.MonthlyDays, rec.MonthlyHours, rec.Month, rec.Year, rec.MonthStart, rec.MonthEnd,
				rec.TotalDaysPresent, rec.TotalHoursWorked, rec.IsCompliant, rec.ComplianceStatus,
			)
			if err != nil {
				return fmt.Errorf("insert monthly compliance for %s: %w", rec.EmployeeID, err)
			}
		}

		return nil
	})
}

// ReplaceQuarterly implements compliance.ComplianceRepository.
func (c *complianceRepositoryImpl) ReplaceQuarterly(ctx context.Context, year, quarter int, records []compliance.QuarterlyCompliance) error {
	return WithTransaction(ctx, c.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, c.db)

		if _, err := q.Exec(txCtx,
			"DELETE FROM quarterly_compliance WHERE year = $1 AND quarter = $2",
			year, quarter,
		); err != nil {
			return fmt.Errorf("clear quarterly compliance: %w", err)
		}

		for _, rec := range records {
			_, err := q.Exec(txCtx, `
				INSERT INTO quarterly_compliance (
					employee_id, employee_name, reporting_manager_id, reporting_manager_name,
					vertical_head_id, vertical_head_name, vertical, status, exception,
					quarterly_days, quarterly_hours, quarter, year, quarter_start, quarter_end,
					total_days_present, total_hours_worked, is_compliant, compliance_status
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
			`,
				rec.EmployeeID, rec.EmployeeName, rec.ReportingManagerID, rec.ReportingManagerName,
				rec.VerticalHeadID, rec.VerticalHeadName, rec.Vertical, rec.Status, rec.Exception,
				rec.QuarterlyDays, rec.QuarterlyHours, rec.Quarter, rec.Year, rec.QuarterStart, rec.QuarterEnd,
				rec.TotalDaysPresent, rec.TotalHoursWorked, rec.IsCompliant, rec.ComplianceStatus,
			)
			if err != nil {
				return fmt.Errorf("insert quarterly compliance for %s: %w", rec.EmployeeID, err)
			}
		}

		return nil
	})
}

// ListWeekly implements compliance.ComplianceRepository.
func (c *complianceRepositoryImpl) ListWeekly(ctx context.Context, filter compliance.WeeklyQuery) ([]compliance.WeeklyCompliance, error) {
	q := GetQuerier(ctx, c.db)

	var conditions []string
	var args []interface{}

	if filter.Year > 0 {
		yearStart := time.Date(filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		args = append(args, yearStart)
		conditions = append(conditions, fmt.Sprintf("week_start >= $%d", len(args)))
		args = append(args, yearStart.AddDate(1, 0, 0))
		conditions = append(conditions, fmt.Sprintf("week_start < $%d", len(args)))

		// A week belongs to a month when any of its days fall inside it.
		if filter.Month > 0 {
			monthStart := time.Date(filter.Year, time.Month(filter.Month), 1, 0, 0, 0, 0, time.UTC)
			args = append(args, monthStart.AddDate(0, 1, 0))
			conditions = append(conditions, fmt.Sprintf("week_start < $%d", len(args)))
			args = append(args, monthStart)
			conditions = append(conditions, fmt.Sprintf("week_end >= $%d", len(args)))
		}
	}
	if filter.EmployeeIDs != nil {
		args = append(args, filter.EmployeeIDs)
		conditions = append(conditions, fmt.Sprintf("employee_id = ANY($%d)", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(
		"SELECT %s FROM weekly_compliance%s ORDER BY week_start ASC, employee_id ASC",
		weeklyComplianceColumns, where,
	)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []compliance.WeeklyCompliance
	for rows.Next() {
		rec, err := scanWeeklyCompliance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// ListMonthly implements compliance.ComplianceRepository.
func (c *complianceRepositoryImpl) ListMonthly(ctx context.Context, filter compliance.PeriodQuery) ([]compliance.MonthlyCompliance, error) {
	q := GetQuerier(ctx, c.db)

	var conditions []string
	var args []interface{}

	if filter.Year > 0 {
		args = append(args, filter.Year)
		conditions = append(conditions, fmt.Sprintf("year = $%d", len(args)))
	}
	if filter.EmployeeIDs != nil {
		args = append(args, filter.EmployeeIDs)
		conditions = append(conditions, fmt.Sprintf("employee_id = ANY($%d)", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(
		"SELECT %s FROM monthly_compliance%s ORDER BY year ASC, month ASC, employee_id ASC",
		monthlyComplianceColumns, where,
	)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []compliance.MonthlyCompliance
	for rows.Next() {
		rec, err := scanMonthlyCompliance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// ListQuarterly implements compliance.ComplianceRepository.
func (c *complianceRepositoryImpl) ListQuarterly(ctx context.Context, filter compliance.PeriodQuery) ([]compliance.QuarterlyCompliance, error) {
	q := GetQuerier(ctx, c.db)

	var conditions []string
	var args []interface{}

	if filter.Year > 0 {
		args = append(args, filter.Year)
		conditions = append(conditions, fmt.Sprintf("year = $%d", len(args)))
	}
	if filter.EmployeeIDs != nil {
		args = append(args, filter.EmployeeIDs)
		conditions = append(conditions, fmt.Sprintf("employee_id = ANY($%d)", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(
		"SELECT %s FROM quarterly_compliance%s ORDER BY year ASC, quarter ASC, employee_id ASC",
		quarterlyComplianceColumns, where,
	)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []compliance.QuarterlyCompliance
	for rows.Next() {
		rec, err := scanQuarterlyCompliance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// DeleteAllWeekly implements compliance.ComplianceRepository.
func (c *complianceRepositoryImpl) DeleteAllWeekly(ctx context.Context) error {
	q := GetQuerier(ctx, c.db)
	_, err := q.Exec(ctx, "DELETE FROM weekly_compliance")
	return err
}

// DeleteAllMonthly implements compliance.ComplianceRepository.
func (c *complianceRepositoryImpl) DeleteAllMonthly(ctx context.Context) error {
	q := GetQuerier(ctx, c.db)
	_, err := q.Exec(ctx, "DELETE FROM monthly_compliance")
	return err
}

// DeleteAllQuarterly implements compliance.ComplianceRepository.
func (c *complianceRepositoryImpl) DeleteAllQuarterly(ctx context.Context) error {
	q := GetQuerier(ctx, c.db)
	_, err := q.Exec(ctx, "DELETE FROM quarterly_compliance")
	return err
}
