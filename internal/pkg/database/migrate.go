package database

import (
	"context"
	"fmt"
)

// Migrate creates the schema if it does not exist yet. The service owns its
// tables the same way the original deployment did, so there is no separate
// migration tool.
func Migrate(ctx context.Context, db *DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS employees (
			id SERIAL PRIMARY KEY,
			employee_id TEXT NOT NULL UNIQUE,
			employee_name TEXT NOT NULL,
			reporting_manager_id TEXT,
			reporting_manager_name TEXT,
			vertical_head_id TEXT,
			vertical_head_name TEXT,
			vertical TEXT,
			status TEXT,
			exception TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_employees_reporting_manager_id ON employees (reporting_manager_id)`,

		`CREATE TABLE IF NOT EXISTS attendance (
			id SERIAL PRIMARY KEY,
			employee_id TEXT NOT NULL,
			employee_name TEXT NOT NULL,
			swipe_in TEXT,
			swipe_out TEXT,
			work_hours TEXT,
			hours_worked DOUBLE PRECISION,
			is_present INTEGER NOT NULL DEFAULT 0,
			date DATE NOT NULL,
			week_start DATE NOT NULL,
			week_end DATE NOT NULL,
			week_number INTEGER NOT NULL,
			month_number INTEGER NOT NULL,
			quarter_number INTEGER NOT NULL,
			year INTEGER NOT NULL,
			upload_batch_id UUID,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_week ON attendance (week_start, week_end)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_month ON attendance (year, month_number)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_quarter ON attendance (year, quarter_number)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_employee_id ON attendance (employee_id)`,

		`CREATE TABLE IF NOT EXISTS weekly_compliance (
			id SERIAL PRIMARY KEY,
			employee_id TEXT NOT NULL,
			employee_name TEXT NOT NULL,
			reporting_manager_id TEXT,
			reporting_manager_name TEXT,
			vertical_head_id TEXT,
			vertical_head_name TEXT,
			vertical TEXT,
			status TEXT,
			exception TEXT,
			weekly_days DOUBLE PRECISION,
			weekly_hours DOUBLE PRECISION,
			week_number INTEGER NOT NULL,
			week_start DATE NOT NULL,
			week_end DATE NOT NULL,
			total_days_present DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_hours_worked DOUBLE PRECISION NOT NULL DEFAULT 0,
			is_compliant DOUBLE PRECISION,
			compliance_status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_weekly_compliance_week ON weekly_compliance (week_start, week_end)`,
		`CREATE INDEX IF NOT EXISTS idx_weekly_compliance_employee_id ON weekly_compliance (employee_id)`,

		`CREATE TABLE IF NOT EXISTS monthly_compliance (
			id SERIAL PRIMARY KEY,
			employee_id TEXT NOT NULL,
			employee_name TEXT NOT NULL,
			reporting_manager_id TEXT,
			reporting_manager_name TEXT,
			vertical_head_id TEXT,
			vertical_head_name TEXT,
			vertical TEXT,
			status TEXT,
			exception TEXT,
			monthly_days DOUBLE PRECISION,
			monthly_hours DOUBLE PRECISION,
			month INTEGER NOT NULL,
			year INTEGER NOT NULL,
			month_start DATE NOT NULL,
			month_end DATE NOT NULL,
			total_days_present DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_hours_worked DOUBLE PRECISION NOT NULL DEFAULT 0,
			is_compliant INTEGER,
			compliance_status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_monthly_compliance_period ON monthly_compliance (year, month)`,

		`CREATE TABLE IF NOT EXISTS quarterly_compliance (
			id SERIAL PRIMARY KEY,
			employee_id TEXT NOT NULL,
			employee_name TEXT NOT NULL,
			reporting_manager_id TEXT,
			reporting_manager_name TEXT,
			vertical_head_id TEXT,
			vertical_head_name TEXT,
			vertical TEXT,
			status TEXT,
			exception TEXT,
			quarterly_days DOUBLE PRECISION,
			quarterly_hours DOUBLE PRECISION,
			quarter INTEGER NOT NULL,
			year INTEGER NOT NULL,
			quarter_start DATE NOT NULL,
			quarter_end DATE NOT NULL,
			total_days_present DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_hours_worked DOUBLE PRECISION NOT NULL DEFAULT 0,
			is_compliant INTEGER,
			compliance_status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quarterly_compliance_period ON quarterly_compliance (year, quarter)`,

		`CREATE TABLE IF NOT EXISTS exceptions (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	return nil
}
