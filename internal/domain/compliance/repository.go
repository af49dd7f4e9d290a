package compliance

import (
	"context"
	"time"
)

// WeeklyQuery scopes weekly rows. EmployeeIDs nil means unrestricted
// (admin); an empty non-nil slice matches nothing.
type WeeklyQuery struct {
	Year        int
	Month       int
	EmployeeIDs []string
}

// PeriodQuery scopes monthly/quarterly rows by calendar year.
type PeriodQuery struct {
	Year        int
	EmployeeIDs []string
}

type ComplianceRepository interface {
	// ReplaceWeekly swaps out all rows for one week in a transaction, so a
	// recalculation never leaves a period half-written.
	ReplaceWeekly(ctx context.Context, weekStart, weekEnd time.Time, records []WeeklyCompliance) error
	ReplaceMonthly(ctx context.Context, year, month int, records []MonthlyCompliance) error
	ReplaceQuarterly(ctx context.Context, year, quarter int, records []QuarterlyCompliance) error

	ListWeekly(ctx context.Context, q WeeklyQuery) ([]WeeklyCompliance, error)
	ListMonthly(ctx context.Context, q PeriodQuery) ([]MonthlyCompliance, error)
	ListQuarterly(ctx context.Context, q PeriodQuery) ([]QuarterlyCompliance, error)

	DeleteAllWeekly(ctx context.Context) error
	DeleteAllMonthly(ctx context.Context) error
	DeleteAllQuarterly(ctx context.Context) error
}
