package compliance

import (
	"context"
	"time"
)

// ComplianceService defines the aggregation and pivot logic
type ComplianceService interface {
	// GetWeeklyPivot returns the employee x week grid, scoped to the caller
	GetWeeklyPivot(ctx context.Context, filter PivotFilter) (WeeklyPivotResponse, error)

	// GetMonthlyPivot returns the employee x month grid
	GetMonthlyPivot(ctx context.Context, filter PivotFilter) (MonthlyPivotResponse, error)

	// GetQuarterlyPivot returns the employee x quarter grid
	GetQuarterlyPivot(ctx context.Context, filter PivotFilter) (QuarterlyPivotResponse, error)

	// CalculateWeekly recomputes one week from raw attendance; called after
	// every attendance upload
	CalculateWeekly(ctx context.Context, weekStart, weekEnd time.Time, weekNumber int) ([]WeeklyCompliance, error)

	// CalculateMonthly recomputes one month on demand
	CalculateMonthly(ctx context.Context, year, month int) (CalculateResult, error)

	// CalculateQuarterly recomputes one quarter on demand
	CalculateQuarterly(ctx context.Context, year, quarter int) (CalculateResult, error)

	// CleanDatabase wipes attendance/compliance tables, never employees
	CleanDatabase(ctx context.Context, tableName string) (CleanResult, error)
}
