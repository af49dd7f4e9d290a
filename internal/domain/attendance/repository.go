package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// InsertBatch appends one upload's rows; uploads never replace earlier
	// weeks.
	InsertBatch(ctx context.Context, rows []Attendance) (int, error)

	WeekExists(ctx context.Context, weekStart, weekEnd time.Time) (bool, error)
	GetByWeek(ctx context.Context, weekStart, weekEnd time.Time) ([]Attendance, error)
	GetByMonth(ctx context.Context, year, month int) ([]Attendance, error)
	GetByQuarter(ctx context.Context, year, quarter int) ([]Attendance, error)

	// LatestUploaded returns the most recently created row (ErrNoUploads
	// when the table is empty).
	LatestUploaded(ctx context.Context) (Attendance, error)

	// LatestWeek returns the row with the newest week_start/date, used to
	// pick the week shown on the attendance page.
	LatestWeek(ctx context.Context) (Attendance, error)

	CountAll(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}
