package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rtrack/rtrack-backend-go/internal/domain/attendance"
	"github.com/rtrack/rtrack-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `id, employee_id, employee_name, swipe_in, swipe_out, work_hours,
	hours_worked, is_present, date, week_start, week_end, week_number,
	month_number, quarter_number, year, upload_batch_id, created_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.EmployeeName,
		&att.SwipeIn, &att.SwipeOut, &att.WorkHours,
		&att.HoursWorked, &att.IsPresent, &att.Date,
		&att.WeekStart, &att.WeekEnd, &att.WeekNumber,
		&att.MonthNumber, &att.QuarterNumber, &att.Year,
		&att.UploadBatchID, &att.CreatedAt,
	)
	return att, err
}

func (a *attendanceRepositoryImpl) queryAttendances(ctx context.Context, query string, args ...interface{}) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		attendances = append(attendances, att)
	}

	return attendances, rows.Err()
}

// InsertBatch implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) InsertBatch(ctx context.Context, records []attendance.Attendance) (int, error) {
	inserted := 0
	err := WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, a.db)

		for _, att := range records {
			_, err := q.Exec(txCtx, `
				INSERT INTO attendance (
					employee_id, employee_name, swipe_in, swipe_out, work_hours,
					hours_worked, is_present, date, week_start, week_end, week_number,
					month_number, quarter_number, year, upload_batch_id
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			`,
				att.EmployeeID, att.EmployeeName, att.SwipeIn, att.SwipeOut, att.WorkHours,
				att.HoursWorked, att.IsPresent, att.Date, att.WeekStart, att.WeekEnd,
				att.WeekNumber, att.MonthNumber, att.QuarterNumber, att.Year, att.UploadBatchID,
			)
			if err != nil {
				return fmt.Errorf("insert attendance for %s on %s: %w", att.EmployeeID, att.Date.Format("2006-01-02"), err)
			}
			inserted++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// WeekExists implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) WeekExists(ctx context.Context, weekStart, weekEnd time.Time) (bool, error) {
	q := GetQuerier(ctx, a.db)

	var exists bool
	err := q.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM attendance WHERE week_start = $1 AND week_end = $2)",
		weekStart, weekEnd,
	).Scan(&exists)
	return exists, err
}

// GetByWeek implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByWeek(ctx context.Context, weekStart, weekEnd time.Time) ([]attendance.Attendance, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM attendance WHERE week_start = $1 AND week_end = $2 ORDER BY date DESC, employee_id ASC",
		attendanceColumns,
	)
	return a.queryAttendances(ctx, query, weekStart, weekEnd)
}

// GetByMonth implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByMonth(ctx context.Context, year, month int) ([]attendance.Attendance, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM attendance WHERE year = $1 AND month_number = $2 ORDER BY employee_id, date",
		attendanceColumns,
	)
	return a.queryAttendances(ctx, query, year, month)
}

// GetByQuarter implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByQuarter(ctx context.Context, year, quarter int) ([]attendance.Attendance, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM attendance WHERE year = $1 AND quarter_number = $2 ORDER BY employee_id, date",
		attendanceColumns,
	)
	return a.queryAttendances(ctx, query, year, quarter)
}

// LatestUploaded implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) LatestUploaded(ctx context.Context) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := fmt.Sprintf("SELECT %s FROM attendance ORDER BY created_at DESC, id DESC LIMIT 1", attendanceColumns)
	att, err := scanAttendance(q.QueryRow(ctx, query))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrNoUploads
		}
		return attendance.Attendance{}, err
	}
	return att, nil
}

// LatestWeek implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) LatestWeek(ctx context.Context) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := fmt.Sprintf("SELECT %s FROM attendance ORDER BY week_start DESC, date DESC LIMIT 1", attendanceColumns)
	att, err := scanAttendance(q.QueryRow(ctx, query))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrNoUploads
		}
		return attendance.Attendance{}, err
	}
	return att, nil
}

// CountAll implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) CountAll(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, a.db)

	var count int64
	err := q.QueryRow(ctx, "SELECT COUNT(*) FROM attendance").Scan(&count)
	return count, err
}

// DeleteAll implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) DeleteAll(ctx context.Context) error {
	q := GetQuerier(ctx, a.db)

	_, err := q.Exec(ctx, "DELETE FROM attendance")
	return err
}
