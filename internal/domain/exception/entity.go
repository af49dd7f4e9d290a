package exception

import "time"

// Exception is a named attendance-threshold override. Names follow
// {period}_{number}_day (weekly_2_day, monthly_4_day, quarterly_6_day) or
// are one of the special names "default" / "other".
type Exception struct {
	ID        int
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
