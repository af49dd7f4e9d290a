package compliance

import (
	"math"
	"strconv"
	"strings"
)

// Requirements holds the attendance targets an employee must meet per
// period. Exempt marks the "other" rule, which carries no thresholds and
// classifies as Compliant regardless of attendance.
type Requirements struct {
	WeeklyDays     float64
	WeeklyHours    float64
	MonthlyDays    float64
	MonthlyHours   float64
	QuarterlyDays  float64
	QuarterlyHours float64
	Exempt         bool
}

// DefaultRequirements returns the system-wide baseline targets.
func DefaultRequirements() Requirements {
	return Requirements{
		WeeklyDays:     2.0,
		WeeklyHours:    15.5,
		MonthlyDays:    8.0,
		MonthlyHours:   62.0,
		QuarterlyDays:  24.0,
		QuarterlyHours: 186.0,
	}
}

// ParseRequirements derives an employee's targets from their exception
// name. A rule {period}_{N}_day scales every period's day target by
// N / default-days(period); hour targets scale with the day targets.
// "other" exempts the employee entirely; "default", empty, or anything
// unparseable yields the baseline.
func ParseRequirements(exceptionName *string) Requirements {
	defaults := DefaultRequirements()

	if exceptionName == nil {
		return defaults
	}

	name := strings.TrimSpace(*exceptionName)
	if name == "" {
		return defaults
	}

	if strings.EqualFold(name, "other") {
		return Requirements{Exempt: true}
	}

	parts := strings.Split(name, "_")
	if len(parts) != 3 || parts[2] != "day" {
		return defaults
	}

	val, err := strconv.Atoi(parts[1])
	if err != nil {
		return defaults
	}

	var ratio float64
	switch parts[0] {
	case "weekly":
		ratio = float64(val) / defaults.WeeklyDays
	case "monthly":
		ratio = float64(val) / defaults.MonthlyDays
	case "quarterly":
		ratio = float64(val) / defaults.QuarterlyDays
	default:
		return defaults
	}

	return Requirements{
		WeeklyDays:     round2(defaults.WeeklyDays * ratio),
		WeeklyHours:    round2(defaults.WeeklyHours * ratio),
		MonthlyDays:    round2(defaults.MonthlyDays * ratio),
		MonthlyHours:   round2(defaults.MonthlyHours * ratio),
		QuarterlyDays:  round2(defaults.QuarterlyDays * ratio),
		QuarterlyHours: round2(defaults.QuarterlyHours * ratio),
	}
}

// Period selects which of an employee's targets a classification uses.
type Period string

const (
	PeriodWeekly    Period = "weekly"
	PeriodMonthly   Period = "monthly"
	PeriodQuarterly Period = "quarterly"
)

// Threshold returns the day and hour target for one period.
func (r Requirements) Threshold(period Period) (days, hours float64) {
	switch period {
	case PeriodMonthly:
		return r.MonthlyDays, r.MonthlyHours
	case PeriodQuarterly:
		return r.QuarterlyDays, r.QuarterlyHours
	default:
		return r.WeeklyDays, r.WeeklyHours
	}
}

// Classify applies the precedence order: exempt, then missing data, then
// inclusive threshold comparison against the period's targets.
func Classify(req Requirements, period Period, hasData bool, totalDays, totalHours float64) string {
	if req.Exempt {
		return StatusCompliant
	}
	if !hasData {
		return StatusNoData
	}
	reqDays, reqHours := req.Threshold(period)
	if totalDays >= reqDays && totalHours >= reqHours {
		return StatusCompliant
	}
	return StatusNotCompliant
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
