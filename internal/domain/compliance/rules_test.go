package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestParseRequirementsDefaults(t *testing.T) {
	tests := []struct {
		name      string
		exception *string
	}{
		{"nil exception", nil},
		{"empty string", strPtr("")},
		{"whitespace", strPtr("   ")},
		{"default rule", strPtr("default")},
		{"unparseable", strPtr("sometimes")},
		{"bad number", strPtr("weekly_x_day")},
		{"wrong suffix", strPtr("weekly_3_week")},
		{"unknown period", strPtr("daily_3_day")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ParseRequirements(tt.exception)
			assert.Equal(t, DefaultRequirements(), req)
		})
	}
}

func TestParseRequirementsOtherIsExempt(t *testing.T) {
	req := ParseRequirements(strPtr("other"))
	assert.True(t, req.Exempt)

	req = ParseRequirements(strPtr("Other"))
	assert.True(t, req.Exempt)
}

func TestParseRequirementsScaling(t *testing.T) {
	// weekly_3_day: ratio 3/2 scales every period, hours proportionally.
	req := ParseRequirements(strPtr("weekly_3_day"))
	assert.False(t, req.Exempt)
	assert.Equal(t, 3.0, req.WeeklyDays)
	assert.Equal(t, 23.25, req.WeeklyHours)
	assert.Equal(t, 12.0, req.MonthlyDays)
	assert.Equal(t, 93.0, req.MonthlyHours)
	assert.Equal(t, 36.0, req.QuarterlyDays)
	assert.Equal(t, 279.0, req.QuarterlyHours)

	// monthly_4_day: ratio 4/8 = 0.5.
	req = ParseRequirements(strPtr("monthly_4_day"))
	assert.Equal(t, 1.0, req.WeeklyDays)
	assert.Equal(t, 7.75, req.WeeklyHours)
	assert.Equal(t, 4.0, req.MonthlyDays)
	assert.Equal(t, 31.0, req.MonthlyHours)
	assert.Equal(t, 12.0, req.QuarterlyDays)
	assert.Equal(t, 93.0, req.QuarterlyHours)

	// quarterly_12_day: ratio 12/24 = 0.5.
	req = ParseRequirements(strPtr("quarterly_12_day"))
	assert.Equal(t, 1.0, req.WeeklyDays)
	assert.Equal(t, 12.0, req.QuarterlyDays)
	assert.Equal(t, 93.0, req.QuarterlyHours)
}

func TestParseRequirementsRoundsToTwoPlaces(t *testing.T) {
	// weekly_1_day: ratio 0.5, weekly hours 7.75 exactly; quarterly_1_day
	// produces repeating fractions that must come out rounded.
	req := ParseRequirements(strPtr("quarterly_1_day"))
	assert.Equal(t, 0.08, req.WeeklyDays)
	assert.Equal(t, 0.65, req.WeeklyHours)
	assert.Equal(t, 0.33, req.MonthlyDays)
	assert.Equal(t, 1.0, req.QuarterlyDays)
	assert.Equal(t, 7.75, req.QuarterlyHours)
}

func TestClassifyPrecedence(t *testing.T) {
	defaults := DefaultRequirements()

	// Exempt wins even with no data.
	exempt := Requirements{Exempt: true}
	assert.Equal(t, StatusCompliant, Classify(exempt, PeriodWeekly, false, 0, 0))
	assert.Equal(t, StatusCompliant, Classify(exempt, PeriodWeekly, true, 0, 0))

	// No data beats threshold checks.
	assert.Equal(t, StatusNoData, Classify(defaults, PeriodWeekly, false, 0, 0))

	// Inclusive comparison: exactly at the targets is compliant.
	assert.Equal(t, StatusCompliant, Classify(defaults, PeriodWeekly, true, 2.0, 15.5))

	// Just below either target is not.
	assert.Equal(t, StatusNotCompliant, Classify(defaults, PeriodWeekly, true, 1.0, 15.5))
	assert.Equal(t, StatusNotCompliant, Classify(defaults, PeriodWeekly, true, 2.0, 15.49))
}

func TestThresholdByPeriod(t *testing.T) {
	defaults := DefaultRequirements()

	days, hours := defaults.Threshold(PeriodWeekly)
	assert.Equal(t, 2.0, days)
	assert.Equal(t, 15.5, hours)

	days, hours = defaults.Threshold(PeriodMonthly)
	assert.Equal(t, 8.0, days)
	assert.Equal(t, 62.0, hours)

	days, hours = defaults.Threshold(PeriodQuarterly)
	assert.Equal(t, 24.0, days)
	assert.Equal(t, 186.0, hours)
}
