package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Employee ID", "employee_id"},
		{"Reporting Manager Name", "reporting_manager_name"},
		{"  Vertical Head ID  ", "vertical_head_id"},
		{"Status", "status"},
		{"employee_id", "employee_id"},
		{"Work-Hours (Total)", "work_hours_total"},
		{"Multiple   Spaces", "multiple_spaces"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToSnakeCase(tt.in), tt.in)
	}
}
