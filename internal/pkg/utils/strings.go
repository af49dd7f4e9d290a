package utils

import (
	"regexp"
	"strings"
)

var (
	nonWordRegex    = regexp.MustCompile(`[^\w\s-]`)
	separatorRegex  = regexp.MustCompile(`[\s-]+`)
	underscoreRegex = regexp.MustCompile(`_+`)
)

// ToSnakeCase normalizes a spreadsheet column header to a snake_case
// identifier: "Employee ID" -> "employee_id", "Reporting Manager Name" ->
// "reporting_manager_name".
func ToSnakeCase(name string) string {
	name = nonWordRegex.ReplaceAllString(name, "")
	name = separatorRegex.ReplaceAllString(strings.TrimSpace(name), "_")
	name = underscoreRegex.ReplaceAllString(name, "_")
	return strings.Trim(strings.ToLower(name), "_")
}
