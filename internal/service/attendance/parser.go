package attendance

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rtrack/rtrack-backend-go/internal/domain/attendance"
	"github.com/rtrack/rtrack-backend-go/internal/pkg/excel"
)

// Swipe machine exports label their columns across two merged header rows
// ("In-Time" over "SPFID" becomes in-spfid after flattening).
const (
	colEmployeeID = "userid"
	colSwipeIn    = "in-spfid"
	colSwipeOut   = "out-spfid"
	colWorkHours  = "workhrs"
)

// dateLayouts covers the formats the swipe export renders its date rows in.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01-02-06",
	"01/02/2006",
	"1/2/2006",
	"1/2/06",
	"02-Jan-06",
	"2-Jan-06",
	"02 Jan 2006",
}

// parseWorkbook turns a raw swipe-machine export into one attendance row per
// employee per day. The export interleaves date marker rows with employee
// rows beneath them, so dates are carried forward until the next marker.
// Employee names are filled in later from the employee master table.
func parseWorkbook(content []byte) ([]attendance.Attendance, error) {
	grid, err := excel.Rows(content)
	if err != nil {
		return nil, &attendance.ParseError{Reason: err.Error()}
	}

	grid = dropEmpty(grid)

	// The preamble above the "User..." banner row is machine metadata.
	start := -1
	for i, row := range grid {
		if len(row) > 0 && strings.HasPrefix(strings.TrimSpace(row[0]), "User") {
			start = i
			break
		}
	}
	if start >= 0 {
		grid = grid[start:]
	}

	if len(grid) < 3 {
		return nil, &attendance.ParseError{Reason: "file has no data rows. Check file format."}
	}

	columns := flattenHeader(grid[0], grid[1])

	required := []string{colEmployeeID, colSwipeIn, colSwipeOut, colWorkHours}
	for _, col := range required {
		if _, ok := columns[col]; !ok {
			return nil, &attendance.ParseError{Reason: fmt.Sprintf("required column %q not found. Check file format.", col)}
		}
	}

	firstDate := -1
	for i, row := range grid {
		if _, ok := parseDate(row[0]); ok {
			firstDate = i
			break
		}
	}
	if firstDate < 0 {
		return nil, &attendance.ParseError{Reason: "No date row found in first column. Check file format."}
	}

	// The final row is a totals line, never a swipe record.
	body := grid[firstDate : len(grid)-1]

	var records []attendance.Attendance
	var currentDate time.Time
	haveDate := false

	for _, row := range body {
		first := strings.TrimSpace(row[columns[colEmployeeID]])

		if d, ok := parseDate(first); ok {
			currentDate = d
			haveDate = true
			continue
		}
		if !haveDate || first == "" {
			continue
		}

		swipeIn := optionalCell(row, columns[colSwipeIn])
		swipeOut := optionalCell(row, columns[colSwipeOut])
		workHours := optionalCell(row, columns[colWorkHours])

		isPresent := 0
		if swipeIn != nil && swipeOut != nil {
			isPresent = 1
		}

		weekStart := mondayOf(currentDate)
		isoYear, isoWeek := currentDate.ISOWeek()
		month := int(currentDate.Month())

		records = append(records, attendance.Attendance{
			EmployeeID:    normalizeEmployeeID(first),
			EmployeeName:  normalizeEmployeeID(first),
			SwipeIn:       swipeIn,
			SwipeOut:      swipeOut,
			WorkHours:     workHours,
			HoursWorked:   hhmmToHours(workHours),
			IsPresent:     isPresent,
			Date:          currentDate,
			WeekStart:     weekStart,
			WeekEnd:       weekStart.AddDate(0, 0, 4),
			WeekNumber:    isoWeek,
			MonthNumber:   month,
			QuarterNumber: (month-1)/3 + 1,
			Year:          isoYear,
		})
	}

	return records, nil
}

// flattenHeader joins the two merged header rows into one lowercased name
// per column, suffixing repeats so lookups stay unambiguous.
func flattenHeader(top, bottom []string) map[string]int {
	seen := make(map[string]int)
	columns := make(map[string]int)

	for i := range top {
		name := strings.TrimSpace(top[i])
		if i < len(bottom) {
			name += strings.TrimSpace(bottom[i])
		}
		name = strings.ToLower(name)

		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s_%d", name, n+1)
		} else {
			seen[name] = 0
		}
		columns[name] = i
	}

	return columns
}

func dropEmpty(grid [][]string) [][]string {
	if len(grid) == 0 {
		return grid
	}

	width := len(grid[0])
	usedCol := make([]bool, width)
	var rows [][]string

	for _, row := range grid {
		empty := true
		for i, cell := range row {
			if strings.TrimSpace(cell) != "" {
				empty = false
				usedCol[i] = true
			}
		}
		if !empty {
			rows = append(rows, row)
		}
	}

	var keep []int
	for i, used := range usedCol {
		if used {
			keep = append(keep, i)
		}
	}
	if len(keep) == width {
		return rows
	}

	compacted := make([][]string, len(rows))
	for r, row := range rows {
		cells := make([]string, len(keep))
		for i, c := range keep {
			cells[i] = row[c]
		}
		compacted[r] = cells
	}

	return compacted
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

func optionalCell(row []string, idx int) *string {
	if idx >= len(row) {
		return nil
	}
	v := strings.TrimSpace(row[idx])
	if v == "" {
		return nil
	}
	return &v
}

// hhmmToHours converts "HH:MM" to decimal hours rounded to 2 places.
func hhmmToHours(hhmm *string) *float64 {
	if hhmm == nil {
		return nil
	}

	parts := strings.Split(strings.TrimSpace(*hhmm), ":")
	if len(parts) < 2 {
		return nil
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil
	}

	total := math.Round((float64(hours)+float64(minutes)/60.0)*100) / 100
	return &total
}

// normalizeEmployeeID uppercases the swipe machine's user id and ensures
// the GCC prefix the employee master table uses.
func normalizeEmployeeID(id string) string {
	id = strings.ToUpper(strings.TrimSpace(id))
	if !strings.HasPrefix(id, "GCC") {
		id = "GCC" + id
	}
	return id
}

// mondayOf returns the Monday of the week containing d.
func mondayOf(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}
