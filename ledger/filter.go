package ledger

import (
	"strconv"
	"strings"
	"time"
)

// FilterMode is the single active temporal mode of a normalized filter.
type FilterMode string

const (
	ModeAll          FilterMode = "all"
	ModeMonth        FilterMode = "month"
	ModeYear         FilterMode = "year"
	ModeCurrentMonth FilterMode = "current-month"
)

// Filter is a canonical query descriptor derived from raw month/year input.
type Filter struct {
	Mode  FilterMode `json:"mode"`
	Month time.Month `json:"month,omitempty"` // set for ModeMonth
	Year  int        `json:"year,omitempty"`  // set for ModeYear, optional for ModeMonth
}

// NormalizeFilter resolves raw month/year query values into a Filter.
// month is "", "current", or a 1-12 numeric string; year is "" or numeric.
// Precedence, in order:
//  1. month (numeric) + year       -> that month of that year
//  2. year only                    -> that whole year
//  3. month (numeric) only         -> that month across all years
//  4. month == "current"           -> the current calendar month (year ignored)
//  5. otherwise                    -> all time
//
// Contradictory input never errors; the precedence silently resolves it.
func NormalizeFilter(month, year string) Filter {
	month = strings.TrimSpace(month)
	year = strings.TrimSpace(year)

	m, monthOK := parseMonth(month)
	y, yearOK := parseYear(year)

	switch {
	case monthOK && yearOK:
		return Filter{Mode: ModeMonth, Month: m, Year: y}
	case !monthOK && month != "current" && yearOK:
		return Filter{Mode: ModeYear, Year: y}
	case monthOK:
		return Filter{Mode: ModeMonth, Month: m}
	case month == "current":
		return Filter{Mode: ModeCurrentMonth}
	default:
		return Filter{Mode: ModeAll}
	}
}

func parseMonth(s string) (time.Month, bool) {
	if s == "" || s == "current" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 12 {
		return 0, false
	}
	return time.Month(n), true
}

func parseYear(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Matches reports whether t falls inside the filter. now supplies the
// reference point for ModeCurrentMonth.
func (f Filter) Matches(t, now time.Time) bool {
	switch f.Mode {
	case ModeMonth:
		if t.Month() != f.Month {
			return false
		}
		return f.Year == 0 || t.Year() == f.Year
	case ModeYear:
		return t.Year() == f.Year
	case ModeCurrentMonth:
		return t.Year() == now.Year() && t.Month() == now.Month()
	default:
		return true
	}
}

// FilterRecords returns the records whose date matches f.
func FilterRecords(records []Record, f Filter, now time.Time) []Record {
	if f.Mode == ModeAll {
		return records
	}
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if f.Matches(r.Date, now) {
			out = append(out, r)
		}
	}
	return out
}
