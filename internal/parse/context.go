package parse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	appLog "shiftcal/internal/log"
	"shiftcal/internal/model"
)

// ParseContext tracks the month/year currently in effect while a table is
// walked top to bottom, together with the last day number seen. One context
// is created per table parse and discarded afterwards; it is never shared
// across tables.
type ParseContext struct {
	Month   int
	Year    int
	LastDay int
}

// NewParseContext initializes a context from the caller-supplied schedule
// month and year.
func NewParseContext(month, year int) ParseContext {
	return ParseContext{Month: month, Year: year}
}

// rolloverNeeded reports whether reading day after lastDay means the table
// has crossed into the next month.
//
// The heuristic assumes rows are in ascending date order within a month: a
// small day number (< 10) appearing right after a large one (> 20) is taken
// as the start of the next month. Tables that are not date-ordered, or that
// carry fewer than ~10 trailing days of one month followed by fewer than ~10
// leading days of the next, can mis-trigger this. Known limitation; kept as
// an isolated predicate so it can be tested and replaced on its own.
func rolloverNeeded(day, lastDay int) bool {
	return day < lastDay && lastDay > 20 && day < 10
}

// ResolveDay resolves a bare day-of-month number into a full calendar date,
// advancing the context's month (and year, past December) when a rollover is
// detected. An unrepresentable date (e.g. day 31 in a 30-day month) returns
// an error; the caller skips that row and continues.
func (pc *ParseContext) ResolveDay(day int) (time.Time, error) {
	if rolloverNeeded(day, pc.LastDay) {
		pc.Month++
		if pc.Month > 12 {
			pc.Month = 1
			pc.Year++
		}
		appLog.Info("month rollover detected", "month", pc.Month, "year", pc.Year)
	}
	pc.LastDay = day

	t, ok := model.Date(pc.Year, pc.Month, day)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid date: day %d in %d-%02d", day, pc.Year, pc.Month)
	}
	return t, nil
}

// dateStringRe matches the two accepted explicit date styles, D-M-YYYY and
// D/M/YYYY.
var dateStringRe = regexp.MustCompile(`^\d{1,2}[-/]\d{1,2}[-/]\d{4}$`)

// ParseDateString parses an explicit date string in D-M-YYYY or D/M/YYYY
// form (a single separator style per string). Anything else, including
// ISO-ordered strings like "2025-03-05", yields an error so the caller can
// skip the row.
func ParseDateString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !dateStringRe.MatchString(s) {
		return time.Time{}, fmt.Errorf("unrecognized date string: %q", s)
	}

	sep := "-"
	if !strings.Contains(s, "-") {
		sep = "/"
	}
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		// Mixed separators slip past the character class; reject them here.
		return time.Time{}, fmt.Errorf("mixed separators in date string: %q", s)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, err
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, err
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, err
	}

	t, ok := model.Date(year, month, day)
	if !ok {
		return time.Time{}, errors.New("invalid calendar date: " + s)
	}
	return t, nil
}

// isDayNumber reports whether the cell is a pure unsigned integer, which is
// how data rows are told apart from header and separator rows.
func isDayNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
