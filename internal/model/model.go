package model

import (
	"strings"
	"time"
)

// Shift type labels emitted by the table parsers. The primary table knows two
// kinds; the category table carries the three named duty posts of the monthly
// roster. Specialty on-call labels are not fixed here; they are supplied by
// the caller per roster (see internal/parse.ParseOnCallTable).
const (
	ShiftRegular = "Regular Shift"
	ShiftOnCall  = "On-Call Shift"
	ShiftMegali  = "Μεγάλη Shift (24h)"
	ShiftMikri   = "Μικρή Shift (24h)"
	ShiftTEP     = "TEP Shift (12h)"
)

// ShiftRecord is one normalized shift assignment as produced by the table
// parsers. Records are value types and are never mutated after creation;
// duplicates (same employee/date/type) are allowed.
//
// Date carries date-only semantics: midnight UTC, no time of day. DayOfWeek
// is kept verbatim from the source table and is not recomputed from Date.
type ShiftRecord struct {
	Employee  string
	Date      time.Time
	DayOfWeek string
	ShiftType string
}

// SameEmployee reports whether the record belongs to the given employee,
// compared case-insensitively. The stored display name is never modified.
func (r ShiftRecord) SameEmployee(name string) bool {
	return NormalizeName(r.Employee) == NormalizeName(name)
}

// NormalizeName produces the lookup key used for case-insensitive employee
// matching. Display values keep their original casing everywhere else.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Date constructs a date-only time value (midnight UTC) and validates that it
// is a real Gregorian calendar date. time.Date silently normalizes day 31 of
// a 30-day month into the next month, so the components are checked after
// construction.
func Date(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// DateKey formats a date for use as a grouping/index key.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
