// Package docname infers the schedule month and year from a document name.
// The result is advisory only: the caller is expected to let a human
// override it, so false positives are acceptable.
package docname

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// greekMonths maps the Greek month names appearing in schedule document
// names (e.g. "ΕΦΗΜΕΡΙΕΣ ΜΑΡΤΙΟΣ 2025.docx"). The slice is scanned in
// calendar order, so the first month in this order that appears anywhere in
// the name wins, regardless of its position in the string.
var greekMonths = []struct {
	Name  string
	Month int
}{
	{"ΙΑΝΟΥΑΡΙΟΣ", 1},
	{"ΦΕΒΡΟΥΑΡΙΟΣ", 2},
	{"ΜΑΡΤΙΟΣ", 3},
	{"ΑΠΡΙΛΙΟΣ", 4},
	{"ΜΑΙΟΣ", 5},
	{"ΙΟΥΝΙΟΣ", 6},
	{"ΙΟΥΛΙΟΣ", 7},
	{"ΑΥΓΟΥΣΤΟΣ", 8},
	{"ΣΕΠΤΕΜΒΡΙΟΣ", 9},
	{"ΟΚΤΩΒΡΙΟΣ", 10},
	{"ΝΟΕΜΒΡΙΟΣ", 11},
	{"ΔΕΚΕΜΒΡΙΟΣ", 12},
}

var yearRe = regexp.MustCompile(`20\d\d`)

// ExtractMonthYear scans name for a Greek month token and a 4-digit year
// starting with "20". Missing pieces fall back to now's month and year.
func ExtractMonthYear(name string, now time.Time) (month, year int) {
	for _, m := range greekMonths {
		if strings.Contains(name, m.Name) {
			if match := yearRe.FindString(name); match != "" {
				y, err := strconv.Atoi(match)
				if err == nil {
					return m.Month, y
				}
			}
			return m.Month, now.Year()
		}
	}
	return int(now.Month()), now.Year()
}
