// Package ics assembles per-employee iCalendar documents from aggregated
// shift records.
package ics

import (
	"errors"
	"sort"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	appLog "shiftcal/internal/log"
	"shiftcal/internal/model"
	"shiftcal/internal/schedule"
)

// ErrNoShifts reports that the requested employee has no records in the
// combined list or in any attached roster. This is an expected, user-facing
// outcome rather than a defect; the caller owns the messaging.
var ErrNoShifts = errors.New("no shifts found for employee")

const (
	defaultProdID    = "-//Employee Shift Calendar//shiftcal//"
	defaultUIDDomain = "shifts.example.com"
)

// BuildConfig controls calendar assembly.
type BuildConfig struct {
	// ProdID is emitted as the calendar's PRODID header.
	ProdID string

	// UIDDomain is the constant tag suffixed to every event UID. UIDs are
	// deterministic per employee+date so regenerating the same schedule
	// updates events in place instead of duplicating them.
	UIDDomain string

	// Now supplies the DTSTAMP clock. Defaults to time.Now; tests pin it to
	// get reproducible output.
	Now func() time.Time
}

func (c *BuildConfig) normalize() {
	if c.ProdID == "" {
		c.ProdID = defaultProdID
	}
	if c.UIDDomain == "" {
		c.UIDDomain = defaultUIDDomain
	}
	if c.Now == nil {
		c.Now = time.Now
	}
}

// dayGroup collects one date's records for the selected employee, in the
// order they were first encountered.
type dayGroup struct {
	date    time.Time
	records []model.ShiftRecord
}

// Build produces the serialized iCalendar document for one employee: one
// all-day VEVENT per distinct date, combining every shift the employee holds
// that day (combined list and specialty rosters alike), with coworker and
// specialty on-call context in the description.
//
// The employee name is matched case-insensitively against every source; if
// nothing matches anywhere, Build returns ErrNoShifts.
func Build(agg *schedule.Aggregate, employee string, cfg BuildConfig) ([]byte, error) {
	cfg.normalize()

	selected := agg.ByEmployee(employee)
	for _, roster := range agg.Rosters() {
		selected = append(selected, roster.ByEmployee(employee)...)
	}
	if len(selected) == 0 {
		return nil, ErrNoShifts
	}

	// Group by date, preserving first-encounter order so repeated builds emit
	// events in a stable sequence.
	groupIdx := make(map[string]int)
	groups := make([]dayGroup, 0, len(selected))
	for _, rec := range selected {
		key := model.DateKey(rec.Date)
		i, ok := groupIdx[key]
		if !ok {
			i = len(groups)
			groupIdx[key] = i
			groups = append(groups, dayGroup{date: rec.Date})
		}
		groups[i].records = append(groups[i].records, rec)
	}

	cal := ical.NewCalendar()
	cal.SetProductId(cfg.ProdID)
	cal.SetVersion("2.0")
	cal.SetCalscale("GREGORIAN")

	stamp := cfg.Now()

	for _, g := range groups {
		shiftTypes := make([]string, 0, len(g.records))
		for _, rec := range g.records {
			shiftTypes = append(shiftTypes, rec.ShiftType)
		}
		// All records in the group share the date; the day-of-week label is
		// taken from the first.
		dayOfWeek := g.records[0].DayOfWeek

		uid := strings.ReplaceAll(employee, " ", "") + "-" + g.date.Format("20060102") + "@" + cfg.UIDDomain
		event := cal.AddEvent(uid)
		event.SetSummary(strings.Join(shiftTypes, ", ") + " - " + dayOfWeek)
		event.SetAllDayStartAt(g.date)
		// Exclusive end per the all-day convention: one day past the date.
		event.SetAllDayEndAt(g.date.AddDate(0, 0, 1))
		event.SetDtStampTime(stamp)
		event.SetDescription(buildDescription(agg, employee, g.date, shiftTypes))
	}

	appLog.Info("calendar built", "employee", employee, "event_count", len(groups))

	// Serialize would otherwise follow the OS newline; RFC 5545 requires
	// CRLF, and explicit CRLF keeps output byte-identical across platforms.
	return []byte(cal.Serialize(ical.WithNewLineWindows)), nil
}

// buildDescription assembles the multi-line event description: the
// employee's own shifts, everyone else on duty that day (from the combined
// list only), and per attached roster the first other employee on call.
func buildDescription(agg *schedule.Aggregate, employee string, date time.Time, shiftTypes []string) string {
	parts := []string{"Your shifts: " + strings.Join(shiftTypes, ", ")}

	var coworkers []string
	for _, rec := range agg.OnDate(date) {
		if rec.SameEmployee(employee) {
			continue
		}
		coworkers = append(coworkers, rec.Employee+": "+rec.ShiftType)
	}

	if len(coworkers) > 0 {
		parts = append(parts, "\nCoworkers on this day:")
		sort.Strings(coworkers)
		for _, info := range coworkers {
			parts = append(parts, "- "+info)
		}
	} else {
		parts = append(parts, "\nNo other employees scheduled on this day.")
	}

	for _, roster := range agg.Rosters() {
		if name, ok := roster.FirstOtherOnDate(date, employee); ok {
			parts = append(parts, "\n"+roster.Label+": "+name)
		}
	}

	return strings.Join(parts, "\n")
}
