// Package schedule merges the shift records produced by the table parsers
// and indexes them for calendar assembly.
package schedule

import (
	"sort"
	"time"

	"shiftcal/internal/model"
)

// Roster is a specialty on-call schedule (e.g. cath lab, electrophysiology)
// kept alongside, but not merged into, the combined shift list: it records
// supplementary on-call duty, not primary shift assignment.
type Roster struct {
	Label   string
	Records []model.ShiftRecord
}

// ByEmployee returns the roster records belonging to the given employee,
// matched case-insensitively, in original order.
func (r Roster) ByEmployee(name string) []model.ShiftRecord {
	var out []model.ShiftRecord
	for _, rec := range r.Records {
		if rec.SameEmployee(name) {
			out = append(out, rec)
		}
	}
	return out
}

// FirstOtherOnDate returns the first employee other than name who is on call
// on the given date, or false if there is none.
func (r Roster) FirstOtherOnDate(date time.Time, name string) (string, bool) {
	for _, rec := range r.Records {
		if rec.Date.Equal(date) && !rec.SameEmployee(name) {
			return rec.Employee, true
		}
	}
	return "", false
}

// Aggregate holds the combined shift list (primary + category tables) plus
// any specialty rosters, and builds lookup indexes on demand. It is filled
// once after parsing and read-only from then on; the indexes are lazy and
// invalidated by further adds.
type Aggregate struct {
	all     []model.ShiftRecord
	rosters []Roster

	byEmployee map[string][]model.ShiftRecord
	byDate     map[string][]model.ShiftRecord
}

// New returns an empty Aggregate.
func New() *Aggregate {
	return &Aggregate{}
}

// Add appends records to the combined shift list.
func (a *Aggregate) Add(records ...model.ShiftRecord) {
	a.all = append(a.all, records...)
	a.byEmployee = nil
	a.byDate = nil
}

// AddRoster attaches a specialty roster under its shift type label. Rosters
// are kept in the order they were added; that order also drives the roster
// sections of generated event descriptions.
func (a *Aggregate) AddRoster(label string, records []model.ShiftRecord) {
	a.rosters = append(a.rosters, Roster{Label: label, Records: records})
}

// All returns the combined shift list in parse order.
func (a *Aggregate) All() []model.ShiftRecord {
	return a.all
}

// Rosters returns the attached specialty rosters in attach order.
func (a *Aggregate) Rosters() []Roster {
	return a.rosters
}

// ByEmployee returns the combined-list records of the given employee,
// matched case-insensitively, in parse order.
func (a *Aggregate) ByEmployee(name string) []model.ShiftRecord {
	if a.byEmployee == nil {
		a.byEmployee = make(map[string][]model.ShiftRecord)
		for _, rec := range a.all {
			key := model.NormalizeName(rec.Employee)
			a.byEmployee[key] = append(a.byEmployee[key], rec)
		}
	}
	return a.byEmployee[model.NormalizeName(name)]
}

// OnDate returns the combined-list records falling on the given date, in
// parse order. Specialty rosters are not included.
func (a *Aggregate) OnDate(date time.Time) []model.ShiftRecord {
	if a.byDate == nil {
		a.byDate = make(map[string][]model.ShiftRecord)
		for _, rec := range a.all {
			key := model.DateKey(rec.Date)
			a.byDate[key] = append(a.byDate[key], rec)
		}
	}
	return a.byDate[model.DateKey(date)]
}

// Employees returns the sorted, de-duplicated display names found in the
// combined shift list. De-duplication is case-insensitive; the first casing
// encountered wins.
func (a *Aggregate) Employees() []string {
	seen := make(map[string]string)
	for _, rec := range a.all {
		key := model.NormalizeName(rec.Employee)
		if _, ok := seen[key]; !ok {
			seen[key] = rec.Employee
		}
	}

	names := make([]string, 0, len(seen))
	for _, display := range seen {
		names = append(names, display)
	}
	sort.Strings(names)
	return names
}
