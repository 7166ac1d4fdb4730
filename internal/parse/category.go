package parse

import (
	"strconv"
	"strings"

	appLog "shiftcal/internal/log"
	"shiftcal/internal/model"
)

// categoryMarker is the highlight character some schedules prefix category
// assignments with; it is stripped before the name is stored.
const categoryMarker = ">"

// ParseCategoryTable parses the multi-category duty table: rows of at least
// six cells laid out as [day, _, dayOfWeek, megali, mikri, tep]. Each
// non-empty category cell yields one record with that category's fixed shift
// type (two 24-hour posts and one 12-hour post).
//
// Row skipping and rollover behavior match ParsePrimaryTable.
func ParseCategoryTable(rows [][]string, month, year int) []model.ShiftRecord {
	records := make([]model.ShiftRecord, 0, len(rows))
	pc := NewParseContext(month, year)

	for _, row := range rows {
		if len(row) < 6 {
			continue
		}

		day := strings.TrimSpace(row[0])
		dayOfWeek := strings.TrimSpace(row[2])

		if !isDayNumber(day) {
			continue
		}
		dayNum, err := strconv.Atoi(day)
		if err != nil {
			continue
		}

		shiftDate, err := pc.ResolveDay(dayNum)
		if err != nil {
			appLog.Debug("skipping category table row", "day", day, "err", err)
			continue
		}

		categories := []struct {
			cell      string
			shiftType string
		}{
			{row[3], model.ShiftMegali},
			{row[4], model.ShiftMikri},
			{row[5], model.ShiftTEP},
		}

		for _, cat := range categories {
			employee := strings.TrimSpace(strings.ReplaceAll(cat.cell, categoryMarker, ""))
			if employee == "" {
				continue
			}
			records = append(records, model.ShiftRecord{
				Employee:  employee,
				Date:      shiftDate,
				DayOfWeek: dayOfWeek,
				ShiftType: cat.shiftType,
			})
		}
	}

	return records
}
