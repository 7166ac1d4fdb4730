package parse

import (
	"strconv"
	"strings"

	appLog "shiftcal/internal/log"
	"shiftcal/internal/model"
)

// onCallMarker flags an on-call assignment in the primary table. The marker
// may appear anywhere in the name cell and is stripped from the stored name.
const onCallMarker = "*"

// ParsePrimaryTable parses the main duty table: rows of at least four cells
// laid out as [day, _, dayOfWeek, employees]. The employees cell lists one or
// two names separated by newlines; a name carrying the on-call marker yields
// an On-Call Shift record, any other name a Regular Shift record.
//
// Rows that are too short, whose lead cell is not a day number (headers,
// separators), or that resolve to an impossible date are skipped; a bad row
// never aborts the rest of the table.
func ParsePrimaryTable(rows [][]string, month, year int) []model.ShiftRecord {
	records := make([]model.ShiftRecord, 0, len(rows))
	pc := NewParseContext(month, year)

	for _, row := range rows {
		if len(row) < 4 {
			continue
		}

		day := strings.TrimSpace(row[0])
		dayOfWeek := strings.TrimSpace(row[2])
		employeesCell := strings.TrimSpace(row[3])

		if !isDayNumber(day) {
			continue
		}
		dayNum, err := strconv.Atoi(day)
		if err != nil {
			continue
		}

		shiftDate, err := pc.ResolveDay(dayNum)
		if err != nil {
			appLog.Debug("skipping primary table row", "day", day, "err", err)
			continue
		}

		for _, employee := range strings.Split(employeesCell, "\n") {
			employee = strings.TrimSpace(employee)
			if employee == "" {
				continue
			}

			shiftType := model.ShiftRegular
			if strings.Contains(employee, onCallMarker) {
				shiftType = model.ShiftOnCall
				employee = strings.TrimSpace(strings.ReplaceAll(employee, onCallMarker, ""))
			}
			if employee == "" {
				continue
			}

			records = append(records, model.ShiftRecord{
				Employee:  employee,
				Date:      shiftDate,
				DayOfWeek: dayOfWeek,
				ShiftType: shiftType,
			})
		}
	}

	return records
}
