package parse

import (
	"strings"

	appLog "shiftcal/internal/log"
	"shiftcal/internal/model"
)

// ParseOnCallTable parses a specialty on-call roster: rows of at least three
// cells laid out as [dateString, dayOfWeek, employee], with the date written
// out explicitly as D-M-YYYY or D/M/YYYY. The caller assigns the roster's
// shift type label (one routine serves every specialty; only the label
// differs).
//
// Rows whose lead cell is not a recognizable date string (headers) or that
// name no employee are skipped; a bad row never aborts the rest of the table.
func ParseOnCallTable(rows [][]string, shiftType string) []model.ShiftRecord {
	records := make([]model.ShiftRecord, 0, len(rows))

	for _, row := range rows {
		if len(row) < 3 {
			continue
		}

		dateStr := strings.TrimSpace(row[0])
		dayOfWeek := strings.TrimSpace(row[1])
		employee := strings.TrimSpace(row[2])

		shiftDate, err := ParseDateString(dateStr)
		if err != nil {
			appLog.Debug("skipping on-call table row", "date", dateStr, "err", err)
			continue
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

	return records
}
