package docname

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractMonthYear(t *testing.T) {
	now := time.Date(2025, 7, 20, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		in        string
		wantMonth int
		wantYear  int
	}{
		{
			name:      "month and year present",
			in:        "ΕΦΗΜΕΡΙΕΣ ΜΑΡΤΙΟΣ 2025.docx",
			wantMonth: 3,
			wantYear:  2025,
		},
		{
			name:      "month without year falls back to current year",
			in:        "ΕΦΗΜΕΡΙΕΣ ΔΕΚΕΜΒΡΙΟΣ.docx",
			wantMonth: 12,
			wantYear:  2025,
		},
		{
			name:      "no month token falls back entirely",
			in:        "schedule-final-v2.docx",
			wantMonth: 7,
			wantYear:  2025,
		},
		{
			name:      "year elsewhere in the name",
			in:        "2026 ΙΑΝΟΥΑΡΙΟΣ πρόγραμμα.docx",
			wantMonth: 1,
			wantYear:  2026,
		},
		{
			name: "calendar order wins over position in the string",
			// ΜΑΙΟΣ appears first in the text, but ΦΕΒΡΟΥΑΡΙΟΣ comes first in
			// the month table.
			in:        "ΜΑΙΟΣ ΦΕΒΡΟΥΑΡΙΟΣ 2025",
			wantMonth: 2,
			wantYear:  2025,
		},
		{
			name:      "empty name",
			in:        "",
			wantMonth: 7,
			wantYear:  2025,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			month, year := ExtractMonthYear(tt.in, now)
			assert.Equal(t, tt.wantMonth, month)
			assert.Equal(t, tt.wantYear, year)
		})
	}
}
