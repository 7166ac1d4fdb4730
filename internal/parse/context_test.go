package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRolloverNeeded(t *testing.T) {
	tests := []struct {
		name    string
		day     int
		lastDay int
		want    bool
	}{
		{name: "end of month into next", day: 1, lastDay: 31, want: true},
		{name: "day 2 after 30", day: 2, lastDay: 30, want: true},
		{name: "ascending sequence", day: 15, lastDay: 14, want: false},
		{name: "small dip without large predecessor", day: 3, lastDay: 5, want: false},
		{name: "large new day after large last day", day: 15, lastDay: 28, want: false},
		{name: "boundary lastDay exactly 20", day: 1, lastDay: 20, want: false},
		{name: "boundary day exactly 10", day: 10, lastDay: 31, want: false},
		{name: "first row of table", day: 1, lastDay: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rolloverNeeded(tt.day, tt.lastDay))
		})
	}
}

func TestParseContext_ResolveDay(t *testing.T) {
	t.Run("rolls month over across 31-1 boundary", func(t *testing.T) {
		pc := NewParseContext(3, 2025)

		var got []time.Time
		for _, day := range []int{29, 30, 31, 1, 2} {
			d, err := pc.ResolveDay(day)
			require.NoError(t, err)
			got = append(got, d)
		}

		assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), got[2])
		assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), got[3])
		assert.Equal(t, time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC), got[4])
	})

	t.Run("does not roll over on a plain dip", func(t *testing.T) {
		pc := NewParseContext(6, 2025)

		for _, day := range []int{5, 3, 8} {
			d, err := pc.ResolveDay(day)
			require.NoError(t, err)
			assert.Equal(t, time.June, d.Month())
		}
	})

	t.Run("rolls year over past December", func(t *testing.T) {
		pc := NewParseContext(12, 2025)

		_, err := pc.ResolveDay(30)
		require.NoError(t, err)

		d, err := pc.ResolveDay(1)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("rejects impossible dates but keeps context usable", func(t *testing.T) {
		pc := NewParseContext(2, 2025)

		_, err := pc.ResolveDay(31)
		require.Error(t, err)

		// The failed row must not poison the rest of the table.
		d, err := pc.ResolveDay(28)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), d)
	})
}

func TestParseDateString(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{
			name: "dash separated",
			in:   "05-03-2025",
			want: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "slash separated",
			in:   "05/03/2025",
			want: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "single digit day and month",
			in:   "5-3-2025",
			want: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		},
		{name: "ISO field order rejected", in: "2025-03-05", wantErr: true},
		{name: "mixed separators rejected", in: "05-03/2025", wantErr: true},
		{name: "two digit year rejected", in: "05-03-25", wantErr: true},
		{name: "plain day number rejected", in: "12", wantErr: true},
		{name: "header text rejected", in: "ΗΜΕΡΟΜΗΝΙΑ", wantErr: true},
		{name: "impossible calendar date rejected", in: "31-02-2025", wantErr: true},
		{name: "empty string rejected", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateString(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDateString_SeparatorStylesAgree(t *testing.T) {
	dash, err := ParseDateString("05-03-2025")
	require.NoError(t, err)
	slash, err := ParseDateString("05/03/2025")
	require.NoError(t, err)
	assert.True(t, dash.Equal(slash))
}
