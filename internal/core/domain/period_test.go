package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReportPeriod(t *testing.T) {
	tests := []struct {
		in   string
		want ReportPeriod
	}{
		{"", PeriodAnnual},
		{"Annual", PeriodAnnual},
		{"year", PeriodAnnual},
		{"q1", PeriodQ1},
		{"Q4", PeriodQ4},
		{"m5", "M05"},
		{"M12", "M12"},
		{"m01", "M01"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseReportPeriod(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"q5", "m13", "m0", "weekly"} {
		_, err := ParseReportPeriod(bad)
		assert.Error(t, err, bad)
	}
}

func TestReportPeriodMonthRange(t *testing.T) {
	from, to := PeriodAnnual.MonthRange()
	assert.Equal(t, time.January, from)
	assert.Equal(t, time.December, to)

	from, to = PeriodQ3.MonthRange()
	assert.Equal(t, time.July, from)
	assert.Equal(t, time.September, to)

	from, to = MonthPeriod(time.May).MonthRange()
	assert.Equal(t, time.May, from)
	assert.Equal(t, time.May, to)
}

func TestReportPeriodContains(t *testing.T) {
	feb := time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC)
	assert.True(t, PeriodAnnual.Contains(2024, feb))
	assert.True(t, PeriodQ1.Contains(2024, feb))
	assert.False(t, PeriodQ2.Contains(2024, feb))
	assert.False(t, PeriodQ1.Contains(2023, feb))
	assert.True(t, MonthPeriod(time.February).Contains(2024, feb))
}

func TestReportPeriodContainsUsesUTC(t *testing.T) {
	// 2024-12-31 22:00 UTC reads as 2025-01-01 01:00 in UTC+3.
	local := time.Date(2024, time.December, 31, 22, 0, 0, 0, time.UTC).In(time.FixedZone("UTC+3", 3*3600))
	assert.True(t, PeriodAnnual.Contains(2024, local))
	assert.True(t, MonthPeriod(time.December).Contains(2024, local))
	assert.False(t, PeriodAnnual.Contains(2025, local))
	assert.False(t, PeriodQ1.Contains(2025, local))
}

func TestIsProjectless(t *testing.T) {
	for _, id := range []string{"", GeneralProjectID, "N/A"} {
		assert.True(t, IsProjectless(id), id)
	}
	assert.False(t, IsProjectless("p-1"))
}
