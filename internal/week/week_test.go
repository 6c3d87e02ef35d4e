package week

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("canonical S marker", func(t *testing.T) {
		id, err := Parse("2025-S43")
		require.NoError(t, err)
		assert.Equal(t, 2025, id.Year)
		assert.Equal(t, 43, id.Week)
	})

	t.Run("W marker normalized", func(t *testing.T) {
		id, err := Parse("2025-W43")
		require.NoError(t, err)
		assert.Equal(t, "2025-S43", id.String())
	})

	t.Run("single digit week", func(t *testing.T) {
		id, err := Parse("2025-S3")
		require.NoError(t, err)
		assert.Equal(t, "2025-S03", id.String())
	})

	t.Run("week out of range", func(t *testing.T) {
		_, err := Parse("2025-S54")
		assert.Error(t, err)
		_, err = Parse("2025-S00")
		assert.Error(t, err)
	})

	t.Run("malformed input", func(t *testing.T) {
		for _, s := range []string{"", "2025", "2025-43", "S43-2025", "2025-X43", "25-S43"} {
			_, err := Parse(s)
			assert.Error(t, err, "input %q should be rejected", s)
		}
	})
}

func TestMonday(t *testing.T) {
	tests := []struct {
		week   string
		monday string
	}{
		{"2025-S01", "2024-12-30"}, // week 1 starts in the previous calendar year
		{"2025-S10", "2025-03-03"},
		{"2025-S43", "2025-10-20"},
		{"2026-S01", "2025-12-29"},
		{"2020-S53", "2020-12-28"}, // 53-week year
	}
	for _, tt := range tests {
		id := MustParse(tt.week)
		assert.Equal(t, tt.monday, id.Monday().Format("2006-01-02"), "monday of %s", tt.week)
		assert.Equal(t, time.Monday, id.Monday().Weekday())
	}
}

func TestWeekdays(t *testing.T) {
	days := MustParse("2025-S10").Weekdays()
	require.Len(t, days, 5)
	assert.Equal(t, "2025-03-03", days[0].Format("2006-01-02"))
	assert.Equal(t, "2025-03-07", days[4].Format("2006-01-02"))
	for i, d := range days {
		assert.Equal(t, time.Weekday(i+1), d.Weekday())
	}
}

func TestNextPrevious(t *testing.T) {
	id := MustParse("2025-S43")
	assert.Equal(t, "2025-S44", id.Next().String())
	assert.Equal(t, "2025-S42", id.Previous().String())

	// Year boundaries, including the 53-week year 2020.
	assert.Equal(t, "2026-S01", MustParse("2025-S52").Next().String())
	assert.Equal(t, "2020-S53", MustParse("2021-S01").Previous().String())
	assert.Equal(t, "2021-S01", MustParse("2020-S53").Next().String())
}

func TestFromTimeRoundTrip(t *testing.T) {
	id := MustParse("2025-S10")
	for _, d := range id.Weekdays() {
		assert.Equal(t, id, FromTime(d))
		assert.True(t, id.Contains(d))
	}
	assert.False(t, id.Contains(id.Monday().AddDate(0, 0, 7)))
}
