package orgtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// UTC+5:30, no DST.
var ist = time.FixedZone("IST", 5*3600+30*60)

func TestDayBounds_CrossesUTCMidnight(t *testing.T) {
	// 2024-03-15T19:00:00Z is already 2024-03-16T00:30 in IST, so the
	// resolved calendar day must be March 16th.
	ref := time.Date(2024, 3, 15, 19, 0, 0, 0, time.UTC)

	start, end := DayBounds(ref, ist)

	assert.Equal(t, time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 16, 18, 29, 59, 999000000, time.UTC), end)
}

func TestDayStart_MatchesDayBounds(t *testing.T) {
	ref := time.Date(2024, 3, 15, 19, 0, 0, 0, time.UTC)

	start, _ := DayBounds(ref, ist)
	assert.Equal(t, start, DayStart(ref, ist))
}

func TestDayBounds_UTCZone(t *testing.T) {
	ref := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)

	start, end := DayBounds(ref, time.UTC)

	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 7, 1, 23, 59, 59, 999000000, time.UTC), end)
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(2024, time.February, ist)

	assert.Equal(t, time.Date(2024, 1, 31, 18, 30, 0, 0, time.UTC), start)
	// 2024 is a leap year, so February runs through the 29th.
	assert.Equal(t, time.Date(2024, 2, 29, 18, 29, 59, 999000000, time.UTC), end)
}

func TestMonthBounds_DecemberRollsOver(t *testing.T) {
	start, end := MonthBounds(2024, time.December, time.UTC)

	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 12, 31, 23, 59, 59, 999000000, time.UTC), end)
}

func TestHourIn(t *testing.T) {
	// 04:30 UTC is 10:00 IST.
	ref := time.Date(2024, 3, 15, 4, 30, 0, 0, time.UTC)
	assert.Equal(t, 10, HourIn(ref, ist))
	assert.Equal(t, 4, HourIn(ref, time.UTC))
}
