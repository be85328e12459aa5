package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetMinutesForWeekday(t *testing.T) {
	want := map[time.Weekday]int{
		time.Sunday:    0,
		time.Monday:    510,
		time.Tuesday:   510,
		time.Wednesday: 510,
		time.Thursday:  510,
		time.Friday:    270,
		time.Saturday:  0,
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		t.Run(wd.String(), func(t *testing.T) {
			assert.Equal(t, want[wd], TargetMinutesForWeekday(wd))
		})
	}
}

func TestTargetMinutesOverManyDates(t *testing.T) {
	d := date(2020, 1, 1)
	for i := 0; i < 3*366; i++ {
		got := TargetMinutes(d)
		require.Equal(t, TargetMinutesForWeekday(d.Weekday()), got, d.Format(DateLayout))
		require.Equal(t, got > 0, IsWorkday(d), d.Format(DateLayout))
		d = d.AddDate(0, 0, 1)
	}
}

func TestWeekMinutes(t *testing.T) {
	assert.Equal(t, 2310, WeekMinutes)
	assert.Equal(t, WeekMinutes, TargetForRange(date(2025, 1, 6), date(2025, 1, 12)))
}

func TestWorkdays(t *testing.T) {
	days := Workdays(date(2025, 1, 1), date(2025, 1, 12))
	require.Len(t, days, 8)
	assert.Equal(t, date(2025, 1, 1), days[0])
	assert.Equal(t, date(2025, 1, 3), days[2])
	assert.Equal(t, date(2025, 1, 6), days[3])
	assert.Equal(t, date(2025, 1, 10), days[7])

	for _, d := range days {
		assert.True(t, IsWorkday(d))
	}
}

func TestWorkdaysEmptyRanges(t *testing.T) {
	assert.Empty(t, Workdays(date(2025, 1, 4), date(2025, 1, 5)))
	assert.Empty(t, Workdays(date(2025, 1, 10), date(2025, 1, 9)))
	assert.Equal(t, 0, TargetForRange(date(2025, 1, 4), date(2025, 1, 5)))
}

func TestMonthTarget(t *testing.T) {
	// January 2025: 23 weekdays, 5 of them Fridays
	assert.Equal(t, 18*510+5*270, MonthTarget(2025, time.January))
	// February 2025: 20 weekdays, 4 Fridays
	assert.Equal(t, 16*510+4*270, MonthTarget(2025, time.February))
	// June 2025 starts on a Sunday: 21 weekdays, 4 Fridays
	assert.Equal(t, 17*510+4*270, MonthTarget(2025, time.June))
}
