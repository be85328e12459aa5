package holiday

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEaster(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		day   int
	}{
		{1900, time.April, 15},
		{1954, time.April, 18},
		{1961, time.April, 2},
		{2000, time.April, 23},
		{2008, time.March, 23},
		{2011, time.April, 24},
		{2019, time.April, 21},
		{2023, time.April, 9},
		{2024, time.March, 31},
		{2025, time.April, 20},
		{2038, time.April, 25},
		{2100, time.March, 28},
	}

	for _, tt := range tests {
		t.Run(time.Date(tt.year, 1, 1, 0, 0, 0, 0, time.UTC).Format("2006"), func(t *testing.T) {
			got := Easter(tt.year)
			assert.Equal(t, tt.year, got.Year())
			assert.Equal(t, tt.month, got.Month())
			assert.Equal(t, tt.day, got.Day())
			assert.Equal(t, time.Sunday, got.Weekday())
		})
	}
}

func TestEasterAlwaysSundayInRange(t *testing.T) {
	for year := 1900; year <= 2100; year++ {
		e := Easter(year)
		require.Equal(t, time.Sunday, e.Weekday(), "year %d", year)
		earliest := time.Date(year, time.March, 22, 0, 0, 0, 0, time.UTC)
		latest := time.Date(year, time.April, 25, 0, 0, 0, 0, time.UTC)
		require.False(t, e.Before(earliest), "year %d", year)
		require.False(t, e.After(latest), "year %d", year)
	}
}

func TestForYearMoveableFeasts(t *testing.T) {
	tests := []struct {
		year       int
		easter     string
		monday     string
		ascension  string
		whitMonday string
		corpus     string
	}{
		{2023, "2023-04-09", "2023-04-10", "2023-05-18", "2023-05-29", "2023-06-08"},
		{2024, "2024-03-31", "2024-04-01", "2024-05-09", "2024-05-20", "2024-05-30"},
		{2025, "2025-04-20", "2025-04-21", "2025-05-29", "2025-06-09", "2025-06-19"},
	}

	for _, tt := range tests {
		t.Run(tt.easter, func(t *testing.T) {
			h := ForYear(tt.year)

			_, easterIsHoliday := h[tt.easter]
			assert.False(t, easterIsHoliday, "Easter Sunday itself is not listed")
			assert.Equal(t, "Ostermontag", h[tt.monday])
			assert.Equal(t, "Christi Himmelfahrt", h[tt.ascension])
			assert.Equal(t, "Pfingstmontag", h[tt.whitMonday])
			assert.Equal(t, "Fronleichnam", h[tt.corpus])
		})
	}
}

func TestForYearFixedDates(t *testing.T) {
	h := ForYear(2025)

	assert.Len(t, h, 13)
	assert.Equal(t, "Neujahr", h["2025-01-01"])
	assert.Equal(t, "Heilige Drei Könige", h["2025-01-06"])
	assert.Equal(t, "Staatsfeiertag", h["2025-05-01"])
	assert.Equal(t, "Mariä Himmelfahrt", h["2025-08-15"])
	assert.Equal(t, "Nationalfeiertag", h["2025-10-26"])
	assert.Equal(t, "Allerheiligen", h["2025-11-01"])
	assert.Equal(t, "Mariä Empfängnis", h["2025-12-08"])
	assert.Equal(t, "Christtag", h["2025-12-25"])
	assert.Equal(t, "Stefanitag", h["2025-12-26"])
}

func TestCalendarReturnsCopies(t *testing.T) {
	c := NewCalendar()

	first := c.ForYear(2025)
	first["2025-01-01"] = "changed"
	delete(first, "2025-12-25")

	second := c.ForYear(2025)
	assert.Equal(t, "Neujahr", second["2025-01-01"])
	assert.Equal(t, "Christtag", second["2025-12-25"])
	assert.Equal(t, ForYear(2025), second)
}

func TestCalendarName(t *testing.T) {
	c := NewCalendar()

	name, ok := c.Name(time.Date(2025, 4, 21, 15, 30, 0, 0, time.Local))
	require.True(t, ok)
	assert.Equal(t, "Ostermontag", name)

	assert.True(t, c.IsHoliday(time.Date(2024, 12, 26, 0, 0, 0, 0, time.UTC)))
	assert.False(t, c.IsHoliday(time.Date(2024, 12, 27, 0, 0, 0, 0, time.UTC)))
}

func TestCalendarConcurrentUse(t *testing.T) {
	c := NewCalendar()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(year int) {
			defer wg.Done()
			_ = c.ForYear(year)
			_, _ = c.Name(time.Date(year, 1, 6, 0, 0, 0, 0, time.UTC))
		}(2020 + i%4)
	}
	wg.Wait()

	assert.Equal(t, ForYear(2021), c.ForYear(2021))
}
