package holiday

import (
	"sync"
	"time"
)

const dateLayout = "2006-01-02"

type fixedHoliday struct {
	month time.Month
	day   int
	name  string
}

// Austrian statutory holidays with a fixed calendar date.
var fixedHolidays = []fixedHoliday{
	{time.January, 1, "Neujahr"},
	{time.January, 6, "Heilige Drei Könige"},
	{time.May, 1, "Staatsfeiertag"},
	{time.August, 15, "Mariä Himmelfahrt"},
	{time.October, 26, "Nationalfeiertag"},
	{time.November, 1, "Allerheiligen"},
	{time.December, 8, "Mariä Empfängnis"},
	{time.December, 25, "Christtag"},
	{time.December, 26, "Stefanitag"},
}

type easterHoliday struct {
	offset int
	name   string
}

// Holidays expressed as day offsets from Easter Sunday.
var easterHolidays = []easterHoliday{
	{1, "Ostermontag"},
	{39, "Christi Himmelfahrt"},
	{50, "Pfingstmontag"},
	{60, "Fronleichnam"},
}

// Easter returns Easter Sunday of the given Gregorian year, computed with the
// Gauss algorithm. The result is midnight UTC of that calendar date.
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// ForYear returns the statutory holidays of the given year keyed by
// "YYYY-MM-DD". The map has no ordering; callers index it by date.
func ForYear(year int) map[string]string {
	holidays := make(map[string]string, len(fixedHolidays)+len(easterHolidays))

	for _, h := range fixedHolidays {
		holidays[time.Date(year, h.month, h.day, 0, 0, 0, 0, time.UTC).Format(dateLayout)] = h.name
	}

	easter := Easter(year)
	for _, h := range easterHolidays {
		holidays[easter.AddDate(0, 0, h.offset).Format(dateLayout)] = h.name
	}

	return holidays
}

// Calendar memoizes ForYear per year. It is safe for concurrent use.
type Calendar struct {
	mu    sync.Mutex
	years map[int]map[string]string
}

// NewCalendar returns an empty Calendar.
func NewCalendar() *Calendar {
	return &Calendar{years: make(map[int]map[string]string)}
}

// ForYear returns a copy of the cached holiday map for year, deriving it on
// first use.
func (c *Calendar) ForYear(year int) map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	cached, ok := c.years[year]
	if !ok {
		cached = ForYear(year)
		c.years[year] = cached
	}

	out := make(map[string]string, len(cached))
	for k, v := range cached {
		out[k] = v
	}
	return out
}

// Name returns the holiday name for the calendar date of t.
func (c *Calendar) Name(t time.Time) (string, bool) {
	y, m, d := t.Date()
	key := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Format(dateLayout)

	c.mu.Lock()
	defer c.mu.Unlock()

	cached, ok := c.years[y]
	if !ok {
		cached = ForYear(y)
		c.years[y] = cached
	}
	name, ok := cached[key]
	return name, ok
}

// IsHoliday reports whether the calendar date of t is a statutory holiday.
func (c *Calendar) IsHoliday(t time.Time) bool {
	_, ok := c.Name(t)
	return ok
}
