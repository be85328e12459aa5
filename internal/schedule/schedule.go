package schedule

import "fmt"

// TimeOfDay represents a clock time without a date component.
type TimeOfDay struct {
	Hour   int // 0-23
	Minute int // 0-59
}

// String returns TimeOfDay in "HH:MM" format.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Minutes returns the number of minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Before reports whether t is strictly earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Minutes() < other.Minutes()
}

// FromMinutes converts minutes since midnight back into a TimeOfDay.
// Values outside a single day wrap around.
func FromMinutes(m int) TimeOfDay {
	m %= 24 * 60
	if m < 0 {
		m += 24 * 60
	}
	return TimeOfDay{Hour: m / 60, Minute: m % 60}
}

// SpanMinutes returns end - start in minutes. The result is negative or zero
// when end is not after start; callers validate that case.
func SpanMinutes(start, end TimeOfDay) int {
	return end.Minutes() - start.Minutes()
}
