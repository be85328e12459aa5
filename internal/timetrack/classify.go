package timetrack

import "github.com/Flyrell/zeitkonto/internal/entry"

// Bucket is the aggregation category of an entry.
type Bucket int

const (
	BucketUnknown Bucket = iota
	// BucketUnpaidTravel is work with code 19. It is tracked as drive time
	// and never credited.
	BucketUnpaidTravel
	// BucketWork is any other work, including paid travel (code 190).
	BucketWork
	// BucketAbsence is vacation or sick leave.
	BucketAbsence
	// BucketHoliday is a statutory holiday, stored or derived.
	BucketHoliday
)

func (b Bucket) String() string {
	switch b {
	case BucketUnpaidTravel:
		return "unpaid-travel"
	case BucketWork:
		return "work"
	case BucketAbsence:
		return "absence"
	case BucketHoliday:
		return "holiday"
	}
	return "unknown"
}

// Credited reports whether minutes in this bucket count toward Ist.
func (b Bucket) Credited() bool {
	return b == BucketWork || b == BucketAbsence || b == BucketHoliday
}

// Classify assigns an entry to its bucket.
func Classify(e entry.TimeEntry) Bucket {
	switch e.Type {
	case entry.TypeWork:
		if e.HasCode(entry.CodeUnpaidTravel) {
			return BucketUnpaidTravel
		}
		return BucketWork
	case entry.TypeVacation, entry.TypeSick:
		return BucketAbsence
	case entry.TypePublicHoliday:
		return BucketHoliday
	}
	return BucketUnknown
}

// Minutes returns the entry's net minutes for aggregation. Work entries
// missing a start or end contribute zero; negative durations clamp to zero.
func Minutes(e entry.TimeEntry) int {
	if e.Type == entry.TypeWork && (e.Start == nil || e.End == nil) {
		return 0
	}
	if e.NetDuration < 0 {
		return 0
	}
	return e.NetDuration
}

// CreditedMinutes returns Minutes(e) when its bucket is credited, else 0.
func CreditedMinutes(e entry.TimeEntry) int {
	if !Classify(e).Credited() {
		return 0
	}
	return Minutes(e)
}
