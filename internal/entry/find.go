package entry

import (
	"fmt"
	"sort"
	"strings"
)

// Find returns the entry whose ID equals id or, failing that, the single
// entry whose ID starts with id.
func Find(entries []TimeEntry, id string) (TimeEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return TimeEntry{}, fmt.Errorf("empty id: %w", ErrNotFound)
	}

	var matches []TimeEntry
	for _, e := range entries {
		if string(e.ID) == id {
			return e, nil
		}
		if strings.HasPrefix(string(e.ID), id) {
			matches = append(matches, e)
		}
	}

	switch len(matches) {
	case 0:
		return TimeEntry{}, fmt.Errorf("entry '%s': %w", id, ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return TimeEntry{}, fmt.Errorf("id '%s' is ambiguous (%d entries match)", id, len(matches))
	}
}

// Sort orders entries by date, then start time ascending. Entries without a
// start sort last within their day.
func Sort(entries []TimeEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return Less(entries[i], entries[j])
	})
}

// Less is the chronological order used by Sort.
func Less(a, b TimeEntry) bool {
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	return StartKey(a) < StartKey(b)
}

// StartKey returns the start minute used for ordering within a day; a
// missing start counts as after every real start.
func StartKey(e TimeEntry) int {
	if m, ok := e.StartMinutes(); ok {
		return m
	}
	return 24 * 60
}
