package logcat

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortByTime returns a copy of entries ordered by timestamp. Records without
// a timestamp sort to the end regardless of direction; ties keep their
// original relative order.
func SortByTime(entries []Record, ascending bool) []Record {
	sorted := cloneRecords(entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		switch {
		case !a.HasTimestamp():
			return false
		case !b.HasTimestamp():
			return true
		}
		if ascending {
			return a.Timestamp.Before(b.Timestamp)
		}
		return b.Timestamp.Before(a.Timestamp)
	})
	return sorted
}

// SortByPriority returns a copy of entries ordered by priority level.
// PriorityUnknown sorts as the lowest level.
func SortByPriority(entries []Record, ascending bool) []Record {
	sorted := cloneRecords(entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return sorted[i].Priority < sorted[j].Priority
		}
		return sorted[i].Priority > sorted[j].Priority
	})
	return sorted
}

// SortByTag returns a copy of entries ordered by tag using locale-aware
// collation. Records without a tag compare as the empty string.
func SortByTag(entries []Record, ascending bool) []Record {
	sorted := cloneRecords(entries)
	c := collate.New(language.Und)
	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := c.CompareString(sorted[i].Tag, sorted[j].Tag)
		if ascending {
			return cmp < 0
		}
		return cmp > 0
	})
	return sorted
}

func cloneRecords(entries []Record) []Record {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]Record, len(entries))
	copy(dup, entries)
	return dup
}
