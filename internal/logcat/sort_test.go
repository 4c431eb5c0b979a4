package logcat

import (
	"reflect"
	"testing"
)

func sortFixture(t *testing.T) []Record {
	t.Helper()
	text := "01-15 10:00:02.000  1  1 W Zebra: late\n" +
		"unstructured noise\n" +
		"01-15 10:00:01.000  2  2 V alpha: early\n" +
		"01-15 10:00:03.000  3  3 E Mango: latest"
	return ParseLogcatAt(text, parseRef)
}

func tags(entries []Record) []string {
	out := make([]string, len(entries))
	for i, r := range entries {
		out[i] = r.Tag
	}
	return out
}

func TestSortByTime(t *testing.T) {
	entries := sortFixture(t)

	asc := SortByTime(entries, true)
	if got, want := tags(asc), []string{"alpha", "Zebra", "Mango", ""}; !reflect.DeepEqual(got, want) {
		t.Errorf("ascending = %v, want %v", got, want)
	}

	desc := SortByTime(entries, false)
	if got, want := tags(desc), []string{"Mango", "Zebra", "alpha", ""}; !reflect.DeepEqual(got, want) {
		t.Errorf("descending = %v, want %v", got, want)
	}

	// Input must not be reordered.
	if entries[0].Tag != "Zebra" {
		t.Errorf("input mutated: %v", tags(entries))
	}
}

func TestSortByTime_Idempotent(t *testing.T) {
	once := SortByTime(sortFixture(t), true)
	twice := SortByTime(once, true)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("re-sorting a sorted sequence changed it:\n%v\n%v", tags(once), tags(twice))
	}
}

func TestSortByPriority(t *testing.T) {
	entries := sortFixture(t)

	asc := SortByPriority(entries, true)
	// The unparsed record (PriorityUnknown) sorts lowest.
	if asc[0].Parsed() {
		t.Errorf("ascending[0] should be the unparsed record, got %+v", asc[0])
	}
	if got, want := tags(asc[1:]), []string{"alpha", "Zebra", "Mango"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ascending tail = %v, want %v", got, want)
	}

	desc := SortByPriority(entries, false)
	if desc[len(desc)-1].Parsed() {
		t.Errorf("descending should end with the unparsed record, got %+v", desc[len(desc)-1])
	}
}

func TestSortByTag(t *testing.T) {
	entries := sortFixture(t)

	asc := SortByTag(entries, true)
	if got, want := tags(asc), []string{"", "alpha", "Mango", "Zebra"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ascending = %v, want %v", got, want)
	}

	desc := SortByTag(entries, false)
	if got, want := tags(desc), []string{"Zebra", "Mango", "alpha", ""}; !reflect.DeepEqual(got, want) {
		t.Errorf("descending = %v, want %v", got, want)
	}
}
