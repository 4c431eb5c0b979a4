package session

import (
	"fmt"
	"testing"

	"github.com/kevindowling/logcat-viewer/internal/filter"
	"github.com/kevindowling/logcat-viewer/internal/logcat"
)

func TestBuffer_AppendParsesAndNumbersLines(t *testing.T) {
	b := NewBuffer(100, 50)

	n := b.Append("I/First(1): one\n\n   \nW/Second(2): two\n")
	if n != 2 {
		t.Fatalf("Append() = %d, want 2 (blank lines dropped)", n)
	}

	n = b.Append("E/Third(3): three")
	if n != 1 {
		t.Fatalf("second Append() = %d, want 1", n)
	}

	records := b.Records()
	if len(records) != 3 {
		t.Fatalf("Len = %d, want 3", len(records))
	}
	for i, r := range records {
		if r.LineNumber != i+1 {
			t.Errorf("records[%d].LineNumber = %d, want %d (monotonic across appends)", i, r.LineNumber, i+1)
		}
	}
	if records[2].Tag != "Third" || records[2].Priority != logcat.PriorityError {
		t.Errorf("records[2] = %+v, want parsed Third/E", records[2])
	}
}

func TestBuffer_TruncatesFromFront(t *testing.T) {
	b := NewBuffer(10, 6)

	for i := 1; i <= 12; i++ {
		b.Append(fmt.Sprintf("I/Tag(%d): message %d", i, i))
	}

	records := b.Records()
	if len(records) != 6 {
		t.Fatalf("Len = %d, want trimTo 6", len(records))
	}
	// The newest six survive in original relative order.
	for i, r := range records {
		wantPid := 7 + i
		if r.PID != wantPid {
			t.Errorf("records[%d].PID = %d, want %d", i, r.PID, wantPid)
		}
	}
}

func TestBuffer_Clear(t *testing.T) {
	b := NewBuffer(0, 0)
	b.Append("I/Tag(1): hello")
	b.Clear()

	if b.Len() != 0 {
		t.Fatalf("Len after Clear = %d, want 0", b.Len())
	}
	b.Append("I/Tag(1): again")
	if got := b.Records()[0].LineNumber; got != 1 {
		t.Errorf("line numbering after Clear = %d, want 1", got)
	}
}

func TestBuffer_Render(t *testing.T) {
	b := NewBuffer(0, 0)
	b.Append("V/Spam(1): chatter\n" +
		"W/Watchdog(2): slow dispatch\n" +
		"E/Crash(3): fatal signal\n" +
		"not a logcat line at all")

	tests := []struct {
		name     string
		opts     FilterOptions
		wantTags []string
		filtered int
	}{
		{
			name:     "no minimum passes everything",
			opts:     FilterOptions{MinPriority: logcat.PriorityUnknown},
			wantTags: []string{"Spam", "Watchdog", "Crash", ""},
			filtered: 4,
		},
		{
			name:     "minimum level excludes unparsed",
			opts:     FilterOptions{MinPriority: logcat.PriorityWarning},
			wantTags: []string{"Watchdog", "Crash"},
			filtered: 2,
		},
		{
			name: "tag terms",
			opts: FilterOptions{
				MinPriority: logcat.PriorityUnknown,
				TagTerms:    filter.Compile("watch,crash"),
			},
			wantTags: []string{"Watchdog", "Crash"},
			filtered: 2,
		},
		{
			name: "message exclusion dominates",
			opts: FilterOptions{
				MinPriority:  logcat.PriorityUnknown,
				MessageTerms: filter.Compile("a,-slow"),
			},
			wantTags: []string{"Spam", "Crash"},
			filtered: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := b.Render(tt.opts)
			if res.Total != 4 {
				t.Errorf("Total = %d, want 4", res.Total)
			}
			if res.Filtered != tt.filtered {
				t.Errorf("Filtered = %d, want %d", res.Filtered, tt.filtered)
			}
			if len(res.Records) != len(tt.wantTags) {
				t.Fatalf("got %d records, want %d", len(res.Records), len(tt.wantTags))
			}
			for i, tag := range tt.wantTags {
				if res.Records[i].Tag != tag {
					t.Errorf("records[%d].Tag = %q, want %q", i, res.Records[i].Tag, tag)
				}
			}
		})
	}
}

func TestBuffer_RenderLimitKeepsNewest(t *testing.T) {
	b := NewBuffer(0, 0)
	for i := 1; i <= 10; i++ {
		b.Append(fmt.Sprintf("I/Tag(%d): message %d", i, i))
	}

	res := b.Render(FilterOptions{MinPriority: logcat.PriorityUnknown, Limit: 3})
	if res.Filtered != 10 || res.Total != 10 || res.Truncated != 7 {
		t.Errorf("counts = filtered %d total %d truncated %d, want 10/10/7", res.Filtered, res.Total, res.Truncated)
	}
	if len(res.Records) != 3 || res.Records[0].PID != 8 || res.Records[2].PID != 10 {
		t.Errorf("Limit should keep the most recent records, got %+v", res.Records)
	}
}

func TestBuffer_RenderDoesNotMutate(t *testing.T) {
	b := NewBuffer(0, 0)
	b.Append("I/Tag(1): one\nW/Tag(2): two")

	before := b.Records()
	_ = b.Render(FilterOptions{MinPriority: logcat.PriorityWarning, Limit: 1})
	after := b.Records()

	if len(before) != len(after) {
		t.Fatalf("Render changed buffer length: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Render mutated record %d: %+v -> %+v", i, before[i], after[i])
		}
	}
}
