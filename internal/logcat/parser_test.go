package logcat

import (
	"testing"
	"time"
)

var parseRef = time.Date(2026, time.June, 1, 0, 0, 0, 0, time.Local)

func TestParseLineAt_Formats(t *testing.T) {
	ts := time.Date(2026, time.January, 15, 10, 23, 45, 123_000_000, time.Local)

	tests := []struct {
		name string
		line string
		want Record
	}{
		{
			name: "threadtime",
			line: "01-15 10:23:45.123  1234  5678 I MyTag: Hello world",
			want: Record{
				Format:    FormatThreadtime,
				Timestamp: ts,
				PID:       1234,
				TID:       5678,
				Priority:  PriorityInfo,
				Tag:       "MyTag",
				Message:   "Hello world",
			},
		},
		{
			name: "time",
			line: "01-15 10:23:45.123 W/ActivityManager(802): Slow operation",
			want: Record{
				Format:    FormatTime,
				Timestamp: ts,
				PID:       802,
				TID:       -1,
				Priority:  PriorityWarning,
				Tag:       "ActivityManager",
				Message:   "Slow operation",
			},
		},
		{
			name: "brief",
			line: "E/AndroidRuntime(4242): FATAL EXCEPTION: main",
			want: Record{
				Format:   FormatBrief,
				PID:      4242,
				TID:      -1,
				Priority: PriorityError,
				Tag:      "AndroidRuntime",
				Message:  "FATAL EXCEPTION: main",
			},
		},
		{
			name: "tag only",
			line: "D/dalvikvm: GC_CONCURRENT freed 1024K",
			want: Record{
				Format:   FormatTag,
				PID:      -1,
				TID:      -1,
				Priority: PriorityDebug,
				Tag:      "dalvikvm",
				Message:  "GC_CONCURRENT freed 1024K",
			},
		},
		{
			name: "long header",
			line: "[ 01-15 10:23:45.123  1234: 5678 F/libc ]",
			want: Record{
				Format:    FormatLong,
				Timestamp: ts,
				PID:       1234,
				TID:       5678,
				Priority:  PriorityFatal,
				Tag:       "libc",
			},
		},
		{
			name: "message keeps its own colons",
			line: "01-15 10:23:45.123  1234  5678 I MyTag: url: http://example.com: done",
			want: Record{
				Format:    FormatThreadtime,
				Timestamp: ts,
				PID:       1234,
				TID:       5678,
				Priority:  PriorityInfo,
				Tag:       "MyTag",
				Message:   "url: http://example.com: done",
			},
		},
		{
			name: "leading whitespace tolerated",
			line: "   V/Chatty(1000): uid=1000 expire 3 lines",
			want: Record{
				Format:   FormatBrief,
				PID:      1000,
				TID:      -1,
				Priority: PriorityVerbose,
				Tag:      "Chatty",
				Message:  "uid=1000 expire 3 lines",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLineAt(tt.line, 7, parseRef)

			tt.want.Raw = tt.line
			tt.want.LineNumber = 7
			if got != tt.want {
				t.Errorf("ParseLineAt() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseLineAt_Unparsed(t *testing.T) {
	got := ParseLineAt("garbage with no structure", 1, parseRef)

	want := Record{
		Raw:        "garbage with no structure",
		LineNumber: 1,
		Format:     FormatNone,
		PID:        -1,
		TID:        -1,
		Priority:   PriorityUnknown,
	}
	if got != want {
		t.Errorf("ParseLineAt() = %+v, want %+v", got, want)
	}
}

func TestParseLineAt_EmptyLine(t *testing.T) {
	got := ParseLineAt("", 3, parseRef)
	if got.Raw != "" || got.LineNumber != 3 || got.Parsed() {
		t.Errorf("empty line should stay unparsed, got %+v", got)
	}
}

func TestParseLineAt_BarePriorityFallback(t *testing.T) {
	got := ParseLineAt("backtrace frame E at 0xdeadbeef", 1, parseRef)

	if got.Parsed() {
		t.Fatalf("fallback must not mark the record parsed: %+v", got)
	}
	if got.Priority != PriorityError {
		t.Errorf("Priority = %v, want %v", got.Priority, PriorityError)
	}
	if got.Tag != "" || got.Message != "" || got.PID != -1 || got.HasTimestamp() {
		t.Errorf("fallback populated structured fields: %+v", got)
	}
}

func TestParseLineAt_FirstMatchWins(t *testing.T) {
	// A brief line is structurally also a tag line; the brief matcher must
	// claim it first so the pid is extracted instead of glued to the tag.
	got := ParseLineAt("I/ServiceManager(321): service connected", 1, parseRef)
	if got.Format != FormatBrief {
		t.Fatalf("Format = %v, want %v", got.Format, FormatBrief)
	}
	if got.Tag != "ServiceManager" || got.PID != 321 {
		t.Errorf("tag/pid = %q/%d, want ServiceManager/321", got.Tag, got.PID)
	}
}

func TestParseLogcatAt(t *testing.T) {
	text := "I/First(1): one\n\ngarbage\r\nD/Last(2): two"
	records := ParseLogcatAt(text, parseRef)

	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}
	for i, r := range records {
		if r.LineNumber != i+1 {
			t.Errorf("records[%d].LineNumber = %d, want %d", i, r.LineNumber, i+1)
		}
	}
	if records[1].Raw != "" || records[1].Parsed() {
		t.Errorf("blank line should become an unparsed record, got %+v", records[1])
	}
	if records[2].Raw != "garbage" {
		t.Errorf("CR should be stripped before parsing, got %q", records[2].Raw)
	}
	if records[3].Tag != "Last" {
		t.Errorf("records[3].Tag = %q, want Last", records[3].Tag)
	}
}

func TestParseLogcatAt_TrailingNewline(t *testing.T) {
	records := ParseLogcatAt("I/Only(1): one\n", parseRef)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if got := ParseLogcatAt("", parseRef); got != nil {
		t.Errorf("empty document should yield no records, got %d", len(got))
	}
}

func TestParseTimestampYear(t *testing.T) {
	ref := time.Date(2023, time.December, 31, 23, 0, 0, 0, time.Local)
	got := ParseLineAt("06-02 08:15:30.500  10  20 I Tag: msg", 1, ref)

	want := time.Date(2023, time.June, 2, 8, 15, 30, 500_000_000, time.Local)
	if !got.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", got.Timestamp, want)
	}
}
