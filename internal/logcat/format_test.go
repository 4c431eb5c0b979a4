package logcat

import "testing"

func TestFormatRecord_RoundTrip(t *testing.T) {
	line := "01-15 10:23:45.123  1234  5678 I MyTag: Hello world"
	got := FormatRecord(ParseLineAt(line, 1, parseRef))
	if got != line {
		t.Errorf("FormatRecord() = %q, want %q", got, line)
	}
}

func TestFormatRecord_UnparsedReturnsRaw(t *testing.T) {
	lines := []string{
		"garbage with no structure",
		"",
		"backtrace frame E at 0xdeadbeef", // fallback priority must not break the round trip
	}
	for _, line := range lines {
		if got := FormatRecord(ParseLineAt(line, 1, parseRef)); got != line {
			t.Errorf("FormatRecord(%q) = %q, want raw line back", line, got)
		}
	}
}

func TestFormatRecord_PartialFormats(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "brief keeps pid but has no timestamp or tid",
			line: "E/AndroidRuntime(4242): boom",
			want: " 4242 E AndroidRuntime: boom",
		},
		{
			name: "tag only",
			line: "D/dalvikvm: GC_CONCURRENT",
			want: "D dalvikvm: GC_CONCURRENT",
		},
		{
			name: "long header has no message",
			line: "[ 01-15 10:23:45.123  1234: 5678 F/libc ]",
			want: "01-15 10:23:45.123  1234  5678 F libc: ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatRecord(ParseLineAt(tt.line, 1, parseRef))
			if got != tt.want {
				t.Errorf("FormatRecord() = %q, want %q", got, tt.want)
			}
		})
	}
}
