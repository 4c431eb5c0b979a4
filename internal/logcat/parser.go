package logcat

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// timestampLayout matches the MM-DD HH:MM:SS.mmm field logcat emits. The
// format carries no year; see parseTimestamp.
const timestampLayout = "01-02 15:04:05.000"

// matcher pairs a wire format with its structural pattern and a field
// extractor. Matchers are tried in slice order and the first structural match
// wins; later candidates are never consulted for a matched line.
type matcher struct {
	format Format
	re     *regexp.Regexp
	build  func(r *Record, groups []string, ref time.Time)
}

var matchers = []matcher{
	{
		// threadtime: MM-DD HH:MM:SS.mmm  PID  TID PRIORITY TAG: MESSAGE
		format: FormatThreadtime,
		re:     regexp.MustCompile(`^\s*(\d{2}-\d{2})\s+(\d{2}:\d{2}:\d{2}\.\d{3})\s+(\d+)\s+(\d+)\s+([VDIWEFS])\s+(.*?)\s*:\s?(.*)$`),
		build: func(r *Record, g []string, ref time.Time) {
			r.Timestamp = parseTimestamp(g[1], g[2], ref)
			r.PID = atoi(g[3])
			r.TID = atoi(g[4])
			r.Priority = ParsePriority(g[5])
			r.Tag = strings.TrimSpace(g[6])
			r.Message = g[7]
		},
	},
	{
		// time: MM-DD HH:MM:SS.mmm PRIORITY/TAG(PID): MESSAGE
		format: FormatTime,
		re:     regexp.MustCompile(`^\s*(\d{2}-\d{2})\s+(\d{2}:\d{2}:\d{2}\.\d{3})\s+([VDIWEFS])/(.*?)\(\s*(\d+)\):\s?(.*)$`),
		build: func(r *Record, g []string, ref time.Time) {
			r.Timestamp = parseTimestamp(g[1], g[2], ref)
			r.Priority = ParsePriority(g[3])
			r.Tag = strings.TrimSpace(g[4])
			r.PID = atoi(g[5])
			r.Message = g[6]
		},
	},
	{
		// brief: PRIORITY/TAG(PID): MESSAGE
		format: FormatBrief,
		re:     regexp.MustCompile(`^\s*([VDIWEFS])/(.*?)\(\s*(\d+)\):\s?(.*)$`),
		build: func(r *Record, g []string, ref time.Time) {
			r.Priority = ParsePriority(g[1])
			r.Tag = strings.TrimSpace(g[2])
			r.PID = atoi(g[3])
			r.Message = g[4]
		},
	},
	{
		// tag: PRIORITY/TAG: MESSAGE
		format: FormatTag,
		re:     regexp.MustCompile(`^\s*([VDIWEFS])/([^:]*?)\s*:\s?(.*)$`),
		build: func(r *Record, g []string, ref time.Time) {
			r.Priority = ParsePriority(g[1])
			r.Tag = strings.TrimSpace(g[2])
			r.Message = g[3]
		},
	},
	{
		// long-format header: [ MM-DD HH:MM:SS.mmm  PID: TID PRIORITY/TAG ]
		// The message lives on the following lines, which stay unparsed.
		format: FormatLong,
		re:     regexp.MustCompile(`^\s*\[\s*(\d{2}-\d{2})\s+(\d{2}:\d{2}:\d{2}\.\d{3})\s+(\d+):\s*(\d+)\s+([VDIWEFS])/(.*?)\s*\]\s*$`),
		build: func(r *Record, g []string, ref time.Time) {
			r.Timestamp = parseTimestamp(g[1], g[2], ref)
			r.PID = atoi(g[3])
			r.TID = atoi(g[4])
			r.Priority = ParsePriority(g[5])
			r.Tag = strings.TrimSpace(g[6])
		},
	},
}

// barePriorityRe spots a lone priority letter in otherwise unparseable text.
// The fallback populates only Priority so such lines can still be colorized
// and level-filtered; every other field stays absent.
var barePriorityRe = regexp.MustCompile(`(?:^|\s)([VDIWEFS])(?:\s|$)`)

// ParseLine parses one logcat line using the current clock as the timestamp
// year reference. lineNumber is the 1-based position in the source.
func ParseLine(line string, lineNumber int) Record {
	return ParseLineAt(line, lineNumber, time.Now())
}

// ParseLineAt parses one logcat line, taking the timestamp year from ref.
// Lines matching no known format come back with Format FormatNone, Raw and
// LineNumber set, and everything else absent.
func ParseLineAt(line string, lineNumber int, ref time.Time) Record {
	rec := Record{
		Raw:        line,
		LineNumber: lineNumber,
		PID:        -1,
		TID:        -1,
		Priority:   PriorityUnknown,
	}
	for _, m := range matchers {
		if groups := m.re.FindStringSubmatch(line); groups != nil {
			rec.Format = m.format
			m.build(&rec, groups, ref)
			return rec
		}
	}
	if groups := barePriorityRe.FindStringSubmatch(line); groups != nil {
		rec.Priority = ParsePriority(groups[1])
	}
	return rec
}

// ParseLogcat parses a whole logcat document, producing one record per line
// (blank lines included) with 1-based line numbers.
func ParseLogcat(text string) []Record {
	return ParseLogcatAt(text, time.Now())
}

// ParseLogcatAt is ParseLogcat with an explicit timestamp year reference.
// A trailing newline terminates the last line rather than opening an empty
// one.
func ParseLogcatAt(text string, ref time.Time) []Record {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	records := make([]Record, 0, len(lines))
	for i, line := range lines {
		records = append(records, ParseLineAt(strings.TrimSuffix(line, "\r"), i+1, ref))
	}
	return records
}

// parseTimestamp combines the date and time fields with the reference year.
// Logcat timestamps carry no year, so captures spanning a year boundary come
// out wrong; callers with historical files should pick ref accordingly.
func parseTimestamp(date, clock string, ref time.Time) time.Time {
	t, err := time.ParseInLocation(timestampLayout, date+" "+clock, time.Local)
	if err != nil {
		return time.Time{}
	}
	return time.Date(ref.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.Local)
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}
