package logcat

import (
	"fmt"
	"strings"
)

// FormatRecord reconstructs the canonical single-line form of a record:
// timestamp, pid, tid, priority letter, tag, message, with pid and tid
// right-aligned in five columns. Fields the source format lacked are
// omitted. Unparsed records reproduce their raw text verbatim, so formatting
// never fabricates structure the line did not have.
func FormatRecord(r Record) string {
	if !r.Parsed() {
		return r.Raw
	}

	var b strings.Builder
	if r.HasTimestamp() {
		b.WriteString(r.Timestamp.Format(timestampLayout))
		b.WriteByte(' ')
	}
	if r.PID >= 0 {
		fmt.Fprintf(&b, "%5d ", r.PID)
	}
	if r.TID >= 0 {
		fmt.Fprintf(&b, "%5d ", r.TID)
	}
	b.WriteString(r.Priority.Letter())
	b.WriteByte(' ')
	b.WriteString(r.Tag)
	b.WriteString(": ")
	b.WriteString(r.Message)
	return b.String()
}
