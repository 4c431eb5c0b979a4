package logcat

import "time"

// Format identifies which wire format a line matched during parsing.
// FormatNone marks an unparsed record: only Raw and LineNumber carry data
// (plus a best-effort Priority for colorization) and the record reproduces
// its raw text verbatim on formatting.
type Format int

const (
	FormatNone Format = iota
	FormatThreadtime
	FormatTime
	FormatBrief
	FormatTag
	FormatLong
)

func (f Format) String() string {
	switch f {
	case FormatThreadtime:
		return "threadtime"
	case FormatTime:
		return "time"
	case FormatBrief:
		return "brief"
	case FormatTag:
		return "tag"
	case FormatLong:
		return "long"
	default:
		return "none"
	}
}

// Record is one parsed logcat line. A Record is immutable once produced by
// the parser: transforms copy rather than mutate.
//
// Optional fields use sentinels: a zero Timestamp means the line carried no
// timestamp, and PID/TID are -1 when absent.
type Record struct {
	Raw        string
	LineNumber int
	Format     Format
	Timestamp  time.Time
	PID        int
	TID        int
	Priority   Priority
	Tag        string
	Message    string
}

// Parsed reports whether the line matched a known wire format.
func (r Record) Parsed() bool {
	return r.Format != FormatNone
}

// HasTimestamp reports whether the source line carried a timestamp.
func (r Record) HasTimestamp() bool {
	return !r.Timestamp.IsZero()
}
