package logcat

import "strings"

// Priority is the severity level of a logcat line. Levels form a total order
// from PriorityVerbose (lowest) to PrioritySilent (highest). PriorityUnknown
// marks records whose source line carried no recognizable level; it sorts
// below PriorityVerbose and fails every minimum-level check.
type Priority int

const (
	PriorityUnknown Priority = iota - 1
	PriorityVerbose
	PriorityDebug
	PriorityInfo
	PriorityWarning
	PriorityError
	PriorityFatal
	PrioritySilent
)

var priorityLetters = [...]string{"V", "D", "I", "W", "E", "F", "S"}

var priorityNames = [...]string{"VERBOSE", "DEBUG", "INFO", "WARNING", "ERROR", "FATAL", "SILENT"}

// ParsePriority maps a single logcat priority letter (V D I W E F S) to its
// level. Any other input yields PriorityUnknown.
func ParsePriority(letter string) Priority {
	for i, l := range priorityLetters {
		if letter == l {
			return Priority(i)
		}
	}
	return PriorityUnknown
}

// ParsePriorityName accepts either a priority letter or a full level name,
// case-insensitively. "warn" is accepted as an alias for WARNING.
func ParsePriorityName(name string) Priority {
	trimmed := strings.ToUpper(strings.TrimSpace(name))
	if p := ParsePriority(trimmed); p.Known() {
		return p
	}
	if trimmed == "WARN" {
		return PriorityWarning
	}
	for i, n := range priorityNames {
		if trimmed == n {
			return Priority(i)
		}
	}
	return PriorityUnknown
}

// Known reports whether p is one of the seven defined levels.
func (p Priority) Known() bool {
	return p >= PriorityVerbose && p <= PrioritySilent
}

// Letter returns the single-letter logcat form, or "?" for PriorityUnknown.
func (p Priority) Letter() string {
	if !p.Known() {
		return "?"
	}
	return priorityLetters[p]
}

// String returns the full level name, or "UNKNOWN".
func (p Priority) String() string {
	if !p.Known() {
		return "UNKNOWN"
	}
	return priorityNames[p]
}
