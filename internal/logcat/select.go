package logcat

import (
	"regexp"
	"strings"
)

// FilterByPriority keeps records at or above min. Unparsed records never
// pass: their level sits below every defined minimum.
func FilterByPriority(entries []Record, min Priority) []Record {
	var kept []Record
	for _, r := range entries {
		if r.Priority >= min {
			kept = append(kept, r)
		}
	}
	return kept
}

// FilterByTag keeps records whose tag matches the case-insensitive regular
// expression pattern. If pattern does not compile, it degrades to exact
// string equality against the tag.
func FilterByTag(entries []Record, pattern string) []Record {
	re, err := regexp.Compile("(?i)" + pattern)
	var kept []Record
	for _, r := range entries {
		if err != nil {
			if r.Tag == pattern {
				kept = append(kept, r)
			}
			continue
		}
		if re.MatchString(r.Tag) {
			kept = append(kept, r)
		}
	}
	return kept
}

// FilterByPid keeps records with exactly the given pid. Records without a
// pid never match.
func FilterByPid(entries []Record, pid int) []Record {
	var kept []Record
	for _, r := range entries {
		if r.PID >= 0 && r.PID == pid {
			kept = append(kept, r)
		}
	}
	return kept
}

// FilterByMessage keeps records whose message matches the case-insensitive
// regular expression pattern. If pattern does not compile, it degrades to
// case-sensitive substring containment.
func FilterByMessage(entries []Record, pattern string) []Record {
	re, err := regexp.Compile("(?i)" + pattern)
	var kept []Record
	for _, r := range entries {
		if err != nil {
			if strings.Contains(r.Message, pattern) {
				kept = append(kept, r)
			}
			continue
		}
		if re.MatchString(r.Message) {
			kept = append(kept, r)
		}
	}
	return kept
}
