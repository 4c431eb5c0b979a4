package filter

import (
	"regexp"
	"strings"
)

// Term is one compiled clause of a filter expression. Exactly one of the
// literal or pattern forms is active.
type Term struct {
	Negated bool
	pattern *regexp.Regexp
	literal string
}

// Matches reports whether value matches this term, ignoring negation.
func (t Term) Matches(value string) bool {
	if t.pattern != nil {
		return t.pattern.MatchString(value)
	}
	return strings.Contains(strings.ToLower(value), t.literal)
}

// Compile parses a comma-separated filter expression into terms. Empty terms
// are discarded. Compilation is cheap enough to redo on every evaluation
// pass, so callers need not cache the result.
func Compile(expression string) []Term {
	var terms []Term
	for _, part := range strings.Split(expression, ",") {
		part = strings.TrimSpace(part)
		negated := false
		if rest, ok := strings.CutPrefix(part, "-"); ok {
			negated = true
			part = strings.TrimSpace(rest)
		}
		if part == "" {
			continue
		}
		if len(part) > 2 && strings.HasPrefix(part, "/") && strings.HasSuffix(part, "/") {
			if re, err := regexp.Compile("(?i)" + part[1:len(part)-1]); err == nil {
				terms = append(terms, Term{Negated: negated, pattern: re})
				continue
			}
			// Malformed pattern: fall through and match the slashed text
			// literally.
		}
		terms = append(terms, Term{Negated: negated, literal: strings.ToLower(part)})
	}
	return terms
}

// Matches evaluates value against terms. Negated terms are checked first and
// any hit rejects the value outright; positive terms then OR together. With
// no terms at all, or only negated terms, an unexcluded value passes. The
// two stages are deliberate: exclusion always dominates inclusion.
func Matches(value string, terms []Term) bool {
	if len(terms) == 0 {
		return true
	}
	for _, t := range terms {
		if t.Negated && t.Matches(value) {
			return false
		}
	}
	positive := false
	for _, t := range terms {
		if t.Negated {
			continue
		}
		positive = true
		if t.Matches(value) {
			return true
		}
	}
	return !positive
}
