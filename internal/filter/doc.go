// Package filter compiles user filter expressions into match terms and
// evaluates them with an exclusion-first policy.
//
// An expression is a comma-separated list of terms. A leading "-" negates a
// term. A term of the shape /pattern/ is a case-insensitive regular
// expression; anything else matches as a case-insensitive substring. Terms
// that fail to compile as regular expressions degrade to literal matching
// instead of erroring out, so a half-typed pattern never breaks the view.
package filter
