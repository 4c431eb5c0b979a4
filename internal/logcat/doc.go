// Package logcat parses Android logcat output into structured records and
// provides sort/filter transforms over them.
//
// # Overview
//
// Logcat text arrives in one of several wire formats depending on the -v
// option passed to the capture tool. This package recognizes five of them
// (threadtime, time, brief, tag, and the long-format header line) with a
// fixed-order, first-match-wins dispatch. Lines that match no format are kept
// verbatim as unparsed records so nothing is ever dropped or rewritten.
//
// # Parsing
//
//   - ParseLine / ParseLineAt: one line to one Record
//   - ParseLogcat / ParseLogcatAt: a whole document, one record per line
//
// The MM-DD timestamp field carries no year, so parsing borrows the year from
// a reference time. ParseLine uses the current clock; ParseLineAt accepts an
// explicit reference for deterministic parsing of historical captures.
//
// # Transforms
//
// SortByTime, SortByPriority, and SortByTag return stably sorted copies.
// FilterByPriority, FilterByTag, FilterByPid, and FilterByMessage return
// filtered copies. None of them mutate their input. Invalid regular
// expressions given to the filter functions degrade to literal matching
// instead of returning an error.
package logcat
