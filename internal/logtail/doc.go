// Package logtail reads the tail of a logcat capture file.
//
// Read extracts the last N lines of a file with a ring buffer, so large
// captures never have to fit in memory, and reports the offset where the
// read stopped. The tailer package uses that offset to keep following the
// file from exactly where the backlog ended.
package logtail
