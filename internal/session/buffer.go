package session

import (
	"strings"
	"sync"
	"time"

	"github.com/kevindowling/logcat-viewer/internal/filter"
	"github.com/kevindowling/logcat-viewer/internal/logcat"
)

// Retention defaults. Live capture is unbounded, so the buffer trims itself
// from the front once it grows past capacity.
const (
	DefaultCapacity    = 40000
	DefaultTrimTo      = 30000
	DefaultRenderLimit = 4000
)

// Buffer is a capacity-bounded, append-only collection of parsed records.
// Appends arrive one at a time from a single capture stream; reads may
// happen concurrently and always see a consistent snapshot.
type Buffer struct {
	mu       sync.RWMutex
	records  []logcat.Record
	nextLine int
	capacity int
	trimTo   int
	now      func() time.Time
}

// NewBuffer returns a buffer that trims to trimTo records once it exceeds
// capacity. Non-positive or inconsistent values fall back to the defaults.
func NewBuffer(capacity, trimTo int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if trimTo <= 0 || trimTo > capacity {
		trimTo = min(DefaultTrimTo, capacity)
	}
	return &Buffer{
		nextLine: 1,
		capacity: capacity,
		trimTo:   trimTo,
		now:      time.Now,
	}
}

// Append splits chunk into lines, parses each non-blank one, and appends the
// records in arrival order. Line numbers stay monotonic across appends. If
// the buffer exceeds its capacity the oldest excess is dropped; survivors
// keep their relative order. Returns the number of records appended.
func (b *Buffer) Append(chunk string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	ref := b.now()
	appended := 0
	for _, line := range strings.Split(chunk, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		b.records = append(b.records, logcat.ParseLineAt(line, b.nextLine, ref))
		b.nextLine++
		appended++
	}

	if len(b.records) > b.capacity {
		kept := b.records[len(b.records)-b.trimTo:]
		b.records = append([]logcat.Record(nil), kept...)
	}
	return appended
}

// Len returns the number of retained records.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.records)
}

// Clear empties the buffer. Line numbering restarts at 1.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.records = nil
	b.nextLine = 1
}

// Records returns a copy of the retained records in arrival order.
func (b *Buffer) Records() []logcat.Record {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if len(b.records) == 0 {
		return nil
	}
	dup := make([]logcat.Record, len(b.records))
	copy(dup, b.records)
	return dup
}

// FilterOptions select which records Render returns. Empty term lists pass
// all values and Limit 0 means uncapped. The MinPriority zero value is
// logcat.PriorityVerbose, which excludes only unparsed records; use
// logcat.PriorityUnknown to impose no minimum at all.
type FilterOptions struct {
	MinPriority  logcat.Priority
	TagTerms     []filter.Term
	MessageTerms []filter.Term
	Limit        int
}

// RenderResult is one derived view over the buffer. Filtered counts every
// record passing the filters; Records holds at most Limit of them (the most
// recent), with Truncated reporting how many matching records were cut for
// responsiveness.
type RenderResult struct {
	Records   []logcat.Record
	Filtered  int
	Total     int
	Truncated int
}

// Render derives the filtered view. It is a pure read: the buffer is never
// mutated and the returned slice is independent of its storage.
func (b *Buffer) Render(opts FilterOptions) RenderResult {
	b.mu.RLock()
	defer b.mu.RUnlock()

	matched := make([]logcat.Record, 0, len(b.records))
	for _, r := range b.records {
		if r.Priority < opts.MinPriority {
			continue
		}
		if !filter.Matches(r.Tag, opts.TagTerms) {
			continue
		}
		if !filter.Matches(r.Message, opts.MessageTerms) {
			continue
		}
		matched = append(matched, r)
	}

	res := RenderResult{Filtered: len(matched), Total: len(b.records)}
	if opts.Limit > 0 && len(matched) > opts.Limit {
		res.Truncated = len(matched) - opts.Limit
		matched = matched[len(matched)-opts.Limit:]
	}
	res.Records = matched
	return res
}
