// Package session owns the live-capture side of the viewer: a bounded,
// append-only record buffer and an explicit capture session lifecycle.
//
// # Buffer
//
// Buffer accumulates parsed records in arrival order. Capacity is bounded:
// when an append pushes the buffer past its capacity it is truncated from
// the front down to the trim mark, so long captures keep the newest records
// and never grow without limit. Truncation is silent and never reorders the
// surviving suffix. All access goes through a mutex, so a concurrent reader
// observes either the pre-append or post-append state, never a torn middle.
//
// Render is the read path: it applies a minimum-priority check plus compiled
// filter terms over tag and message, optionally caps the result to the most
// recent N records, and reports filtered/total counts. Rendering never
// mutates the buffer, so rendering less often than appending is always safe.
//
// # Session
//
// Session wraps a Source (an adb process, a followed file) with the state
// machine Idle -> Running -> Idle, with Error reachable from Running when
// the source fails. There are no package-level process handles: each Session
// is an independent value with its own lifecycle, which keeps multiple
// captures possible and tests deterministic.
//
// Consumers receive a closed set of Event variants (Started, Stopped, Chunk,
// Failed) and are expected to switch over them exhaustively.
package session
