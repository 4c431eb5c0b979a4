// Package ui provides the Bubble Tea terminal interface for live logcat
// viewing.
//
// # Architecture Overview
//
// The UI is a single-view log monitor: a viewport over the session buffer's
// filtered render, a status bar with counts and session state, and two
// overlays (filter modal, help). It owns no log data; the session buffer is
// the source of truth and the UI re-derives its content from Buffer.Render
// on every repaint.
//
// # Package Structure
//
//   - ui.go: Options and the Run entry point
//   - model.go: root Model, Update loop, session event handling
//   - logs.go: viewport content rendering and per-priority colorization
//   - filters.go: the filter modal and conversion to session.FilterOptions
//   - search.go: regex search with match navigation
//   - status.go: header and status bar composition
//   - help.go: help overlay
//   - keys.go, theme.go: bindings and color themes
//
// # Incremental Rendering
//
// Session events arrive as the closed session.Event variants. Chunk events
// only mark the view dirty; an actual re-render is coalesced behind a short
// debounce tick so a burst of appends costs one repaint. With follow mode on
// the viewport snaps to the newest record after every repaint; with it off
// the scroll position is preserved by distance from the bottom.
package ui
