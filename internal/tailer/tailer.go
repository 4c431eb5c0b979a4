// Package tailer follows a growing logcat capture file as a session source.
//
// The tailer loads a bounded backlog of existing content first, then watches
// the file with fsnotify and emits newly appended bytes as chunk events. A
// truncated file (rotation, re-capture) restarts reading from the top. The
// file disappearing ends the stream, which the session treats as a normal
// stop.
package tailer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/kevindowling/logcat-viewer/internal/logtail"
	"github.com/kevindowling/logcat-viewer/internal/session"
)

// DefaultBacklogLines bounds how much existing file content is loaded before
// following begins.
const DefaultBacklogLines = 10000

// Source follows one capture file, implementing session.Source.
type Source struct {
	path    string
	backlog int
}

var _ session.Source = (*Source)(nil)

// New returns a Source for the file at path. backlogLines bounds the initial
// read of existing content; non-positive uses DefaultBacklogLines.
func New(path string, backlogLines int) *Source {
	if backlogLines <= 0 {
		backlogLines = DefaultBacklogLines
	}
	// Clean so event paths from the watcher compare equal.
	return &Source{path: filepath.Clean(path), backlog: backlogLines}
}

// Start loads the backlog and begins following appends. The capture options
// are ignored: a file already has its format baked in and the parser
// auto-detects per line.
func (s *Source) Start(ctx context.Context, _ session.CaptureOptions) (<-chan session.Event, error) {
	backlog, offset, err := logtail.Read(s.path, s.backlog)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory, not the file: the capture may not exist yet, and
	// rotations replace the inode.
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(s.path), err)
	}

	events := make(chan session.Event, 16)
	go func() {
		defer close(events)
		defer watcher.Close()

		if len(backlog) > 0 {
			select {
			case events <- session.Chunk{Text: strings.Join(backlog, "\n")}:
			case <-ctx.Done():
				return
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Name != s.path {
					continue
				}
				if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				chunk, next, err := readFrom(s.path, offset)
				if err != nil {
					emitFailed(ctx, events, err)
					return
				}
				offset = next
				if chunk == "" {
					continue
				}
				select {
				case events <- session.Chunk{Text: chunk}:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				emitFailed(ctx, events, fmt.Errorf("watch capture: %w", err))
				return
			}
		}
	}()
	return events, nil
}

// readFrom returns the bytes appended after offset and the new end offset.
// A file now shorter than offset was truncated: reading restarts from zero.
func readFrom(path string, offset int64) (string, int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", offset, fmt.Errorf("open capture: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", offset, fmt.Errorf("stat capture: %w", err)
	}
	if info.Size() < offset {
		offset = 0
	}
	if info.Size() == offset {
		return "", offset, nil
	}

	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return "", offset, fmt.Errorf("seek capture: %w", err)
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return "", offset, fmt.Errorf("read capture: %w", err)
	}
	return string(data), offset + int64(len(data)), nil
}

func emitFailed(ctx context.Context, events chan<- session.Event, err error) {
	select {
	case events <- session.Failed{Message: err.Error()}:
	case <-ctx.Done():
	}
}
