package session

import (
	"context"
	"fmt"
	"sync"
)

// State is the lifecycle position of a Session.
type State int

const (
	Idle State = iota
	Running
	Error
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Error:
		return "error"
	default:
		return "idle"
	}
}

// CaptureOptions configure a capture start.
type CaptureOptions struct {
	Device  string   // device serial; empty lets the source pick
	Format  string   // logcat -v token: threadtime, brief, time, tag, long, raw
	Filters []string // tag:priority filterspecs passed through to the source
}

// Source is the capture collaborator: something that, once started, emits
// Chunk events until it ends or the context is cancelled. A source may emit
// at most one Failed event to report a fatal condition, and must close the
// channel when done. Synchronous start problems (missing executable, bad
// path) are returned from Start directly.
type Source interface {
	Start(ctx context.Context, opts CaptureOptions) (<-chan Event, error)
}

// eventBacklog bounds the consumer-facing event channel. The buffer is the
// source of truth for log content, so a Chunk dropped when the consumer lags
// only delays a repaint.
const eventBacklog = 128

// Session drives one capture source into one buffer through the lifecycle
// Idle -> Running -> Idle, with Error reachable when the source fails.
// Entries persist across start/stop: only Clear empties the buffer.
type Session struct {
	source Source
	buffer *Buffer
	events chan Event

	mu      sync.Mutex
	state   State
	lastErr string
	cancel  context.CancelFunc
}

// New builds an idle session over the given source and buffer.
func New(source Source, buffer *Buffer) *Session {
	if buffer == nil {
		buffer = NewBuffer(0, 0)
	}
	return &Session{
		source: source,
		buffer: buffer,
		events: make(chan Event, eventBacklog),
	}
}

// Buffer exposes the session's record buffer for rendering.
func (s *Session) Buffer() *Buffer {
	return s.buffer
}

// Events is the consumer-facing notification stream. It stays open for the
// life of the session and delivers the closed Event variants.
func (s *Session) Events() <-chan Event {
	return s.events
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err returns the message of the last source failure, if any.
func (s *Session) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Start begins capturing. Valid only from Idle. Prior buffer contents are
// kept. A synchronous source failure moves the session to Error and is also
// returned to the caller.
func (s *Session) Start(ctx context.Context, opts CaptureOptions) error {
	s.mu.Lock()
	if s.state != Idle {
		state := s.state
		s.mu.Unlock()
		return fmt.Errorf("session is %s, must be idle to start", state)
	}

	runCtx, cancel := context.WithCancel(ctx)
	stream, err := s.source.Start(runCtx, opts)
	if err != nil {
		cancel()
		s.state = Error
		s.lastErr = err.Error()
		s.mu.Unlock()
		s.emit(Failed{Message: err.Error()}, true)
		return err
	}

	s.state = Running
	s.lastErr = ""
	s.cancel = cancel
	s.mu.Unlock()

	s.emit(Started{}, true)
	go s.pump(stream)
	return nil
}

// Stop ends the capture and returns the session to Idle. Valid from Running
// and Error; a no-op when already idle. Buffered entries are kept and the
// source is cancelled promptly.
func (s *Session) Stop() {
	s.mu.Lock()
	if s.state == Idle {
		s.mu.Unlock()
		return
	}
	s.state = Idle
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	// The pump only announces stops it causes (source exhaustion, observed
	// as Running at stream close). An explicit Stop has already left that
	// state, so the transition is announced here for both Running and Error.
	s.emit(Stopped{}, true)
}

// Clear empties the buffer without changing the run state.
func (s *Session) Clear() {
	s.buffer.Clear()
}

// pump consumes the source stream until it closes, appending chunks to the
// buffer and forwarding events to the consumer.
func (s *Session) pump(stream <-chan Event) {
	for ev := range stream {
		switch ev := ev.(type) {
		case Chunk:
			s.buffer.Append(ev.Text)
			s.emit(ev, false)
		case Failed:
			s.mu.Lock()
			if s.state == Running {
				s.state = Error
				s.lastErr = ev.Message
			}
			s.mu.Unlock()
			s.emit(ev, true)
		case Started, Stopped:
			// Lifecycle events are the session's to produce.
		}
	}

	// Stream closed. A clean source exit is a normal stop, not an error;
	// after a Failed event the session stays in Error until stopped.
	s.mu.Lock()
	ended := s.state == Running
	if ended {
		s.state = Idle
		if s.cancel != nil {
			s.cancel()
			s.cancel = nil
		}
	}
	s.mu.Unlock()
	if ended {
		s.emit(Stopped{}, true)
	}
}

// emit forwards an event to the consumer channel. Chunk notifications are
// droppable because the buffer already holds their content. Lifecycle events
// must go through, so on a full channel the oldest queued event is shed to
// make room; this also keeps Stop from hanging when the consumer is gone.
func (s *Session) emit(ev Event, lifecycle bool) {
	for {
		select {
		case s.events <- ev:
			return
		default:
		}
		if !lifecycle {
			return
		}
		select {
		case <-s.events:
		default:
		}
	}
}
