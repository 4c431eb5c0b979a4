package session

import (
	"context"
	"errors"
	"testing"
	"time"
)

// scriptedSource plays back a fixed event script, or fails to start.
type scriptedSource struct {
	startErr error
	script   []Event
	started  chan CaptureOptions
}

func newScriptedSource(script ...Event) *scriptedSource {
	return &scriptedSource{script: script, started: make(chan CaptureOptions, 1)}
}

func (s *scriptedSource) Start(ctx context.Context, opts CaptureOptions) (<-chan Event, error) {
	if s.startErr != nil {
		return nil, s.startErr
	}
	s.started <- opts
	out := make(chan Event)
	go func() {
		defer close(out)
		for _, ev := range s.script {
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// blockingSource emits nothing until its context is cancelled.
type blockingSource struct{}

func (blockingSource) Start(ctx context.Context, opts CaptureOptions) (<-chan Event, error) {
	out := make(chan Event)
	go func() {
		defer close(out)
		<-ctx.Done()
	}()
	return out, nil
}

func waitFor(t *testing.T, events <-chan Event, want Event) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-events:
			if ev == want {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %T", want)
		}
	}
}

func TestSession_RunToCompletion(t *testing.T) {
	src := newScriptedSource(
		Chunk{Text: "I/Boot(1): starting"},
		Chunk{Text: "W/Boot(1): slow"},
	)
	s := New(src, NewBuffer(0, 0))

	if s.State() != Idle {
		t.Fatalf("initial state = %v, want Idle", s.State())
	}
	if err := s.Start(context.Background(), CaptureOptions{Device: "emulator-5554"}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if opts := <-src.started; opts.Device != "emulator-5554" {
		t.Errorf("source got device %q, want emulator-5554", opts.Device)
	}

	waitFor(t, s.Events(), Started{})
	waitFor(t, s.Events(), Stopped{})

	// Source exhaustion is a normal stop, not an error.
	if s.State() != Idle {
		t.Errorf("state after source exit = %v, want Idle", s.State())
	}
	if s.Buffer().Len() != 2 {
		t.Errorf("buffer length = %d, want 2", s.Buffer().Len())
	}
}

func TestSession_StartWhileRunningRejected(t *testing.T) {
	s := New(blockingSource{}, nil)
	if err := s.Start(context.Background(), CaptureOptions{}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer s.Stop()

	if err := s.Start(context.Background(), CaptureOptions{}); err == nil {
		t.Fatal("second Start() should be rejected while running")
	}
}

func TestSession_StopKeepsEntries(t *testing.T) {
	s := New(blockingSource{}, nil)
	if err := s.Start(context.Background(), CaptureOptions{}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	s.Buffer().Append("I/Keep(1): me")

	s.Stop()
	if s.State() != Idle {
		t.Errorf("state after Stop = %v, want Idle", s.State())
	}
	if s.Buffer().Len() != 1 {
		t.Errorf("Stop cleared the buffer: len = %d, want 1", s.Buffer().Len())
	}

	// The session is restartable after a stop.
	if err := s.Start(context.Background(), CaptureOptions{}); err != nil {
		t.Fatalf("restart error = %v", err)
	}
	s.Stop()
}

func TestSession_SynchronousStartFailure(t *testing.T) {
	src := newScriptedSource()
	src.startErr = errors.New("adb executable not found")
	s := New(src, nil)

	if err := s.Start(context.Background(), CaptureOptions{}); err == nil {
		t.Fatal("Start() should surface the source error")
	}
	if s.State() != Error {
		t.Errorf("state = %v, want Error", s.State())
	}
	if s.Err() != "adb executable not found" {
		t.Errorf("Err() = %q, want the source message", s.Err())
	}
	waitFor(t, s.Events(), Failed{Message: "adb executable not found"})

	// Error resolves back to Idle through Stop.
	s.Stop()
	if s.State() != Idle {
		t.Errorf("state after Stop = %v, want Idle", s.State())
	}
	waitFor(t, s.Events(), Stopped{})
}

func TestSession_SourceFailureMidRun(t *testing.T) {
	src := newScriptedSource(
		Chunk{Text: "I/Boot(1): starting"},
		Failed{Message: "device disconnected"},
	)
	s := New(src, nil)

	if err := s.Start(context.Background(), CaptureOptions{}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	waitFor(t, s.Events(), Failed{Message: "device disconnected"})

	if s.State() != Error {
		t.Errorf("state = %v, want Error", s.State())
	}
	if s.Buffer().Len() != 1 {
		t.Errorf("entries before the failure should be kept, len = %d", s.Buffer().Len())
	}
}

func TestSession_ClearLeavesStateAlone(t *testing.T) {
	s := New(blockingSource{}, nil)
	if err := s.Start(context.Background(), CaptureOptions{}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer s.Stop()

	s.Buffer().Append("I/Gone(1): soon")
	s.Clear()

	if s.Buffer().Len() != 0 {
		t.Errorf("Clear left %d records", s.Buffer().Len())
	}
	if s.State() != Running {
		t.Errorf("Clear changed state to %v", s.State())
	}
}
