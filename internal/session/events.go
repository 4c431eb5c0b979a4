package session

// Event is a notification from a capture session. The variant set is closed:
// Started, Stopped, Chunk, and Failed are the only implementations, and
// consumers switch over them exhaustively.
type Event interface {
	sessionEvent()
}

// Started signals the capture source began producing output.
type Started struct{}

// Stopped signals the session returned to idle, whether via Stop or because
// the source ended on its own.
type Stopped struct{}

// Chunk carries a block of raw capture text that was appended to the buffer.
type Chunk struct {
	Text string
}

// Failed signals the source reported a fatal condition. The session is in
// the Error state until stopped.
type Failed struct {
	Message string
}

func (Started) sessionEvent() {}
func (Stopped) sessionEvent() {}
func (Chunk) sessionEvent()   {}
func (Failed) sessionEvent()  {}
