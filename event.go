package tagstream

// Event is a sealed interface representing a parse event.
// Events are purely semantic: the parser never fails mid-stream, so there is
// no error event kind — malformed input resolves through the event stream
// and the session's error handler.
// The unexported marker method prevents external implementations.
type Event interface {
	event()
}

// EventText is a run of pass-through text: any generated content that is not
// part of a recognized tool tag, forwarded unchanged. Consecutive EventText
// values are deltas; concatenate them to reconstruct the original text.
type EventText struct {
	Text string
}

func (EventText) event() {}

// EventToolInputStart signals that an opening tool tag was detected. It is
// emitted synchronously with detection, before any of the call's body is
// known.
type EventToolInputStart struct {
	ID       string
	ToolName string
}

func (EventToolInputStart) event() {}

// EventToolInputEnd signals that the call with the given ID stopped
// accumulating input: its closing tag was found, or the stream ended first.
// Exactly one EventToolInputEnd follows every EventToolInputStart.
type EventToolInputEnd struct {
	ID string
}

func (EventToolInputEnd) event() {}

// EventToolCall carries a completed tool call with its extracted arguments.
// It is emitted after EventToolInputEnd for the same id, and only when the
// body parsed successfully.
type EventToolCall struct {
	ToolCallID string
	ToolName   string
	Input      map[string]string
}

func (EventToolCall) event() {}

// Interface compliance checks.
var (
	_ Event = EventText{}
	_ Event = EventToolInputStart{}
	_ Event = EventToolInputEnd{}
	_ Event = EventToolCall{}
)
