package tagstream

import "io"

// FragmentSource yields the successive text fragments of one stream.
// Next returns io.EOF after the final fragment; any other error means the
// source terminated abnormally.
type FragmentSource interface {
	Next() (string, error)
}

// StreamState indicates the current state of a Stream.
type StreamState int

const (
	StreamStateNew       StreamState = iota // Before Next() is ever called.
	StreamStateStreaming                    // Mid-stream, producing events.
	StreamStateComplete                     // Next() returned io.EOF.
	StreamStateError                        // Source failed; session was flushed.
	StreamStateClosed                       // Close() called before a terminal state.
)

// Stream adapts the push-driven Session to a pull-based iterator. It pulls
// fragments from the source on demand, feeds them to the session, and hands
// back the resulting events one at a time.
//
// When the source ends — normally with io.EOF or with an error — the session
// is finished first, so an open tool call always resolves through the
// incomplete path and its buffered text is delivered before the terminal
// condition is reported. Not safe for concurrent use.
type Stream struct {
	source  FragmentSource
	session *Session
	queue   []Event
	state   StreamState
	err     error // terminal error, if any
}

// NewStream creates a Stream that drains source through session.
func NewStream(session *Session, source FragmentSource) *Stream {
	return &Stream{
		source:  source,
		session: session,
		state:   StreamStateNew,
	}
}

// Next returns the next event. It returns io.EOF when the stream completes
// normally, after all events — including the end-of-stream flush — have been
// drained.
func (s *Stream) Next() (Event, error) {
	if evt, ok := s.pop(); ok {
		return evt, nil
	}
	switch s.state {
	case StreamStateComplete:
		return nil, io.EOF
	case StreamStateError:
		return nil, s.err
	case StreamStateClosed:
		return nil, ErrStreamClosed
	}

	for {
		frag, err := s.source.Next()
		if err != nil {
			s.queue = s.session.Finish()
			if err == io.EOF {
				s.state = StreamStateComplete
			} else {
				s.state = StreamStateError
				s.err = err
			}
			if evt, ok := s.pop(); ok {
				return evt, nil
			}
			if s.state == StreamStateComplete {
				return nil, io.EOF
			}
			return nil, s.err
		}

		s.state = StreamStateStreaming
		s.queue = s.session.Feed(frag)
		if evt, ok := s.pop(); ok {
			return evt, nil
		}
		// Fragment produced no unambiguous events yet - keep pulling.
	}
}

// State returns the current stream state.
func (s *Stream) State() StreamState {
	return s.state
}

// Close marks the stream closed. If no terminal state was reached, the
// session is finished so any open call resolves; its events are discarded.
// Subsequent Next calls return ErrStreamClosed. Close is idempotent.
func (s *Stream) Close() error {
	if s.state != StreamStateComplete && s.state != StreamStateError && s.state != StreamStateClosed {
		s.state = StreamStateClosed
		s.session.Finish()
		s.queue = nil
	}
	return nil
}

func (s *Stream) pop() (Event, bool) {
	if len(s.queue) == 0 {
		return nil, false
	}
	evt := s.queue[0]
	s.queue = s.queue[1:]
	return evt, true
}
