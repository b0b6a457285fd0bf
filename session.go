// Package tagstream incrementally scans language-model output for tool-call
// tags. Text arrives as arbitrarily split fragments; the parser emits a
// stream of semantic events separating pass-through text from tool-call
// lifecycle events, tolerating markers split across fragment boundaries and
// malformed tag bodies without ever failing the surrounding stream.
package tagstream

import (
	"fmt"
	"strings"
)

// Session is the parse state for one fragment stream: the rolling text
// buffer, the configured tool markers, and the at-most-one currently open
// tool call. Create one Session per stream. Not safe for concurrent use;
// feed fragments from a single goroutine in stream order.
type Session struct {
	tools   []toolMarkers
	ids     IDSource
	onError func(*ParseError)

	buf      string       // unconsumed input, including held-back marker prefixes
	pending  *pendingCall // currently open tag, nil outside a tag
	finished bool
}

// toolMarkers holds the precomputed tag markers for one configured tool.
type toolMarkers struct {
	name  string
	open  string // "<name>"
	close string // "</name>"
}

// pendingCall accumulates the body of an open tool tag until resolution.
// body holds everything received after the opening marker except a held-back
// tail that may still grow into the closing marker (that tail stays in the
// session buffer, so open+body+buf is always the exact received span).
type pendingCall struct {
	id      string
	markers toolMarkers
	body    strings.Builder
}

// Option configures a Session.
type Option func(*Session)

// WithIDSource sets the source of tool call ids. Default is UUIDSource.
func WithIDSource(src IDSource) Option {
	return func(s *Session) { s.ids = src }
}

// WithErrorHandler sets the handler invoked when a closed tag's body cannot
// be parsed into arguments. The handler is called exactly once per malformed
// call, after the EventToolInputEnd for that call id, and no EventToolCall is
// emitted for it. If nil or not set, malformed bodies are silently dropped.
func WithErrorHandler(h func(*ParseError)) Option {
	return func(s *Session) { s.onError = h }
}

// New creates a Session recognizing the given tools.
func New(tools []Tool, opts ...Option) (*Session, error) {
	s := &Session{
		tools: make([]toolMarkers, 0, len(tools)),
		ids:   UUIDSource{},
	}
	seen := make(map[string]struct{}, len(tools))
	for _, t := range tools {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[t.Name]; ok {
			return nil, fmt.Errorf("duplicate tool name %q: %w", t.Name, ErrValidation)
		}
		seen[t.Name] = struct{}{}
		s.tools = append(s.tools, toolMarkers{
			name:  t.Name,
			open:  "<" + t.Name + ">",
			close: "</" + t.Name + ">",
		})
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// Feed consumes the next fragment and returns the events it made
// unambiguous, in stream order. Fragment boundaries carry no meaning: a
// marker split across fragments is held back until it either completes or
// turns out to be plain text. Feed never fails; malformed input resolves
// through events and the error handler. After Finish, Feed returns nil.
func (s *Session) Feed(fragment string) []Event {
	if s.finished {
		return nil
	}
	s.buf += fragment
	return s.scan()
}

// Finish signals end of stream and returns the final events. An open tag
// resolves as incomplete: its EventToolInputEnd is emitted, then the raw
// unterminated span — opening marker, buffered body, and any held-back
// partial closing marker — is re-emitted as text exactly as received.
// A held marker prefix outside a tag flushes as text the same way.
// Subsequent Finish and Feed calls return nil.
func (s *Session) Finish() []Event {
	if s.finished {
		return nil
	}
	s.finished = true

	if call := s.pending; call != nil {
		s.pending = nil
		raw := call.markers.open + call.body.String() + s.buf
		s.buf = ""
		return []Event{
			EventToolInputEnd{ID: call.id},
			EventText{Text: raw},
		}
	}
	if s.buf != "" {
		text := s.buf
		s.buf = ""
		return []Event{EventText{Text: text}}
	}
	return nil
}

// scan advances over the buffer until it is exhausted or ends in an
// ambiguous marker prefix that needs more input to decide.
func (s *Session) scan() []Event {
	var events []Event
	for {
		var (
			evs  []Event
			more bool
		)
		if s.pending != nil {
			evs, more = s.scanBody()
		} else {
			evs, more = s.scanText()
		}
		events = append(events, evs...)
		if !more {
			return events
		}
	}
}

// scanText scans outside any tag. The boolean result reports whether
// scanning can continue; false means the buffer is exhausted or ends in a
// possible marker prefix.
func (s *Session) scanText() ([]Event, bool) {
	i := strings.IndexByte(s.buf, '<')
	if i < 0 {
		// No marker candidate anywhere: the whole buffer is text.
		if s.buf == "" {
			return nil, false
		}
		text := s.buf
		s.buf = ""
		return []Event{EventText{Text: text}}, false
	}

	var events []Event
	if i > 0 {
		events = append(events, EventText{Text: s.buf[:i]})
		s.buf = s.buf[i:]
	}

	markers, decided := s.matchOpenMarker()
	if !decided {
		// Still a possible opening marker: hold the tail back.
		return events, false
	}
	if markers == nil {
		// Definitely not a marker, so the '<' is plain text. Flush up to the
		// next candidate.
		j := strings.IndexByte(s.buf[1:], '<')
		if j < 0 {
			events = append(events, EventText{Text: s.buf})
			s.buf = ""
			return events, false
		}
		events = append(events, EventText{Text: s.buf[:j+1]})
		s.buf = s.buf[j+1:]
		return events, true
	}

	s.buf = s.buf[len(markers.open):]
	call := &pendingCall{id: s.ids.NewID(), markers: *markers}
	s.pending = call
	events = append(events, EventToolInputStart{ID: call.id, ToolName: markers.name})
	return events, true
}

// matchOpenMarker inspects the buffer, which starts with '<'. It returns the
// matched tool's markers, or nil when the buffer cannot open a recognized
// tag. decided is false when the buffer is a proper prefix of some opening
// marker and needs more input.
func (s *Session) matchOpenMarker() (markers *toolMarkers, decided bool) {
	ambiguous := false
	for i := range s.tools {
		t := &s.tools[i]
		if strings.HasPrefix(s.buf, t.open) {
			return t, true
		}
		if len(s.buf) < len(t.open) && strings.HasPrefix(t.open, s.buf) {
			ambiguous = true
		}
	}
	return nil, !ambiguous
}

// scanBody scans inside an open tag. Only the matching closing marker is
// recognized; all other content, bracketed or not, is body.
func (s *Session) scanBody() ([]Event, bool) {
	call := s.pending
	i := strings.Index(s.buf, call.markers.close)
	if i < 0 {
		// Hold back any tail that could still grow into the closing marker;
		// everything before it is body.
		k := markerOverlap(s.buf, call.markers.close)
		call.body.WriteString(s.buf[:len(s.buf)-k])
		s.buf = s.buf[len(s.buf)-k:]
		return nil, false
	}

	call.body.WriteString(s.buf[:i])
	s.buf = s.buf[i+len(call.markers.close):]
	s.pending = nil

	events := []Event{EventToolInputEnd{ID: call.id}}
	body := call.body.String()
	input, err := ParseArguments(body)
	if err != nil {
		if s.onError != nil {
			s.onError(&ParseError{
				ToolCallID: call.id,
				ToolName:   call.markers.name,
				RawBody:    body,
				Err:        err,
			})
		}
		return events, true
	}
	return append(events, EventToolCall{
		ToolCallID: call.id,
		ToolName:   call.markers.name,
		Input:      input,
	}), true
}

// markerOverlap returns the length of the longest proper prefix of marker
// that is a suffix of buf. That suffix may still grow into the full marker,
// so the scanner must not commit it as body yet.
func markerOverlap(buf, marker string) int {
	limit := len(marker) - 1
	if len(buf) < limit {
		limit = len(buf)
	}
	for k := limit; k > 0; k-- {
		if strings.HasSuffix(buf, marker[:k]) {
			return k
		}
	}
	return 0
}
