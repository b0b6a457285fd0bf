// Package gemini adapts the Google Gemini streaming API to a
// tagstream.FragmentSource, so generated text can be scanned for tool tags
// as it arrives.
package gemini

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/fwojciec/tagstream"
	"google.golang.org/genai"
)

// Interface compliance check.
var _ tagstream.FragmentSource = (*Source)(nil)

// Source implements [tagstream.FragmentSource] by wrapping the genai SDK's
// streaming iterator, as returned by Models.GenerateContentStream. Each
// fragment is the concatenated text of one response chunk; chunks carrying no
// text (function calls, thoughts) are skipped.
type Source struct {
	pull func() (*genai.GenerateContentResponse, error, bool)
	stop func()
}

// NewSource wraps a genai streaming iterator.
func NewSource(it iter.Seq2[*genai.GenerateContentResponse, error]) *Source {
	next, stop := iter.Pull2(it)
	return &Source{pull: next, stop: stop}
}

// Next returns the next non-empty text fragment. It returns io.EOF when the
// iterator is exhausted, or the underlying error if the stream fails.
func (s *Source) Next() (string, error) {
	for {
		resp, err, ok := s.pull()
		if !ok {
			return "", io.EOF
		}
		if err != nil {
			return "", fmt.Errorf("gemini: %w", err)
		}
		if text := chunkText(resp); text != "" {
			return text, nil
		}
	}
}

// Close releases the underlying iterator. Safe to call more than once.
func (s *Source) Close() {
	s.stop()
}

// chunkText concatenates the plain text parts of one response chunk.
// Thought parts are model reasoning, not generated prose, and are excluded.
func chunkText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil || part.Thought {
				continue
			}
			b.WriteString(part.Text)
		}
	}
	return b.String()
}
