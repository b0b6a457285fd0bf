package gemini_test

import (
	"errors"
	"io"
	"iter"
	"testing"

	"github.com/fwojciec/tagstream"
	"github.com/fwojciec/tagstream/gemini"
	"github.com/fwojciec/tagstream/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// chunk builds a response carrying the given text parts.
func chunk(texts ...string) *genai.GenerateContentResponse {
	parts := make([]*genai.Part, len(texts))
	for i, text := range texts {
		parts[i] = &genai.Part{Text: text}
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: parts}},
		},
	}
}

// iterOf yields the responses in order, then optionally a terminal error.
func iterOf(resps []*genai.GenerateContentResponse, terminal error) iter.Seq2[*genai.GenerateContentResponse, error] {
	return func(yield func(*genai.GenerateContentResponse, error) bool) {
		for _, r := range resps {
			if !yield(r, nil) {
				return
			}
		}
		if terminal != nil {
			yield(nil, terminal)
		}
	}
}

func drain(t *testing.T, src *gemini.Source) []string {
	t.Helper()
	var fragments []string
	for {
		frag, err := src.Next()
		if err == io.EOF {
			return fragments
		}
		require.NoError(t, err)
		fragments = append(fragments, frag)
	}
}

func TestSource_YieldsTextFragments(t *testing.T) {
	t.Parallel()
	src := gemini.NewSource(iterOf([]*genai.GenerateContentResponse{
		chunk("Hello "),
		chunk("<get_", "weather>"),
		chunk("</get_weather>"),
	}, nil))
	defer src.Close()

	fragments := drain(t, src)

	assert.Equal(t, []string{"Hello ", "<get_weather>", "</get_weather>"}, fragments)
}

func TestSource_SkipsChunksWithoutText(t *testing.T) {
	t.Parallel()
	thought := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: "internal reasoning", Thought: true}}}},
		},
	}
	empty := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}
	src := gemini.NewSource(iterOf([]*genai.GenerateContentResponse{
		thought,
		empty,
		chunk("visible"),
	}, nil))
	defer src.Close()

	fragments := drain(t, src)

	assert.Equal(t, []string{"visible"}, fragments)
}

func TestSource_PropagatesError(t *testing.T) {
	t.Parallel()
	errBoom := errors.New("boom")
	src := gemini.NewSource(iterOf([]*genai.GenerateContentResponse{chunk("partial")}, errBoom))
	defer src.Close()

	frag, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, "partial", frag)

	_, err = src.Next()
	assert.ErrorIs(t, err, errBoom)
}

func TestSource_EndToEndWithStream(t *testing.T) {
	t.Parallel()
	session, err := tagstream.New(
		[]tagstream.Tool{{Name: "get_weather"}},
		tagstream.WithIDSource(mock.SequenceIDs()),
	)
	require.NoError(t, err)

	src := gemini.NewSource(iterOf([]*genai.GenerateContentResponse{
		chunk("Checking: "),
		chunk("<get_wea"),
		chunk("ther><location>NY</location></get_weather>"),
	}, nil))
	defer src.Close()

	stream := tagstream.NewStream(session, src)
	var events []tagstream.Event
	for {
		evt, nextErr := stream.Next()
		if nextErr == io.EOF {
			break
		}
		require.NoError(t, nextErr)
		events = append(events, evt)
	}

	assert.Equal(t, []tagstream.Event{
		tagstream.EventText{Text: "Checking: "},
		tagstream.EventToolInputStart{ID: "call-1", ToolName: "get_weather"},
		tagstream.EventToolInputEnd{ID: "call-1"},
		tagstream.EventToolCall{
			ToolCallID: "call-1",
			ToolName:   "get_weather",
			Input:      map[string]string{"location": "NY"},
		},
	}, events)
}
