package mock

import (
	"io"

	"github.com/fwojciec/tagstream"
)

// Interface compliance check.
var _ tagstream.FragmentSource = (*FragmentSource)(nil)

// FragmentSource is a test double for tagstream.FragmentSource.
// NextFn panics when nil to catch missing setup.
type FragmentSource struct {
	NextFn func() (string, error)
}

// Next delegates to NextFn.
func (s *FragmentSource) Next() (string, error) {
	return s.NextFn()
}

// Fragments returns a FragmentSource yielding the given fragments in order,
// then io.EOF.
func Fragments(fragments ...string) *FragmentSource {
	i := 0
	return &FragmentSource{NextFn: func() (string, error) {
		if i >= len(fragments) {
			return "", io.EOF
		}
		f := fragments[i]
		i++
		return f, nil
	}}
}
