// Package mock provides test doubles for tagstream interfaces.
package mock

import (
	"fmt"

	"github.com/fwojciec/tagstream"
)

// Interface compliance check.
var _ tagstream.IDSource = (*IDSource)(nil)

// IDSource is a test double for tagstream.IDSource.
// NewIDFn panics when nil to catch missing setup.
type IDSource struct {
	NewIDFn func() string
}

// NewID delegates to NewIDFn.
func (s *IDSource) NewID() string {
	return s.NewIDFn()
}

// SequenceIDs returns an IDSource minting "call-1", "call-2", ... in order.
// Deterministic ids make event assertions independent of uuid generation.
func SequenceIDs() *IDSource {
	n := 0
	return &IDSource{NewIDFn: func() string {
		n++
		return fmt.Sprintf("call-%d", n)
	}}
}
