package tagstream

import "github.com/google/uuid"

// IDSource mints unique identifiers for tool call occurrences. The session
// calls NewID exactly once per opened tag, synchronously, before emitting the
// corresponding EventToolInputStart. The id minted at open time is the id
// reported in every event referencing that call.
type IDSource interface {
	NewID() string
}

// UUIDSource is the default IDSource, minting random UUID strings.
type UUIDSource struct{}

// Interface compliance check.
var _ IDSource = UUIDSource{}

// NewID returns a random UUID string.
func (UUIDSource) NewID() string {
	return uuid.NewString()
}
