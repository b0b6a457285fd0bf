package tagstream

import (
	"fmt"
	"strings"
)

// Tool names a tag the parser recognizes. A tool call appears in generated
// text as <name>...</name>; anything bracketed that does not match a
// configured name is plain text.
type Tool struct {
	Name string
}

// Validate checks that the tool name can form unambiguous tag markers.
func (t Tool) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("tool name must not be empty: %w", ErrValidation)
	}
	if strings.ContainsAny(t.Name, "</> \t\r\n") {
		return fmt.Errorf("tool name %q contains markup or whitespace characters: %w", t.Name, ErrValidation)
	}
	return nil
}
