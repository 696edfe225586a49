package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Identifier is an opaque, globally unique token naming a List or a Task.
// It is generated on the client before anything is persisted, so a caller can
// show a new row before the write is confirmed.
type Identifier string

// NewIdentifier returns a fresh random Identifier.
func NewIdentifier() Identifier {
	return Identifier(uuid.NewString())
}

// IsZero reports whether the identifier is empty or whitespace only.
func (id Identifier) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}

// String implements fmt.Stringer.
func (id Identifier) String() string {
	return string(id)
}

// Short returns the first eight characters, enough to address an entity by
// hand in a terminal.
func (id Identifier) Short() string {
	const n = 8
	if len(id) <= n {
		return string(id)
	}
	return string(id[:n])
}
