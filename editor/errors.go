package editor

import "errors"

// Common errors for session operations.
var (
	// ErrReadOnly indicates a write operation on a read-only session.
	ErrReadOnly = errors.New("session is read-only")

	// ErrStaleRevision indicates a changeset built against an older
	// revision of the document.
	ErrStaleRevision = errors.New("changeset targets a stale revision")

	// ErrEmptyRegister indicates a paste from a register with no content.
	ErrEmptyRegister = errors.New("register is empty")
)
