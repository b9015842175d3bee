package history

import (
	"fmt"
	"time"

	"github.com/dshills/editcore/changeset"
	"github.com/dshills/editcore/selection"
)

// Entry is one undoable edit: the forward changeset, its inverse, and
// the selections bracketing it. Entries are immutable once recorded.
type Entry struct {
	// Forward transforms the pre-edit document into the post-edit one.
	Forward *changeset.ChangeSet

	// Inverse transforms the post-edit document back. It must have been
	// computed against the pre-edit document.
	Inverse *changeset.ChangeSet

	// Before and After are the selections in effect on either side of
	// the edit, used to restore cursors on undo/redo.
	Before selection.Selection
	After  selection.Selection

	// Description labels the entry for history browsing.
	Description string

	timestamp time.Time
}

// Timestamp returns when the entry was recorded.
func (e *Entry) Timestamp() time.Time {
	return e.timestamp
}

// String returns a human-readable representation of the entry.
func (e *Entry) String() string {
	return fmt.Sprintf("Entry(%q %d->%d)", e.Description, e.Forward.LenBefore(), e.Forward.LenAfter())
}

// coalesce merges a later entry into e, composing the changesets so the
// pair undoes and redoes as one step. The merged entry spans from e's
// pre-edit state to next's post-edit state.
func (e *Entry) coalesce(next *Entry) (*Entry, error) {
	forward, err := changeset.Compose(e.Forward, next.Forward)
	if err != nil {
		return nil, fmt.Errorf("compose forward: %w", err)
	}
	inverse, err := changeset.Compose(next.Inverse, e.Inverse)
	if err != nil {
		return nil, fmt.Errorf("compose inverse: %w", err)
	}

	desc := e.Description
	if desc == "" {
		desc = next.Description
	}
	return &Entry{
		Forward:     forward,
		Inverse:     inverse,
		Before:      e.Before,
		After:       next.After,
		Description: desc,
		timestamp:   e.timestamp,
	}, nil
}

// OperationInfo describes a history entry without exposing it.
type OperationInfo struct {
	Description string
	Timestamp   time.Time
}
