package history

import (
	"errors"

	"github.com/google/uuid"
)

// ErrUnknownCheckpoint indicates a checkpoint id that was never created
// or has been invalidated by Clear.
var ErrUnknownCheckpoint = errors.New("unknown checkpoint")

// Checkpoint marks a position in the undo stack.
type Checkpoint struct {
	ID    uuid.UUID
	depth int
}

// CreateCheckpoint marks the current history position. The returned
// checkpoint stays valid until Clear is called.
func (h *History) CreateCheckpoint() Checkpoint {
	h.mu.Lock()
	defer h.mu.Unlock()

	cp := Checkpoint{ID: uuid.New(), depth: len(h.undoStack)}
	if h.checkpoints == nil {
		h.checkpoints = make(map[uuid.UUID]int)
	}
	h.checkpoints[cp.ID] = cp.depth
	return cp
}

// EntriesSince returns the entries recorded after the checkpoint, oldest
// first. The entries stay on the undo stack; callers walking back to the
// checkpoint apply each Inverse in reverse order via Undo.
func (h *History) EntriesSince(cp Checkpoint) ([]*Entry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	depth, ok := h.checkpoints[cp.ID]
	if !ok {
		return nil, ErrUnknownCheckpoint
	}
	if depth > len(h.undoStack) {
		// Entries below the checkpoint were undone or trimmed.
		depth = len(h.undoStack)
	}
	out := make([]*Entry, len(h.undoStack)-depth)
	copy(out, h.undoStack[depth:])
	return out, nil
}

// UndoToCheckpoint pops entries until the stack is back at the
// checkpoint's depth, invoking apply for each popped entry in turn. The
// caller's apply function performs the actual document rollback; an
// error stops the walk with the failing entry still moved to redo.
func (h *History) UndoToCheckpoint(cp Checkpoint, apply func(*Entry) error) error {
	h.mu.Lock()
	depth, ok := h.checkpoints[cp.ID]
	h.mu.Unlock()
	if !ok {
		return ErrUnknownCheckpoint
	}

	for h.UndoCount() > depth {
		e, err := h.Undo()
		if err != nil {
			return err
		}
		if err := apply(e); err != nil {
			return err
		}
	}
	return nil
}
