package history

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxEntries bounds the undo stack when no limit is configured.
const DefaultMaxEntries = 1000

// History manages undo/redo stacks of recorded edits.
type History struct {
	mu sync.Mutex

	undoStack []*Entry
	redoStack []*Entry

	// Grouping state
	grouping   bool
	groupName  string
	groupEntry *Entry

	maxEntries  int
	checkpoints map[uuid.UUID]int
}

// New creates a history with the given undo depth limit.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{maxEntries: maxEntries}
}

// Record adds an edit to the undo stack and clears the redo stack.
// Inside a group the edit is coalesced into the pending group entry
// instead; a coalescing failure surfaces as an error and leaves the
// group unchanged.
func (h *History) Record(e *Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if e.timestamp.IsZero() {
		e.timestamp = time.Now()
	}

	if h.grouping {
		if h.groupEntry == nil {
			h.groupEntry = e
			return nil
		}
		merged, err := h.groupEntry.coalesce(e)
		if err != nil {
			return err
		}
		h.groupEntry = merged
		return nil
	}

	h.pushLocked(e)
	return nil
}

// pushLocked adds an entry without acquiring the lock.
func (h *History) pushLocked(e *Entry) {
	h.undoStack = append(h.undoStack, e)
	h.redoStack = nil

	if len(h.undoStack) > h.maxEntries {
		h.trimLocked(len(h.undoStack) - h.maxEntries)
	}
}

// trimLocked drops the oldest excess entries and shifts recorded
// checkpoint depths so they keep pointing at the same stack positions.
func (h *History) trimLocked(excess int) {
	h.undoStack = h.undoStack[excess:]
	for id, depth := range h.checkpoints {
		depth -= excess
		if depth < 0 {
			depth = 0
		}
		h.checkpoints[id] = depth
	}
}

// Undo pops the newest entry from the undo stack and moves it to the
// redo stack. The caller applies the entry's Inverse changeset and
// restores its Before selection.
func (h *History) Undo() (*Entry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) == 0 {
		return nil, ErrNothingToUndo
	}

	e := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, e)
	return e, nil
}

// Redo pops the newest entry from the redo stack and moves it back to
// the undo stack. The caller applies the entry's Forward changeset and
// restores its After selection.
func (h *History) Redo() (*Entry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redoStack) == 0 {
		return nil, ErrNothingToRedo
	}

	e := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, e)
	return e, nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo operations available.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack)
}

// RedoCount returns the number of redo operations available.
func (h *History) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack)
}

// BeginGroup starts an undo group. Edits recorded while grouping
// coalesce into a single undo unit. Nested calls are ignored.
func (h *History) BeginGroup(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.grouping {
		return
	}
	h.grouping = true
	h.groupName = name
	h.groupEntry = nil
}

// EndGroup finishes the current group and pushes the coalesced entry.
// An empty group pushes nothing.
func (h *History) EndGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.grouping {
		return
	}
	h.grouping = false

	if h.groupEntry == nil {
		return
	}
	if h.groupEntry.Description == "" {
		h.groupEntry.Description = h.groupName
	}
	h.pushLocked(h.groupEntry)
	h.groupEntry = nil
}

// CancelGroup discards the pending group without recording it.
// Edits already applied to the document are not rolled back.
func (h *History) CancelGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.grouping = false
	h.groupEntry = nil
}

// IsGrouping returns true if currently inside a group.
func (h *History) IsGrouping() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.grouping
}

// Clear removes all undo/redo history.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.undoStack = nil
	h.redoStack = nil
	h.grouping = false
	h.groupEntry = nil
	h.checkpoints = nil
}

// PeekUndo returns info about the next undo entry without removing it.
func (h *History) PeekUndo() (OperationInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) == 0 {
		return OperationInfo{}, false
	}
	e := h.undoStack[len(h.undoStack)-1]
	return OperationInfo{Description: e.Description, Timestamp: e.timestamp}, true
}

// PeekRedo returns info about the next redo entry without removing it.
func (h *History) PeekRedo() (OperationInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redoStack) == 0 {
		return OperationInfo{}, false
	}
	e := h.redoStack[len(h.redoStack)-1]
	return OperationInfo{Description: e.Description, Timestamp: e.timestamp}, true
}

// UndoInfo returns info about all undo entries, oldest first.
func (h *History) UndoInfo() []OperationInfo {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]OperationInfo, len(h.undoStack))
	for i, e := range h.undoStack {
		result[i] = OperationInfo{Description: e.Description, Timestamp: e.timestamp}
	}
	return result
}

// SetMaxEntries changes the undo depth limit, trimming oldest entries
// if the stack is already larger.
func (h *History) SetMaxEntries(max int) {
	if max <= 0 {
		max = DefaultMaxEntries
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.maxEntries = max
	if len(h.undoStack) > max {
		h.trimLocked(len(h.undoStack) - max)
	}
}

// MaxEntries returns the undo depth limit.
func (h *History) MaxEntries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxEntries
}
