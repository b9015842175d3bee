package history

// GroupScope provides a convenient way to group edits using defer.
// Usage:
//
//	func insertSnippet(h *history.History) {
//	    defer h.GroupScope("Insert Snippet").End()
//	    // ... record multiple edits ...
//	}
type GroupScope struct {
	history *History
	active  bool
}

// GroupScope starts a new group scope.
// Call End() or use with defer to properly close the group.
func (h *History) GroupScope(name string) *GroupScope {
	h.BeginGroup(name)
	return &GroupScope{history: h, active: true}
}

// End ends the group scope.
// Safe to call multiple times; only the first call has effect.
func (g *GroupScope) End() {
	if g.active {
		g.history.EndGroup()
		g.active = false
	}
}

// Cancel discards the group scope without recording an entry.
// Edits already applied to the document are not rolled back.
func (g *GroupScope) Cancel() {
	if g.active {
		g.history.CancelGroup()
		g.active = false
	}
}

// Transaction records every edit made by fn as a single undo unit.
// If fn returns an error the group is cancelled.
func (h *History) Transaction(name string, fn func() error) error {
	h.BeginGroup(name)

	if err := fn(); err != nil {
		h.CancelGroup()
		return err
	}
	h.EndGroup()
	return nil
}
