package editor

import (
	"fmt"
	"sync"

	"github.com/dshills/editcore/changeset"
	"github.com/dshills/editcore/document"
	"github.com/dshills/editcore/history"
	"github.com/dshills/editcore/movement"
	"github.com/dshills/editcore/register"
	"github.com/dshills/editcore/selection"
)

// Session is the facade over a single open document: its text, the
// selection, undo history and registers.
type Session struct {
	mu sync.RWMutex

	text     document.Text
	sel      selection.Selection
	hist     *history.History
	regs     *register.Store
	revision uint64

	// Configuration
	policy          selection.MergePolicy
	maxUndoEntries  int
	readOnly        bool
	systemClipboard bool
	clipboard       register.ClipboardProvider

	initContent string
}

// New creates a session with the given options. The selection starts as
// a single cursor at the top of the document.
func New(opts ...Option) *Session {
	s := &Session{
		policy:          selection.MergeTouching,
		systemClipboard: false,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.text = document.FromString(s.initContent)
	sel, _ := selection.FromRanges(s.policy, 0, selection.Point(0))
	s.sel = sel
	s.hist = history.New(s.maxUndoEntries)
	s.regs = register.NewStore()

	switch {
	case s.clipboard != nil:
		s.regs.SetClipboard(s.clipboard)
	case s.systemClipboard && register.Available():
		s.regs.SetClipboard(register.SystemClipboard{})
	}
	return s
}

// Text returns the document content as a string.
func (s *Session) Text() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.text.String()
}

// Document returns the current document value.
func (s *Session) Document() document.Text {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.text
}

// Len returns the document length in code points.
func (s *Session) Len() document.Pos {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.text.Len()
}

// Selection returns the current selection.
func (s *Session) Selection() selection.Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sel
}

// Revision returns the current revision number. It starts at zero and
// increments with every applied edit, undo and redo.
func (s *Session) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// History exposes the undo history for grouping and inspection.
func (s *Session) History() *history.History {
	return s.hist
}

// Registers exposes the register store.
func (s *Session) Registers() *register.Store {
	return s.regs
}

// SetSelection replaces the selection. The selection is normalized with
// the session's merge policy and clamped positions are the caller's
// responsibility.
func (s *Session) SetSelection(ranges []selection.Range, primary int) error {
	sel, err := selection.FromRanges(s.policy, primary, ranges...)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel = sel
	return nil
}

// SelectAll selects the whole document with the cursor at the end.
func (s *Session) SelectAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel, _ := selection.FromRanges(s.policy, 0, selection.NewRange(0, s.text.Len()))
	s.sel = sel
}

// MoveEach transforms every range through fn, for cursor motions. The
// result is renormalized; motions that drive cursors together collapse
// them. History is not touched.
func (s *Session) MoveEach(fn func(document.Text, selection.Range) selection.Range) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := selection.NewBuilder(s.policy)
	for i, r := range s.sel.Ranges() {
		moved := fn(s.text, r)
		if i == s.sel.PrimaryIndex() {
			b.AddPrimary(moved)
		} else {
			b.Add(moved)
		}
	}
	sel, err := b.Build()
	if err != nil {
		return err
	}
	s.sel = sel
	return nil
}

// Apply applies a changeset built against the current document,
// mapping the selection through it and recording the edit for undo.
func (s *Session) Apply(cs *changeset.ChangeSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyLocked(cs, "Edit")
}

// ApplyAt applies a changeset built against revision rev, rejecting it
// with ErrStaleRevision if the document has moved on.
func (s *Session) ApplyAt(rev uint64, cs *changeset.ChangeSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rev != s.revision {
		return fmt.Errorf("revision %d, current %d: %w", rev, s.revision, ErrStaleRevision)
	}
	return s.applyLocked(cs, "Edit")
}

// applyLocked performs the edit pipeline: invert, apply, map selection,
// record, bump revision. Callers hold the write lock.
func (s *Session) applyLocked(cs *changeset.ChangeSet, desc string) error {
	if s.readOnly {
		return ErrReadOnly
	}
	if cs.LenBefore() != s.text.Len() {
		return fmt.Errorf("changeset expects length %d, document has %d: %w",
			cs.LenBefore(), s.text.Len(), changeset.ErrLengthMismatch)
	}
	if cs.IsIdentity() {
		return nil
	}

	inverse, err := cs.Invert(s.text)
	if err != nil {
		return fmt.Errorf("invert: %w", err)
	}
	after, err := cs.ApplyText(s.text)
	if err != nil {
		return fmt.Errorf("apply: %w", err)
	}
	newSel, err := s.sel.Map(cs, changeset.AssocAfter)
	if err != nil {
		return fmt.Errorf("map selection: %w", err)
	}

	entry := &history.Entry{
		Forward:     cs,
		Inverse:     inverse,
		Before:      s.sel,
		After:       newSel,
		Description: desc,
	}
	if err := s.hist.Record(entry); err != nil {
		return fmt.Errorf("record: %w", err)
	}

	s.text = after
	s.sel = newSel
	s.revision++
	return nil
}

// Insert replaces every selected range with text; bare cursors insert
// at their position. This is the multi-cursor typing primitive.
func (s *Session) Insert(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	changes := make([]changeset.Change, 0, s.sel.Count())
	for _, r := range s.sel.Ranges() {
		changes = append(changes, changeset.Change{From: r.Start(), To: r.End(), Insert: text})
	}
	cs, err := changeset.FromChanges(s.text.Len(), changes...)
	if err != nil {
		return err
	}
	return s.applyLocked(cs, "Insert")
}

// DeleteSelection removes the text covered by every non-point range.
// With only bare cursors it is a no-op.
func (s *Session) DeleteSelection() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values := make([]string, 0, s.sel.Count())
	changes := make([]changeset.Change, 0, s.sel.Count())
	for _, r := range s.sel.Ranges() {
		if r.IsPoint() {
			continue
		}
		values = append(values, s.text.Slice(r.Start(), r.End()))
		changes = append(changes, changeset.Change{From: r.Start(), To: r.End()})
	}
	if len(changes) == 0 {
		return nil
	}

	cs, err := changeset.FromChanges(s.text.Len(), changes...)
	if err != nil {
		return err
	}
	if err := s.applyLocked(cs, "Delete"); err != nil {
		return err
	}
	s.regs.SetDelete(values...)
	return nil
}

// Backspace deletes the grapheme cluster before each bare cursor and
// the covered text of each non-point range. Cursors at the top of the
// document are left alone.
func (s *Session) Backspace() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	changes := make([]changeset.Change, 0, s.sel.Count())
	for _, r := range s.sel.Ranges() {
		if r.IsPoint() {
			from := movement.PrevGraphemeBoundary(s.text, r.Head)
			// Under KeepTouching a cursor can sit flush against the
			// previous range; the cluster step then reaches into text
			// that range already deletes. Clamp to keep changes disjoint.
			if n := len(changes); n > 0 && from < changes[n-1].To {
				from = changes[n-1].To
			}
			if from >= r.Head {
				continue
			}
			changes = append(changes, changeset.Change{From: from, To: r.Head})
			continue
		}
		changes = append(changes, changeset.Change{From: r.Start(), To: r.End()})
	}
	if len(changes) == 0 {
		return nil
	}

	cs, err := changeset.FromChanges(s.text.Len(), changes...)
	if err != nil {
		return err
	}
	return s.applyLocked(cs, "Delete")
}

// Yank copies the text of every range into the yank register and the
// unnamed register, and returns the values in range order.
func (s *Session) Yank() []string {
	s.mu.RLock()
	values := make([]string, 0, s.sel.Count())
	for _, r := range s.sel.Ranges() {
		values = append(values, s.text.Slice(r.Start(), r.End()))
	}
	s.mu.RUnlock()

	s.regs.SetYank(values...)
	return values
}

// YankTo copies the selection into a named register.
func (s *Session) YankTo(name rune) []string {
	s.mu.RLock()
	values := make([]string, 0, s.sel.Count())
	for _, r := range s.sel.Ranges() {
		values = append(values, s.text.Slice(r.Start(), r.End()))
	}
	s.mu.RUnlock()

	s.regs.Set(name, values...)
	return values
}

// Paste replaces every range with the corresponding value from the
// named register. With fewer values than ranges the last value repeats;
// the zero rune pastes from the unnamed register.
func (s *Session) Paste(name rune) error {
	if name == 0 {
		name = '"'
	}
	values, ok := s.regs.Get(name)
	if !ok {
		return fmt.Errorf("register %q: %w", name, ErrEmptyRegister)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	changes := make([]changeset.Change, 0, s.sel.Count())
	for i, r := range s.sel.Ranges() {
		v := values[len(values)-1]
		if i < len(values) {
			v = values[i]
		}
		changes = append(changes, changeset.Change{From: r.Start(), To: r.End(), Insert: v})
	}
	cs, err := changeset.FromChanges(s.text.Len(), changes...)
	if err != nil {
		return err
	}
	return s.applyLocked(cs, "Paste")
}

// Undo rolls back the most recent edit, restoring the selection that
// preceded it.
func (s *Session) Undo() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.readOnly {
		return ErrReadOnly
	}
	e, err := s.hist.Undo()
	if err != nil {
		return err
	}

	after, err := e.Inverse.ApplyText(s.text)
	if err != nil {
		return fmt.Errorf("apply inverse: %w", err)
	}
	s.text = after
	s.sel = e.Before
	s.revision++
	return nil
}

// Redo replays the most recently undone edit.
func (s *Session) Redo() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.readOnly {
		return ErrReadOnly
	}
	e, err := s.hist.Redo()
	if err != nil {
		return err
	}

	after, err := e.Forward.ApplyText(s.text)
	if err != nil {
		return fmt.Errorf("apply forward: %w", err)
	}
	s.text = after
	s.sel = e.After
	s.revision++
	return nil
}

// Transaction groups every edit made by fn into a single undo unit.
func (s *Session) Transaction(name string, fn func() error) error {
	return s.hist.Transaction(name, fn)
}
