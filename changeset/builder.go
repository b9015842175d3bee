package changeset

import (
	"fmt"

	"github.com/dshills/editcore/document"
)

// Builder accumulates operations in position order and produces a
// canonical ChangeSet. Adjacent same-kind operations are merged as they
// arrive, zero-length operations are dropped, and an insert landing after
// a delete is reordered so the insert comes first (the canonical replace
// form). Build fails fast if the consumed length disagrees with the
// declared pre-edit length.
type Builder struct {
	ops       []Operation
	lenBefore document.Pos
	consumed  document.Pos
	produced  document.Pos
	err       error
}

// NewBuilder creates a builder for a document of lenBefore code points.
func NewBuilder(lenBefore document.Pos) *Builder {
	if lenBefore < 0 {
		return &Builder{err: fmt.Errorf("builder: length %d: %w", lenBefore, ErrNegativeLength)}
	}
	return &Builder{lenBefore: lenBefore}
}

// Retain keeps the next n code points of the source document.
func (b *Builder) Retain(n document.Pos) {
	if b.err != nil || n == 0 {
		return
	}
	if n < 0 {
		b.err = fmt.Errorf("retain %d: %w", n, ErrNegativeLength)
		return
	}
	b.consumed += n
	b.produced += n
	if last := len(b.ops) - 1; last >= 0 && b.ops[last].Kind == OpRetain {
		b.ops[last].Len += n
		return
	}
	b.ops = append(b.ops, Retain(n))
}

// Delete removes the next n code points of the source document.
func (b *Builder) Delete(n document.Pos) {
	if b.err != nil || n == 0 {
		return
	}
	if n < 0 {
		b.err = fmt.Errorf("delete %d: %w", n, ErrNegativeLength)
		return
	}
	b.consumed += n
	if last := len(b.ops) - 1; last >= 0 && b.ops[last].Kind == OpDelete {
		b.ops[last].Len += n
		return
	}
	b.ops = append(b.ops, Delete(n))
}

// Insert adds text at the current position. The text's code-point length
// is computed here, once; merges only add cached lengths.
func (b *Builder) Insert(text string) {
	if b.err != nil || text == "" {
		return
	}
	b.insertOp(Insert(text))
}

// insertCached is Insert for callers that already know the text's length,
// such as Compose splitting an insert it carries a cached length for.
func (b *Builder) insertCached(text string, length document.Pos) {
	if b.err != nil || text == "" {
		return
	}
	b.insertOp(Operation{Kind: OpInsert, Len: length, Text: text})
}

func (b *Builder) insertOp(in Operation) {
	b.produced += in.Len

	n := len(b.ops)
	switch {
	case n >= 1 && b.ops[n-1].Kind == OpInsert:
		b.ops[n-1].Text += in.Text
		b.ops[n-1].Len += in.Len
	case n >= 2 && b.ops[n-1].Kind == OpDelete && b.ops[n-2].Kind == OpInsert:
		b.ops[n-2].Text += in.Text
		b.ops[n-2].Len += in.Len
	case n >= 1 && b.ops[n-1].Kind == OpDelete:
		// Keep the canonical insert-before-delete replace form.
		del := b.ops[n-1]
		b.ops[n-1] = in
		b.ops = append(b.ops, del)
	default:
		b.ops = append(b.ops, in)
	}
}

// Build finalizes the changeset. It fails if any operation was malformed
// or if the operations do not consume exactly the declared length.
func (b *Builder) Build() (*ChangeSet, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.consumed != b.lenBefore {
		return nil, fmt.Errorf("build: operations consume %d of %d: %w",
			b.consumed, b.lenBefore, ErrLengthMismatch)
	}
	return &ChangeSet{ops: b.ops, lenBefore: b.lenBefore, lenAfter: b.produced}, nil
}

// Change describes one replacement in document position space: the text in
// [From, To) is replaced by Insert. A pure insertion has From == To; a
// pure deletion has an empty Insert.
type Change struct {
	From   document.Pos
	To     document.Pos
	Insert string
}

// FromChanges builds a changeset over a document of docLen code points
// from changes sorted by position. Changes must not overlap. This is the
// constructor editing actions use: one Change per cursor, in range order.
func FromChanges(docLen document.Pos, changes ...Change) (*ChangeSet, error) {
	b := NewBuilder(docLen)
	last := document.Pos(0)
	for _, c := range changes {
		if c.From > c.To || c.From < last || c.To > docLen {
			return nil, fmt.Errorf("change [%d,%d) after %d in doc of %d: %w",
				c.From, c.To, last, docLen, ErrChangesOutOfOrder)
		}
		b.Retain(c.From - last)
		b.Insert(c.Insert)
		b.Delete(c.To - c.From)
		last = c.To
	}
	b.Retain(docLen - last)
	return b.Build()
}
