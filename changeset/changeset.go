package changeset

import (
	"fmt"
	"strings"

	"github.com/dshills/editcore/document"
)

// ChangeSet is an ordered operation sequence transforming a document of
// LenBefore code points into one of LenAfter. A ChangeSet is immutable
// once built; construct one through a Builder or FromChanges.
//
// Invariants, checked at build time:
//
//	sum of retain+delete lengths == LenBefore
//	sum of retain+insert lengths == LenAfter
type ChangeSet struct {
	ops       []Operation
	lenBefore document.Pos
	lenAfter  document.Pos
}

// Identity returns the changeset that leaves a document of length n
// unchanged. For n == 0 the operation list is empty.
func Identity(n document.Pos) *ChangeSet {
	cs := &ChangeSet{lenBefore: n, lenAfter: n}
	if n > 0 {
		cs.ops = []Operation{Retain(n)}
	}
	return cs
}

// LenBefore returns the required document length before applying.
func (cs *ChangeSet) LenBefore() document.Pos { return cs.lenBefore }

// LenAfter returns the document length after applying.
func (cs *ChangeSet) LenAfter() document.Pos { return cs.lenAfter }

// Ops returns a copy of the operation sequence.
func (cs *ChangeSet) Ops() []Operation {
	ops := make([]Operation, len(cs.ops))
	copy(ops, cs.ops)
	return ops
}

// IsIdentity returns true if applying the changeset leaves any document of
// length LenBefore unchanged.
func (cs *ChangeSet) IsIdentity() bool {
	switch len(cs.ops) {
	case 0:
		return true
	case 1:
		return cs.ops[0].Kind == OpRetain
	default:
		return false
	}
}

// Delta returns the length change caused by the changeset.
func (cs *ChangeSet) Delta() document.Pos {
	return cs.lenAfter - cs.lenBefore
}

// Equal returns true if two changesets have identical canonical form.
func (cs *ChangeSet) Equal(other *ChangeSet) bool {
	if other == nil {
		return false
	}
	if cs.lenBefore != other.lenBefore || cs.lenAfter != other.lenAfter {
		return false
	}
	if len(cs.ops) != len(other.ops) {
		return false
	}
	for i, op := range cs.ops {
		if !op.Equal(other.ops[i]) {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the changeset.
func (cs *ChangeSet) String() string {
	parts := make([]string, len(cs.ops))
	for i, op := range cs.ops {
		parts[i] = op.String()
	}
	return fmt.Sprintf("ChangeSet(%d->%d: %s)", cs.lenBefore, cs.lenAfter, strings.Join(parts, " "))
}

// Apply transforms doc and returns the new content. It fails if doc's
// length disagrees with LenBefore; a mismatch is a bug in the caller, not
// a user-facing condition.
func (cs *ChangeSet) Apply(doc document.Content) (string, error) {
	if doc.Len() != cs.lenBefore {
		return "", fmt.Errorf("apply: document length %d, changeset expects %d: %w",
			doc.Len(), cs.lenBefore, ErrLengthMismatch)
	}

	var sb strings.Builder
	pos := document.Pos(0)
	for _, op := range cs.ops {
		switch op.Kind {
		case OpRetain:
			sb.WriteString(doc.Slice(pos, pos+op.Len))
			pos += op.Len
		case OpInsert:
			sb.WriteString(op.Text)
		case OpDelete:
			pos += op.Len
		}
	}
	return sb.String(), nil
}

// ApplyText transforms a chunked document, splicing each edit in place
// so chunks outside the affected regions are reused rather than
// reflattened. This is the hot-path form of Apply: typing-sized edits
// touch only the chunks they land in.
func (cs *ChangeSet) ApplyText(t document.Text) (document.Text, error) {
	if t.Len() != cs.lenBefore {
		return document.Text{}, fmt.Errorf("apply: document length %d, changeset expects %d: %w",
			t.Len(), cs.lenBefore, ErrLengthMismatch)
	}

	out := t
	pos := document.Pos(0) // position in out
	for _, op := range cs.ops {
		switch op.Kind {
		case OpRetain:
			pos += op.Len
		case OpInsert:
			out = out.Splice(pos, pos, op.Text)
			pos += op.Len
		case OpDelete:
			out = out.Splice(pos, pos+op.Len, "")
		}
	}
	return out, nil
}

// Invert builds the complementary changeset that undoes this one. It
// requires the pre-edit document to recover the text removed by deletes,
// which the forward changeset does not retain; undo storage must therefore
// snapshot either the inverse or enough document state to build it here.
func (cs *ChangeSet) Invert(docBefore document.Content) (*ChangeSet, error) {
	if docBefore.Len() != cs.lenBefore {
		return nil, fmt.Errorf("invert: document length %d, changeset expects %d: %w",
			docBefore.Len(), cs.lenBefore, ErrLengthMismatch)
	}

	b := NewBuilder(cs.lenAfter)
	pos := document.Pos(0)
	for _, op := range cs.ops {
		switch op.Kind {
		case OpRetain:
			b.Retain(op.Len)
			pos += op.Len
		case OpInsert:
			b.Delete(op.Len)
		case OpDelete:
			b.Insert(docBefore.Slice(pos, pos+op.Len))
			pos += op.Len
		}
	}
	return b.Build()
}
