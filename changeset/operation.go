package changeset

import (
	"fmt"

	"github.com/dshills/editcore/document"
)

// Assoc chooses which side of an inserted or deleted span a mapped
// position resolves to. It is supplied per call by the input layer:
// AssocAfter makes typing at a cursor push the cursor past the inserted
// text, AssocBefore leaves it in front.
type Assoc int

const (
	// AssocBefore resolves to the position before inserted text, and to
	// the start of a deleted region.
	AssocBefore Assoc = iota

	// AssocAfter resolves past inserted text, and past the replacement
	// text of a deleted region.
	AssocAfter
)

// String returns the association name.
func (a Assoc) String() string {
	switch a {
	case AssocBefore:
		return "before"
	case AssocAfter:
		return "after"
	default:
		return "unknown"
	}
}

// OpKind identifies the kind of an operation.
type OpKind uint8

const (
	// OpRetain keeps a run of the source document unchanged.
	OpRetain OpKind = iota

	// OpInsert adds new text at the current position.
	OpInsert

	// OpDelete removes a run of the source document.
	OpDelete
)

// String returns the kind name.
func (k OpKind) String() string {
	switch k {
	case OpRetain:
		return "retain"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Operation is one step of a changeset: retain n, insert text, or delete n.
// For inserts, Len is the code-point length of Text, computed once at
// construction. Every algorithm that needs an insert's length reads the
// cached field; the text is never re-scanned.
type Operation struct {
	Kind OpKind
	Len  document.Pos // retain/delete length, or cached insert length
	Text string       // insert text (empty for retain/delete)
}

// Retain returns an operation keeping n code points.
func Retain(n document.Pos) Operation {
	return Operation{Kind: OpRetain, Len: n}
}

// Insert returns an operation inserting text, caching its length.
func Insert(text string) Operation {
	return Operation{Kind: OpInsert, Len: document.CharLen(text), Text: text}
}

// Delete returns an operation removing n code points.
func Delete(n document.Pos) Operation {
	return Operation{Kind: OpDelete, Len: n}
}

// String returns a human-readable representation of the operation.
func (op Operation) String() string {
	switch op.Kind {
	case OpRetain:
		return fmt.Sprintf("Retain(%d)", op.Len)
	case OpInsert:
		text := op.Text
		if len(text) > 20 {
			text = text[:17] + "..."
		}
		return fmt.Sprintf("Insert(%q)", text)
	case OpDelete:
		return fmt.Sprintf("Delete(%d)", op.Len)
	default:
		return "Unknown"
	}
}

// Equal returns true if two operations are identical.
func (op Operation) Equal(other Operation) bool {
	return op.Kind == other.Kind && op.Len == other.Len && op.Text == other.Text
}
