package selection

import (
	"fmt"

	"github.com/dshills/editcore/changeset"
	"github.com/dshills/editcore/document"
)

// Range is a single cursor-with-anchor range. Anchor is where the
// selection was started; Head is where the cursor currently is. Anchor
// may sit after Head: the selection then extends backward, and that
// direction is meaningful and preserved by every operation here.
// Range is an immutable value type.
type Range struct {
	Anchor document.Pos
	Head   document.Pos
}

// NewRange creates a range from anchor to head.
func NewRange(anchor, head document.Pos) Range {
	return Range{Anchor: anchor, Head: head}
}

// Point creates a collapsed range (a bare cursor) at pos.
func Point(pos document.Pos) Range {
	return Range{Anchor: pos, Head: pos}
}

// Start returns the lower bound of the range's span.
func (r Range) Start() document.Pos {
	if r.Anchor <= r.Head {
		return r.Anchor
	}
	return r.Head
}

// End returns the upper bound of the range's span.
func (r Range) End() document.Pos {
	if r.Anchor >= r.Head {
		return r.Anchor
	}
	return r.Head
}

// Len returns the span length in code points.
func (r Range) Len() document.Pos {
	return r.End() - r.Start()
}

// IsPoint returns true if the range has no extent.
func (r Range) IsPoint() bool {
	return r.Anchor == r.Head
}

// IsForward returns true if the range extends forward (anchor <= head).
func (r Range) IsForward() bool {
	return r.Anchor <= r.Head
}

// IsBackward returns true if the range extends backward (head < anchor).
func (r Range) IsBackward() bool {
	return r.Head < r.Anchor
}

// Flip returns the range with anchor and head swapped.
func (r Range) Flip() Range {
	return Range{Anchor: r.Head, Head: r.Anchor}
}

// WithDirection returns the range oriented forward or backward without
// changing its span.
func (r Range) WithDirection(forward bool) Range {
	if forward == r.IsForward() {
		return r
	}
	return r.Flip()
}

// Extend returns a range with the same anchor and the head moved to pos.
func (r Range) Extend(pos document.Pos) Range {
	return Range{Anchor: r.Anchor, Head: pos}
}

// Contains returns true if pos is within the range's span.
func (r Range) Contains(pos document.Pos) bool {
	return pos >= r.Start() && pos < r.End()
}

// Overlaps returns true if the two ranges' spans intersect.
// Touching spans do not overlap; a point range overlaps nothing.
func (r Range) Overlaps(other Range) bool {
	return r.Start() < other.End() && other.Start() < r.End()
}

// Touches returns true if the spans intersect or share an endpoint.
func (r Range) Touches(other Range) bool {
	return r.Start() <= other.End() && other.Start() <= r.End()
}

// Map translates the range through a changeset. Anchor and head are
// mapped independently with the supplied associativity. The pre-edit
// direction is preserved: if mapping collapses or crosses the endpoints,
// the tie is broken by the original direction, never recomputed from the
// mapped values alone.
func (r Range) Map(cs *changeset.ChangeSet, assoc changeset.Assoc) (Range, error) {
	anchor, err := cs.MapPos(r.Anchor, assoc)
	if err != nil {
		return Range{}, fmt.Errorf("map anchor: %w", err)
	}
	head, err := cs.MapPos(r.Head, assoc)
	if err != nil {
		return Range{}, fmt.Errorf("map head: %w", err)
	}

	mapped := Range{Anchor: anchor, Head: head}
	return mapped.WithDirection(r.IsForward()), nil
}

// Equal returns true if the ranges have identical anchor and head.
func (r Range) Equal(other Range) bool {
	return r.Anchor == other.Anchor && r.Head == other.Head
}

// SameSpan returns true if the ranges cover the same span regardless of
// direction.
func (r Range) SameSpan(other Range) bool {
	return r.Start() == other.Start() && r.End() == other.End()
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	if r.IsPoint() {
		return fmt.Sprintf("Cursor(%d)", r.Head)
	}
	dir := "forward"
	if r.IsBackward() {
		dir = "backward"
	}
	return fmt.Sprintf("Range(%d..%d %s)", r.Anchor, r.Head, dir)
}
