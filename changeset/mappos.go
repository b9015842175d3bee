package changeset

import (
	"fmt"

	"github.com/dshills/editcore/document"
)

// MapPos translates a position in the pre-edit space to the corresponding
// position in the post-edit space. This is the load-bearing primitive for
// selection tracking: every range endpoint is mapped independently through
// it after an edit.
//
// Policy at boundaries: a position inside a pure deleted region collapses
// to the region's location in the new space regardless of associativity.
// A position at an insert boundary lands before the inserted text with
// AssocBefore and after it with AssocAfter, and the same rule applies at
// the start of and inside a replaced region, so a replace and a pure
// insert agree at their shared boundary.
//
// Positions outside [0, LenBefore] are a caller bug and return an error.
func (cs *ChangeSet) MapPos(pos document.Pos, assoc Assoc) (document.Pos, error) {
	if pos < 0 || pos > cs.lenBefore {
		return 0, fmt.Errorf("map %d in changeset of %d: %w", pos, cs.lenBefore, ErrPositionOutOfRange)
	}

	oldPos, newPos := document.Pos(0), document.Pos(0)
	for i := 0; i < len(cs.ops); i++ {
		op := cs.ops[i]
		switch op.Kind {
		case OpRetain:
			if pos < oldPos+op.Len {
				return newPos + (pos - oldPos), nil
			}
			oldPos += op.Len
			newPos += op.Len

		case OpDelete:
			if pos < oldPos+op.Len {
				return newPos, nil
			}
			oldPos += op.Len

		case OpInsert:
			// Canonical form keeps a replace as insert-then-delete;
			// consume the pair together so positions inside the replaced
			// region can resolve to either side of the new text.
			if i+1 < len(cs.ops) && cs.ops[i+1].Kind == OpDelete {
				del := cs.ops[i+1]
				i++
				if pos < oldPos+del.Len {
					if assoc == AssocBefore {
						return newPos, nil
					}
					return newPos + op.Len, nil
				}
				oldPos += del.Len
			} else if pos == oldPos {
				if assoc == AssocBefore {
					return newPos, nil
				}
				return newPos + op.Len, nil
			}
			newPos += op.Len
		}
	}

	// pos == consumed length, i.e. the end of the pre-edit document.
	return newPos, nil
}
