package changeset

import (
	"fmt"

	"github.com/dshills/editcore/document"
)

// Compose combines two sequential changesets into one: given first
// transforming L0 to L1 and second transforming L1 to L2, the result
// transforms L0 to L2 and applying it equals applying first then second.
// Composition is associative and is only meaningful when second was
// computed against the document state first produced.
//
// The walk runs both operation sequences in lockstep against the
// intermediate length space: retains in second pass through whatever first
// produced, deletes in second remove it (including text first inserted),
// and inserts in second are emitted verbatim.
func Compose(first, second *ChangeSet) (*ChangeSet, error) {
	if first.lenAfter != second.lenBefore {
		return nil, fmt.Errorf("compose: first ends at %d, second expects %d: %w",
			first.lenAfter, second.lenBefore, ErrLengthMismatch)
	}

	b := NewBuilder(first.lenBefore)

	var av, bv Operation
	aOK, bOK := false, false
	ai, bi := 0, 0

	for {
		if !aOK && ai < len(first.ops) {
			av = first.ops[ai]
			ai++
			aOK = true
		}
		if !bOK && bi < len(second.ops) {
			bv = second.ops[bi]
			bi++
			bOK = true
		}
		if !aOK && !bOK {
			break
		}

		// Deletes by first and inserts by second are independent of the
		// intermediate space and pass straight through.
		if aOK && av.Kind == OpDelete {
			b.Delete(av.Len)
			aOK = false
			continue
		}
		if bOK && bv.Kind == OpInsert {
			b.insertCached(bv.Text, bv.Len)
			bOK = false
			continue
		}
		if !aOK || !bOK {
			return nil, fmt.Errorf("compose: operation sequences out of step: %w", ErrLengthMismatch)
		}

		// av is retain or insert; bv is retain or delete. Consume the
		// shorter run and keep the remainder of the longer.
		n := min(av.Len, bv.Len)
		switch {
		case av.Kind == OpRetain && bv.Kind == OpRetain:
			b.Retain(n)
		case av.Kind == OpRetain && bv.Kind == OpDelete:
			b.Delete(n)
		case av.Kind == OpInsert && bv.Kind == OpRetain:
			cut := document.CharIndex(av.Text, n)
			b.insertCached(av.Text[:cut], n)
			av.Text = av.Text[cut:]
		case av.Kind == OpInsert && bv.Kind == OpDelete:
			// second deletes text first inserted: it never existed in
			// either endpoint space, so nothing is emitted.
			cut := document.CharIndex(av.Text, n)
			av.Text = av.Text[cut:]
		}
		av.Len -= n
		bv.Len -= n
		if av.Len == 0 {
			aOK = false
		}
		if bv.Len == 0 {
			bOK = false
		}
	}

	return b.Build()
}
