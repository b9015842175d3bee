package selection

import (
	"fmt"
	"strings"

	"github.com/dshills/editcore/changeset"
)

// MergePolicy controls whether normalization merges ranges whose spans
// touch without overlapping. Overlapping ranges always merge. The policy
// is fixed when a selection is first built and carried by every value
// derived from it; multi-cursor editing at adjacent positions behaves
// observably differently under the two policies.
type MergePolicy uint8

const (
	// MergeTouching merges ranges that share an endpoint.
	MergeTouching MergePolicy = iota

	// KeepTouching keeps touching ranges separate; only overlaps merge.
	KeepTouching
)

// String returns the policy name.
func (p MergePolicy) String() string {
	switch p {
	case MergeTouching:
		return "merge-touching"
	case KeepTouching:
		return "keep-touching"
	default:
		return "unknown"
	}
}

// Selection is a non-empty ordered set of ranges with exactly one marked
// primary. A normalized selection is sorted by span start and contains no
// overlaps (nor touches, under MergeTouching). Selection is an immutable
// value: every operation returns a new Selection.
type Selection struct {
	ranges  []Range
	primary int
	policy  MergePolicy
}

// Single creates a one-range selection, which is trivially normalized.
func Single(r Range) Selection {
	return Selection{ranges: []Range{r}, policy: MergeTouching}
}

// SinglePoint creates a selection holding one bare cursor.
func SinglePoint(pos int) Selection {
	return Single(Point(pos))
}

// FromRanges builds a normalized selection from ranges with the given
// primary index and policy. It fails on an empty range list or an
// out-of-range primary index.
func FromRanges(policy MergePolicy, primary int, ranges ...Range) (Selection, error) {
	if len(ranges) == 0 {
		return Selection{}, ErrEmptySelection
	}
	if primary < 0 || primary >= len(ranges) {
		return Selection{}, fmt.Errorf("primary %d of %d ranges: %w", primary, len(ranges), ErrPrimaryOutOfRange)
	}
	b := NewBuilder(policy)
	for i, r := range ranges {
		if i == primary {
			b.AddPrimary(r)
		} else {
			b.Add(r)
		}
	}
	return b.Build()
}

// Count returns the number of ranges.
func (s Selection) Count() int {
	return len(s.ranges)
}

// Ranges returns a copy of the range list in position order.
func (s Selection) Ranges() []Range {
	out := make([]Range, len(s.ranges))
	copy(out, s.ranges)
	return out
}

// Get returns the range at index i.
func (s Selection) Get(i int) Range {
	return s.ranges[i]
}

// Primary returns the primary range.
func (s Selection) Primary() Range {
	return s.ranges[s.primary]
}

// PrimaryIndex returns the index of the primary range.
func (s Selection) PrimaryIndex() int {
	return s.primary
}

// Policy returns the selection's merge policy.
func (s Selection) Policy() MergePolicy {
	return s.policy
}

// Normalize returns the canonical form: ranges sorted by span start,
// overlapping (and, policy permitting, touching) ranges merged, primary
// identity preserved through any merge. Normalization is idempotent.
func (s Selection) Normalize() Selection {
	b := newBuilderFrom(s)
	out, _ := b.Build() // s is non-empty, so Build cannot fail
	return out
}

// Map translates every range through a changeset and normalizes the
// result. Each range's anchor and head are mapped independently.
func (s Selection) Map(cs *changeset.ChangeSet, assoc changeset.Assoc) (Selection, error) {
	b := NewBuilder(s.policy)
	for i, r := range s.ranges {
		mapped, err := r.Map(cs, assoc)
		if err != nil {
			return Selection{}, fmt.Errorf("map range %d: %w", i, err)
		}
		if i == s.primary {
			b.AddPrimary(mapped)
		} else {
			b.Add(mapped)
		}
	}
	return b.Build()
}

// MergeWith combines two selections into one normalized selection. The
// receiver's policy and primary win.
func (s Selection) MergeWith(other Selection) Selection {
	b := NewBuilder(s.policy)
	for i, r := range s.ranges {
		if i == s.primary {
			b.AddPrimary(r)
		} else {
			b.Add(r)
		}
	}
	for _, r := range other.ranges {
		b.Add(r)
	}
	out, _ := b.Build()
	return out
}

// Dedup removes ranges identical to their predecessor, keeping the
// primary's identity even when its duplicate is the one dropped. The
// result is normalized first, so duplicates are always adjacent.
func (s Selection) Dedup() Selection {
	n := s.Normalize()
	out := Selection{ranges: n.ranges[:1], primary: 0, policy: n.policy}
	for i := 1; i < len(n.ranges); i++ {
		r := n.ranges[i]
		if r.Equal(out.ranges[len(out.ranges)-1]) {
			if i == n.primary {
				out.primary = len(out.ranges) - 1
			}
			continue
		}
		out.ranges = append(out.ranges, r)
		if i == n.primary {
			out.primary = len(out.ranges) - 1
		}
	}
	return out
}

// Contains returns true if any range's span contains pos.
func (s Selection) Contains(pos int) bool {
	for _, r := range s.ranges {
		if r.Contains(pos) {
			return true
		}
	}
	return false
}

// Equal returns true if two selections have identical ranges, primary
// index and policy.
func (s Selection) Equal(other Selection) bool {
	if len(s.ranges) != len(other.ranges) || s.primary != other.primary || s.policy != other.policy {
		return false
	}
	for i, r := range s.ranges {
		if !r.Equal(other.ranges[i]) {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the selection.
func (s Selection) String() string {
	parts := make([]string, len(s.ranges))
	for i, r := range s.ranges {
		if i == s.primary {
			parts[i] = "*" + r.String()
		} else {
			parts[i] = r.String()
		}
	}
	return fmt.Sprintf("Selection(%s)", strings.Join(parts, " "))
}
