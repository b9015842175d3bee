package selection

import "sort"

// taggedRange pairs a range with its insertion identity. The tag is what
// primary tracking follows through sorting and merging; two ranges with
// identical bounds still have distinct tags.
type taggedRange struct {
	r   Range
	tag int
}

// Builder accumulates candidate ranges without normalizing after each
// insertion, then performs exactly one normalization pass in Build.
// Per-insertion normalization is quadratic under "split into N cursors"
// construction; the builder keeps appends O(1).
//
// The most recently added range is primary unless AddPrimary pinned one
// explicitly. The pre-Build range list preserves insertion order and is
// observable through Len and At for diagnostics.
type Builder struct {
	ranges     []taggedRange
	policy     MergePolicy
	primaryTag int
	pinned     bool
}

// NewBuilder creates a builder with the given merge policy.
func NewBuilder(policy MergePolicy) *Builder {
	return &Builder{policy: policy, primaryTag: -1}
}

// newBuilderFrom seeds a builder with a selection's ranges, policy and
// primary, for operations defined as build-then-normalize.
func newBuilderFrom(s Selection) *Builder {
	b := NewBuilder(s.policy)
	for i, r := range s.ranges {
		if i == s.primary {
			b.AddPrimary(r)
		} else {
			b.Add(r)
		}
	}
	return b
}

// Add appends a range. Unless a primary was pinned, the newest range is
// the primary.
func (b *Builder) Add(r Range) {
	tag := len(b.ranges)
	b.ranges = append(b.ranges, taggedRange{r: r, tag: tag})
	if !b.pinned {
		b.primaryTag = tag
	}
}

// AddPrimary appends a range and pins it as the primary.
func (b *Builder) AddPrimary(r Range) {
	tag := len(b.ranges)
	b.ranges = append(b.ranges, taggedRange{r: r, tag: tag})
	b.primaryTag = tag
	b.pinned = true
}

// Len returns the number of ranges added so far.
func (b *Builder) Len() int {
	return len(b.ranges)
}

// At returns the i-th added range in insertion order.
func (b *Builder) At(i int) Range {
	return b.ranges[i].r
}

// Build runs the single normalization pass and returns the selection.
// It fails only if no ranges were added.
func (b *Builder) Build() (Selection, error) {
	if len(b.ranges) == 0 {
		return Selection{}, ErrEmptySelection
	}

	work := make([]taggedRange, len(b.ranges))
	copy(work, b.ranges)

	// Sort by span start; ties resolve by insertion identity so the
	// pass is deterministic for duplicate spans.
	sort.SliceStable(work, func(i, j int) bool {
		si, sj := work[i].r.Start(), work[j].r.Start()
		if si != sj {
			return si < sj
		}
		return work[i].tag < work[j].tag
	})

	// Single pass producing a new sequence; ranges are never spliced
	// mid-iteration.
	merged := make([]taggedRange, 0, len(work))
	merged = append(merged, work[0])
	for _, next := range work[1:] {
		last := merged[len(merged)-1]
		overlaps := next.r.Start() < last.r.End()
		touches := next.r.Start() == last.r.End()
		if overlaps || (touches && b.policy == MergeTouching) {
			merged[len(merged)-1] = b.merge(last, next)
			continue
		}
		merged = append(merged, next)
	}

	sel := Selection{
		ranges:  make([]Range, len(merged)),
		policy:  b.policy,
		primary: 0,
	}
	for i, tr := range merged {
		sel.ranges[i] = tr.r
		if tr.tag == b.primaryTag {
			sel.primary = i
		}
	}
	return sel, nil
}

// merge unions two ranges. The union's direction comes from whichever of
// the two is (or carries) the primary; if neither, from the first. The
// primary's tag survives the merge so its identity outlives absorption.
func (b *Builder) merge(first, next taggedRange) taggedRange {
	start := first.r.Start()
	if next.r.Start() < start {
		start = next.r.Start()
	}
	end := first.r.End()
	if next.r.End() > end {
		end = next.r.End()
	}

	source := first
	if next.tag == b.primaryTag && first.tag != b.primaryTag {
		source = next
	}

	out := taggedRange{
		r:   Range{Anchor: start, Head: end},
		tag: first.tag,
	}
	if next.tag == b.primaryTag {
		out.tag = b.primaryTag
	}
	if source.r.IsBackward() {
		out.r = out.r.Flip()
	}
	return out
}
