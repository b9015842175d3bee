// Package selection implements the multi-range selection model riding on
// top of the changeset algebra: a Range is one cursor-with-anchor pair, a
// Selection is a non-empty ordered set of ranges with exactly one marked
// primary.
//
// Direction matters: a Range whose head sits before its anchor extends
// backward, and that direction survives mapping through edits and merging
// during normalization. Primary identity is carried by an explicit tag
// assigned at insertion, never recovered by value equality, so two
// coincidentally identical ranges cannot confuse primary tracking.
//
// Selections are immutable values: Map, Normalize, MergeWith and Dedup are
// pure functions producing a new Selection in a single pass. Incremental
// construction goes through a Builder, which appends in O(1) and runs
// exactly one normalization pass in Build.
package selection
