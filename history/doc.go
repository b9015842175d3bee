// Package history manages undo/redo state as pairs of changesets: each
// recorded edit carries the forward changeset, its precomputed inverse,
// and the selections in effect before and after the edit. Undo and redo
// hand entries back to the caller, which owns applying them to the
// document; the history itself never touches text.
//
// Consecutive edits can be grouped into a single undo unit. A group is
// collapsed by composing its changesets, so a burst of keystrokes undoes
// in one step. Checkpoints mark positions in the undo stack that can be
// rewound to later, for example around a macro replay.
//
// All methods are safe for concurrent use.
package history
