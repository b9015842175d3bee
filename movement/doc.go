// Package movement implements cursor motion primitives over a document:
// horizontal movement by grapheme cluster, vertical movement with column
// preservation, and line-relative jumps.
//
// Every motion takes a range and returns a new one. With extend set the
// anchor stays put and only the head moves; otherwise the result collapses
// to a cursor at the destination. Horizontal motion steps by grapheme
// cluster so that combining sequences and emoji are never split, while
// positions remain plain code-point offsets.
package movement
