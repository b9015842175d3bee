// Package document provides code-point-addressed text primitives: the
// read-only content contract consumed by the changeset algebra, and a
// concrete immutable chunked text value implementing it.
//
// All positions and lengths in this package are measured in Unicode code
// points, never bytes. Text values are immutable; editing operations return
// new values and the original is never modified, which makes snapshots free
// and concurrent reads safe.
//
// Basic usage:
//
//	t := document.FromString("hello world")
//	t.Len()          // 11
//	t.Slice(0, 5)    // "hello"
//	t = t.Splice(5, 5, ",") // "hello, world"
package document
