// Package changeset implements the edit transaction algebra: an ordered
// sequence of retain/insert/delete operations describing the transformation
// of a document from one length to another.
//
// A ChangeSet is immutable once built. It is produced by a Builder that
// accepts operations in position order and keeps the representation
// canonical (adjacent same-kind operations merged, zero-length operations
// dropped, inserts ordered before deletes at a replace point). Canonical
// form is what makes Compose and Invert correct and lets tests compare
// change sets by equality.
//
// The algebra is pure data transformation. Nothing here blocks, suspends,
// or performs I/O, and all failures are deterministic functions of the
// inputs. ChangeSets hold no reference into document storage; Apply and
// Invert consume a read-only document.Content and the insert text they
// carry is owned.
//
// Core laws:
//
//	inv, _ := cs.Invert(doc)          // inv undoes cs
//	ab, _ := changeset.Compose(a, b)  // applying ab == applying a then b
//	cs.MapPos(p, assoc)               // pre-edit position → post-edit
//
// Every operation carries code-point lengths; an Insert caches its length
// at construction and it is never recomputed by re-scanning the text.
package changeset
