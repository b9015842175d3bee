// Package editor ties the core together: a Session owns a document, the
// selection over it, undo history and registers, and exposes the editing
// operations a front end drives. Every edit is a changeset; the session
// applies it, maps the selection through it, and records it with its
// inverse for undo.
//
// Sessions are revision counted. Each applied edit bumps the revision,
// and ApplyAt rejects changesets built against a revision other than the
// current one, so asynchronous producers cannot corrupt the document.
//
// All methods are safe for concurrent use.
package editor
