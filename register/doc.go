// Package register implements named text registers for yank, delete and
// paste. A register holds one value per selection range, so multi-cursor
// yanks paste back one value per cursor.
//
// The register set follows the usual conventions: named registers a-z
// with uppercase names appending, numbered registers 1-9 rotating delete
// history, register 0 holding the last yank, the unnamed register "
// receiving every yank and delete, the black hole register _ discarding
// writes, and the clipboard registers + and * bridging to the system
// clipboard through a pluggable provider.
//
// All methods are safe for concurrent use.
package register
