package register

import "github.com/atotto/clipboard"

// ClipboardProvider abstracts system clipboard access.
type ClipboardProvider interface {
	// Get returns the current clipboard content.
	Get() (string, error)

	// Set sets the clipboard content.
	Set(content string) error
}

// SystemClipboard is a ClipboardProvider backed by the OS clipboard.
type SystemClipboard struct{}

// Get reads the system clipboard.
func (SystemClipboard) Get() (string, error) {
	return clipboard.ReadAll()
}

// Set writes the system clipboard.
func (SystemClipboard) Set(content string) error {
	return clipboard.WriteAll(content)
}

// Available reports whether a system clipboard is usable on this host.
func Available() bool {
	return !clipboard.Unsupported
}
