package editor

import (
	"github.com/dshills/editcore/config"
	"github.com/dshills/editcore/register"
	"github.com/dshills/editcore/selection"
)

// Option configures a Session during creation.
type Option func(*Session)

// WithContent sets the initial document content.
func WithContent(content string) Option {
	return func(s *Session) {
		s.initContent = content
	}
}

// WithConfig applies a loaded configuration: undo depth, merge policy
// and clipboard bridging. Invalid settings fall back to defaults.
func WithConfig(cfg config.Config) Option {
	return func(s *Session) {
		s.maxUndoEntries = cfg.History.MaxEntries
		if policy, err := cfg.Selection.Policy(); err == nil {
			s.policy = policy
		}
		s.systemClipboard = cfg.Registers.SystemClipboard
	}
}

// WithMergePolicy sets how touching selection ranges merge.
func WithMergePolicy(policy selection.MergePolicy) Option {
	return func(s *Session) {
		s.policy = policy
	}
}

// WithMaxUndoEntries sets the undo depth limit.
func WithMaxUndoEntries(max int) Option {
	return func(s *Session) {
		if max > 0 {
			s.maxUndoEntries = max
		}
	}
}

// WithReadOnly creates a read-only session.
// Write operations will return ErrReadOnly.
func WithReadOnly() Option {
	return func(s *Session) {
		s.readOnly = true
	}
}

// WithClipboard installs a clipboard provider for the + and * registers.
func WithClipboard(cp register.ClipboardProvider) Option {
	return func(s *Session) {
		s.clipboard = cp
	}
}
