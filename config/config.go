package config

import (
	"errors"
	"fmt"

	"github.com/dshills/editcore/selection"
)

// Validation errors.
var (
	ErrInvalidTabSize     = errors.New("tab size must be positive")
	ErrInvalidMergePolicy = errors.New("unknown selection merge policy")
	ErrInvalidMaxEntries  = errors.New("history max entries must not be negative")
)

// Config holds every tunable setting of the editing core.
type Config struct {
	Editor    EditorConfig    `toml:"editor"`
	History   HistoryConfig   `toml:"history"`
	Selection SelectionConfig `toml:"selection"`
	Registers RegisterConfig  `toml:"registers"`
}

// EditorConfig holds text editing settings.
type EditorConfig struct {
	// TabSize is the number of spaces a tab is equal to.
	TabSize int `toml:"tab_size"`

	// InsertSpaces inserts spaces when pressing Tab.
	InsertSpaces bool `toml:"insert_spaces"`
}

// HistoryConfig holds undo/redo settings.
type HistoryConfig struct {
	// MaxEntries bounds the undo stack; 0 means the default limit.
	MaxEntries int `toml:"max_entries"`
}

// SelectionConfig holds multi-cursor selection settings.
type SelectionConfig struct {
	// MergePolicy controls whether touching ranges merge during
	// normalization ("merge-touching" or "keep-touching").
	MergePolicy string `toml:"merge_policy"`
}

// RegisterConfig holds register settings.
type RegisterConfig struct {
	// SystemClipboard bridges the + and * registers to the OS clipboard.
	SystemClipboard bool `toml:"system_clipboard"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			TabSize:      4,
			InsertSpaces: true,
		},
		History: HistoryConfig{
			MaxEntries: 0,
		},
		Selection: SelectionConfig{
			MergePolicy: selection.MergeTouching.String(),
		},
		Registers: RegisterConfig{
			SystemClipboard: true,
		},
	}
}

// Validate checks the configuration for values the engine cannot honor.
func (c Config) Validate() error {
	if c.Editor.TabSize <= 0 {
		return fmt.Errorf("editor.tab_size %d: %w", c.Editor.TabSize, ErrInvalidTabSize)
	}
	if c.History.MaxEntries < 0 {
		return fmt.Errorf("history.max_entries %d: %w", c.History.MaxEntries, ErrInvalidMaxEntries)
	}
	if _, err := c.Selection.Policy(); err != nil {
		return err
	}
	return nil
}

// Policy resolves the configured merge policy name.
func (sc SelectionConfig) Policy() (selection.MergePolicy, error) {
	switch sc.MergePolicy {
	case "", selection.MergeTouching.String():
		return selection.MergeTouching, nil
	case selection.KeepTouching.String():
		return selection.KeepTouching, nil
	default:
		return selection.MergeTouching, fmt.Errorf("selection.merge_policy %q: %w", sc.MergePolicy, ErrInvalidMergePolicy)
	}
}
