package selection

import "errors"

// Errors returned by selection operations.
var (
	// ErrEmptySelection indicates an attempt to build a selection with no
	// ranges. A selection is a non-empty set by definition.
	ErrEmptySelection = errors.New("selection must contain at least one range")

	// ErrPrimaryOutOfRange indicates a primary index outside the range list.
	ErrPrimaryOutOfRange = errors.New("primary index out of range")
)
