package changeset

import "errors"

// Errors returned by changeset operations. All of them indicate contract
// violations by the caller rather than recoverable runtime conditions.
var (
	// ErrLengthMismatch indicates a document or changeset whose length
	// disagrees with the length the operation requires.
	ErrLengthMismatch = errors.New("changeset length mismatch")

	// ErrPositionOutOfRange indicates a mapped position outside the
	// changeset's pre-edit document length.
	ErrPositionOutOfRange = errors.New("position out of range")

	// ErrNegativeLength indicates a retain or delete with a negative length.
	ErrNegativeLength = errors.New("negative operation length")

	// ErrChangesOutOfOrder indicates changes that are unsorted or overlap.
	ErrChangesOutOfOrder = errors.New("changes out of order or overlapping")
)
