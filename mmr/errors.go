package mmr

import "errors"

// Sentinel errors returned by the position arithmetic in this package. Higher
// layers (merklelog) wrap these with fmt.Errorf("%w: ...") to add context.
var (
	// ErrInvalidElementIndex is returned when an element index is zero, is
	// beyond the current tree size, or does not address a leaf when a leaf
	// was required.
	ErrInvalidElementIndex = errors.New("mmr: invalid element index")

	// ErrInvalidMmrSize is returned when a tree size is not the element
	// count of any sequence of Append calls - i.e. it cannot be decomposed
	// into a strictly descending sequence of mountain sizes 2^h-1.
	ErrInvalidMmrSize = errors.New("mmr: invalid mmr size")
)
