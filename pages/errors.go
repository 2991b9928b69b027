package pages

import "errors"

// Page attribute resolution errors.
var (
	// ErrValueOutOfRange reports an invalid caller-supplied value,
	// such as a rotation outside {0, 90, 180, 270}.
	ErrValueOutOfRange = errors.New("pages: value out of range")

	// ErrInvalidRotation reports a stored rotation that does not
	// normalize to a multiple of 90 degrees while computing
	// rotation-aware geometry.
	ErrInvalidRotation = errors.New("pages: invalid rotation")

	// ErrBrokenStructure reports a corrupt page tree, such as a
	// Parent chain that cycles back on itself.
	ErrBrokenStructure = errors.New("pages: broken page tree")
)

// maxTreeDepth bounds every walk over live parent/child links.
// A well-formed tree is nowhere near this deep; exceeding it means
// the structure cycles.
const maxTreeDepth = 1000
