package diagram

import "errors"

// Common errors
var (
	// ErrInvalidAnchor is returned when an anchor index is out of range for
	// the template it is applied to. It is never silently clamped.
	ErrInvalidAnchor = errors.New("anchor index out of range")

	// ErrUnresolvedReference is returned when a connection names a shape id
	// that does not exist in the diagram. During import the offending
	// connection is skipped and the rest of the document is reconstructed.
	ErrUnresolvedReference = errors.New("connection references unknown shape id")

	// ErrMissingContainer is returned when the surface an editor or palette
	// must mount into does not exist. Nothing useful can proceed, so it is
	// raised at construction time.
	ErrMissingContainer = errors.New("missing container")
)
