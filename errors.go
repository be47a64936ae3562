package linebreak

import "errors"

// Sentinel errors describing a malformed item stream or an
// unsatisfiable break request. Test with errors.Is.
var (
	// ErrEmptyItems is returned when items has no elements.
	ErrEmptyItems = errors.New("linebreak: items must not be empty")
	// ErrInvalidStart is returned when items does not begin with a Box.
	ErrInvalidStart = errors.New("linebreak: items must start with a Box")
	// ErrInvalidTerminator is returned when items does not end with a
	// forced Penalty (p = -Inf).
	ErrInvalidTerminator = errors.New("linebreak: items must end with a forced Penalty (p = -Inf)")
	// ErrNoSolution is returned when the active set empties without a
	// forced terminator to fall back on — a caller contract violation
	// that validate should normally catch first.
	ErrNoSolution = errors.New("linebreak: no feasible line decomposition")
)
