package mog

import "errors"

// All failures are recoverable typed values; callers check them with
// errors.Is and leave their own state untouched on failure.
var (
	// ErrInvalidPattern reports a column pattern outside 0–15. Defensive:
	// not reachable through the session API.
	ErrInvalidPattern = errors.New("mog: column pattern out of range")
	// ErrInvalidPoint reports a point index outside 0–23.
	ErrInvalidPoint = errors.New("mog: point out of range")
	// ErrAmbiguousInput reports an octad completion with fewer than 5
	// points: S(5,8,24) pins down an octad only from 5 points on.
	ErrAmbiguousInput = errors.New("mog: fewer than 5 points, octad underdetermined")
	// ErrNoCompletion reports a point set no octad extends.
	ErrNoCompletion = errors.New("mog: no octad contains the given points")
	// ErrNotTetrad reports a sextet completion whose input is not 4 points.
	ErrNotTetrad = errors.New("mog: sextet completion needs exactly 4 points")
	// ErrUnknownGenerator reports an unrecognized generator name.
	ErrUnknownGenerator = errors.New("mog: unknown generator")
)
