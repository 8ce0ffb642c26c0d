package domain

import "errors"

// Validation and fusion errors. All failures surface immediately to the
// caller wrapped with context; test with errors.Is.
var (
	// ErrEmptyDistribution is returned when a mass assignment has no entries.
	ErrEmptyDistribution = errors.New("belief mass has no entries")

	// ErrEmptyFocalSet is returned when an assignment puts mass on the
	// empty set. The combination rules treat an empty intersection as
	// conflict, so the empty set can never be focal.
	ErrEmptyFocalSet = errors.New("focal set is empty")

	// ErrMassOutOfRange is returned when a mass is negative or exceeds
	// 1 plus the tolerance.
	ErrMassOutOfRange = errors.New("mass out of range")

	// ErrFocalSetNotInFrame is returned when a focal set is not a subset
	// of the frame of discernment.
	ErrFocalSetNotInFrame = errors.New("focal set not in frame")

	// ErrNotNormalized is returned when masses sum to something further
	// than the tolerance from 1.
	ErrNotNormalized = errors.New("masses do not sum to 1")

	// ErrIncompatibleFrames is returned when two belief masses defined
	// over different frames are compared or fused.
	ErrIncompatibleFrames = errors.New("belief masses have different frames")

	// ErrTotalConflict is returned by Dempster's rule when the combined
	// evidence is fully contradictory. Callers should fall back to a
	// conflict-tolerant rule (Yager, DuboisPrade, Average).
	ErrTotalConflict = errors.New("total conflict between sources")

	// ErrNoSources is returned when multi-source fusion is invoked with
	// no inputs.
	ErrNoSources = errors.New("no belief masses to fuse")
)
