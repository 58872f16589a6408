package rtree

import "github.com/cockroachdb/errors"

// ErrInvalidRectangle is returned when a rectangle's bounds are malformed,
// i.e. MinX > MaxX or MinY > MaxY.
var ErrInvalidRectangle = errors.New("rtree: invalid rectangle")

// ErrInvalidFanout is returned by New when maxEntries or minEntries fall
// outside the constraints in spec: maxEntries must be at least 2, and
// minEntries must be in [1, ceil(maxEntries/2)].
var ErrInvalidFanout = errors.New("rtree: invalid fanout")

// strategyContractViolation panics with an assertion failure. Strategy
// misbehavior (a custom choose-leaf/split-node/adjust-tree strategy that
// breaks the tree's structural invariants) is a programmer error: it is
// not reported through the normal error return path because callers are
// not expected to catch and continue after it.
func strategyContractViolation(format string, args ...interface{}) {
	panic(errors.AssertionFailedf(format, args...))
}
