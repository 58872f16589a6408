package rtree

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Rect is an axis-aligned bounding rectangle. It is immutable once
// constructed; every operation on it returns a new value.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewRect constructs a Rect, validating that min <= max on both axes. A
// degenerate rectangle (zero width or height) is permitted.
func NewRect(minX, minY, maxX, maxY float64) (Rect, error) {
	if minX > maxX || minY > maxY {
		return Rect{}, errors.WithMessagef(ErrInvalidRectangle,
			"rect min (%v, %v) exceeds max (%v, %v)", minX, minY, maxX, maxY)
	}
	return Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}, nil
}

// Area returns the rectangle's area.
func (r Rect) Area() float64 {
	return (r.MaxX - r.MinX) * (r.MaxY - r.MinY)
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, other.MinX),
		MinY: math.Min(r.MinY, other.MinY),
		MaxX: math.Max(r.MaxX, other.MaxX),
		MaxY: math.Max(r.MaxY, other.MaxY),
	}
}

// Enlargement returns how much r's area would have to grow to contain
// other. It is never negative.
func (r Rect) Enlargement(other Rect) float64 {
	return r.Union(other).Area() - r.Area()
}

// Intersects reports whether r and other overlap. Rectangles that merely
// touch along an edge are considered to intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.MinX <= other.MaxX && r.MaxX >= other.MinX &&
		r.MinY <= other.MaxY && r.MaxY >= other.MinY
}

// Intersection returns the overlapping region of r and other. The second
// return value is false iff Intersects is false, in which case the first
// return value is the zero Rect.
func (r Rect) Intersection(other Rect) (Rect, bool) {
	if !r.Intersects(other) {
		return Rect{}, false
	}
	return Rect{
		MinX: math.Max(r.MinX, other.MinX),
		MinY: math.Max(r.MinY, other.MinY),
		MaxX: math.Min(r.MaxX, other.MaxX),
		MaxY: math.Min(r.MaxY, other.MaxY),
	}, true
}

// unionAll returns the smallest rectangle containing every rect in rects.
// The second return value is false iff rects is empty.
func unionAll(rects []Rect) (Rect, bool) {
	if len(rects) == 0 {
		return Rect{}, false
	}
	result := rects[0]
	for _, r := range rects[1:] {
		result = result.Union(r)
	}
	return result, true
}
