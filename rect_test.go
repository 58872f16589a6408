package rtree

import (
	"math"
	"testing"
)

func TestNewRectInvalid(t *testing.T) {
	tests := []struct {
		name                       string
		minX, minY, maxX, maxY float64
	}{
		{"x", 5, 0, 1, 1},
		{"y", 0, 5, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRect(tt.minX, tt.minY, tt.maxX, tt.maxY); err == nil {
				t.Fatalf("expected error for inverted rect")
			}
		})
	}
}

func TestNewRectDegenerate(t *testing.T) {
	r, err := NewRect(1, 1, 1, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Area() != 0 {
		t.Fatalf("expected zero area, got %v", r.Area())
	}
}

func TestUnionSelf(t *testing.T) {
	r := Rect{0, 0, 3, 4}
	if r.Union(r) != r {
		t.Fatalf("r.Union(r) != r")
	}
	if r.Enlargement(r) != 0 {
		t.Fatalf("r.Enlargement(r) != 0, got %v", r.Enlargement(r))
	}
}

func TestUnionCommutative(t *testing.T) {
	r := Rect{0, 0, 3, 3}
	s := Rect{2, -1, 5, 2}
	if r.Union(s) != s.Union(r) {
		t.Fatalf("union is not commutative")
	}
}

func TestUnionAssociative(t *testing.T) {
	r := Rect{0, 0, 1, 1}
	s := Rect{5, 5, 6, 6}
	u := Rect{-3, -3, -1, -1}
	lhs := r.Union(s).Union(u)
	rhs := r.Union(s.Union(u))
	if lhs != rhs {
		t.Fatalf("union is not associative: %v != %v", lhs, rhs)
	}
}

func TestIntersectsSymmetric(t *testing.T) {
	r := Rect{0, 0, 5, 2}
	s := Rect{2, 1, 4, 3}
	if r.Intersects(s) != s.Intersects(r) {
		t.Fatalf("intersects is not symmetric")
	}
}

func TestIntersectsTouchingEdge(t *testing.T) {
	r := Rect{0, 0, 5, 2}
	s := Rect{5, 0, 7, 2}
	if !r.Intersects(s) {
		t.Fatalf("expected touching rectangles to intersect")
	}
}

func TestIntersectsDisjoint(t *testing.T) {
	r := Rect{0, 0, 5, 2}
	s := Rect{1, 5, 3, 9}
	if r.Intersects(s) {
		t.Fatalf("expected disjoint rectangles to not intersect")
	}
}

func TestIntersectionNoneIffNotIntersecting(t *testing.T) {
	tests := []struct {
		name string
		r, s Rect
	}{
		{"overlapping", Rect{0, 0, 4, 4}, Rect{2, 2, 5, 5}},
		{"touching", Rect{0, 0, 5, 2}, Rect{5, 0, 7, 2}},
		{"disjoint", Rect{0, 0, 1, 1}, Rect{5, 5, 6, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := tt.r.Intersection(tt.s)
			if ok != tt.r.Intersects(tt.s) {
				t.Fatalf("intersection ok=%v disagrees with intersects=%v", ok, tt.r.Intersects(tt.s))
			}
		})
	}
}

func TestIntersectionValue(t *testing.T) {
	r := Rect{0, 0, 4, 4}
	s := Rect{2, 2, 5, 5}
	got, ok := r.Intersection(s)
	if !ok {
		t.Fatalf("expected intersection")
	}
	want := Rect{2, 2, 4, 4}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestEnlargementNeverNegative(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	s := Rect{2, 2, 4, 4}
	if e := r.Enlargement(s); e < 0 {
		t.Fatalf("enlargement of a contained rect should be 0, got %v", e)
	}
	if e := r.Enlargement(s); math.Abs(e) > 1e-9 {
		t.Fatalf("enlargement of a contained rect should be ~0, got %v", e)
	}
}
