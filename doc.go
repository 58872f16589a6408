// Package rtree implements an in-memory R-tree spatial index.
//
// An R-tree indexes axis-aligned rectangles so that region queries
// ("which of these rectangles overlap a given area?") can be answered
// without scanning every item. It is a height-balanced tree where every
// non-leaf entry's bounding rectangle is the union of its child's entries,
// and every leaf entry carries the caller's data.
//
// Three strategies drive the tree's structural decisions: choosing which
// leaf an inserted rectangle goes to, splitting a node that has overflowed,
// and propagating bounding-rectangle updates (and splits) back up to the
// root. The strategies are plain function values supplied to New, so
// alternative node-splitting or leaf-selection heuristics can be swapped in
// without touching the tree itself. The default set implements the
// algorithms from Guttman's 1984 paper, "R-Trees: A Dynamic Index Structure
// for Spatial Searching".
//
// Deletion, bulk loading, persistence, and concurrent mutation are not
// implemented. Callers must serialize inserts against any in-progress
// traversal on the same tree.
package rtree
