package rtree

import (
	"math"

	"github.com/sirupsen/logrus"
)

// DefaultMaxEntries is a conventional maximum-entries-per-node value,
// matching the reference implementation this library's algorithms are
// ported from. New always takes maxEntries explicitly and does not fall
// back to this constant; callers pass it themselves when they want it.
const DefaultMaxEntries = 8

// Tree is an in-memory R-tree index over rectangle-bounded values of type
// T. Construct one with New; the zero value is not usable.
type Tree[T any] struct {
	root       *Node[T]
	maxEntries int
	minEntries int

	chooseLeaf ChooseLeafFunc[T]
	splitNode  SplitNodeFunc[T]
	adjustTree AdjustTreeFunc[T]

	logger *logrus.Logger
}

// Option configures a Tree at construction time.
type Option[T any] func(*Tree[T])

// WithMinEntries overrides the minimum number of entries per non-root
// node. It defaults to ceil(maxEntries/2) and must be in
// [1, ceil(maxEntries/2)].
func WithMinEntries[T any](minEntries int) Option[T] {
	return func(t *Tree[T]) {
		t.minEntries = minEntries
	}
}

// WithChooseLeaf overrides the leaf-selection strategy. The default is
// ChooseLeafLeastEnlargement.
func WithChooseLeaf[T any](fn ChooseLeafFunc[T]) Option[T] {
	return func(t *Tree[T]) {
		t.chooseLeaf = fn
	}
}

// WithSplitNode overrides the node-split strategy. The default is
// SplitNodeQuadratic.
func WithSplitNode[T any](fn SplitNodeFunc[T]) Option[T] {
	return func(t *Tree[T]) {
		t.splitNode = fn
	}
}

// WithAdjustTree overrides the tree-adjustment strategy. The default is
// AdjustTreeGuttman.
func WithAdjustTree[T any](fn AdjustTreeFunc[T]) Option[T] {
	return func(t *Tree[T]) {
		t.adjustTree = fn
	}
}

// WithLogger attaches a logger that receives Debug-level structured
// entries describing the strategies' tie-break and structural decisions.
// By default, no logger is attached and no log calls are made.
func WithLogger[T any](logger *logrus.Logger) Option[T] {
	return func(t *Tree[T]) {
		t.logger = logger
	}
}

// New constructs an empty Tree with the given maximum entries per node and
// Guttman's strategies, unless overridden by opts. It fails with
// ErrInvalidFanout if maxEntries < 2, or if the (explicit or derived)
// minEntries falls outside [1, ceil(maxEntries/2)].
func New[T any](maxEntries int, opts ...Option[T]) (*Tree[T], error) {
	t := &Tree[T]{
		maxEntries: maxEntries,
		minEntries: int(math.Ceil(float64(maxEntries) / 2)),
		chooseLeaf: ChooseLeafLeastEnlargement[T],
		splitNode:  SplitNodeQuadratic[T],
		adjustTree: AdjustTreeGuttman[T],
	}
	for _, opt := range opts {
		opt(t)
	}

	maxMinEntries := int(math.Ceil(float64(t.maxEntries) / 2))
	if t.maxEntries < 2 || t.minEntries < 1 || t.minEntries > maxMinEntries {
		return nil, ErrInvalidFanout
	}

	t.root = newNode[T](0, true, nil)
	return t, nil
}

// Root returns the tree's current root node.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// MaxEntries returns the maximum number of entries allowed per node.
func (t *Tree[T]) MaxEntries() int {
	return t.maxEntries
}

// MinEntries returns the minimum number of entries required per non-root
// node.
func (t *Tree[T]) MinEntries() int {
	return t.minEntries
}

// Insert adds data under the given bounding rectangle. It chooses a leaf
// via the tree's choose-leaf strategy, appends the new entry, splits the
// leaf if it now overflows, and adjusts bounding rectangles (and
// propagates the split, if any) up to the root. The tree is left
// unmodified if rect is malformed.
func (t *Tree[T]) Insert(data T, rect Rect) (*Entry[T], error) {
	if rect.MinX > rect.MaxX || rect.MinY > rect.MaxY {
		return nil, ErrInvalidRectangle
	}

	entry := &Entry[T]{rect: rect, data: data}
	leaf := t.chooseLeaf(t, entry)
	leaf.appendEntry(entry)

	t.debugf(logrus.Fields{"leaf_entries": len(leaf.entries)}, "inserted entry into leaf")

	var split *Node[T]
	if len(leaf.entries) > t.maxEntries {
		split = t.splitNode(t, leaf)
	}
	t.adjustTree(t, leaf, split)

	return entry, nil
}

// grow creates a new root one level above the two given nodes, which
// become its two non-leaf children.
func (t *Tree[T]) grow(n, ns *Node[T]) {
	nRect, _ := n.BoundingRect()
	nsRect, _ := ns.BoundingRect()
	root := newNode[T](n.level+1, false, nil)
	root.appendEntry(&Entry[T]{rect: nRect, child: n})
	root.appendEntry(&Entry[T]{rect: nsRect, child: ns})
	t.root = root
	t.debugf(logrus.Fields{"level": root.level}, "grew new root")
}
