package rtree

// ChooseLeafFunc selects the leaf node where a newly-inserted entry should
// be placed.
type ChooseLeafFunc[T any] func(tree *Tree[T], entry *Entry[T]) *Node[T]

// SplitNodeFunc splits an overflowing node, returning the newly-created
// sibling. The original node (n) is mutated in place to hold its half of
// the split; the returned node holds the other half.
type SplitNodeFunc[T any] func(tree *Tree[T], n *Node[T]) *Node[T]

// AdjustTreeFunc ascends from node n (optionally accompanied by a sibling
// ns produced by a just-completed split) to the root, refreshing bounding
// rectangles and propagating splits as necessary.
type AdjustTreeFunc[T any] func(tree *Tree[T], n *Node[T], ns *Node[T])
