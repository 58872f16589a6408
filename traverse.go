package rtree

// NodeIter is a lazy, single-pass, pull-based cursor over nodes. Calling
// Next advances the cursor by exactly as much tree work as is needed to
// produce the next node; a consumer that stops calling Next early never
// pays for the rest of the traversal.
//
// condition, if set, is evaluated once per visited node and gates descent
// into that node's children only — the node itself is always a candidate
// for the next Next() result. filter, if set, additionally restricts which
// candidates are actually returned from Next, without affecting descent
// (Query/QueryNodes use the same predicate for both; Search/SearchNodes
// use only a filter, with no pruning).
type NodeIter[T any] struct {
	stack     []*Node[T]
	queue     []*Node[T]
	levelOrder bool
	condition func(*Node[T]) bool
	filter    func(*Node[T]) bool
}

func newPreOrderIter[T any](root *Node[T], condition, filter func(*Node[T]) bool) *NodeIter[T] {
	return &NodeIter[T]{stack: []*Node[T]{root}, condition: condition, filter: filter}
}

func newLevelOrderIter[T any](root *Node[T], condition, filter func(*Node[T]) bool) *NodeIter[T] {
	return &NodeIter[T]{queue: []*Node[T]{root}, levelOrder: true, condition: condition, filter: filter}
}

// Next returns the next matching node, or (nil, false) once the traversal
// is exhausted.
func (it *NodeIter[T]) Next() (*Node[T], bool) {
	for {
		node, ok := it.pop()
		if !ok {
			return nil, false
		}
		descend := it.condition == nil || it.condition(node)
		if descend && !node.leaf {
			it.push(node.entries)
		}
		if it.filter == nil || it.filter(node) {
			return node, true
		}
	}
}

func (it *NodeIter[T]) pop() (*Node[T], bool) {
	if it.levelOrder {
		if len(it.queue) == 0 {
			return nil, false
		}
		node := it.queue[0]
		it.queue = it.queue[1:]
		return node, true
	}
	if len(it.stack) == 0 {
		return nil, false
	}
	node := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	return node, true
}

func (it *NodeIter[T]) push(entries []*Entry[T]) {
	if it.levelOrder {
		for _, e := range entries {
			it.queue = append(it.queue, e.child)
		}
		return
	}
	for i := len(entries) - 1; i >= 0; i-- {
		it.stack = append(it.stack, entries[i].child)
	}
}

// Each calls fn for every remaining node the iterator would yield,
// stopping early if fn returns false. This realizes the spec's
// traverse(fn, condition) callback contract over the same lazy cursor
// Next exposes.
func (it *NodeIter[T]) Each(fn func(*Node[T]) bool) {
	for {
		node, ok := it.Next()
		if !ok || !fn(node) {
			return
		}
	}
}

// Collect drains the iterator into a slice.
func (it *NodeIter[T]) Collect() []*Node[T] {
	var out []*Node[T]
	for {
		node, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, node)
	}
}

// LeafEntryIter is a lazy, single-pass cursor over leaf entries, built on
// top of a NodeIter restricted to leaf nodes.
type LeafEntryIter[T any] struct {
	nodes     *NodeIter[T]
	current   []*Entry[T]
	pos       int
	entryPred func(*Entry[T]) bool
}

// Next returns the next matching leaf entry, or (nil, false) once
// exhausted.
func (it *LeafEntryIter[T]) Next() (*Entry[T], bool) {
	for {
		for it.pos < len(it.current) {
			e := it.current[it.pos]
			it.pos++
			if it.entryPred == nil || it.entryPred(e) {
				return e, true
			}
		}
		node, ok := it.nodes.Next()
		if !ok {
			return nil, false
		}
		it.current = node.entries
		it.pos = 0
	}
}

// Each calls fn for every remaining leaf entry, stopping early if fn
// returns false.
func (it *LeafEntryIter[T]) Each(fn func(*Entry[T]) bool) {
	for {
		e, ok := it.Next()
		if !ok || !fn(e) {
			return
		}
	}
}

// Collect drains the iterator into a slice.
func (it *LeafEntryIter[T]) Collect() []*Entry[T] {
	var out []*Entry[T]
	for {
		e, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}

// Traverse returns a pre-order iterator over every node in the tree.
// condition, if non-nil, is evaluated once per node to decide whether its
// descendants are visited; the node itself is always yielded.
func (t *Tree[T]) Traverse(condition func(*Node[T]) bool) *NodeIter[T] {
	return t.TraverseNode(t.root, condition)
}

// TraverseNode returns a pre-order iterator starting at the given node,
// which must belong to this tree.
func (t *Tree[T]) TraverseNode(node *Node[T], condition func(*Node[T]) bool) *NodeIter[T] {
	return newPreOrderIter[T](node, condition, nil)
}

// TraverseLevelOrder returns a breadth-first iterator over every node in
// the tree, with the same pruning contract as Traverse.
func (t *Tree[T]) TraverseLevelOrder(condition func(*Node[T]) bool) *NodeIter[T] {
	return newLevelOrderIter[T](t.root, condition, nil)
}

// Query returns a lazy sequence of every leaf entry whose rect intersects
// the given rectangle. Any node whose own bounding rect does not
// intersect rect is pruned: neither it nor its descendants are visited.
func (t *Tree[T]) Query(rect Rect) *LeafEntryIter[T] {
	nodeIntersects := func(n *Node[T]) bool {
		br, ok := n.BoundingRect()
		return ok && br.Intersects(rect)
	}
	nodes := newPreOrderIter[T](t.root, nodeIntersects, func(n *Node[T]) bool {
		return n.leaf && nodeIntersects(n)
	})
	return &LeafEntryIter[T]{
		nodes: nodes,
		entryPred: func(e *Entry[T]) bool {
			return e.rect.Intersects(rect)
		},
	}
}

// QueryNodes returns a lazy sequence of every node (leaf or non-leaf)
// whose bounding rect intersects the given rectangle, pruning any subtree
// whose root does not.
func (t *Tree[T]) QueryNodes(rect Rect) *NodeIter[T] {
	intersects := func(n *Node[T]) bool {
		br, ok := n.BoundingRect()
		return ok && br.Intersects(rect)
	}
	return newPreOrderIter[T](t.root, intersects, intersects)
}

// Search returns a lazy sequence of every leaf entry for which predicate
// returns true. The entire tree is visited; predicate operates on entries,
// not node covers, so there is no pruning.
func (t *Tree[T]) Search(predicate func(*Entry[T]) bool) *LeafEntryIter[T] {
	nodes := newPreOrderIter[T](t.root, nil, func(n *Node[T]) bool { return n.leaf })
	return &LeafEntryIter[T]{nodes: nodes, entryPred: predicate}
}

// SearchNodes returns a lazy sequence of every node for which predicate
// returns true. The entire tree is visited; there is no pruning.
func (t *Tree[T]) SearchNodes(predicate func(*Node[T]) bool) *NodeIter[T] {
	return newPreOrderIter[T](t.root, nil, predicate)
}

// GetLevels returns the tree's nodes grouped by level, with level 0 (the
// leaves) first and the root last.
func (t *Tree[T]) GetLevels() [][]*Node[T] {
	var levels [][]*Node[T]
	it := t.TraverseLevelOrder(nil)
	for {
		node, ok := it.Next()
		if !ok {
			break
		}
		idx := node.level
		for idx >= len(levels) {
			levels = append(levels, nil)
		}
		levels[idx] = append(levels[idx], node)
	}
	return levels
}

// GetNodes returns every node in the tree (leaf and non-leaf), in
// pre-order.
func (t *Tree[T]) GetNodes() []*Node[T] {
	return t.Traverse(nil).Collect()
}

// GetLeaves returns every leaf node in the tree, in level order.
func (t *Tree[T]) GetLeaves() []*Node[T] {
	return t.TraverseLevelOrder(nil).filterCollect(func(n *Node[T]) bool { return n.leaf })
}

// GetLeafEntries returns every leaf entry in the tree.
func (t *Tree[T]) GetLeafEntries() []*Entry[T] {
	var out []*Entry[T]
	for _, leaf := range t.GetLeaves() {
		out = append(out, leaf.entries...)
	}
	return out
}

func (it *NodeIter[T]) filterCollect(pred func(*Node[T]) bool) []*Node[T] {
	var out []*Node[T]
	for {
		node, ok := it.Next()
		if !ok {
			return out
		}
		if pred(node) {
			out = append(out, node)
		}
	}
}
