package rtree

import "github.com/sirupsen/logrus"

// ChooseLeafLeastEnlargement implements Guttman's leaf-selection strategy.
// Starting at the root, it descends into the child entry requiring the
// least enlargement to contain the new entry's rectangle, breaking ties by
// smaller current area and then by earlier position in the node, until it
// reaches a leaf.
func ChooseLeafLeastEnlargement[T any](tree *Tree[T], entry *Entry[T]) *Node[T] {
	node := tree.root
	for !node.leaf {
		entries := node.entries
		bestIdx := 0
		bestEnlargement := entries[0].rect.Enlargement(entry.rect)
		bestArea := entries[0].rect.Area()
		for i := 1; i < len(entries); i++ {
			enlargement := entries[i].rect.Enlargement(entry.rect)
			area := entries[i].rect.Area()
			if enlargement < bestEnlargement || (enlargement == bestEnlargement && area < bestArea) {
				bestIdx = i
				bestEnlargement = enlargement
				bestArea = area
			}
		}
		tree.debugf(logrus.Fields{
			"level":       node.level,
			"chosen":      bestIdx,
			"enlargement": bestEnlargement,
			"area":        bestArea,
		}, "choose_leaf descended")
		node = entries[bestIdx].child
	}
	return node
}

// AdjustTreeGuttman ascends from node n to the root, refreshing the
// bounding rectangle of n's parent entry at every level, and propagating a
// split (if split is non-nil) by wrapping it in a new parent entry and
// recursively splitting ancestors as needed. When the split propagates all
// the way to the root, a new root is grown above both halves.
func AdjustTreeGuttman[T any](tree *Tree[T], n *Node[T], split *Node[T]) {
	for !n.IsRoot() {
		parentEntry := n.ParentEntry()
		parentNode := n.parent
		if nRect, ok := n.BoundingRect(); ok {
			parentEntry.setRect(nRect)
		}

		if split != nil {
			splitRect, _ := split.BoundingRect()
			splitEntry := &Entry[T]{rect: splitRect, child: split}
			parentNode.appendEntry(splitEntry)
			if len(parentNode.entries) > tree.maxEntries {
				split = tree.splitNode(tree, parentNode)
			} else {
				split = nil
			}
		}

		n = parentNode
	}

	if split != nil {
		tree.grow(n, split)
	}
}

// SplitNodeQuadratic implements Guttman's quadratic-cost split algorithm.
// It picks the pair of entries with the greatest "dead space" as seeds,
// then repeatedly assigns the remaining entries to whichever group needs
// least enlargement to accommodate it (picking, at each step, the entry
// with the greatest preference difference between the two groups), until
// one group would otherwise fail to reach the tree's minimum entry count,
// at which point the rest are assigned to it en masse.
func SplitNodeQuadratic[T any](tree *Tree[T], n *Node[T]) *Node[T] {
	entries := append([]*Entry[T](nil), n.entries...)

	i1, i2 := pickSeeds(entries)
	seed1, seed2 := entries[i1], entries[i2]
	remaining := make([]*Entry[T], 0, len(entries)-2)
	for i, e := range entries {
		if i != i1 && i != i2 {
			remaining = append(remaining, e)
		}
	}

	group1 := []*Entry[T]{seed1}
	group2 := []*Entry[T]{seed2}
	rect1, rect2 := seed1.rect, seed2.rect

	tree.debugf(logrus.Fields{"seed1": i1, "seed2": i2}, "split_node picked seeds")

	for len(remaining) > 0 {
		numRemaining := len(remaining)
		if len(group1)+numRemaining <= tree.minEntries {
			group1 = append(group1, remaining...)
			remaining = nil
			break
		}
		if len(group2)+numRemaining <= tree.minEntries {
			group2 = append(group2, remaining...)
			remaining = nil
			break
		}

		area1, area2 := rect1.Area(), rect2.Area()
		idx := pickNext(remaining, rect1, area1, rect2, area2)
		entry := remaining[idx]

		d1 := rect1.Enlargement(entry.rect)
		d2 := rect2.Enlargement(entry.rect)

		var toGroup1 bool
		switch {
		case d1 != d2:
			toGroup1 = d1 < d2
		case area1 != area2:
			toGroup1 = area1 < area2
		case len(group1) != len(group2):
			toGroup1 = len(group1) < len(group2)
		default:
			toGroup1 = true
		}

		if toGroup1 {
			group1 = append(group1, entry)
			rect1 = rect1.Union(entry.rect)
		} else {
			group2 = append(group2, entry)
			rect2 = rect2.Union(entry.rect)
		}

		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}

	split := newNode[T](n.level, n.leaf, nil)
	n.setEntries(group1)
	split.setEntries(group2)
	return split
}

// pickSeeds chooses the pair of entries whose combined rectangle wastes
// the most area relative to their individual areas. Ties are broken by
// first-encountered pair.
func pickSeeds[T any](entries []*Entry[T]) (int, int) {
	bestI, bestJ := 0, 1
	var bestWaste float64
	first := true
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			combined := entries[i].rect.Union(entries[j].rect)
			waste := combined.Area() - entries[i].rect.Area() - entries[j].rect.Area()
			if first || waste > bestWaste {
				bestWaste = waste
				bestI, bestJ = i, j
				first = false
			}
		}
	}
	return bestI, bestJ
}

// pickNext chooses, among the remaining entries, the one whose preference
// for one group over the other is strongest (greatest absolute difference
// in enlargement cost). Ties are broken by first-encountered entry.
func pickNext[T any](remaining []*Entry[T], rect1 Rect, area1 float64, rect2 Rect, area2 float64) int {
	bestIdx := 0
	var bestDiff float64
	first := true
	for i, e := range remaining {
		d1 := rect1.Enlargement(e.rect)
		d2 := rect2.Enlargement(e.rect)
		diff := d1 - d2
		if diff < 0 {
			diff = -diff
		}
		if first || diff > bestDiff {
			bestDiff = diff
			bestIdx = i
			first = false
		}
	}
	return bestIdx
}
