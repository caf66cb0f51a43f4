package rtree

import "math"

// quadraticSplitGroups implements the quadratic split algorithm of §4.E
// over bare bounds, returning for each index the group (0 or 1) it was
// assigned to. minEntries is the minimum size either resulting group must
// reach.
//
// Quadratic split's tie-breaks are load-bearing (design notes §9: degenerate
// zero-area bounds make ties common, and the result must be deterministic
// under a seeded RNG upstream). This implementation resolves them as a
// strict total order: the candidate entry to place next is chosen by
// largest d(E), ties broken by lowest index; the group it is placed into is
// chosen by smaller enlargement, ties broken by smaller group area, then by
// smaller current group size, then by placing into group 0.
func quadraticSplitGroups[B Bound[B]](bounds []B, minEntries int) []int {
	n := len(bounds)
	group := make([]int, n)
	for i := range group {
		group[i] = -1
	}

	// 1. Pick seeds: the pair maximizing wasted area if merged together.
	seedI, seedJ := 0, 1
	worst := math.Inf(-1)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := bounds[i].Merge(bounds[j]).Area() - bounds[i].Area() - bounds[j].Area()
			if d > worst {
				worst = d
				seedI, seedJ = i, j
			}
		}
	}
	group[seedI] = 0
	group[seedJ] = 1
	boundA, boundB := bounds[seedI], bounds[seedJ]
	countA, countB := 1, 1
	remaining := n - 2

	// 2. Distribute the rest.
	for remaining > 0 {
		if countA+remaining == minEntries {
			assignRemaining(group, bounds, 0, &boundA, &countA)
			break
		}
		if countB+remaining == minEntries {
			assignRemaining(group, bounds, 1, &boundB, &countB)
			break
		}

		bestIdx := -1
		bestD := math.Inf(-1)
		for i := 0; i < n; i++ {
			if group[i] != -1 {
				continue
			}
			enlA := enlargement(boundA, bounds[i])
			enlB := enlargement(boundB, bounds[i])
			d := math.Abs(enlA - enlB)
			if d > bestD {
				bestD, bestIdx = d, i
			}
		}

		enlA := enlargement(boundA, bounds[bestIdx])
		enlB := enlargement(boundB, bounds[bestIdx])
		var toA bool
		switch {
		case enlA < enlB:
			toA = true
		case enlB < enlA:
			toA = false
		case boundA.Area() < boundB.Area():
			toA = true
		case boundB.Area() < boundA.Area():
			toA = false
		case countA <= countB:
			toA = true
		default:
			toA = false
		}

		if toA {
			group[bestIdx] = 0
			boundA = boundA.Merge(bounds[bestIdx])
			countA++
		} else {
			group[bestIdx] = 1
			boundB = boundB.Merge(bounds[bestIdx])
			countB++
		}
		remaining--
	}

	return group
}

func assignRemaining[B Bound[B]](group []int, bounds []B, g int, bound *B, count *int) {
	for i := range group {
		if group[i] == -1 {
			group[i] = g
			*bound = (*bound).Merge(bounds[i])
			*count = *count + 1
		}
	}
}

// splitLeaf partitions an overfull leaf (M+1 entries) into two leaves per
// quadraticSplitGroups, mutating n in place to hold the first group and
// returning a brand-new node holding the second (§4.E).
func splitLeaf[B Bound[B], V any](n *leafNode[B, V], minEntries int) *leafNode[B, V] {
	bounds := make([]B, len(n.entries))
	for i, e := range n.entries {
		bounds[i] = e.bound
	}
	groups := quadraticSplitGroups(bounds, minEntries)

	var kept, moved []leafEntry[B, V]
	for i, e := range n.entries {
		if groups[i] == 0 {
			kept = append(kept, e)
		} else {
			moved = append(moved, e)
		}
	}
	n.entries = kept
	return &leafNode[B, V]{entries: moved}
}

// splitInternal is splitLeaf's counterpart for internal nodes. Because
// internal entries carry a child back-reference, every surviving and every
// moved child's index_on_parent must be refreshed to match its new
// position (§4.B invariant on swap/reshuffle).
func splitInternal[B Bound[B], V any](n *internalNode[B, V], minEntries int) *internalNode[B, V] {
	bounds := make([]B, len(n.entries))
	for i, e := range n.entries {
		bounds[i] = e.bound
	}
	groups := quadraticSplitGroups(bounds, minEntries)

	var kept, moved []internalEntry[B, V]
	for i, e := range n.entries {
		if groups[i] == 0 {
			kept = append(kept, e)
		} else {
			moved = append(moved, e)
		}
	}

	n.entries = kept
	for i := range n.entries {
		n.entries[i].child.attachTo(n, i)
	}

	newNode := &internalNode[B, V]{entries: moved}
	for i := range newNode.entries {
		newNode.entries[i].child.attachTo(newNode, i)
	}
	return newNode
}
