package rtree

// SearchIntersects invokes sink on every (bound, value) entry whose bound
// intersects region. Order is unspecified (spec §4.G "Searching").
func (t *Tree[B, V]) SearchIntersects(region B, sink func(bound B, value V)) {
	if t.root == nil {
		return
	}
	searchIntersects(t.root, region, sink)
}

func searchIntersects[B Bound[B], V any](n childNode[B, V], region B, sink func(B, V)) {
	switch nd := n.(type) {
	case *leafNode[B, V]:
		for _, e := range nd.entries {
			if e.bound.Intersects(region) {
				sink(e.bound, e.value)
			}
		}
	case *internalNode[B, V]:
		for _, e := range nd.entries {
			if e.bound.Intersects(region) {
				searchIntersects(e.child, region, sink)
			}
		}
	}
}

// SearchContains invokes sink on every (bound, value) entry whose bound
// lies entirely within region. Descent still prunes on Intersects: any
// subtree whose bound doesn't even overlap region cannot contain an entry
// inside it either.
func (t *Tree[B, V]) SearchContains(region B, sink func(bound B, value V)) {
	if t.root == nil {
		return
	}
	searchContains(t.root, region, sink)
}

func searchContains[B Bound[B], V any](n childNode[B, V], region B, sink func(B, V)) {
	switch nd := n.(type) {
	case *leafNode[B, V]:
		for _, e := range nd.entries {
			if region.Contains(e.bound) {
				sink(e.bound, e.value)
			}
		}
	case *internalNode[B, V]:
		for _, e := range nd.entries {
			if e.bound.Intersects(region) {
				searchContains(e.child, region, sink)
			}
		}
	}
}
