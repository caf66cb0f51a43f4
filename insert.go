package rtree

// Insert adds (bound, value) to the tree (§4.F).
func (t *Tree[B, V]) Insert(bound B, value V) {
	t.placeLeafEntry(bound, value)
	t.count++
}

// placeLeafEntry does the structural work of Insert without touching
// t.count: choosing a leaf, inserting the entry, splitting and
// propagating on overflow. Insert uses it for brand-new entries; erase.go's
// orphan reinsertion uses it for entries that were detached from the tree
// structure but never removed from t.count, so routing them back through
// Insert itself would count them twice.
func (t *Tree[B, V]) placeLeafEntry(bound B, value V) {
	if t.root == nil {
		leaf := &leafNode[B, V]{}
		leaf.insertEntry(bound, value)
		t.root = leaf
		t.leavesLevel = 0
		return
	}

	leaf := t.chooseLeaf(bound)
	leaf.insertEntry(bound, value)

	var overflow childNode[B, V]
	if len(leaf.entries) > t.cfg.MaxEntries {
		overflow = splitLeaf(leaf, t.cfg.MinEntries)
	}
	t.propagateUp(leaf, overflow)
}

// chooseLeaf descends from the root to a leaf, using chooseSubtree at
// every internal level with the bound being inserted (§4.F step 2).
func (t *Tree[B, V]) chooseLeaf(bound B) *leafNode[B, V] {
	cur := t.root
	for {
		in, ok := cur.(*internalNode[B, V])
		if !ok {
			return cur.(*leafNode[B, V])
		}
		idx := chooseSubtree(in, bound)
		cur = in.entries[idx].child
	}
}

// propagateUp climbs from n to the root. At every step it tightens n's
// entry bound in its parent to the exact union of n's current children
// (§4.F step 7, required even when no split occurred), and, while a
// sibling produced by a split below still needs a home, inserts it into
// the parent (§4.F step 5), splitting the parent in turn on overflow. If
// the climb reaches the root carrying an unplaced sibling, a new root is
// grown over both halves (§4.F step 6).
func (t *Tree[B, V]) propagateUp(n, sibling childNode[B, V]) {
	for {
		parent, idx := n.parentInfo()
		if parent == nil {
			if sibling != nil {
				t.growRoot(n, sibling)
			}
			return
		}

		parent.entries[idx].bound = n.calculateBound()

		var parentOverflow childNode[B, V]
		if sibling != nil {
			parent.insertEntry(sibling.calculateBound(), sibling)
			if len(parent.entries) > t.cfg.MaxEntries {
				parentOverflow = splitInternal(parent, t.cfg.MinEntries)
			}
		}
		n, sibling = parent, parentOverflow
	}
}

// growRoot creates a new internal root over the two halves of a split
// root, incrementing leavesLevel (§4.F step 6).
func (t *Tree[B, V]) growRoot(a, b childNode[B, V]) {
	newRoot := &internalNode[B, V]{}
	newRoot.insertEntry(a.calculateBound(), a)
	newRoot.insertEntry(b.calculateBound(), b)
	t.root = newRoot
	t.leavesLevel++
}
