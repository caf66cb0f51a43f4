package rtree

// orphan is an entry in the condense-tree worklist Q (§4.G step 2): a node
// detached from the tree because it underflowed, paired with the height
// of the subtree each of its entries roots (-1 if the orphan is itself a
// leaf, whose entries are values rather than subtrees). childHeight is computed from the tree's shape at the moment the
// node was orphaned, before any root-shrinking that happens later in the
// same Erase call.
type orphan[B Bound[B], V any] struct {
	node        childNode[B, V]
	childHeight int
}

// Erase removes the entry it points at (§4.G). it must have been
// positioned by a call to Next that returned true, and must belong to
// this tree and not have already been erased; violating either is a
// contract violation (spec §7) and panics.
func (t *Tree[B, V]) Erase(it *EntryIterator[B, V]) {
	if it == nil || it.tree != t {
		panicForeignIterator()
	}
	if !it.valid() {
		panicStaleIterator()
	}

	leaf := it.leaf
	leaf.removeEntry(it.pos)
	t.count--
	it.invalidate()

	orphans := t.condenseTree(leaf)
	t.shrinkRoot()

	for _, o := range orphans {
		t.reinsertOrphan(o)
	}

	if t.count == 0 {
		t.root = nil
		t.leavesLevel = 0
	}
}

// condenseTree walks upward from leaf (inclusive), removing and queuing
// any node that dropped below MinEntries, and otherwise tightening the
// node's entry bound in its parent (§4.G step 2).
func (t *Tree[B, V]) condenseTree(leaf *leafNode[B, V]) []orphan[B, V] {
	var orphans []orphan[B, V]
	depth := t.leavesLevel
	var cur childNode[B, V] = leaf

	for {
		parent, idx := cur.parentInfo()
		if parent == nil {
			return orphans // cur is the root; exempt from MinEntries.
		}
		if cur.size() < t.cfg.MinEntries {
			parent.removeEntry(idx)
			orphans = append(orphans, orphan[B, V]{node: cur, childHeight: t.leavesLevel - depth - 1})
		} else {
			parent.entries[idx].bound = cur.calculateBound()
		}
		cur = parent
		depth--
	}
}

// shrinkRoot drops the root while it is an internal node with exactly one
// child, promoting that child and decrementing leavesLevel each time
// (§4.G step 3).
func (t *Tree[B, V]) shrinkRoot() {
	for {
		in, ok := t.root.(*internalNode[B, V])
		if !ok || len(in.entries) != 1 {
			return
		}
		only := in.entries[0].child
		only.attachTo(nil, 0)
		t.root = only
		t.leavesLevel--
	}
}

// reinsertOrphan reinserts every entry of an orphaned node and then
// discards the node itself (§4.G step 4). Leaf entries go back in through
// placeLeafEntry rather than Insert: they were never removed from
// t.count when their node was orphaned, only detached from the tree
// structure, so Insert's own t.count++ would count them twice. Internal
// entries are subtrees that must be re-attached at the depth they
// originally lived at; if the tree has since shrunk below that depth, the
// open question in design notes §9 is resolved by clamping: the subtree is
// dissolved down to its individual leaf entries and each is reinserted
// normally, which can never violate the balance invariant regardless of
// how much the tree has shrunk.
func (t *Tree[B, V]) reinsertOrphan(o orphan[B, V]) {
	switch n := o.node.(type) {
	case *leafNode[B, V]:
		for _, e := range n.entries {
			t.placeLeafEntry(e.bound, e.value)
		}
	case *internalNode[B, V]:
		for _, e := range n.entries {
			t.reinsertSubtree(e.bound, e.child, o.childHeight)
		}
	}
}

// reinsertSubtree attaches child (whose leaves lie childHeight levels
// below it) at the depth in the current tree that keeps it at
// LeavesLevel(), or dissolves it into individual leaf entries when the
// tree no longer has room for a subtree that tall.
func (t *Tree[B, V]) reinsertSubtree(bound B, child childNode[B, V], childHeight int) {
	level := t.leavesLevel - childHeight - 1
	if level < 0 || t.root == nil {
		t.reinsertFlattened(child)
		return
	}

	target := t.descendTo(level, bound)
	target.insertEntry(bound, child)

	var overflow childNode[B, V]
	if len(target.entries) > t.cfg.MaxEntries {
		overflow = splitInternal(target, t.cfg.MinEntries)
	}
	t.propagateUp(target, overflow)
}

// descendTo follows chooseSubtree for level steps from the root, returning
// the internal node reached (level 0 returns the root itself).
func (t *Tree[B, V]) descendTo(level int, bound B) *internalNode[B, V] {
	cur := t.root.(*internalNode[B, V])
	for level > 0 {
		idx := chooseSubtree(cur, bound)
		cur = cur.entries[idx].child.(*internalNode[B, V])
		level--
	}
	return cur
}

// reinsertFlattened walks n down to its leaves and reinserts every
// (bound, value) pair via placeLeafEntry (not Insert: these entries are
// already accounted for in t.count).
func (t *Tree[B, V]) reinsertFlattened(n childNode[B, V]) {
	switch nd := n.(type) {
	case *leafNode[B, V]:
		for _, e := range nd.entries {
			t.placeLeafEntry(e.bound, e.value)
		}
	case *internalNode[B, V]:
		for _, e := range nd.entries {
			t.reinsertFlattened(e.child)
		}
	}
}
