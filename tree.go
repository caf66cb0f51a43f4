package rtree

// Tree is an in-memory R-tree mapping bounds of type B to values of type
// V. Its zero value is not ready to use; construct one with New. A Tree
// may be read by many goroutines or written by one, but mixing reads and
// writes concurrently is undefined (spec §5).
type Tree[B Bound[B], V any] struct {
	cfg Config

	// root is nil for an empty tree. Otherwise it is either a *leafNode
	// (when leavesLevel == 0, the root is itself a leaf) or an
	// *internalNode.
	root childNode[B, V]

	// leavesLevel is the depth at which leaves sit; 0 when the root is a
	// leaf.
	leavesLevel int

	// count is the total number of (bound, value) entries across all
	// leaves.
	count int
}

// New constructs an empty Tree with the given options (see WithMaxEntries,
// WithMinEntries). With no options it uses DefaultConfig.
func New[B Bound[B], V any](opts ...Option) (*Tree[B, V], error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &Tree[B, V]{cfg: cfg}, nil
}

// LeavesLevel returns the depth at which leaves sit; 0 when the root is
// itself a leaf (including when the tree is empty).
func (t *Tree[B, V]) LeavesLevel() int { return t.leavesLevel }

// Size returns the total number of (bound, value) entries in the tree.
func (t *Tree[B, V]) Size() int { return t.count }

// Empty reports whether the tree holds no entries.
func (t *Tree[B, V]) Empty() bool { return t.count == 0 }

// Clear removes every entry, leaving an empty tree with LeavesLevel() == 0.
func (t *Tree[B, V]) Clear() {
	t.root = nil
	t.leavesLevel = 0
	t.count = 0
}

// Clone returns an independent, equal copy of the tree: every node and
// entry is deep-copied, and mutating the clone never affects the original
// or vice versa (spec §5).
func (t *Tree[B, V]) Clone() *Tree[B, V] {
	clone := &Tree[B, V]{cfg: t.cfg, leavesLevel: t.leavesLevel, count: t.count}
	if t.root != nil {
		clone.root = cloneNode[B, V](t.root, nil, 0)
	}
	return clone
}

func cloneNode[B Bound[B], V any](n childNode[B, V], parent *internalNode[B, V], idx int) childNode[B, V] {
	switch orig := n.(type) {
	case *leafNode[B, V]:
		c := &leafNode[B, V]{entries: append([]leafEntry[B, V](nil), orig.entries...)}
		c.attachTo(parent, idx)
		return c
	case *internalNode[B, V]:
		c := &internalNode[B, V]{entries: make([]internalEntry[B, V], len(orig.entries))}
		c.attachTo(parent, idx)
		for i, e := range orig.entries {
			c.entries[i] = internalEntry[B, V]{bound: e.bound, child: cloneNode[B, V](e.child, c, i)}
		}
		return c
	default:
		panic("rtree: unreachable node kind")
	}
}
