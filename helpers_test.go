package rtree

import (
	"math/rand"
	"testing"

	"github.com/flowindex/rtree/rect"
	"github.com/stretchr/testify/require"
)

// randomRect mirrors the teacher's randomBox: a small, possibly-degenerate
// 2-D rectangle inside [0, maxStart+maxWidth]^2.
func randomRect(rnd *rand.Rand, maxStart, maxWidth float64) rect.Rect {
	minX := rnd.Float64() * maxStart
	minY := rnd.Float64() * maxStart
	maxX := minX + rnd.Float64()*maxWidth
	maxY := minY + rnd.Float64()*maxWidth
	return rect.New([]float64{minX, minY}, []float64{maxX, maxY})
}

// checkInvariants walks the whole tree and asserts every structural
// invariant from spec §3/§6 holds: every leaf sits at LeavesLevel, every
// node (other than the root) has an entry count in [MinEntries,
// MaxEntries], every internal entry's bound is the exact union of its
// child's entries, every child's parent back-reference points at its real
// parent and index, and the total leaf entry count matches Size().
func checkInvariants[V any](t *testing.T, tr *Tree[rect.Rect, V]) {
	t.Helper()
	if tr.root == nil {
		require.Equal(t, 0, tr.Size())
		require.Equal(t, 0, tr.LeavesLevel())
		return
	}

	leafCount := 0
	var walk func(n childNode[rect.Rect, V], depth int, parent *internalNode[rect.Rect, V], idx int)
	walk = func(n childNode[rect.Rect, V], depth int, parent *internalNode[rect.Rect, V], idx int) {
		p, i := n.parentInfo()
		require.Equal(t, parent, p, "parent back-reference mismatch at depth %d", depth)
		require.Equal(t, idx, i, "indexOnParent mismatch at depth %d", depth)

		if parent != nil {
			require.GreaterOrEqual(t, n.size(), tr.cfg.MinEntries, "node underflow at depth %d", depth)
		}
		require.LessOrEqual(t, n.size(), tr.cfg.MaxEntries, "node overflow at depth %d", depth)

		switch nd := n.(type) {
		case *leafNode[rect.Rect, V]:
			require.Equal(t, tr.leavesLevel, depth, "leaf at wrong depth")
			leafCount += len(nd.entries)
		case *internalNode[rect.Rect, V]:
			require.NotEqual(t, tr.leavesLevel, depth, "internal node at leaf depth")
			for j, e := range nd.entries {
				want := e.child.calculateBound()
				require.Equal(t, want, e.bound, "stale entry bound at depth %d entry %d", depth, j)
				walk(e.child, depth+1, nd, j)
			}
		}
	}
	walk(tr.root, 0, nil, 0)
	require.Equal(t, tr.Size(), leafCount, "entry count mismatch")
}
