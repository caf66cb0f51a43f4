package rtree

import (
	"testing"

	"github.com/flowindex/rtree/rect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternalNode_RemoveEntrySwapsLast(t *testing.T) {
	n := &internalNode[rect.Rect, int]{}
	children := make([]*leafNode[rect.Rect, int], 3)
	for i := range children {
		children[i] = &leafNode[rect.Rect, int]{}
		n.insertEntry(rect.New([]float64{float64(i), 0}, []float64{float64(i), 0}), children[i])
	}

	n.removeEntry(0)
	require.Len(t, n.entries, 2)
	assert.Same(t, children[2], n.entries[0].child)
	p, idx := children[2].parentInfo()
	assert.Same(t, n, p)
	assert.Equal(t, 0, idx)
}

func TestLeafNode_RemoveEntrySwapsLast(t *testing.T) {
	n := &leafNode[rect.Rect, int]{}
	for i := 0; i < 3; i++ {
		n.insertEntry(rect.New([]float64{float64(i), 0}, []float64{float64(i), 0}), i*10)
	}
	n.removeEntry(1)
	require.Len(t, n.entries, 2)
	assert.Equal(t, 20, n.entries[1].value)
}

func TestNodeHeader_NextAndPrev(t *testing.T) {
	root := &internalNode[rect.Rect, int]{}
	leaves := make([]*leafNode[rect.Rect, int], 3)
	for i := range leaves {
		leaves[i] = &leafNode[rect.Rect, int]{}
		root.insertEntry(rect.New([]float64{float64(i), 0}, []float64{float64(i), 0}), leaves[i])
	}

	assert.Nil(t, leaves[0].prev())
	assert.Same(t, leaves[1], leaves[0].next())
	assert.Same(t, leaves[2], leaves[1].next())
	assert.Nil(t, leaves[2].next())
	assert.Same(t, leaves[1], leaves[2].prev())
}

func TestCalculateBound_UnionsAllEntries(t *testing.T) {
	n := &leafNode[rect.Rect, int]{}
	n.insertEntry(rect.New([]float64{0, 0}, []float64{1, 1}), 1)
	n.insertEntry(rect.New([]float64{2, 2}, []float64{3, 3}), 2)
	got := n.calculateBound()
	assert.Equal(t, rect.New([]float64{0, 0}, []float64{3, 3}), got)
}
