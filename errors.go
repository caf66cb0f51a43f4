package rtree

import "fmt"

// Contract violations (spec §7) are fail-fast: there is no recovery path,
// so the tree panics rather than returning an error. This mirrors the
// teacher's own findParent, which panics with "could not find parent" on
// the equivalent corrupted-state condition.

func panicForeignIterator() {
	panic("rtree: iterator does not belong to this tree")
}

func panicStaleIterator() {
	panic("rtree: iterator is stale or already erased")
}

func panicDepthOutOfRange(depth, leavesLevel int) {
	panic(fmt.Sprintf("rtree: depth %d out of range [0, %d]", depth, leavesLevel))
}
