package rtree

// Bound is the geometry trait a tree's key type must satisfy (the
// "collaborator contract" every caller supplies). Implementations must be
// pure and have value semantics:
//
//   - Merge returns the smallest bound containing both operands; it must be
//     associative, commutative and idempotent.
//   - Area returns a non-negative scalar used as the ordering metric for
//     splitting and choosing a subtree; it may be zero for a degenerate
//     (point or line) bound.
//   - Intersects is symmetric.
//   - Contains is reflexive, and x.Merge(y).Contains(x) must hold for any
//     x and y.
//
// The interval and rect packages are concrete implementations (the
// package's own tests use rect); neither is part of the tree's own scope.
type Bound[B any] interface {
	Merge(other B) B
	Area() float64
	Intersects(other B) bool
	Contains(other B) bool
}
