// Package rtree implements an in-memory, height-balanced R-tree: a
// multi-way search tree that indexes (bound, value) pairs and answers
// spatial queries over them.
//
// The tree is generic over the bound type (anything satisfying Bound,
// such as a 1-D interval or an N-D rectangle) and the value type. It uses
// the classic quadratic-split balancing algorithm and is not safe for
// concurrent use: a Tree may be read by many goroutines or written by one,
// but not both at once.
package rtree
