package Trees

// A node in the AVLTree and BSTree.
// The zero value is meaningless.
type node[T any] struct {
	v    T
	l, r nodePtr[T]
	h    uint8 // height of the subtree; only maintained by AVLTree.
}

// Pointer to a node
// nil Pointer is meaningless. A nodePtr is considered to be nil if the
// pointer is equal to the nilPtr of the tree. The value of this node has
// both node.l, node.r = itself, and h=0. v is the zero value of T
type nodePtr[T any] *node[T]

func newNilPtr[T any]() nodePtr[T] {
	z := new(node[T])
	z.l, z.r = z, z
	return z
}

// fixHeight of n from the heights of its children.
func fixHeight[T any](n nodePtr[T]) {
	n.h = max(n.l.h, n.r.h) + 1
}

// balanceOf n, left height minus right height.
func balanceOf[T any](n nodePtr[T]) int {
	return int(n.l.h) - int(n.r.h)
}

// rotateLeft performs a left rotation on nodePtr n. n is passed by reference in order
// to modify its content.
// Time: O(1); Space: O(1)
func rotateLeft[T any](n *nodePtr[T]) {
	r := *n
	rc := r.r
	r.r = rc.l
	rc.l = r
	fixHeight(r)
	fixHeight(rc)
	*n = rc
}

// rotateRight performs a right rotation on nodePtr n. n is passed by reference in order
// to modify its content.
// Time: O(1); Space: O(1)
func rotateRight[T any](n *nodePtr[T]) {
	r := *n
	lc := r.l
	r.l = lc.r
	lc.r = r
	fixHeight(r)
	fixHeight(lc)
	*n = lc
}
