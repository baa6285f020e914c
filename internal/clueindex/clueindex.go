// Package clueindex stores the clues collected during an investigation as an ordered set.
package clueindex

import "iter"

type node struct {
	key   string
	left  *node
	right *node
}

// Index is a binary search tree of clue texts ordered by byte-wise comparison. It is not rebalanced; the number of
// clues in a mansion is small. The zero value is an empty index.
type Index struct {
	root *node
	size int
}

// Insert adds clue to the index and reports whether it was new. Empty clues and clues already present are ignored.
func (idx *Index) Insert(clue string) bool {
	if clue == "" {
		return false
	}
	var inserted bool
	idx.root, inserted = insert(idx.root, clue)
	if inserted {
		idx.size++
	}
	return inserted
}

func insert(n *node, clue string) (*node, bool) {
	if n == nil {
		return &node{key: clue}, true
	}
	var inserted bool
	switch {
	case clue < n.key:
		n.left, inserted = insert(n.left, clue)
	case clue > n.key:
		n.right, inserted = insert(n.right, clue)
	}
	return n, inserted
}

// Contains reports whether clue has been collected.
func (idx *Index) Contains(clue string) bool {
	n := idx.root
	for n != nil {
		switch {
		case clue < n.key:
			n = n.left
		case clue > n.key:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Len returns the number of distinct clues.
func (idx *Index) Len() int {
	return idx.size
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (idx *Index) Height() int {
	return height(idx.root)
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// All yields the clues in ascending order.
func (idx *Index) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		inorder(idx.root, yield)
	}
}

func inorder(n *node, yield func(string) bool) bool {
	if n == nil {
		return true
	}
	return inorder(n.left, yield) && yield(n.key) && inorder(n.right, yield)
}

// InOrder returns the clues in ascending order.
func (idx *Index) InOrder() []string {
	clues := make([]string, 0, idx.size)
	for clue := range idx.All() {
		clues = append(clues, clue)
	}
	return clues
}
