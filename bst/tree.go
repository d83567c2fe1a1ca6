package bst

import "cmp"

// node is a single tree cell.
type node[T cmp.Ordered] struct {
	value       T
	left, right *node[T]
}

// Tree is a binary search tree holding unique values.
// The zero value is an empty tree ready to use.
type Tree[T cmp.Ordered] struct {
	root *node[T]
	size int
}

// New returns an empty tree, optionally pre-filled with values in order.
func New[T cmp.Ordered](values ...T) *Tree[T] {
	t := &Tree[T]{}
	for _, v := range values {
		t.Insert(v)
	}
	return t
}

// Insert adds v to the tree. It returns false when v is already present.
func (t *Tree[T]) Insert(v T) bool {
	n := &node[T]{value: v}
	if t.root == nil {
		t.root = n
		t.size++
		return true
	}
	cur := t.root
	for {
		switch {
		case v == cur.value:
			return false
		case v < cur.value:
			if cur.left == nil {
				cur.left = n
				t.size++
				return true
			}
			cur = cur.left
		default:
			if cur.right == nil {
				cur.right = n
				t.size++
				return true
			}
			cur = cur.right
		}
	}
}

// Contains reports whether v is stored in the tree.
func (t *Tree[T]) Contains(v T) bool {
	cur := t.root
	for cur != nil {
		switch {
		case v < cur.value:
			cur = cur.left
		case v > cur.value:
			cur = cur.right
		default:
			return true
		}
	}
	return false
}

// Len returns the number of stored values.
func (t *Tree[T]) Len() int { return t.size }
