package bst

// BFS returns values in level order.
func (t *Tree[T]) BFS() []T {
	out := make([]T, 0, t.size)
	if t.root == nil {
		return out
	}
	// Index-based queue avoids re-slicing on every dequeue.
	queue := []*node[T]{t.root}
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		out = append(out, cur.value)
		if cur.left != nil {
			queue = append(queue, cur.left)
		}
		if cur.right != nil {
			queue = append(queue, cur.right)
		}
	}
	return out
}

// PreOrder returns values as node, left subtree, right subtree.
func (t *Tree[T]) PreOrder() []T {
	out := make([]T, 0, t.size)
	var walk func(n *node[T])
	walk = func(n *node[T]) {
		if n == nil {
			return
		}
		out = append(out, n.value)
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)
	return out
}

// InOrder returns values in ascending order.
func (t *Tree[T]) InOrder() []T {
	out := make([]T, 0, t.size)
	var walk func(n *node[T])
	walk = func(n *node[T]) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.value)
		walk(n.right)
	}
	walk(t.root)
	return out
}

// PostOrder returns values as left subtree, right subtree, node.
func (t *Tree[T]) PostOrder() []T {
	out := make([]T, 0, t.size)
	var walk func(n *node[T])
	walk = func(n *node[T]) {
		if n == nil {
			return
		}
		walk(n.left)
		walk(n.right)
		out = append(out, n.value)
	}
	walk(t.root)
	return out
}
