package lru

// node is one cache entry in the recency list.
type node[K comparable, V any] struct {
	key        K
	value      V
	prev, next *node[K, V]
}

// list is a doubly linked list with sentinel head and tail, so insertion
// and removal never branch on empty or boundary cases.
type list[K comparable, V any] struct {
	head, tail *node[K, V]
}

func newList[K comparable, V any]() *list[K, V] {
	l := &list[K, V]{head: &node[K, V]{}, tail: &node[K, V]{}}
	l.head.next = l.tail
	l.tail.prev = l.head
	return l
}

// pushFront links n right after the head sentinel.
func (l *list[K, V]) pushFront(n *node[K, V]) {
	n.prev = l.head
	n.next = l.head.next
	l.head.next.prev = n
	l.head.next = n
}

// remove unlinks n.
func (l *list[K, V]) remove(n *node[K, V]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next = nil, nil
}

func (l *list[K, V]) moveToFront(n *node[K, V]) {
	l.remove(n)
	l.pushFront(n)
}

// back returns the least recently used node, or nil if empty.
func (l *list[K, V]) back() *node[K, V] {
	if l.tail.prev == l.head {
		return nil
	}
	return l.tail.prev
}
