// Package lru provides a fixed-capacity least-recently-used cache.
//
// Entries live in a hash map for O(1) lookup and in a doubly linked list
// ordered from most to least recently used. Get and Put both move the
// touched entry to the front; when Put pushes the size past capacity the
// entry at the back is evicted. Len never exceeds the capacity.
//
// A Cache is safe for concurrent use.
//
//	head ⇄ [k3] ⇄ [k1] ⇄ [k2] ⇄ tail
//	        MRU                LRU
package lru
