// Package bst implements an unbalanced binary search tree with the four
// standard traversals.
//
// Traversals:
//
//   - BFS:       level by level, left to right (queue).
//   - PreOrder:  node, left, right.
//   - InOrder:   left, node, right (yields ascending order).
//   - PostOrder: left, right, node.
//
// For the insertion sequence 47, 21, 76, 82, 52, 18, 27:
//
//	        47
//	       /  \
//	     21    76
//	    /  \   / \
//	   18  27 52  82
//
//	BFS       [47 21 76 18 27 52 82]
//	PreOrder  [47 21 18 27 76 52 82]
//	InOrder   [18 21 27 47 52 76 82]
//	PostOrder [18 27 21 52 82 76 47]
//
// Complexity: Insert/Contains O(h) where h is the tree height (O(n) worst
// case for sorted input); every traversal is O(n).
//
// Tree is not safe for concurrent mutation.
package bst
