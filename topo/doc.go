// Package topo orders libraries so that nobody is installed before its
// dependencies, using Kahn's algorithm (BFS over in-degrees).
//
// Input is a dependency map: library → libraries it depends on.
//
//	Library  Depends on
//	A        -
//	B        A
//	C        A
//	D        B, C
//
// Valid orders are A B C D or A C B D; Sort returns A B C D because ready
// libraries are released in lexicographic order, making output stable.
//
// Steps:
//
//  1. Build dep → dependents adjacency and an in-degree per library.
//  2. Seed the ready set with every library of in-degree 0.
//  3. Repeatedly take the smallest ready library, emit it, and decrement
//     the in-degree of its dependents, releasing those that reach 0.
//  4. If fewer libraries were emitted than exist, the rest sit on a cycle:
//     ErrCycleDetected is returned naming them.
//
// Complexity: O((V+E) log V) time due to the ordered ready set, O(V+E) memory.
package topo
