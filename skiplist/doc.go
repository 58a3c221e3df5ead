// Package skiplist implements an append-only chain of nodes, each carrying
// a bounded set of cryptographic back-pointers ("fingers") to earlier
// nodes, so that an inclusion proof from the current head down to any
// historical position stays O(log_base height) long instead of O(height).
//
// # Finger placement
//
// A node at height h (1-indexed: the first node added has height 1) points
// at the heights FingerIndices(h, base) returns. Those are the greatest
// index reachable at each successive power of base below h — the same
// "truncate to a multiple of a shrinking stride" idea a classic skip list
// uses for its levels, except the stride here is derived purely from h and
// base rather than from coin flips, so the structure is deterministic and
// its shape is provable.
//
// Every finger value a node needs is either the digest of the immediately
// preceding node, or a finger already held by that preceding node — new
// fingers only ever enter the structure at the node whose height they
// equal, then propagate forward unchanged. This is what keeps Add O(log
// base h) instead of O(h): a node never has to walk back through the chain
// to discover a finger value, it only ever asks its immediate predecessor.
package skiplist
