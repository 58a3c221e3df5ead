// Package mmr implements a Merkle Mountain Range: an ordered family of
// perfect binary Merkle trees ("PerfectTree"s) indexed by height, supporting
// amortized O(1) append and succinct proofs of the most recent n entries.
//
// # Shape
//
// An MMR of E entries has one slot per bit of E's binary representation —
// holding a tree where the bit is set and empty where it is clear — plus a
// trailing empty slot kept ready for the next append:
//
//	E = 7 = 0b111
//
//	slot 0 (1 leaf)   slot 1 (2 leaves)   slot 2 (4 leaves)   slot 3 (empty)
//	     o                    o                    o
//	                        /   \             /        \
//	                       o     o          o            o
//	                                       / \          /  \
//	                                      o   o        o    o
//
// This is the same trick the MMR literature always leads with: the shape of
// the forest is literally the binary representation of the entry count, so
// the slot occupancy after any append can be read off without touching a
// single node.
//
// # Ordering
//
// Appends merge the new leaf with the existing slot-0 tree, as that tree's
// right sibling, and repeat with each merged result, walking up through
// occupied slots until an empty one is found.
// The *old* tree always becomes the left child and the incoming leaf (or
// merged subtree) the right child — so within any tree, leaves read oldest
// to newest left-to-right, and across slots, the smallest occupied index
// holds the newest data and the largest the oldest. A most-recent-n proof
// therefore walks slots ascending (newest first) when building, and the
// verifier must walk fully-covered slots in reverse (largest index, i.e.
// oldest data, first) to lay proof entries back out in their original
// append order.
//
// # Leaves are not pre-hashed
//
// A leaf's hash is its raw value, verbatim — an MMR over a single entry
// has a root equal to that entry's bytes. Only internal nodes run the
// entries through the digest oracle, and only as
// H(digest.EncodePair(left.hash, right.hash)).
package mmr
