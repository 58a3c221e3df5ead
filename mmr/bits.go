package mmr

import "math/bits"

// Occupied reports whether slot is occupied in an MMR of e entries. Slot
// occupancy is literally the binary representation of the entry count: slot
// i holds a tree iff bit i of e is set.
func Occupied(e uint64, slot int) bool {
	if slot < 0 || slot >= 64 {
		return false
	}
	return e&(uint64(1)<<uint(slot)) != 0
}

// SlotCount returns the number of tree slots an MMR of e entries must carry,
// including the trailing empty slot every MMR keeps ready for the next
// append. This is bits.Len64(e)+1.
//
// Note this deliberately does not replicate the reference source's
// num_trees helper, which returns x+2 rather than x+1 when e is an exact
// power of two — an off-by-one that downstream code should not depend on.
func SlotCount(e uint64) int {
	return bits.Len64(e) + 1
}
