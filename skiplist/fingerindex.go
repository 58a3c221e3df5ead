package skiplist

// FingerIndices returns the descending sequence of earlier node heights
// that a node at height h must carry a finger to, for the given base.
// Called only for h >= 2; a height-1 node has no fingers.
//
// At each zoom level y (1, base, base^2, ...) while y <= h-1, the greatest
// index reachable is x truncated down to a multiple of y, where x = h-1:
//
//	floor(x / y) * y
//
// Consecutive duplicate values (which occur whenever x is already a
// multiple of the next, larger y, so truncating to it changes nothing) are
// collapsed, so the result
// has at most ceil(log_base(h)) + 1 entries.
func FingerIndices(height uint64, base uint64) []uint64 {
	if height < 2 || base < 2 {
		return nil
	}
	x := height - 1
	var out []uint64
	for y := uint64(1); y <= x; y *= base {
		v := (x / y) * y
		if len(out) == 0 || out[len(out)-1] != v {
			out = append(out, v)
		}
	}
	return out
}
