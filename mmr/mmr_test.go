package mmr

import (
	"math/bits"
	"testing"

	"github.com/ledgermint/go-merklelog/digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func occupiedSlots(m *MMR) []bool {
	out := make([]bool, len(m.trees))
	for i, t := range m.trees {
		out[i] = t != nil
	}
	return out
}

// TestMMRShape checks that after E appends, slot i is occupied iff bit i of
// E is 1, and the final slot is always empty.
func TestMMRShape(t *testing.T) {
	m := New(digest.Blake2b256)
	for e := 1; e <= 300; e++ {
		m.Append([]byte(fmt8(e)))

		slots := occupiedSlots(m)
		require.False(t, slots[len(slots)-1], "e=%d trailing slot must be empty", e)

		for i, occ := range slots {
			want := Occupied(uint64(e), i)
			assert.Equal(t, want, occ, "e=%d slot=%d", e, i)
		}
		assert.Equal(t, bits.Len64(uint64(e))+1, len(slots), "e=%d", e)
		assert.Equal(t, SlotCount(uint64(e)), len(slots), "e=%d", e)
	}
}

func TestMMRLen(t *testing.T) {
	m := New(digest.Blake2b256)
	assert.EqualValues(t, 0, m.Len())
	for i := 1; i <= 10; i++ {
		m.Append([]byte(fmt8(i)))
		assert.EqualValues(t, i, m.Len())
	}
}

// TestIncrementalEquivalence checks that building an MMR by N appends
// yields the same occupied-slot digests as a single bulk call over the
// same inputs.
func TestIncrementalEquivalence(t *testing.T) {
	entries := leavesOf(200)

	incremental := New(digest.Blake2b256)
	for _, e := range entries {
		incremental.Append(e)
	}

	bulk := BuildMMR(entries, digest.Blake2b256)

	require.Equal(t, len(incremental.trees), len(bulk.trees))
	for i := range incremental.trees {
		a, b := incremental.trees[i], bulk.trees[i]
		if a == nil || b == nil {
			assert.Nil(t, a, "slot %d", i)
			assert.Nil(t, b, "slot %d", i)
			continue
		}
		assert.Equal(t, a.Digest(), b.Digest(), "slot %d", i)
	}
}
