package mmr

import (
	"fmt"
	"testing"

	"github.com/ledgermint/go-merklelog/digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sevenBlocks() *MMR {
	m := New(digest.Blake2b256)
	for i := 1; i <= 7; i++ {
		m.Append([]byte(fmt.Sprintf("block%d", i)))
	}
	return m
}

// TestScenarioSevenBlockShape checks that 7 appended entries occupy slots
// {0, 1, 2} and leave slot 3 empty.
func TestScenarioSevenBlockShape(t *testing.T) {
	m := sevenBlocks()
	assert.True(t, Occupied(m.Len(), 0))
	assert.True(t, Occupied(m.Len(), 1))
	assert.True(t, Occupied(m.Len(), 2))
	assert.False(t, Occupied(m.Len(), 3))
}

func TestScenarioProveThree(t *testing.T) {
	m := sevenBlocks()
	proof, err := m.ProveMostRecentN(3)
	require.NoError(t, err)

	assert.Equal(t, [][]byte{[]byte("block5"), []byte("block6"), []byte("block7")}, proof.Entries)
	assert.Equal(t, []int{0, 1}, proof.FullTreeIndices)
	assert.Nil(t, proof.Partial)

	assert.NoError(t, m.VerifyMostRecentN(proof))
}

func TestScenarioProveFive(t *testing.T) {
	m := sevenBlocks()
	proof, err := m.ProveMostRecentN(5)
	require.NoError(t, err)

	want := [][]byte{
		[]byte("block3"), []byte("block4"), []byte("block5"), []byte("block6"), []byte("block7"),
	}
	assert.Equal(t, want, proof.Entries)
	assert.Equal(t, []int{0, 1}, proof.FullTreeIndices)
	require.NotNil(t, proof.Partial)
	assert.Equal(t, 2, proof.Partial.SlotIndex)
	assert.EqualValues(t, 2, proof.Partial.Proof.NumSuffixElements)

	assert.NoError(t, m.VerifyMostRecentN(proof))
}
