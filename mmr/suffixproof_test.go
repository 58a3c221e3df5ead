package mmr

import (
	"testing"

	"github.com/ledgermint/go-merklelog/digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSuffixProofRoundTrip checks that for trees of size 2^k, k = 0..10,
// and every suffix length n in 1..2^k, VerifySuffix accepts the proof
// ProveSuffix produces for the matching trailing leaves.
func TestSuffixProofRoundTrip(t *testing.T) {
	for k := 0; k <= 10; k++ {
		l := 1 << uint(k)
		leaves := leavesOf(l)
		tr, err := NewPerfectTree(leaves, digest.Blake2b256)
		require.NoError(t, err)

		for n := 1; n <= l; n++ {
			proof, err := tr.ProveSuffix(uint64(n))
			require.NoError(t, err, "k=%d n=%d", k, n)

			suffix := leaves[l-n:]
			err = tr.VerifySuffix(suffix, proof)
			assert.NoError(t, err, "k=%d n=%d", k, n)
		}
	}
}

func TestProveSuffixOutOfRange(t *testing.T) {
	tr, err := NewPerfectTree(leavesOf(8), digest.Blake2b256)
	require.NoError(t, err)

	_, err = tr.ProveSuffix(0)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = tr.ProveSuffix(9)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestVerifySuffixRejectsTamperedEntry(t *testing.T) {
	l := 16
	leaves := leavesOf(l)
	tr, err := NewPerfectTree(leaves, digest.Blake2b256)
	require.NoError(t, err)

	n := 5
	proof, err := tr.ProveSuffix(uint64(n))
	require.NoError(t, err)

	suffix := make([][]byte, n)
	copy(suffix, leaves[l-n:])
	suffix[0] = append(append([]byte(nil), suffix[0]...), 0xff)

	err = tr.VerifySuffix(suffix, proof)
	assert.ErrorIs(t, err, ErrProofInvalid)
}

func TestVerifySuffixRejectsTamperedProofHash(t *testing.T) {
	l := 16
	leaves := leavesOf(l)
	tr, err := NewPerfectTree(leaves, digest.Blake2b256)
	require.NoError(t, err)

	n := 6
	proof, err := tr.ProveSuffix(uint64(n))
	require.NoError(t, err)
	require.NotEmpty(t, proof.Proof)

	tampered := &SuffixProof{
		NumSuffixElements: proof.NumSuffixElements,
		Proof:             append([][]byte(nil), proof.Proof...),
	}
	tampered.Proof[0] = append(append([]byte(nil), tampered.Proof[0]...), 0x01)

	err = tr.VerifySuffix(leaves[l-n:], tampered)
	assert.ErrorIs(t, err, ErrProofInvalid)
}

func TestVerifySuffixRejectsWrongElementCount(t *testing.T) {
	l := 8
	leaves := leavesOf(l)
	tr, err := NewPerfectTree(leaves, digest.Blake2b256)
	require.NoError(t, err)

	proof, err := tr.ProveSuffix(4)
	require.NoError(t, err)

	err = tr.VerifySuffix(leaves[l-3:], proof)
	assert.ErrorIs(t, err, ErrProofInvalid)
}
