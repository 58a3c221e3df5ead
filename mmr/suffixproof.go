package mmr

import (
	"bytes"
	"fmt"

	"github.com/ledgermint/go-merklelog/digest"
)

// SuffixProof lets a verifier, given the literal trailing n leaves of a
// PerfectTree, recompute its root without the rest of the tree.
type SuffixProof struct {
	NumSuffixElements uint64
	Proof             [][]byte
}

// ProveSuffix returns a SuffixProof for the last n leaves of t, 1 <= n <=
// t.Leaves(). The sibling hashes are recorded pre-order: a sibling is
// emitted before the walk descends into the subtree that still contains
// part of the suffix.
func (t *PerfectTree) ProveSuffix(n uint64) (*SuffixProof, error) {
	if n < 1 || n > t.leaves {
		return nil, fmt.Errorf("%w: suffix length %d out of range for a tree of %d leaves", ErrOutOfRange, n, t.leaves)
	}
	first := t.leaves - n
	var proof [][]byte
	collectSuffixProof(t.root, 0, t.leaves, first, n, &proof)
	return &SuffixProof{NumSuffixElements: n, Proof: proof}, nil
}

// collectSuffixProof walks the subtree rooted at n, covering leaf range
// [start, start+size), recording the minimal sibling hashes needed to
// reconstruct the root from the trailing suffix [first, first+nLocal).
func collectSuffixProof(n *node, start, size, first, nLocal uint64, proof *[][]byte) {
	if size == 1 {
		return
	}
	half := size / 2
	mid := start + half

	switch {
	case first >= mid:
		// suffix lies entirely in the right child
		*proof = append(*proof, n.left.hash)
		collectSuffixProof(n.right, mid, half, first, nLocal, proof)
	case first+nLocal <= mid:
		// suffix lies entirely in the left child
		*proof = append(*proof, n.right.hash)
		collectSuffixProof(n.left, start, half, first, nLocal, proof)
	default:
		// suffix straddles the midpoint; no sibling emitted at this level
		collectSuffixProof(n.left, start, half, first, mid-first, proof)
		collectSuffixProof(n.right, mid, half, mid, first+nLocal-mid, proof)
	}
}

// VerifySuffix reconstructs t's root from the literal trailing leaves and
// proof, and reports ErrProofInvalid if the recomputed root does not match
// t.Digest(), if len(leaves) is zero or exceeds t.Leaves(), or if the proof
// carries a different element count than len(leaves).
func (t *PerfectTree) VerifySuffix(leaves [][]byte, proof *SuffixProof) error {
	n := uint64(len(leaves))
	if n == 0 || n > t.leaves {
		return fmt.Errorf("%w: suffix length %d out of range for a tree of %d leaves", ErrProofInvalid, n, t.leaves)
	}
	if proof == nil || proof.NumSuffixElements != n {
		return fmt.Errorf("%w: suffix proof declares %d elements for %d supplied leaves", ErrProofInvalid, proofElementCount(proof), n)
	}

	levelHashes := make([][]byte, n)
	copy(levelHashes, leaves)
	levelStart := t.leaves - n
	cursor := len(proof.Proof)

	for len(levelHashes) > 1 || levelStart > 0 {
		next := make([][]byte, 0, len(levelHashes)/2+1)
		rest := levelHashes

		if levelStart%2 == 1 {
			if cursor == 0 {
				return fmt.Errorf("%w: suffix proof exhausted before root was reached", ErrProofInvalid)
			}
			cursor--
			sibling := proof.Proof[cursor]
			merged := t.hash(digest.EncodePair(sibling, levelHashes[0]))
			next = append(next, merged)
			rest = levelHashes[1:]
			levelStart--
		}

		i := 0
		for i+1 < len(rest) {
			next = append(next, t.hash(digest.EncodePair(rest[i], rest[i+1])))
			i += 2
		}
		if i < len(rest) {
			// trailing unpaired element, carried forward unchanged
			next = append(next, rest[i])
		}

		levelHashes = next
		levelStart /= 2
	}

	if cursor != 0 {
		return fmt.Errorf("%w: %d proof elements left unconsumed", ErrProofInvalid, cursor)
	}
	if len(levelHashes) != 1 || !bytes.Equal(levelHashes[0], t.Digest()) {
		return fmt.Errorf("%w: recomputed root does not match", ErrProofInvalid)
	}
	return nil
}

func proofElementCount(proof *SuffixProof) int {
	if proof == nil {
		return -1
	}
	return int(proof.NumSuffixElements)
}
