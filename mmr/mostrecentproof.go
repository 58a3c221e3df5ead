package mmr

import (
	"bytes"
	"fmt"
)

// PartialProof covers the oldest portion of a most-recent-n proof when the
// proven suffix begins partway through a tree. SlotIndex identifies which
// MMR slot the partial suffix proof is against.
type PartialProof struct {
	SlotIndex int
	Proof     *SuffixProof
}

// MostRecentNProof proves that Entries is exactly the trailing n entries of
// an MMR. FullTreeIndices lists slots entirely covered by the proof,
// smallest index first (i.e. newest-covered first); Partial, if present,
// covers the oldest (remaining) portion of the proof via a SuffixProof
// against one additional, partially-covered slot.
type MostRecentNProof struct {
	Entries         [][]byte
	FullTreeIndices []int
	Partial         *PartialProof
}

// ProveMostRecentN proves the trailing n entries of m, 1 <= n <= m.Len().
// It walks occupied slots ascending (smallest index first, i.e. newest
// data first): slots small enough to be entirely within the proven window
// are recorded whole, and the first slot that is not is covered instead by
// a SuffixProof over its oldest-covered portion.
func (m *MMR) ProveMostRecentN(n uint64) (*MostRecentNProof, error) {
	e := m.Len()
	if n == 0 || n > e {
		return nil, fmt.Errorf("%w: cannot prove %d of %d entries", ErrOutOfRange, n, e)
	}

	entries := make([][]byte, n)
	copy(entries, m.entries[e-n:])

	remaining := n
	var full []int
	var partial *PartialProof

	for i := 0; i < len(m.trees) && remaining > 0; i++ {
		t := m.trees[i]
		if t == nil {
			continue
		}
		if t.leaves <= remaining {
			full = append(full, i)
			remaining -= t.leaves
			continue
		}
		sp, err := t.ProveSuffix(remaining)
		if err != nil {
			return nil, err
		}
		partial = &PartialProof{SlotIndex: i, Proof: sp}
		remaining = 0
	}

	return &MostRecentNProof{Entries: entries, FullTreeIndices: full, Partial: partial}, nil
}

// VerifyMostRecentN checks proof against m's current trees. The partial
// slot (if present) covers the oldest elements of proof.Entries; full
// slots are consumed in reverse of FullTreeIndices (largest index, i.e.
// oldest data, first) so that proof.Entries is retraced in its original,
// chronological append order. Every entry must be consumed exactly once.
func (m *MMR) VerifyMostRecentN(proof *MostRecentNProof) error {
	if proof == nil || len(proof.Entries) == 0 {
		return fmt.Errorf("%w: proof covers no entries", ErrProofInvalid)
	}

	consumed := 0

	if proof.Partial != nil {
		p := proof.Partial
		if p.SlotIndex < 0 || p.SlotIndex >= len(m.trees) || m.trees[p.SlotIndex] == nil {
			return fmt.Errorf("%w: partial tree slot %d is not occupied", ErrProofInvalid, p.SlotIndex)
		}
		if p.Proof == nil || p.Proof.NumSuffixElements == 0 {
			return fmt.Errorf("%w: partial proof must cover at least one element", ErrProofInvalid)
		}
		if p.Proof.NumSuffixElements > uint64(len(proof.Entries)) {
			return fmt.Errorf("%w: partial proof count %d exceeds proven entries", ErrProofInvalid, p.Proof.NumSuffixElements)
		}
		count := int(p.Proof.NumSuffixElements)
		if err := m.trees[p.SlotIndex].VerifySuffix(proof.Entries[:count], p.Proof); err != nil {
			return err
		}
		consumed = count
	}

	for k := len(proof.FullTreeIndices) - 1; k >= 0; k-- {
		idx := proof.FullTreeIndices[k]
		if idx < 0 || idx >= len(m.trees) || m.trees[idx] == nil {
			return fmt.Errorf("%w: full tree slot %d is not occupied", ErrProofInvalid, idx)
		}
		t := m.trees[idx]
		leaves := int(t.leaves)
		if consumed+leaves > len(proof.Entries) {
			return fmt.Errorf("%w: full tree slot %d overruns proven entries", ErrProofInvalid, idx)
		}
		segment := proof.Entries[consumed : consumed+leaves]
		rebuilt, err := NewPerfectTree(segment, m.hash)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrProofInvalid, err)
		}
		if !bytes.Equal(rebuilt.Digest(), t.Digest()) {
			return fmt.Errorf("%w: full tree slot %d root mismatch", ErrProofInvalid, idx)
		}
		consumed += leaves
	}

	if consumed != len(proof.Entries) {
		return fmt.Errorf("%w: %d of %d proven entries left unconsumed", ErrProofInvalid, len(proof.Entries)-consumed, len(proof.Entries))
	}
	return nil
}
