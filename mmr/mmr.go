package mmr

import "github.com/ledgermint/go-merklelog/digest"

// MMR is an ordered family of PerfectTree slots, one per bit of the entry
// count (occupied where the bit is set) plus a trailing empty slot, and the
// full history of appended entries needed to build
// most-recent-n proofs.
type MMR struct {
	hash    digest.HashFunc
	trees   []*PerfectTree // trees[i] holds 2^i leaves when occupied; nil otherwise
	entries [][]byte
}

// New returns an empty MMR using hash as its digest oracle. A nil hash
// defaults to digest.Blake2b256, the package's reference digest.
func New(hash digest.HashFunc) *MMR {
	if hash == nil {
		hash = digest.Blake2b256
	}
	return &MMR{hash: hash, trees: []*PerfectTree{nil}}
}

// BuildMMR folds entries through repeated Append calls. It exists to give
// the incremental-equivalence property a concrete counterpart to compare
// against an MMR built one append at a time; it is not an algorithmic
// shortcut over Append.
func BuildMMR(entries [][]byte, hash digest.HashFunc) *MMR {
	m := New(hash)
	for _, e := range entries {
		m.Append(e)
	}
	return m
}

// Len returns the number of entries appended so far.
func (m *MMR) Len() uint64 {
	return uint64(len(m.entries))
}

// Append adds entry as the next leaf, merging it into any existing
// equal-height trees it meets while walking up from slot 0. The old tree at
// each merged slot becomes the left child; the new (or newly merged) node
// becomes the right child — this is the source of the MMR's "smaller slot
// index holds newer data" ordering convention.
func (m *MMR) Append(entry []byte) {
	cur := &node{hash: append([]byte(nil), entry...), height: 0}

	i := 0
	for {
		if i >= len(m.trees) {
			m.trees = append(m.trees, nil)
		}
		if m.trees[i] == nil {
			m.trees[i] = &PerfectTree{root: cur, leaves: uint64(1) << uint(i), hash: m.hash}
			break
		}
		old := m.trees[i]
		merged := m.hash(digest.EncodePair(old.root.hash, cur.hash))
		cur = &node{hash: merged, height: old.root.height + 1, left: old.root, right: cur}
		m.trees[i] = nil
		i++
	}

	// maintain the trailing empty slot
	if i == len(m.trees)-1 {
		m.trees = append(m.trees, nil)
	}

	m.entries = append(m.entries, append([]byte(nil), entry...))
}
