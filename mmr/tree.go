package mmr

import (
	"fmt"

	"github.com/ledgermint/go-merklelog/digest"
)

// node is a single PerfectTree node. Leaves carry their raw value as hash
// (height 0); internal nodes own exactly two children of equal height and
// commit to the canonical encoding of their hashes.
type node struct {
	hash   []byte
	height uint64
	left   *node
	right  *node
}

// PerfectTree is a Merkle tree over exactly 2^height leaves. Every node
// exclusively owns its children; nothing is shared across trees, and
// nothing is ever mutated after construction.
type PerfectTree struct {
	root   *node
	leaves uint64
	hash   digest.HashFunc
}

// NewPerfectTree builds a perfect binary Merkle tree over leaves, which must
// be a non-empty power-of-two-length slice. hash is the digest oracle used
// for every internal node; it is never applied to leaves.
func NewPerfectTree(leaves [][]byte, hash digest.HashFunc) (*PerfectTree, error) {
	l := uint64(len(leaves))
	if l == 0 || l&(l-1) != 0 {
		return nil, fmt.Errorf("%w: leaf count %d is not a positive power of two", ErrInvalidShape, l)
	}

	level := make([]*node, l)
	for i, v := range leaves {
		level[i] = &node{hash: append([]byte(nil), v...), height: 0}
	}

	for len(level) > 1 {
		next := make([]*node, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			left, right := level[i], level[i+1]
			h := hash(digest.EncodePair(left.hash, right.hash))
			next = append(next, &node{hash: h, height: left.height + 1, left: left, right: right})
		}
		level = next
	}

	return &PerfectTree{root: level[0], leaves: l, hash: hash}, nil
}

// Digest returns the tree's root hash. For a single-leaf tree this is the
// leaf's raw value, unhashed.
func (t *PerfectTree) Digest() []byte {
	return append([]byte(nil), t.root.hash...)
}

// Leaves returns 2^height, the number of leaves in the tree.
func (t *PerfectTree) Leaves() uint64 {
	return t.leaves
}
