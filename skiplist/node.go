package skiplist

import (
	"encoding/binary"

	"github.com/ledgermint/go-merklelog/digest"
)

// finger is a single back-pointer: the height of the earlier node it
// targets, and that node's digest at the time the finger was recorded.
type finger struct {
	height uint64
	digest []byte
}

// Node is a single skip-list entry. Height is the node's 1-indexed
// position (the first node added has height 1). fingers is sorted
// ascending by height, matching the order Digest hashes them in.
type Node struct {
	Value   []byte
	Height  uint64
	fingers []finger
}

// FingerHeights returns the heights this node carries fingers to, ascending.
func (n *Node) FingerHeights() []uint64 {
	out := make([]uint64, len(n.fingers))
	for i, f := range n.fingers {
		out[i] = f.height
	}
	return out
}

// Finger returns the digest n's finger at height k points to, and whether
// such a finger exists.
func (n *Node) Finger(k uint64) ([]byte, bool) {
	for _, f := range n.fingers {
		if f.height == k {
			return f.digest, true
		}
	}
	return nil, false
}

// Digest returns H(canonical_encode(value) || height_le64 ||
// Σ_ascending(k_le64 || fingers[k])), computed with hash.
func (n *Node) Digest(hash digest.HashFunc) []byte {
	buf := make([]byte, 0, 12+len(n.Value)+len(n.fingers)*(8+digest.Size))
	buf = append(buf, digest.EncodeBytes(n.Value)...)
	buf = appendUint64LE(buf, n.Height)
	for _, f := range n.fingers {
		buf = appendUint64LE(buf, f.height)
		buf = append(buf, f.digest...)
	}
	return hash(buf)
}

func appendUint64LE(buf []byte, v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return append(buf, b[:]...)
}
