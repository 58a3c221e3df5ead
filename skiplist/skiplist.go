package skiplist

import (
	"fmt"

	"github.com/ledgermint/go-merklelog/digest"
)

// DefaultBase is the finger base used when New is given base 0.
const DefaultBase = 10

// SkipList is an append-only chain of Nodes with logarithmic finger
// back-pointers.
type SkipList struct {
	hash  digest.HashFunc
	base  uint64
	nodes []*Node
}

// New returns an empty SkipList. A nil hash defaults to digest.SHA256, the
// package's reference digest; a zero base defaults to DefaultBase.
func New(hash digest.HashFunc, base uint64) *SkipList {
	if hash == nil {
		hash = digest.SHA256
	}
	if base == 0 {
		base = DefaultBase
	}
	return &SkipList{hash: hash, base: base}
}

// Len returns the number of nodes added so far.
func (s *SkipList) Len() uint64 {
	return uint64(len(s.nodes))
}

// Head returns the most recently added node, or nil if the list is empty.
func (s *SkipList) Head() *Node {
	if len(s.nodes) == 0 {
		return nil
	}
	return s.nodes[len(s.nodes)-1]
}

// Add appends value as a new node. The first node added gets height 1 and
// no fingers; every later node at height h gets a finger to every height
// FingerIndices(h, base) names, either reused from the previous node's own
// fingers (back-propagation) or, for the one finger equal to the previous
// node's height, computed from that node directly.
//
// Add panics if FingerIndices ever names a height neither source can
// supply — an invariant violation in this package, not in caller input.
func (s *SkipList) Add(value []byte) *Node {
	if len(s.nodes) == 0 {
		n := &Node{Value: value, Height: 1}
		s.nodes = append(s.nodes, n)
		return n
	}

	prev := s.nodes[len(s.nodes)-1]
	height := prev.Height + 1

	keys := FingerIndices(height, s.base)
	fingers := make([]finger, 0, len(keys))
	// FingerIndices returns descending order; rebuild ascending for storage
	// and for the digest's required ascending sum.
	for i := len(keys) - 1; i >= 0; i-- {
		k := keys[i]
		if d, ok := prev.Finger(k); ok {
			fingers = append(fingers, finger{height: k, digest: d})
			continue
		}
		if k == prev.Height {
			fingers = append(fingers, finger{height: k, digest: prev.Digest(s.hash)})
			continue
		}
		panic(fmt.Errorf("%w: node at height %d needs a finger to height %d that height %d cannot supply",
			ErrInconsistent, height, k, prev.Height))
	}

	n := &Node{Value: value, Height: height, fingers: fingers}
	s.nodes = append(s.nodes, n)
	return n
}
