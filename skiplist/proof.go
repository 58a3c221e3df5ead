package skiplist

import (
	"bytes"
	"fmt"

	"github.com/ledgermint/go-merklelog/digest"
)

// GetInclusionProof returns the path of nodes hopped over on the way from
// the current head down to targetHeight, 1 <= targetHeight <= s.Len(). The
// target itself is not included. At each step it jumps to the finger whose
// height is >= targetHeight and closest to it — guaranteed to exist by
// construction — bounding the path length to O(log_base head height).
func (s *SkipList) GetInclusionProof(targetHeight uint64) ([]*Node, error) {
	if targetHeight < 1 || targetHeight > s.Len() {
		return nil, fmt.Errorf("%w: height %d out of range for %d nodes", ErrOutOfRange, targetHeight, s.Len())
	}

	var path []*Node
	cur := s.Head()
	for cur.Height > targetHeight {
		path = append(path, cur)
		next, ok := nearestFingerAtOrAbove(cur, targetHeight)
		if !ok {
			panic(fmt.Errorf("%w: node at height %d has no finger reaching height %d",
				ErrInconsistent, cur.Height, targetHeight))
		}
		cur = s.nodes[next-1]
	}
	return path, nil
}

// nearestFingerAtOrAbove returns the smallest finger height of n that is
// still >= targetHeight.
func nearestFingerAtOrAbove(n *Node, targetHeight uint64) (uint64, bool) {
	best := uint64(0)
	found := false
	for _, f := range n.fingers {
		if f.height < targetHeight {
			continue
		}
		if !found || f.height-targetHeight < best-targetHeight {
			best = f.height
			found = true
		}
	}
	return best, found
}

// VerifyInclusionProof is the dual of GetInclusionProof: given the digest
// of a trusted head, the claimed target node (whose height must equal
// targetHeight), and the path GetInclusionProof returned, it confirms the
// path starts at the head and that each hop cites the next node's (or the
// target's) digest through one of its own fingers.
func VerifyInclusionProof(headDigest []byte, targetHeight uint64, target *Node, path []*Node, hash digest.HashFunc) error {
	if target == nil || target.Height != targetHeight {
		return fmt.Errorf("%w: target height does not match the claimed height", ErrProofInvalid)
	}

	if len(path) == 0 {
		if !bytes.Equal(target.Digest(hash), headDigest) {
			return fmt.Errorf("%w: target is not the trusted head", ErrProofInvalid)
		}
		return nil
	}

	if !bytes.Equal(path[0].Digest(hash), headDigest) {
		return fmt.Errorf("%w: first path entry is not the trusted head", ErrProofInvalid)
	}

	for i, cur := range path {
		var nextDigest []byte
		var nextHeight uint64
		if i+1 < len(path) {
			nextDigest = path[i+1].Digest(hash)
			nextHeight = path[i+1].Height
		} else {
			nextDigest = target.Digest(hash)
			nextHeight = target.Height
		}
		d, ok := cur.Finger(nextHeight)
		if !ok || !bytes.Equal(d, nextDigest) {
			return fmt.Errorf("%w: path entry at height %d has no finger to height %d", ErrProofInvalid, cur.Height, nextHeight)
		}
	}
	return nil
}
