package skiplist

import "errors"

var (
	// ErrOutOfRange is returned when an inclusion proof is requested for a
	// height that does not exist yet.
	ErrOutOfRange = errors.New("skiplist: out of range")

	// ErrProofInvalid is returned by VerifyInclusionProof on any malformed
	// or tampered proof path.
	ErrProofInvalid = errors.New("skiplist: proof invalid")

	// ErrInconsistent marks an internal invariant violation — a finger
	// FingerIndices requires but that no prior node can supply. This
	// represents a bug in this package, not bad caller input, and is only
	// ever raised by panicking, never returned as an error.
	ErrInconsistent = errors.New("skiplist: inconsistent finger state")
)
