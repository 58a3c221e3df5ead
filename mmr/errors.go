package mmr

import "errors"

var (
	// ErrInvalidShape is returned when PerfectTree construction is given an
	// empty or non-power-of-two leaf list.
	ErrInvalidShape = errors.New("mmr: invalid tree shape")

	// ErrOutOfRange is returned when a proof is requested for a suffix or
	// most-recent-n count that exceeds the available leaves or entries.
	ErrOutOfRange = errors.New("mmr: out of range")

	// ErrProofInvalid is returned by the verifiers on any malformed or
	// tampered proof: unconsumed proof elements, unconsumed entries, a root
	// mismatch, or a reference to an unoccupied or out-of-range slot.
	ErrProofInvalid = errors.New("mmr: proof invalid")
)
