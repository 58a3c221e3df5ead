package digest

import (
	"crypto/sha256"

	"golang.org/x/crypto/blake2b"
)

// Size is the width, in bytes, of every digest this package produces.
const Size = 32

// HashFunc hashes a single canonically-encoded byte string to a Size-byte
// digest. Both mmr and skiplist are parametric over this type; the package
// only fixes the two reference instances below.
type HashFunc func(data []byte) []byte

// Blake2b256 is the digest function used throughout the mmr package.
func Blake2b256(data []byte) []byte {
	sum := blake2b.Sum256(data)
	return sum[:]
}

// SHA256 is the digest function used throughout the skiplist package.
func SHA256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}
