package digest

import "encoding/binary"

// EncodeBytes canonically serializes a single field as a 4-byte
// little-endian length prefix followed by the raw bytes. It is the building
// block for every fixed-record encoding in this package.
func EncodeBytes(b []byte) []byte {
	out := make([]byte, 4+len(b))
	binary.LittleEndian.PutUint32(out[:4], uint32(len(b)))
	copy(out[4:], b)
	return out
}

// EncodePair canonically serializes the ordered pair (left, right), as used
// to hash an MMR internal node's two children. For 32-byte inputs this
// yields a 72-byte blob.
func EncodePair(left, right []byte) []byte {
	out := make([]byte, 0, 8+len(left)+len(right))
	out = append(out, EncodeBytes(left)...)
	out = append(out, EncodeBytes(right)...)
	return out
}
