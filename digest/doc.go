// Package digest provides the hash primitives and canonical byte encodings
// shared by the mmr and skiplist packages.
//
// Neither the hash function nor the encoder is treated as part of the
// authenticated-structure algorithms themselves: both are external
// collaborators with a fixed, documented contract. The mmr package uses
// Blake2b256 as its reference digest; the skiplist package uses SHA256. Pick
// one per structure and do not mix them within a single tree, MMR, or list —
// verification compares raw bytes and has no notion of algorithm agility.
package digest
