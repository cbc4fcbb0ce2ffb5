// Package digest defines the fixed width hash value that flows through every
// layer of the mmr module: the hasher capability produces it, the store
// capability persists it, and the engine folds it into proofs and roots.
package digest

import (
	"encoding/hex"
	"fmt"
)

// Size is the width, in bytes, of every digest produced by a Hasher.
const Size = 32

// Hash32 is an opaque 32 byte digest. It is only ever compared for equality;
// nothing in this module inspects its bytes beyond that.
type Hash32 [Size]byte

// ZeroHash32 is the distinguished all-zero digest used as the bag of an empty
// peak list.
var ZeroHash32 Hash32

// FromBytes copies b into a Hash32, failing if b is not exactly Size bytes.
func FromBytes(b []byte) (Hash32, error) {
	var h Hash32
	if len(b) != Size {
		return h, fmt.Errorf("digest: expected %d bytes, got %d", Size, len(b))
	}
	copy(h[:], b)
	return h, nil
}

// Bytes returns a freshly allocated copy of the digest contents.
func (h Hash32) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, h[:])
	return out
}

// Equal reports whether h and o hold the same bytes.
func (h Hash32) Equal(o Hash32) bool {
	return h == o
}

// IsZero reports whether h is the distinguished zero digest.
func (h Hash32) IsZero() bool {
	return h == ZeroHash32
}

// String renders the digest as lower case hex, for logging and error text.
func (h Hash32) String() string {
	return hex.EncodeToString(h[:])
}

// MarshalBinary implements encoding.BinaryMarshaler, used by the cbor codec
// in merklelog to round trip Proof values.
func (h Hash32) MarshalBinary() ([]byte, error) {
	return h.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (h *Hash32) UnmarshalBinary(b []byte) error {
	v, err := FromBytes(b)
	if err != nil {
		return err
	}
	*h = v
	return nil
}
