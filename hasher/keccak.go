package hasher

import (
	"golang.org/x/crypto/sha3"

	"github.com/bankaixyz/mmr/digest"
)

// Keccak hashes by concatenating every part, in order, into a single
// Keccak-256 digest. It carries no state between calls: each Hash call opens
// a fresh sponge, writes every part, and sums.
type Keccak struct{}

// NewKeccak returns a Hasher backed by Keccak-256.
func NewKeccak() Keccak {
	return Keccak{}
}

// Hash writes parts, in order, into a fresh Keccak-256 sponge and returns its
// sum. How the caller orders parts - leaf value alone, left-then-right child
// pair, or count-prefix-then-bag - is what gives each call site its meaning;
// this hasher itself only ever concatenates.
func (Keccak) Hash(parts ...[]byte) (digest.Hash32, error) {
	h := sha3.NewLegacyKeccak256()
	for _, p := range parts {
		if _, err := h.Write(p); err != nil {
			return digest.Hash32{}, err
		}
	}
	return digest.FromBytes(h.Sum(nil))
}

// IsElementSizeValid always returns true: Keccak-256 absorbs input of any
// length.
func (Keccak) IsElementSizeValid(b []byte) bool {
	return true
}
