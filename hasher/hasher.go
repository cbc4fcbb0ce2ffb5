// Package hasher defines the hash capability the mmr engine is built
// against: a deterministic, stateless function over an ordered list of byte
// slices, plus a guard on the element sizes a given implementation can
// accept. Concrete hashes live in this package (Keccak-256) and in the
// poseidon subpackage.
package hasher

import "github.com/bankaixyz/mmr/digest"

// Hasher is the hash capability the merklelog engine folds values, parent
// pairs, and peak bags through. Implementations must be pure: two calls with
// the same parts, in the same order, always produce the same digest, and a
// call never mutates state visible to a later call.
type Hasher interface {
	// Hash returns the digest of parts, concatenated in the order given.
	Hash(parts ...[]byte) (digest.Hash32, error)

	// IsElementSizeValid reports whether b is an acceptable input element
	// for this hasher - e.g. a fixed width hash can reject anything that
	// isn't exactly its own digest width.
	IsElementSizeValid(b []byte) bool
}
