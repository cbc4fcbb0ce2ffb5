package mmr

import "math/bits"

// LeafToElementIndex returns the element index (1-based, post order) for the
// leaf at the given zero based leaf index: 2*leafIndex + 1 - popcount(leafIndex).
//
// It walks leafIndex down to zero, at each step accounting for the mountain
// that the highest set bit of the remaining count would close off, then adds
// the one needed to go from a zero based position to a one based element
// index. This is the forward half of the LeafIndex <-> ElementIndex
// correspondence; see ElementToLeafIndex for the inverse.
func LeafToElementIndex(leafIndex LeafIndex) ElementIndex {
	i := uint64(leafIndex)
	sum := uint64(0)
	for i > 0 {
		h := bits.Len64(i)
		sum += (1 << h) - 1
		half := uint64(1) << (h - 1)
		i -= half
	}
	return ElementIndex(sum + 1)
}
