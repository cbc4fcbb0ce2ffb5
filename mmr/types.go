package mmr

// ElementIndex is the 1-based post-order position of a node - leaf or
// interior - in an MMR. Position 0 never addresses a real element.
type ElementIndex uint64

// LeafIndex is the 0-based ordinal of a leaf, counting leaves only and
// ignoring the interior nodes interleaved with them in post order.
type LeafIndex uint64
