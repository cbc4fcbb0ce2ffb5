package mmr

import "math/bits"

// BitLength64 returns the number of bits needed to represent num, i.e. the
// position of its most significant set bit, plus one. BitLength64(0) is 0.
func BitLength64(num uint64) uint64 { return uint64(BitLength(num)) }

// BitLength is the int flavoured equivalent of BitLength64.
func BitLength(num uint64) int {
	return bits.Len64(num)
}

// Log2Uint64 efficiently computes log base 2 of num, truncated towards zero.
func Log2Uint64(num uint64) uint64 {
	return uint64(bits.Len64(num) - 1)
}

// Log2Uint32 is the uint32 flavoured equivalent of Log2Uint64.
func Log2Uint32(num uint32) uint32 {
	return uint32(bits.Len32(num) - 1)
}

// AllOnes reports whether num, in binary, is a contiguous run of 1 bits
// starting at bit zero - equivalently, whether num+1 is a power of two. Positions with this
// property are exactly the perfect-tree left spines that PosHeight walks to.
func AllOnes(num uint64) bool {
	return (1<<bits.OnesCount64(num) - 1) == num
}

// TrailingOnes64 counts the number of consecutive set bits starting from bit
// zero. For a leaf count this is the number of carrying merges that appending
// one more leaf will trigger.
func TrailingOnes64(num uint64) uint64 {
	return uint64(bits.TrailingZeros64(^num))
}

// PopCount64 counts the set bits in num. The binary representation of a leaf
// count is also the shape of the mountain range it produces: PopCount64 of a
// leaf count is the number of peaks.
func PopCount64(num uint64) uint64 {
	return uint64(bits.OnesCount64(num))
}
