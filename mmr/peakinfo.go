package mmr

import "fmt"

// GetPeakInfo locates the mountain that contains element e in an MMR of the
// given tree size, returning its left-to-right ordinal among the peaks (0
// based) and the number of levels between e and that mountain's peak - the
// number of siblings a proof for e needs. For e itself a peak this is 0; for
// a leaf at the foot of the mountain it is the mountain's full height.
func GetPeakInfo(treeSize uint64, e ElementIndex) (peakOrdinal int, height uint64, err error) {
	peaks, err := FindPeaks(treeSize)
	if err != nil {
		return 0, 0, err
	}
	for i, peak := range peaks {
		if uint64(e) <= uint64(peak) {
			return i, PosHeight(uint64(peak)) - PosHeight(uint64(e)), nil
		}
	}
	return 0, 0, fmt.Errorf("%w: element %d exceeds tree size %d", ErrInvalidElementIndex, e, treeSize)
}
