package mmr

// ElementsCountToLeafCount returns the number of leaves that produced an MMR
// of exactly the given element count, failing with ErrInvalidMmrSize if
// elementsCount is not canonical.
//
// Each peak returned by FindPeaks roots a perfect mountain whose leaf count
// is 2^height, where height is the peak's own PosHeight.
func ElementsCountToLeafCount(elementsCount uint64) (uint64, error) {
	if elementsCount == 0 {
		return 0, nil
	}

	peaks, err := FindPeaks(elementsCount)
	if err != nil {
		return 0, err
	}

	var leaves uint64
	for _, p := range peaks {
		leaves += uint64(1) << PosHeight(uint64(p))
	}
	return leaves, nil
}

// LeafCountToMmrSize returns the element count of the canonical MMR produced
// by appending exactly leafCount leaves. The position the next (not yet
// appended) leaf would occupy is one past the current element count, so this
// is LeafToElementIndex(leafCount) - 1.
func LeafCountToMmrSize(leafCount uint64) uint64 {
	return uint64(LeafToElementIndex(LeafIndex(leafCount))) - 1
}

// LeafCountToPeaksCount returns the number of mountain peaks a forest of
// leafCount leaves settles into - the count of set bits in leafCount.
func LeafCountToPeaksCount(leafCount uint64) uint64 {
	return PopCount64(leafCount)
}

// LeafCountToAppendMerges returns the number of carrying merges that
// appending one more leaf to a forest of leafCount leaves will trigger -
// the count of trailing one bits in leafCount.
func LeafCountToAppendMerges(leafCount uint64) uint64 {
	return TrailingOnes64(leafCount)
}
