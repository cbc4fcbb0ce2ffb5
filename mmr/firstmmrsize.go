package mmr

// FirstMMRSize returns the smallest complete MMR size (a node count that is
// itself a valid, fully backfilled accumulator state) that contains
// mmrIndex. Valid sizes are not every integer: appending a leaf also appends
// the parent nodes that merge it into the mountain range, so the sequence of
// sizes that ever actually occur skips the positions in between. Rounding a
// leaf count up via ElementsCountToLeafCount alone gets this wrong in exactly those gaps, so
// callers that need to address a specific node should go through this
// instead.
//
// For example, across mmrIndex 0..10 this returns:
//
//	[1, 3, 3, 4, 7, 7, 7, 8, 10, 10, 11]
//
//	2        6
//	       /   \
//	1     2     5      9
//	     / \   / \    / \
//	0   0   1 3   4  7   8 10
//
// The walk below climbs from mmrIndex towards the peak it belongs to by
// repeatedly checking whether the next position is higher in the tree; once
// it isn't, i+1 is the complete size that just closed over mmrIndex.
func FirstMMRSize(mmrIndex uint64) uint64 {
	i := mmrIndex
	height := IndexHeight(i)
	nextHeight := IndexHeight(i + 1)
	for height < nextHeight {
		i++
		height = nextHeight
		nextHeight = IndexHeight(i + 1)
	}

	return i + 1
}
