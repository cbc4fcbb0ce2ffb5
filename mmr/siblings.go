package mmr

// FindSiblings produces the ordered list of sibling positions on the path
// from e up to the peak of the mountain that contains it, stopping once the
// walk would step outside treeSize.
//
// At each step e is either the left or the right child of its parent. If
// PosHeight(e+1) is taller than e's own height, e is the right child and its
// sibling lies behind it; otherwise e is the left child and its sibling lies
// ahead of it, at the offset the mimblewimble pmmr reference calls "jumping
// right". Either way the parent follows directly after the right child of
// the pair: after e itself when e is the right child, after the sibling
// otherwise.
func FindSiblings(e ElementIndex, treeSize uint64) []ElementIndex {
	pos := uint64(e)
	height := PosHeight(pos)

	var siblings []ElementIndex
	for {
		offset := SiblingOffset(height)

		var sibling, parent uint64
		if PosHeight(pos+1) > height {
			sibling = pos - offset
			parent = pos + 1
		} else {
			sibling = pos + offset
			parent = pos + offset + 1
		}

		if sibling > treeSize {
			break
		}
		siblings = append(siblings, ElementIndex(sibling))
		pos = parent
		height++
	}
	return siblings
}
