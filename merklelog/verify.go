package merklelog

import (
	"context"
	"fmt"

	"github.com/bankaixyz/mmr/digest"
	"github.com/bankaixyz/mmr/hasher"
	"github.com/bankaixyz/mmr/mmr"
)

// foldProof rebuilds the mountain root for proof.ElementIndex by folding
// elementValue up through proof.SiblingsHashes, using li's parity at each
// step to decide which side the sibling sits on.
func foldProof(h hasher.Hasher, proof Proof, elementValue digest.Hash32) (digest.Hash32, error) {
	li, err := mmr.ElementToLeafIndex(proof.ElementIndex)
	if err != nil {
		return digest.Hash32{}, err
	}

	acc := elementValue
	leaf := uint64(li)
	for _, sibling := range proof.SiblingsHashes {
		var err error
		if leaf%2 == 1 {
			acc, err = h.Hash(sibling.Bytes(), acc.Bytes())
		} else {
			acc, err = h.Hash(acc.Bytes(), sibling.Bytes())
		}
		if err != nil {
			return digest.Hash32{}, fmt.Errorf("merklelog: fold proof: %w", err)
		}
		leaf /= 2
	}
	return acc, nil
}

// VerifyProof checks proof against elementValue and the live store at
// treeSize (the namespace's current elements_count unless WithElementsCount
// is given), comparing the rebuilt mountain root against the canonical peak
// read from the store. It returns (false, nil) for an out of range element
// index, a sibling count that does not match the element's height, or a
// rebuilt root that does not match. It returns a non-nil error when treeSize
// is not canonical (mmr.ErrInvalidMmrSize), when the proof carries the wrong
// number of peaks (ErrInvalidPeaksCount), when the element index is not a
// leaf position (mmr.ErrInvalidElementIndex), or when the store or hasher
// fail.
func (l *Log) VerifyProof(ctx context.Context, proof Proof, elementValue digest.Hash32, opts ...ProofOption) (bool, error) {
	o := resolveProofOptions(opts)
	treeSize, err := l.resolveTreeSizeOpt(ctx, o)
	if err != nil {
		return false, err
	}

	leavesCount, err := mmr.ElementsCountToLeafCount(treeSize)
	if err != nil {
		return false, err
	}
	expectedPeaks := mmr.LeafCountToPeaksCount(leavesCount)
	if uint64(len(proof.PeaksHashes)) != expectedPeaks {
		return false, fmt.Errorf("%w: expected %d, got %d", ErrInvalidPeaksCount, expectedPeaks, len(proof.PeaksHashes))
	}

	if proof.ElementIndex == 0 || uint64(proof.ElementIndex) > treeSize {
		return false, nil
	}

	peakOrdinal, height, err := mmr.GetPeakInfo(treeSize, proof.ElementIndex)
	if err != nil {
		return false, nil
	}
	if uint64(len(proof.SiblingsHashes)) != height {
		return false, nil
	}

	rebuilt, err := foldProof(l.hasher, proof, elementValue)
	if err != nil {
		return false, err
	}

	canonicalPeaks, err := l.GetPeaks(ctx, treeSize)
	if err != nil {
		return false, err
	}

	ok := rebuilt.Equal(canonicalPeaks[peakOrdinal])
	l.log.Debugf("VerifyProof: namespace=%s element=%d tree_size=%d result=%t", l.id, proof.ElementIndex, treeSize, ok)
	return ok, nil
}

// VerifyProofStateless checks proof against elementValue using only the
// values carried in proof itself, using proof.ElementsCount as the tree
// size. It performs no store reads, so it can run on a proof shipped to a
// party with no access to the namespace's store.
func (l *Log) VerifyProofStateless(proof Proof, elementValue digest.Hash32) (bool, error) {
	treeSize := proof.ElementsCount

	leavesCount, err := mmr.ElementsCountToLeafCount(treeSize)
	if err != nil {
		return false, err
	}
	expectedPeaks := mmr.LeafCountToPeaksCount(leavesCount)
	if uint64(len(proof.PeaksHashes)) != expectedPeaks {
		return false, fmt.Errorf("%w: expected %d, got %d", ErrInvalidPeaksCount, expectedPeaks, len(proof.PeaksHashes))
	}

	if proof.ElementIndex == 0 || uint64(proof.ElementIndex) > treeSize {
		return false, nil
	}

	peakOrdinal, height, err := mmr.GetPeakInfo(treeSize, proof.ElementIndex)
	if err != nil {
		return false, nil
	}
	if uint64(len(proof.SiblingsHashes)) != height {
		return false, nil
	}

	rebuilt, err := foldProof(l.hasher, proof, elementValue)
	if err != nil {
		return false, err
	}

	return rebuilt.Equal(proof.PeaksHashes[peakOrdinal]), nil
}
