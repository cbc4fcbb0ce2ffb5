package merklelog

import (
	"context"
	"strconv"

	"github.com/bankaixyz/mmr/digest"
	"github.com/bankaixyz/mmr/mmr"
)

// GetPeaks resolves treeSize (the current elements_count if omitted) and
// returns the peak hashes in left-to-right order.
func (l *Log) GetPeaks(ctx context.Context, treeSize ...uint64) ([]digest.Hash32, error) {
	size, err := l.resolveTreeSize(ctx, treeSize...)
	if err != nil {
		return nil, err
	}
	positions, err := mmr.FindPeaks(size)
	if err != nil {
		return nil, err
	}
	return l.loadHashes(ctx, positions)
}

// BagThePeaks resolves treeSize (the current elements_count if omitted),
// loads the peak hashes and folds them per §4.6.
func (l *Log) BagThePeaks(ctx context.Context, treeSize ...uint64) (digest.Hash32, error) {
	peaks, err := l.GetPeaks(ctx, treeSize...)
	if err != nil {
		return digest.Hash32{}, err
	}
	return l.fold(peaks)
}

// fold applies the right-fold over an already-loaded peak hash list, using
// this Log's hasher for the pairwise combine.
func (l *Log) fold(peaks []digest.Hash32) (digest.Hash32, error) {
	switch len(peaks) {
	case 0:
		return digest.ZeroHash32, nil
	case 1:
		return peaks[0], nil
	}
	acc, err := l.hasher.Hash(peaks[len(peaks)-2].Bytes(), peaks[len(peaks)-1].Bytes())
	if err != nil {
		return digest.Hash32{}, err
	}
	for i := len(peaks) - 3; i >= 0; i-- {
		acc, err = l.hasher.Hash(peaks[i].Bytes(), acc.Bytes())
		if err != nil {
			return digest.Hash32{}, err
		}
	}
	return acc, nil
}

// CalculateRootHash computes H(ascii_decimal(elementsCount), bag); the ASCII
// decimal serialization of elementsCount is part of the wire contract and
// must not be replaced with a binary encoding.
func (l *Log) CalculateRootHash(bag digest.Hash32, elementsCount uint64) (digest.Hash32, error) {
	return l.hasher.Hash([]byte(strconv.FormatUint(elementsCount, 10)), bag.Bytes())
}

func (l *Log) calculateRootHash(bag digest.Hash32, elementsCount uint64) (digest.Hash32, error) {
	return l.CalculateRootHash(bag, elementsCount)
}

// resolveTreeSize returns the single optional override in treeSize, or the
// namespace's current elements_count if none was given.
func (l *Log) resolveTreeSize(ctx context.Context, treeSize ...uint64) (uint64, error) {
	if len(treeSize) > 0 {
		return treeSize[0], nil
	}
	_, elementsCount, err := l.counters(ctx)
	if err != nil {
		return 0, err
	}
	return elementsCount, nil
}
