package merklelog

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bankaixyz/mmr/digest"
	"github.com/bankaixyz/mmr/kvstore"
	"github.com/bankaixyz/mmr/mmr"
)

// doAppend is the shared core behind Append and BatchAppend: one load, many
// in-memory carry-merges, one atomic commit. values must already be in hash
// domain.
func (l *Log) doAppend(ctx context.Context, values []digest.Hash32) (BatchAppendResult, error) {
	if l.cfg.MaxBatchSize > 0 && len(values) > l.cfg.MaxBatchSize {
		return BatchAppendResult{}, fmt.Errorf("%w: batch of %d leaves exceeds configured max %d", ErrBatchTooLarge, len(values), l.cfg.MaxBatchSize)
	}
	for _, v := range values {
		if !l.hasher.IsElementSizeValid(v.Bytes()) {
			return BatchAppendResult{}, ErrInvalidElementSize
		}
	}

	leavesCount, elementsCount, err := l.counters(ctx)
	if err != nil {
		return BatchAppendResult{}, err
	}

	peakPositions, err := mmr.FindPeaks(elementsCount)
	if err != nil {
		return BatchAppendResult{}, err
	}
	stack, err := l.loadHashes(ctx, peakPositions)
	if err != nil {
		return BatchAppendResult{}, err
	}

	entries := make(map[kvstore.Key][]byte, 2*len(values)+3)
	perLeaf := make([]mmr.ElementIndex, 0, len(values))
	var first, last mmr.ElementIndex

	for _, v := range values {
		elementsCount++
		leaf := mmr.ElementIndex(elementsCount)
		if first == 0 {
			first = leaf
		}
		last = leaf

		entries[l.hashKey(leaf)] = v.Bytes()
		stack = append(stack, v)
		perLeaf = append(perLeaf, leaf)

		merges := mmr.LeafCountToAppendMerges(leavesCount)
		for i := uint64(0); i < merges; i++ {
			elementsCount++
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			parent, err := l.hasher.Hash(left.Bytes(), right.Bytes())
			if err != nil {
				return BatchAppendResult{}, fmt.Errorf("merklelog: hash parent: %w", err)
			}

			last = mmr.ElementIndex(elementsCount)
			entries[l.hashKey(last)] = parent.Bytes()
			stack = append(stack, parent)
		}

		leavesCount++
	}

	bag, err := l.fold(stack)
	if err != nil {
		return BatchAppendResult{}, err
	}
	root, err := l.calculateRootHash(bag, elementsCount)
	if err != nil {
		return BatchAppendResult{}, err
	}

	entries[l.metaKey(kvstore.SubkeyLeavesCount)] = []byte(strconv.FormatUint(leavesCount, 10))
	entries[l.metaKey(kvstore.SubkeyElementsCount)] = []byte(strconv.FormatUint(elementsCount, 10))
	entries[l.metaKey(kvstore.SubkeyRootHash)] = root.Bytes()

	if err := l.store.SetMany(ctx, entries); err != nil {
		return BatchAppendResult{}, fmt.Errorf("%w: commit append: %v", kvstore.ErrStoreError, err)
	}

	l.log.Debugf("doAppend: namespace=%s leaves=%d elements_count=%d root=%x", l.id, len(values), elementsCount, root.Bytes())

	return BatchAppendResult{
		FirstElementIndex:     first,
		LastElementIndex:      last,
		LeavesCount:           leavesCount,
		ElementsCount:         elementsCount,
		RootHash:              root,
		PerLeafElementIndices: perLeaf,
	}, nil
}

// Append adds a single leaf value, already in hash domain, and commits the
// new leaf, any resulting parent merges, and updated counters/root in one
// atomic write.
func (l *Log) Append(ctx context.Context, value digest.Hash32) (AppendResult, error) {
	result, err := l.doAppend(ctx, []digest.Hash32{value})
	if err != nil {
		return AppendResult{}, err
	}
	return AppendResult{
		ElementIndex:  result.FirstElementIndex,
		LeavesCount:   result.LeavesCount,
		ElementsCount: result.ElementsCount,
		RootHash:      result.RootHash,
	}, nil
}

// AppendRaw hashes data with this Log's hasher and appends the resulting
// digest, so callers never need to hash raw content themselves.
func (l *Log) AppendRaw(ctx context.Context, data []byte) (AppendResult, error) {
	h, err := l.hasher.Hash(data)
	if err != nil {
		return AppendResult{}, fmt.Errorf("merklelog: hash leaf: %w", err)
	}
	return l.Append(ctx, h)
}
