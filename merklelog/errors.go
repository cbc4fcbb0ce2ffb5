package merklelog

import "errors"

var (
	// ErrInvalidPeaksCount is returned when a proof's peak count does not
	// match popcount(ElementsCountToLeafCount(treeSize)).
	ErrInvalidPeaksCount = errors.New("merklelog: invalid peaks count")

	// ErrInvalidPeaksCountForElements is returned by CreateFromPeaks when the
	// supplied peak count does not match len(FindPeaks(elementsCount)).
	ErrInvalidPeaksCountForElements = errors.New("merklelog: peaks count does not match elements count")

	// ErrNonEmptyMMR is returned by CreateFromPeaks when the namespace
	// already holds state.
	ErrNonEmptyMMR = errors.New("merklelog: mmr is not empty")

	// ErrInvalidElementSize is returned when the hasher rejects an appended
	// leaf's raw bytes.
	ErrInvalidElementSize = errors.New("merklelog: invalid element size")

	// ErrHashMissing is returned when a node the engine expects to exist is
	// absent from the store.
	ErrHashMissing = errors.New("merklelog: expected hash missing from store")

	// ErrBatchTooLarge is returned by BatchAppend when the batch exceeds
	// Config.MaxBatchSize.
	ErrBatchTooLarge = errors.New("merklelog: batch exceeds configured max batch size")
)
