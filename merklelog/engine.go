package merklelog

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bankaixyz/mmr/digest"
	"github.com/bankaixyz/mmr/hasher"
	"github.com/bankaixyz/mmr/kvstore"
	"github.com/bankaixyz/mmr/mmr"
	"github.com/datatrails/go-datatrails-common/logger"
)

// Log is an append-only Merkle Mountain Range bound to one namespace within
// a kvstore.Store. Callers must serialize Append/BatchAppend calls against
// one Log; the store and hasher it wraps may be shared across namespaces.
type Log struct {
	store  kvstore.Store
	hasher hasher.Hasher
	id     kvstore.MmrID
	cfg    Config
	log    logger.Logger
}

// New binds a Log to id, or to a freshly minted namespace if id is the zero
// value. It performs no store I/O: an MMR namespace exists the moment a
// counter is written under it, not before.
func New(store kvstore.Store, h hasher.Hasher, id kvstore.MmrID, opts ...LogOption) *Log {
	if id == (kvstore.MmrID{}) {
		id = kvstore.NewMmrID()
	}
	o := resolveLogOptions(opts)
	return &Log{store: store, hasher: h, id: id, cfg: o.cfg, log: o.log}
}

// ID returns the namespace this Log is bound to.
func (l *Log) ID() kvstore.MmrID {
	return l.id
}

func (l *Log) metaKey(subkey string) kvstore.Key {
	return kvstore.Key{MmrID: l.id, Kind: kvstore.KindMeta, Subkey: subkey}
}

func (l *Log) hashKey(e mmr.ElementIndex) kvstore.Key {
	return kvstore.Key{MmrID: l.id, Kind: kvstore.KindHashes, Subkey: strconv.FormatUint(uint64(e), 10)}
}

// counters reads the current leaves_count and elements_count, defaulting
// both to zero for a namespace that has never been written to.
func (l *Log) counters(ctx context.Context) (leavesCount, elementsCount uint64, err error) {
	keys := []kvstore.Key{l.metaKey(kvstore.SubkeyLeavesCount), l.metaKey(kvstore.SubkeyElementsCount)}
	values, ok, err := l.store.GetMany(ctx, keys)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: read counters: %v", kvstore.ErrStoreError, err)
	}
	if ok[0] {
		leavesCount, err = strconv.ParseUint(string(values[0]), 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: leaves_count is not a decimal integer: %v", kvstore.ErrStoreError, err)
		}
	}
	if ok[1] {
		elementsCount, err = strconv.ParseUint(string(values[1]), 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: elements_count is not a decimal integer: %v", kvstore.ErrStoreError, err)
		}
	}
	return leavesCount, elementsCount, nil
}

// loadHashes reads the hashes at positions, in the order given, failing
// with ErrHashMissing if any position is absent.
func (l *Log) loadHashes(ctx context.Context, positions []mmr.ElementIndex) ([]digest.Hash32, error) {
	keys := make([]kvstore.Key, len(positions))
	for i, p := range positions {
		keys[i] = l.hashKey(p)
	}
	values, ok, err := l.store.GetMany(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("%w: read hashes: %v", kvstore.ErrStoreError, err)
	}
	out := make([]digest.Hash32, len(positions))
	for i, v := range values {
		if !ok[i] {
			return nil, fmt.Errorf("%w: element %d", ErrHashMissing, positions[i])
		}
		h, err := digest.FromBytes(v)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", kvstore.ErrStoreError, positions[i], err)
		}
		out[i] = h
	}
	return out, nil
}

// CreateFromPeaks seeds an empty Log with a known peak set, without
// reconstructing the interior nodes beneath the peaks. Proofs that would
// need those interior nodes cannot be generated afterwards; appends and
// their proofs remain correct.
func CreateFromPeaks(ctx context.Context, store kvstore.Store, h hasher.Hasher, id kvstore.MmrID, peaks []digest.Hash32, elementsCount uint64, opts ...LogOption) (*Log, error) {
	l := New(store, h, id, opts...)

	_, currentElementsCount, err := l.counters(ctx)
	if err != nil {
		return nil, err
	}
	if currentElementsCount != 0 {
		return nil, ErrNonEmptyMMR
	}

	peakPositions, err := mmr.FindPeaks(elementsCount)
	if err != nil {
		return nil, err
	}
	if len(peakPositions) != len(peaks) {
		return nil, fmt.Errorf("%w: expected %d peaks, got %d", ErrInvalidPeaksCountForElements, len(peakPositions), len(peaks))
	}

	leavesCount, err := mmr.ElementsCountToLeafCount(elementsCount)
	if err != nil {
		return nil, err
	}

	entries := make(map[kvstore.Key][]byte, len(peaks)+3)
	for i, pos := range peakPositions {
		entries[l.hashKey(pos)] = peaks[i].Bytes()
	}
	entries[l.metaKey(kvstore.SubkeyLeavesCount)] = []byte(strconv.FormatUint(leavesCount, 10))
	entries[l.metaKey(kvstore.SubkeyElementsCount)] = []byte(strconv.FormatUint(elementsCount, 10))

	bag, err := l.fold(peaks)
	if err != nil {
		return nil, err
	}
	root, err := l.calculateRootHash(bag, elementsCount)
	if err != nil {
		return nil, err
	}
	entries[l.metaKey(kvstore.SubkeyRootHash)] = root.Bytes()

	if err := l.store.SetMany(ctx, entries); err != nil {
		return nil, fmt.Errorf("%w: seed namespace: %v", kvstore.ErrStoreError, err)
	}

	l.log.Infof("CreateFromPeaks: namespace=%s peaks=%d elements_count=%d root=%x", l.id, len(peaks), elementsCount, root.Bytes())

	return l, nil
}
