// Package kvstore defines the store capability the mmr engine persists node
// hashes and counters through, plus two concrete implementations: an
// in-memory map for tests and single-process use, and a SQLite backed store
// for anything that needs to survive a restart.
package kvstore

import (
	"context"
	"errors"
)

// Kind distinguishes the two families of value a Key can address.
type Kind string

const (
	// KindMeta addresses a namespace-level counter or summary value:
	// "leaves_count", "elements_count" or "root_hash".
	KindMeta Kind = "meta"

	// KindHashes addresses a single node's hash, keyed by its element
	// index rendered as an ASCII decimal Subkey.
	KindHashes Kind = "hashes"
)

// Meta subkeys.
const (
	SubkeyLeavesCount   = "leaves_count"
	SubkeyElementsCount = "elements_count"
	SubkeyRootHash      = "root_hash"
)

// Key names a single stored value within one MMR namespace.
type Key struct {
	MmrID  MmrID
	Kind   Kind
	Subkey string
}

// ErrStoreError wraps any underlying store I/O or transaction failure.
var ErrStoreError = errors.New("kvstore: store error")

// Store is the persistence capability the merklelog engine is built
// against. Every method takes a context so implementations backed by a
// network or a database driver can honour cancellation and deadlines.
type Store interface {
	// Get returns the value at key, or ok=false if key is not present.
	Get(ctx context.Context, key Key) (value []byte, ok bool, err error)

	// GetMany returns values for keys in the same order as keys. ok[i] is
	// false where keys[i] is not present.
	GetMany(ctx context.Context, keys []Key) (values [][]byte, ok []bool, err error)

	// Set writes a single key/value pair.
	Set(ctx context.Context, key Key, value []byte) error

	// SetMany writes every entry atomically: on any failure, none of the
	// entries are visible to a subsequent Get/GetMany.
	SetMany(ctx context.Context, entries map[Key][]byte) error
}
