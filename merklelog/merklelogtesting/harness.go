// Package merklelogtesting provides the store-backend-parity harness shared
// by the merklelog package's tests: every scenario runs once against
// kvstore.Memory and once against kvstore.SQLStore, asserting identical
// results.
package merklelogtesting

import (
	"path/filepath"
	"testing"

	"github.com/bankaixyz/mmr/digest"
	"github.com/bankaixyz/mmr/hasher"
	"github.com/bankaixyz/mmr/kvstore"
	"github.com/bankaixyz/mmr/merklelog"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/stretchr/testify/require"
)

// init configures the package-global logger once, the way the teacher's
// enumeratepaths_test.go and mmrtesting.NewTestContext do, so scenario tests
// don't spam stdout with every Append/VerifyProof log line.
func init() {
	logger.New("NOOP")
}

// Backend names a concrete kvstore.Store construction under test.
type Backend struct {
	Name  string
	Store kvstore.Store
}

// Backends returns one fresh Memory store and one fresh SQLStore (backed by
// a temp-dir SQLite file), ready to bind a Log against.
func Backends(t *testing.T) []Backend {
	t.Helper()

	sqlStore, err := kvstore.OpenSQLStore(filepath.Join(t.TempDir(), "merklelog.db"))
	require.NoError(t, err, "failed to open SQLStore backend")
	t.Cleanup(func() { sqlStore.Close() })

	return []Backend{
		{Name: "Memory", Store: kvstore.NewMemory()},
		{Name: "SQLStore", Store: sqlStore},
	}
}

// RunOnEveryBackend runs fn once per Backend returned by Backends, as a
// subtest named after the backend.
func RunOnEveryBackend(t *testing.T, fn func(t *testing.T, store kvstore.Store)) {
	t.Helper()
	for _, b := range Backends(t) {
		b := b
		t.Run(b.Name, func(t *testing.T) {
			fn(t, b.Store)
		})
	}
}

// KeccakLeaves returns n leaves in hash domain, leaf i (1-indexed) being 32
// bytes of value byte(i) repeated - the "L_i = byte i repeated 32 times"
// fixture used throughout the scenario tests.
func KeccakLeaves(n int) []digest.Hash32 {
	leaves := make([]digest.Hash32, n)
	for i := range leaves {
		var h digest.Hash32
		for j := range h {
			h[j] = byte(i + 1)
		}
		leaves[i] = h
	}
	return leaves
}

// NewKeccakLog binds a fresh merklelog.Log to store using the Keccak
// hasher, with a freshly minted namespace.
func NewKeccakLog(store kvstore.Store) *merklelog.Log {
	return merklelog.New(store, hasher.NewKeccak(), kvstore.MmrID{})
}
