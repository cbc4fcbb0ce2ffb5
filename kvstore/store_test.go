package kvstore

import (
	"context"
	"path/filepath"
	"testing"
)

// backends returns one fresh Store of each kind, keyed by name, so the
// contract tests below run identically against every implementation.
func backends(t *testing.T) map[string]Store {
	t.Helper()

	mem := NewMemory()

	sqlStore, err := OpenSQLStore(filepath.Join(t.TempDir(), "kvstore.db"))
	if err != nil {
		t.Fatalf("OpenSQLStore failed: %v", err)
	}
	t.Cleanup(func() { sqlStore.Close() })

	return map[string]Store{
		"Memory":   mem,
		"SQLStore": sqlStore,
	}
}

func TestStoreGetMissing(t *testing.T) {
	ctx := context.Background()
	id := NewMmrID()

	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := store.Get(ctx, Key{MmrID: id, Kind: KindMeta, Subkey: SubkeyLeavesCount})
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if ok {
				t.Error("expected ok=false for missing key")
			}
		})
	}
}

func TestStoreSetAndGet(t *testing.T) {
	ctx := context.Background()
	id := NewMmrID()
	key := Key{MmrID: id, Kind: KindHashes, Subkey: "7"}
	value := []byte{0xde, 0xad, 0xbe, 0xef}

	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Set(ctx, key, value); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			got, ok, err := store.Get(ctx, key)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if !ok {
				t.Fatal("expected ok=true after Set")
			}
			if string(got) != string(value) {
				t.Errorf("got %x, want %x", got, value)
			}
		})
	}
}

func TestStoreSetOverwrites(t *testing.T) {
	ctx := context.Background()
	id := NewMmrID()
	key := Key{MmrID: id, Kind: KindMeta, Subkey: SubkeyRootHash}

	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Set(ctx, key, []byte{0x01}); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if err := store.Set(ctx, key, []byte{0x02}); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			got, ok, err := store.Get(ctx, key)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if !ok || len(got) != 1 || got[0] != 0x02 {
				t.Errorf("expected overwritten value [0x02], got %x (ok=%v)", got, ok)
			}
		})
	}
}

func TestStoreGetManyMixedPresence(t *testing.T) {
	ctx := context.Background()
	id := NewMmrID()
	present := Key{MmrID: id, Kind: KindHashes, Subkey: "1"}
	absent := Key{MmrID: id, Kind: KindHashes, Subkey: "2"}

	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Set(ctx, present, []byte{0x42}); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			values, ok, err := store.GetMany(ctx, []Key{present, absent})
			if err != nil {
				t.Fatalf("GetMany failed: %v", err)
			}
			if len(values) != 2 || len(ok) != 2 {
				t.Fatalf("expected 2 results, got values=%d ok=%d", len(values), len(ok))
			}
			if !ok[0] || values[0][0] != 0x42 {
				t.Errorf("expected present key to resolve, got ok=%v value=%x", ok[0], values[0])
			}
			if ok[1] {
				t.Error("expected absent key to resolve ok=false")
			}
		})
	}
}

func TestStoreSetManyWritesEveryEntry(t *testing.T) {
	ctx := context.Background()
	id := NewMmrID()
	k1 := Key{MmrID: id, Kind: KindHashes, Subkey: "1"}
	k2 := Key{MmrID: id, Kind: KindHashes, Subkey: "2"}
	k3 := Key{MmrID: id, Kind: KindHashes, Subkey: "3"}

	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			entries := map[Key][]byte{
				k1: {0x01},
				k2: {0x02},
				k3: {0x03},
			}
			if err := store.SetMany(ctx, entries); err != nil {
				t.Fatalf("SetMany failed: %v", err)
			}

			for k, want := range entries {
				got, ok, err := store.Get(ctx, k)
				if err != nil {
					t.Fatalf("Get failed: %v", err)
				}
				if !ok || got[0] != want[0] {
					t.Errorf("key %v: got %x (ok=%v), want %x", k, got, ok, want)
				}
			}
		})
	}
}

func TestStoreNamespaceIsolation(t *testing.T) {
	ctx := context.Background()
	idA := NewMmrID()
	idB := NewMmrID()
	subkey := SubkeyElementsCount

	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Set(ctx, Key{MmrID: idA, Kind: KindMeta, Subkey: subkey}, []byte{0xaa}); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			_, ok, err := store.Get(ctx, Key{MmrID: idB, Kind: KindMeta, Subkey: subkey})
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if ok {
				t.Error("expected different mmr id to be isolated")
			}
		})
	}
}

func TestMmrIDRoundTrip(t *testing.T) {
	id := NewMmrID()
	parsed, err := ParseMmrID(id.String())
	if err != nil {
		t.Fatalf("ParseMmrID failed: %v", err)
	}
	if parsed != id {
		t.Errorf("round-trip mismatch: got %s, want %s", parsed, id)
	}
}

func TestParseMmrIDRejectsGarbage(t *testing.T) {
	if _, err := ParseMmrID("not-a-uuid"); err == nil {
		t.Error("expected error parsing invalid mmr id")
	}
}
