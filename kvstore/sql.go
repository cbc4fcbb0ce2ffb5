package kvstore

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Schema for the mmr key/value store.
const schema = `
CREATE TABLE IF NOT EXISTS mmr_kv (
    mmr_id  TEXT    NOT NULL,
    kind    TEXT    NOT NULL,
    subkey  TEXT    NOT NULL,
    value   BLOB    NOT NULL,
    PRIMARY KEY (mmr_id, kind, subkey)
);
`

// SQLStore is a Store backed by SQLite, one row per key in a single table.
type SQLStore struct {
	db *sql.DB
}

// OpenSQLStore opens (creating if necessary) a SQLite database at dsn and
// applies the schema. dsn is passed straight to the sqlite3 driver, so a
// caller wanting an ephemeral in-memory store can use
// "file::memory:?cache=shared".
func OpenSQLStore(dsn string) (*SQLStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %v", ErrStoreError, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: apply schema: %v", ErrStoreError, err)
	}

	return &SQLStore{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// Get implements Store.
func (s *SQLStore) Get(ctx context.Context, key Key) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(
		ctx,
		`SELECT value FROM mmr_kv WHERE mmr_id = ? AND kind = ? AND subkey = ?`,
		key.MmrID.String(), string(key.Kind), key.Subkey,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: get %v: %v", ErrStoreError, key, err)
	}
	return value, true, nil
}

// GetMany implements Store.
func (s *SQLStore) GetMany(ctx context.Context, keys []Key) ([][]byte, []bool, error) {
	values := make([][]byte, len(keys))
	ok := make([]bool, len(keys))
	for i, key := range keys {
		v, found, err := s.Get(ctx, key)
		if err != nil {
			return nil, nil, err
		}
		values[i] = v
		ok[i] = found
	}
	return values, ok, nil
}

// Set implements Store.
func (s *SQLStore) Set(ctx context.Context, key Key, value []byte) error {
	return s.SetMany(ctx, map[Key][]byte{key: value})
}

// SetMany implements Store, writing every entry inside a single transaction
// so the batch is atomic: commit makes every entry visible, rollback makes
// none of them visible.
func (s *SQLStore) SetMany(ctx context.Context, entries map[Key][]byte) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", ErrStoreError, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op once committed

	stmt, err := tx.PrepareContext(
		ctx,
		`INSERT INTO mmr_kv (mmr_id, kind, subkey, value) VALUES (?, ?, ?, ?)
		 ON CONFLICT(mmr_id, kind, subkey) DO UPDATE SET value = excluded.value`,
	)
	if err != nil {
		return fmt.Errorf("%w: prepare statement: %v", ErrStoreError, err)
	}
	defer stmt.Close()

	for key, value := range entries {
		if _, err := stmt.ExecContext(ctx, key.MmrID.String(), string(key.Kind), key.Subkey, value); err != nil {
			return fmt.Errorf("%w: set %v: %v", ErrStoreError, key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit transaction: %v", ErrStoreError, err)
	}
	return nil
}
