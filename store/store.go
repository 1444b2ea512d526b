// Package store provides the persistence boundary for symbol-graph
// fragments: an opaque, content-addressed cache keyed by (file path,
// content tag) backed by a pure-Go SQLite driver. Grounded on
// inspector/graph/hash.go's HighwayHash usage and
// agentic-research-mache/internal/graph/sqlite_graph.go's modernc.org/sqlite
// wiring conventions.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/minio/highwayhash"
	_ "modernc.org/sqlite"

	"github.com/viant/symbolreach/symgraph"
)

// hashKey is a fixed 32-byte HighwayHash key. Content tags are a cache
// index, not a security boundary, so a fixed key is sufficient.
var hashKey = []byte("symbolreach-content-tag-key-0000")

// ContentTag returns the stable hash used to detect whether a previously
// indexed file has changed.
func ContentTag(data []byte) (string, error) {
	h, err := highwayhash.New64(hashKey)
	if err != nil {
		return "", fmt.Errorf("%w: new hash: %v", ErrStore, err)
	}
	if _, err := h.Write(data); err != nil {
		return "", fmt.Errorf("%w: hash content: %v", ErrStore, err)
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}

// Store is a SQLite-backed cache of per-file graph fragments.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite database at path and
// ensures its schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrStore, path, err)
	}
	db.SetMaxOpenConns(1) // modernc.org/sqlite serializes writers; avoid SQLITE_BUSY churn.

	const schema = `
CREATE TABLE IF NOT EXISTS fragments (
	file_path   TEXT NOT NULL,
	content_tag TEXT NOT NULL,
	fragment    BLOB NOT NULL,
	PRIMARY KEY (file_path, content_tag)
);`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: migrate: %v", ErrStore, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// StoreFragment persists g under (filePath, contentTag), replacing any
// fragment previously stored for that exact pair.
func (s *Store) StoreFragment(ctx context.Context, filePath, contentTag string, g *symgraph.Graph) error {
	payload, err := json.Marshal(g.Export())
	if err != nil {
		return fmt.Errorf("%w: marshal fragment: %v", ErrStore, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO fragments (file_path, content_tag, fragment) VALUES (?, ?, ?)
		 ON CONFLICT(file_path, content_tag) DO UPDATE SET fragment = excluded.fragment`,
		filePath, contentTag, payload)
	if err != nil {
		return fmt.Errorf("%w: insert fragment for %s: %v", ErrStore, filePath, err)
	}
	return nil
}

// LoadFragment returns the fragment stored under (filePath, contentTag), if
// any. A cache miss is reported via the bool return, not an error — a miss
// means "re-index this file", which is a normal outcome, not a failure.
func (s *Store) LoadFragment(ctx context.Context, filePath, contentTag string) (*symgraph.Graph, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT fragment FROM fragments WHERE file_path = ? AND content_tag = ?`,
		filePath, contentTag)

	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: load fragment for %s: %v", ErrStore, filePath, err)
	}

	var snap symgraph.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, false, fmt.Errorf("%w: decode fragment for %s: %v", ErrStore, filePath, err)
	}
	return symgraph.Import(snap), true, nil
}

// LoadAll rehydrates and merges every stored fragment whose file_path is
// exactly path or is contained in the directory path (a "/"-prefix match),
// into a single unified graph.
func (s *Store) LoadAll(ctx context.Context, pathOrDir string) (*symgraph.Graph, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT fragment FROM fragments WHERE file_path = ? OR file_path LIKE ?`,
		pathOrDir, pathOrDir+"/%")
	if err != nil {
		return nil, fmt.Errorf("%w: load all under %s: %v", ErrStore, pathOrDir, err)
	}
	defer rows.Close()

	unified := symgraph.New()
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("%w: scan fragment under %s: %v", ErrStore, pathOrDir, err)
		}
		var snap symgraph.Snapshot
		if err := json.Unmarshal(payload, &snap); err != nil {
			return nil, fmt.Errorf("%w: decode fragment under %s: %v", ErrStore, pathOrDir, err)
		}
		symgraph.Merge(unified, symgraph.Import(snap))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate fragments under %s: %v", ErrStore, pathOrDir, err)
	}
	return unified, nil
}

// Delete removes every fragment stored for filePath, regardless of content
// tag — used when a file is deleted from the project so stale fragments
// don't leak into future LoadAll calls.
func (s *Store) Delete(ctx context.Context, filePath string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM fragments WHERE file_path = ?`, filePath)
	if err != nil {
		return fmt.Errorf("%w: delete fragments for %s: %v", ErrStore, filePath, err)
	}
	return nil
}
