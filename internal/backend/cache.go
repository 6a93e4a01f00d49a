package backend

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"time"

	_ "modernc.org/sqlite"
)

// Cache is the incremental build database. A build skips re-emitting an
// artifact when the source hash is already recorded with the same
// artifact path.
type Cache struct {
	db *sql.DB
}

const cacheSchema = `
CREATE TABLE IF NOT EXISTS builds (
	source_hash TEXT NOT NULL,
	source_path TEXT NOT NULL,
	artifact    TEXT NOT NULL,
	session     TEXT NOT NULL,
	built_at    TEXT NOT NULL,
	PRIMARY KEY (source_hash, artifact)
);`

// OpenCache opens (creating if needed) the cache database at path.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(cacheSchema); err != nil {
		db.Close()
		return nil, err
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error { return c.db.Close() }

// HashSource computes the cache key of one source text.
func HashSource(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// IsFresh reports whether an artifact for this source hash is already
// recorded.
func (c *Cache) IsFresh(sourceHash, artifact string) (bool, error) {
	row := c.db.QueryRow(
		`SELECT COUNT(*) FROM builds WHERE source_hash = ? AND artifact = ?`,
		sourceHash, artifact,
	)
	var n int
	if err := row.Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// Record stores one completed artifact build. Re-recording the same
// source/artifact pair overwrites the previous session stamp.
func (c *Cache) Record(sourceHash, sourcePath, artifact, session string) error {
	_, err := c.db.Exec(
		`INSERT INTO builds (source_hash, source_path, artifact, session, built_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (source_hash, artifact) DO UPDATE SET
		 	source_path = excluded.source_path,
		 	session = excluded.session,
		 	built_at = excluded.built_at`,
		sourceHash, sourcePath, artifact, session, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}
