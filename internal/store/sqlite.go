package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

// SQLite stores each key as a row of the kv table.
type SQLite struct {
	db   *sql.DB
	path string
}

// OpenSQLite creates or opens the database at path. The parent directory is
// created if it does not exist.
func OpenSQLite(path string) (*SQLite, error) {
	if path == "" {
		return nil, swatcherrors.NewStorageError(DriverSQLite, "open", "", fmt.Errorf("path is required"))
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, swatcherrors.NewStorageError(DriverSQLite, "open", "", fmt.Errorf("failed to create directory %s: %w", dir, err))
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)")
	if err != nil {
		return nil, swatcherrors.NewStorageError(DriverSQLite, "open", "", err)
	}

	s := &SQLite{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	const ddl = `CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`
	if _, err := s.db.Exec(ddl); err != nil {
		return swatcherrors.NewStorageError(DriverSQLite, "migrate", "", err)
	}
	return nil
}

func (s *SQLite) Get(key string, dest any) (bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, swatcherrors.NewStorageError(DriverSQLite, "read", key, err)
	}
	if err := json.Unmarshal([]byte(value), dest); err != nil {
		return true, swatcherrors.NewStorageError(DriverSQLite, "decode", key, err)
	}
	return true, nil
}

func (s *SQLite) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return swatcherrors.NewStorageError(DriverSQLite, "encode", key, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(raw),
	)
	if err != nil {
		return swatcherrors.NewStorageError(DriverSQLite, "write", key, err)
	}
	return nil
}

func (s *SQLite) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return swatcherrors.NewStorageError(DriverSQLite, "delete", key, err)
	}
	return nil
}

func (s *SQLite) Driver() string { return DriverSQLite }
func (s *SQLite) Path() string   { return s.path }

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}
