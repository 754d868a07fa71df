package storage

import "github.com/mindpingapp/mindping/internal/storage/sqlite"

// SQLiteStore is the default on-device storage backend
type SQLiteStore = sqlite.Store

// NewSQLiteStore creates a SQLite-backed provider at the given path
func NewSQLiteStore(path string) *SQLiteStore {
	return sqlite.NewStore(path)
}

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = sqlite.ErrNotFound
