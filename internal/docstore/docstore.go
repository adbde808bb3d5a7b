// Package docstore is the persistence boundary: a key-value store of UTF-8
// JSON documents, one document per entity collection. It is the only
// package that touches the underlying medium.
package docstore

import "context"

// Store is the document store port. Get reports absence as (nil, false,
// nil); a nil error with ok=false means the key simply has no document.
// Set and RemoveMany surface medium failures to the caller unretried.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	RemoveMany(ctx context.Context, keys []string) error
}

// BackendType selects the storage medium.
type BackendType string

const (
	SQLiteBackend BackendType = "sqlite"
	FileBackend   BackendType = "file"
	MemoryBackend BackendType = "memory"
)

func (bt BackendType) String() string { return string(bt) }

// IsValid returns true for a known backend type.
func (bt BackendType) IsValid() bool {
	switch bt {
	case SQLiteBackend, FileBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
