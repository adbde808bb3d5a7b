package docstore

import (
	"fmt"

	"github.com/DROP-ML/MoneyBalance/internal/log"
)

// Config holds backend selection and per-backend settings.
type Config struct {
	Type BackendType

	// SQLite backend
	SQLiteDBPath string

	// File backend
	DataDirectory string
}

// CleanupFunc releases backend resources. It may be nil.
type CleanupFunc func() error

// Result pairs an opened store with its cleanup function.
type Result struct {
	Store   Store
	Cleanup CleanupFunc
}

// Open creates the configured backend.
func Open(cfg Config, logger *log.Logger) (*Result, error) {
	logger = logger.WithComponent(log.ComponentStore)

	switch cfg.Type {
	case SQLiteBackend:
		store, err := NewSQLiteStore(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		logger.Info("Initialized sqlite document store", "db_path", cfg.SQLiteDBPath)
		return &Result{Store: store, Cleanup: store.Close}, nil

	case FileBackend:
		dir := cfg.DataDirectory
		if dir == "" {
			dir = "data"
		}
		store, err := NewFileStore(dir)
		if err != nil {
			return nil, fmt.Errorf("initialize file store: %w", err)
		}
		logger.Info("Initialized file document store", "data_directory", dir)
		return &Result{Store: store}, nil

	case MemoryBackend:
		logger.Info("Initialized memory document store")
		return &Result{Store: NewMemoryStore()}, nil

	default:
		return nil, fmt.Errorf("invalid backend type: %s", cfg.Type)
	}
}
