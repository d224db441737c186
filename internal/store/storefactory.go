package store

import (
	"context"
	"fmt"
	"log/slog"
)

// NewResultStore opens the store for storeType ("sqlite" or "redis") and ensures
// its schema exists.
func NewResultStore(ctx context.Context, storeType, connectionString string) (store ResultStore, err error) {
	switch storeType {
	case "sqlite":
		store, err = NewSQLiteStore(connectionString)
	case "redis":
		store, err = NewRedisStore(connectionString)
	default:
		return nil, fmt.Errorf("unsupported result store: %s", storeType)
	}
	if err != nil {
		return nil, err
	}

	slog.Debug("initializing result store", "type", storeType)
	if err = store.Init(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to initialize %s store: %w", storeType, err)
	}
	return store, nil
}
