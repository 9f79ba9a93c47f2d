// Package storage elige el backend del store según la configuración.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"petpal/internal/adapters/storage/file"
	mem "petpal/internal/adapters/storage/memory"
	pg "petpal/internal/adapters/storage/postgres"
	"petpal/internal/config"
	"petpal/internal/platform/metrics"
	"petpal/internal/ports/kv"
)

// Open devuelve el store ya instrumentado y con namespace, más su close.
// m puede ser nil.
func Open(ctx context.Context, cfg config.StorageConfig, m *metrics.Metrics) (kv.Store, func() error, error) {
	var (
		base    kv.Store
		closeFn = func() error { return nil }
	)

	switch cfg.Backend {
	case config.BackendMemory, "":
		base = mem.NewStore()
	case config.BackendFile:
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("storage: create dir: %w", err)
		}
		s, err := file.Open(cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("storage: open file store: %w", err)
		}
		base = s
	case config.BackendPostgres:
		s, db, err := pg.OpenKVStore(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		base = s
		closeFn = db.Close
	default:
		return nil, nil, fmt.Errorf("storage: unknown backend %q", cfg.Backend)
	}

	store := kv.Prefixed(metrics.InstrumentStore(base, m), cfg.Namespace)
	return store, closeFn, nil
}
