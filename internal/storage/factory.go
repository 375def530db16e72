package storage

import (
	"fmt"

	"networkbook/internal/config"
	"networkbook/internal/nb"
)

// NewStorageFromConfig creates a Storage implementation based on the storage config type.
func NewStorageFromConfig(cfg config.StorageConfig) (nb.Storage, error) {
	switch cfg.Type {
	case "json", "":
		if cfg.Path == "" {
			return nil, fmt.Errorf("path required for json storage")
		}
		return NewJSONFileStorage(cfg.Path), nil
	case "sqlite":
		if cfg.Path == "" {
			return nil, fmt.Errorf("path required for sqlite storage")
		}
		s, err := NewSQLiteStorage(cfg.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "memory":
		return NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
