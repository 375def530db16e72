package app

import (
	"fmt"
	"os"
	"path/filepath"

	"networkbook/internal/config"
)

// GetDefaults returns the default locations of the config file, the contact
// book and the backup keys. Environment variables:
//   - NB_CONFIG_PATH: config file location (default: ~/.config/networkbook.toml)
//   - NB_HOME: base directory for networkbook data (default: ~/.local/share/networkbook)
//
// Everything except config_path lives under base_dir.
func GetDefaults() (map[string]string, error) {
	configPath := os.Getenv("NB_CONFIG_PATH")
	baseDir := os.Getenv("NB_HOME")
	if configPath == "" || baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		if configPath == "" {
			configPath = filepath.Join(home, ".config", "networkbook.toml")
		}
		if baseDir == "" {
			baseDir = filepath.Join(home, ".local", "share", "networkbook")
		}
	}

	return map[string]string{
		"config_path":      configPath,
		"base_dir":         baseDir,
		"log_dir":          filepath.Join(baseDir, "log"),
		"json_path":        filepath.Join(baseDir, "networkbook.json"),
		"sqlite_path":      filepath.Join(baseDir, "networkbook.db"),
		"public_key_path":  filepath.Join(baseDir, "keys", "networkbook.pub"),
		"private_key_path": filepath.Join(baseDir, "keys", "networkbook.key"),
	}, nil
}

// DefaultConfig returns a config for a new book stored at the default
// locations. storageType selects "json" or "sqlite".
func DefaultConfig(bookID, storageType string) (*config.Config, error) {
	defaults, err := GetDefaults()
	if err != nil {
		return nil, err
	}

	cfg := config.NewConfig(bookID, defaults["base_dir"])
	cfg.LogDir = defaults["log_dir"]
	cfg.Encryption.PublicKeyPath = defaults["public_key_path"]
	cfg.Encryption.PrivateKeyPath = defaults["private_key_path"]
	switch storageType {
	case "json":
		cfg.Storage = config.StorageConfig{Type: "json", Path: defaults["json_path"]}
	case "sqlite":
		cfg.Storage = config.StorageConfig{Type: "sqlite", Path: defaults["sqlite_path"]}
	default:
		return nil, fmt.Errorf("unknown storage type: %s", storageType)
	}
	return cfg, nil
}
