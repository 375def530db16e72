package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetDefaults(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	fallbackBase := filepath.Join(home, ".local", "share", "networkbook")

	tests := []struct {
		name       string
		configPath string
		nbHome     string
		wantConfig string
		wantBase   string
	}{
		{"env vars set", "/custom/networkbook.toml", "/custom/nb", "/custom/networkbook.toml", "/custom/nb"},
		{"only NB_HOME set", "", "/custom/nb", filepath.Join(home, ".config", "networkbook.toml"), "/custom/nb"},
		{"home dir fallback", "", "", filepath.Join(home, ".config", "networkbook.toml"), fallbackBase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NB_CONFIG_PATH", tt.configPath)
			t.Setenv("NB_HOME", tt.nbHome)

			defaults, err := GetDefaults()
			if err != nil {
				t.Fatalf("GetDefaults() error = %v", err)
			}

			want := map[string]string{
				"config_path":      tt.wantConfig,
				"base_dir":         tt.wantBase,
				"log_dir":          filepath.Join(tt.wantBase, "log"),
				"json_path":        filepath.Join(tt.wantBase, "networkbook.json"),
				"sqlite_path":      filepath.Join(tt.wantBase, "networkbook.db"),
				"public_key_path":  filepath.Join(tt.wantBase, "keys", "networkbook.pub"),
				"private_key_path": filepath.Join(tt.wantBase, "keys", "networkbook.key"),
			}
			for key, w := range want {
				if got := defaults[key]; got != w {
					t.Errorf("%s = %q, want %q", key, got, w)
				}
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	base := t.TempDir()
	t.Setenv("NB_CONFIG_PATH", filepath.Join(base, "networkbook.toml"))
	t.Setenv("NB_HOME", base)

	tests := []struct {
		storageType string
		wantPath    string
	}{
		{"json", filepath.Join(base, "networkbook.json")},
		{"sqlite", filepath.Join(base, "networkbook.db")},
	}

	for _, tt := range tests {
		t.Run(tt.storageType, func(t *testing.T) {
			cfg, err := DefaultConfig("book-1", tt.storageType)
			if err != nil {
				t.Fatalf("DefaultConfig() error = %v", err)
			}
			if cfg.BookID != "book-1" || cfg.BaseDir != base {
				t.Errorf("DefaultConfig() book = %q in %q, want book-1 in %q", cfg.BookID, cfg.BaseDir, base)
			}
			if cfg.Storage.Type != tt.storageType || cfg.Storage.Path != tt.wantPath {
				t.Errorf("Storage = %+v, want %s at %s", cfg.Storage, tt.storageType, tt.wantPath)
			}
			if want := filepath.Join(base, "keys", "networkbook.key"); cfg.Encryption.PrivateKeyPath != want {
				t.Errorf("PrivateKeyPath = %q, want %q", cfg.Encryption.PrivateKeyPath, want)
			}
		})
	}

	t.Run("unknown storage", func(t *testing.T) {
		if _, err := DefaultConfig("book-1", "tape"); err == nil {
			t.Error("DefaultConfig() error = nil for unknown storage type")
		}
	})
}
