package vault

import (
	"path/filepath"
	"testing"

	"networkbook/internal/config"
)

func TestNewVaultFromConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.VaultConfig
		wantErr bool
	}{
		{
			name: "memory vault",
			cfg:  config.VaultConfig{Type: "memory", Name: "test-memory"},
		},
		{
			name: "filesystem vault",
			cfg: config.VaultConfig{
				Type:        "filesystem",
				Name:        "test-fs",
				FSVaultRoot: filepath.Join(t.TempDir(), "vault"),
			},
		},
		{
			name:    "filesystem vault without root",
			cfg:     config.VaultConfig{Type: "filesystem", Name: "test-fs"},
			wantErr: true,
		},
		{
			name:    "s3 vault without bucket",
			cfg:     config.VaultConfig{Type: "s3", Name: "test-s3"},
			wantErr: true,
		},
		{
			name:    "unknown vault type",
			cfg:     config.VaultConfig{Type: "unknown", Name: "test-unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewVaultFromConfig(tt.cfg)

			if (err != nil) != tt.wantErr {
				t.Fatalf("NewVaultFromConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if got != nil {
					t.Errorf("NewVaultFromConfig() = %v, want nil on error", got)
				}
				return
			}

			if err := got.ValidateSetup(); err != nil {
				t.Errorf("ValidateSetup() error = %v", err)
			}
		})
	}
}

func TestNewVaultFromConfig_S3(t *testing.T) {
	cfg := config.VaultConfig{
		Type:              "s3",
		Name:              "cloud",
		S3Bucket:          "contacts",
		S3Prefix:          "nb/",
		S3Region:          "eu-west-1",
		S3Endpoint:        "http://localhost:9000",
		S3AccessKeyID:     "test-key",
		S3SecretAccessKey: "test-secret",
	}

	got, err := NewVaultFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewVaultFromConfig() error = %v", err)
	}
	s3v, ok := got.(*S3Vault)
	if !ok {
		t.Fatalf("NewVaultFromConfig() = %T, want *S3Vault", got)
	}
	if s3v.bucket != "contacts" || s3v.key("work") != "nb/work.json" {
		t.Errorf("S3Vault bucket = %q, key = %q", s3v.bucket, s3v.key("work"))
	}
}
