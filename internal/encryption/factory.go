package encryption

import (
	"fmt"

	"networkbook/internal/config"
	"networkbook/internal/nb"
)

// NewEncryptorFromConfig creates an Encryptor based on the configuration type.
func NewEncryptorFromConfig(cfg config.EncryptionConfig) (nb.Encryptor, error) {
	switch cfg.Type {
	case "none", "":
		return PlainEncryptor{}, nil
	case "age":
		return NewAgeEncryptor(cfg), nil
	case "test":
		return NewTestEncryptor(), nil
	default:
		return nil, fmt.Errorf("unknown encryption type: %q", cfg.Type)
	}
}
