package testutil

import (
	"networkbook/internal/encryption"
	"networkbook/internal/nb"
)

// NewTestEncryptor returns a reversible, key-free encryptor for backup tests.
func NewTestEncryptor() nb.Encryptor {
	return encryption.NewTestEncryptor()
}
