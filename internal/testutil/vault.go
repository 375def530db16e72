package testutil

import (
	"networkbook/internal/nb"
	"networkbook/internal/vault"
)

// NewTestVault returns an empty in-memory vault.
func NewTestVault() *vault.MemoryVault {
	return vault.NewMemoryVault("test-vault")
}

// Compile-time check that the test vault satisfies the service's interface.
var _ nb.Vault = (*vault.MemoryVault)(nil)
