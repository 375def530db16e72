package vault

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"networkbook/internal/nb"
)

// MemoryVault is an in-memory implementation of the Vault interface.
// It keeps one snapshot per book, making it useful for testing.
// This implementation is safe for concurrent use.
type MemoryVault struct {
	name      string
	snapshots map[string][]byte // bookID -> snapshot
	versions  map[string]int64  // bookID -> version
	mu        sync.RWMutex
}

// NewMemoryVault creates a new in-memory vault with the given name.
func NewMemoryVault(name string) *MemoryVault {
	return &MemoryVault{
		name:      name,
		snapshots: make(map[string][]byte),
		versions:  make(map[string]int64),
	}
}

// PutSnapshot stores the snapshot for bookID, replacing any previous one.
func (m *MemoryVault) PutSnapshot(bookID string, r io.Reader, size int64, version int64) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	if int64(len(data)) != size {
		return fmt.Errorf("size mismatch: expected %d bytes, got %d", size, len(data))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.snapshots[bookID] = data
	m.versions[bookID] = version
	return nil
}

// GetSnapshot writes the snapshot for bookID to w.
func (m *MemoryVault) GetSnapshot(bookID string, w io.Writer) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.snapshots[bookID]
	if !ok {
		return fmt.Errorf("book %s: %w", bookID, ErrSnapshotNotFound)
	}

	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}

// GetSnapshotVersion returns 0 if bookID has no snapshot.
func (m *MemoryVault) GetSnapshotVersion(bookID string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.versions[bookID], nil
}

// ValidateSetup always succeeds for in-memory vault.
func (m *MemoryVault) ValidateSetup() error {
	return nil
}

// Compile-time check that MemoryVault implements nb.Vault interface
var _ nb.Vault = (*MemoryVault)(nil)
