package nb

import "io"

// Vault stores backup snapshots of a contact book away from the local data
// file. Snapshots are addressed by book ID; only the newest snapshot of each
// book is kept.
type Vault interface {
	// PutSnapshot stores a snapshot for bookID, replacing any previous one.
	// size is the number of bytes that will be read from r.
	// version is stored alongside the snapshot and must increase with every
	// backup of the same book.
	PutSnapshot(bookID string, r io.Reader, size int64, version int64) error

	// GetSnapshot writes the newest snapshot for bookID to w.
	GetSnapshot(bookID string, w io.Writer) error

	// GetSnapshotVersion returns the version of the newest snapshot for
	// bookID, or 0 if none has been stored.
	GetSnapshotVersion(bookID string) (int64, error)

	// ValidateSetup verifies that the vault is accessible and properly configured.
	ValidateSetup() error
}
