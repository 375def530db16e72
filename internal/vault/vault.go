package vault

import "errors"

// ErrSnapshotNotFound is returned by GetSnapshot when a book has never been
// backed up to the vault.
var ErrSnapshotNotFound = errors.New("no snapshot found")
