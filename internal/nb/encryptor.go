package nb

import "io"

// Encryptor protects backup snapshots before they leave the machine.
// Encryption uses the public key only, so backups need no user input.
// Decryption requires a passphrase to unlock the private key, producing a
// DecryptionContext for the restore.
type Encryptor interface {
	// Setup performs one-time key generation. Called during
	// `networkbook config init --encrypt`.
	Setup(passphrase string) error

	// Encrypt encrypts data read from r and writes ciphertext to w.
	Encrypt(r io.Reader, w io.Writer) error

	// Unlock decrypts the private key using the passphrase.
	// Returns an error if the passphrase is incorrect.
	Unlock(passphrase string) (DecryptionContext, error)

	// IsConfigured reports whether the encryptor's keys are in place.
	IsConfigured() bool
}

// DecryptionContext holds an unlocked private key in memory for the duration
// of a restore. The unlocked key is never written to disk.
type DecryptionContext interface {
	// Decrypt decrypts data read from r and writes plaintext to w.
	Decrypt(r io.Reader, w io.Writer) error
}
