package encryption

import "errors"

var (
	// ErrIncorrectPassphrase is returned by Unlock when the passphrase does
	// not open the private key.
	ErrIncorrectPassphrase = errors.New("incorrect passphrase")

	// ErrKeysExist is returned by Setup when a key pair is already in place.
	ErrKeysExist = errors.New("encryption keys already exist")
)
