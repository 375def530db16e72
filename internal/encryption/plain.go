package encryption

import (
	"fmt"
	"io"

	"networkbook/internal/nb"
)

// PlainEncryptor stores snapshots unencrypted. It is used when encryption is
// configured as "none".
type PlainEncryptor struct{}

var (
	_ nb.Encryptor         = PlainEncryptor{}
	_ nb.DecryptionContext = PlainEncryptor{}
)

func (PlainEncryptor) Setup(string) error { return nil }

func (PlainEncryptor) Encrypt(r io.Reader, w io.Writer) error {
	if _, err := io.Copy(w, r); err != nil {
		return fmt.Errorf("copying data: %w", err)
	}
	return nil
}

func (p PlainEncryptor) Unlock(string) (nb.DecryptionContext, error) { return p, nil }

func (PlainEncryptor) IsConfigured() bool { return true }

func (PlainEncryptor) Decrypt(r io.Reader, w io.Writer) error {
	if _, err := io.Copy(w, r); err != nil {
		return fmt.Errorf("copying data: %w", err)
	}
	return nil
}
