package encryption

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestTestEncryptor_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"contact book", []byte(`{"persons": [{"name": "Alex Yeoh", "phone": "87438807"}]}`)},
		{"empty book", []byte(`{"persons": []}`)},
		{"no data", nil},
		{"large book", bytes.Repeat([]byte(`{"name": "Bernice Yu"},`), 5000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := NewTestEncryptor()
			if err := e.Setup(""); err != nil {
				t.Fatalf("Setup() error = %v", err)
			}
			if !e.IsConfigured() {
				t.Fatal("IsConfigured() = false, want true")
			}

			var sealed bytes.Buffer
			if err := e.Encrypt(bytes.NewReader(tt.plaintext), &sealed); err != nil {
				t.Fatalf("Encrypt() error = %v", err)
			}
			if !bytes.HasPrefix(sealed.Bytes(), testHeader) {
				t.Errorf("Encrypt() output starts with %q, want header %q", sealed.Bytes()[:len(testHeader)], testHeader)
			}

			dc, err := e.Unlock("whatever")
			if err != nil {
				t.Fatalf("Unlock() error = %v", err)
			}
			var opened bytes.Buffer
			if err := dc.Decrypt(&sealed, &opened); err != nil {
				t.Fatalf("Decrypt() error = %v", err)
			}
			if !bytes.Equal(opened.Bytes(), tt.plaintext) {
				t.Errorf("Decrypt() = %q, want %q", opened.Bytes(), tt.plaintext)
			}
		})
	}
}

func TestTestEncryptor_SameInputSameOutput(t *testing.T) {
	t.Parallel()

	e := NewTestEncryptor()
	seal := func() []byte {
		var buf bytes.Buffer
		if err := e.Encrypt(bytes.NewReader([]byte("Alex Yeoh")), &buf); err != nil {
			t.Fatalf("Encrypt() error = %v", err)
		}
		return buf.Bytes()
	}
	if first, second := seal(), seal(); !bytes.Equal(first, second) {
		t.Errorf("Encrypt() = %q then %q, want identical output", first, second)
	}
}

func TestTestDecryptionContext_Decrypt_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
		isEOF bool
	}{
		{"plain JSON", []byte(`{"persons": []}`), false},
		{"truncated header", testHeader[:3], false},
		{"empty", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			err := (&TestDecryptionContext{}).Decrypt(bytes.NewReader(tt.input), &out)
			if err == nil {
				t.Fatal("Decrypt() error = nil, want error")
			}
			if tt.isEOF && !errors.Is(err, io.EOF) {
				t.Errorf("Decrypt() error = %v, want io.EOF", err)
			}
			if out.Len() != 0 {
				t.Errorf("Decrypt() wrote %d bytes on failure", out.Len())
			}
		})
	}
}
