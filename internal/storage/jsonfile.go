package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"networkbook/internal/nb"
	"networkbook/internal/person"
)

// JSONFileStorage keeps the contact book in a single JSON file. Saves write
// a temp file in the same directory and rename it over the old one, so a
// crash mid-save leaves the previous book intact.
type JSONFileStorage struct {
	path  string
	codec JSONCodec
}

var _ nb.Storage = (*JSONFileStorage)(nil)

// NewJSONFileStorage returns a store backed by the file at path. The file
// and its directory are created on the first Save.
func NewJSONFileStorage(path string) *JSONFileStorage {
	return &JSONFileStorage{path: path}
}

// Path returns the data file location.
func (s *JSONFileStorage) Path() string {
	return s.path
}

// Load reads the book. A missing file is an empty book.
func (s *JSONFileStorage) Load() ([]person.Person, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []person.Person{}, nil
		}
		return nil, fmt.Errorf("reading data file: %w", err)
	}

	persons, err := s.codec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	return persons, nil
}

// Save overwrites the file with persons.
func (s *JSONFileStorage) Save(persons []person.Person) error {
	var buf bytes.Buffer
	if err := s.codec.Encode(&buf, persons); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(buf.Bytes()); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replacing data file: %w", err)
	}

	success = true
	return nil
}

// Close is a no-op; the file is only open during Load and Save.
func (s *JSONFileStorage) Close() error {
	return nil
}
