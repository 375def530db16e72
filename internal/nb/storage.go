package nb

import (
	"io"

	"networkbook/internal/person"
)

// Storage persists the whole contact book. Every Save overwrites the
// previous contents; the last successful Save wins.
type Storage interface {
	// Load returns the saved contacts in book order. A store that has never
	// been saved returns an empty slice.
	Load() ([]person.Person, error)

	// Save replaces the stored contacts with persons.
	Save(persons []person.Person) error

	// Close releases any resources held by the store.
	Close() error
}

// Codec converts a contact book to and from its document form. Decode
// re-validates every field, so a decoded book always satisfies the same
// rules as one built through commands.
type Codec interface {
	Encode(w io.Writer, persons []person.Person) error
	Decode(r io.Reader) ([]person.Person, error)
}
