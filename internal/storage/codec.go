package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"networkbook/internal/nb"
	"networkbook/internal/person"
)

// jsonBook is the stored form of the whole contact book.
type jsonBook struct {
	Persons []jsonPerson `json:"persons"`
}

// JSONCodec reads and writes the contact book as a JSON document of the
// form {"persons": [...]}.
type JSONCodec struct{}

var _ nb.Codec = JSONCodec{}

// Encode writes persons as an indented JSON document.
func (JSONCodec) Encode(w io.Writer, persons []person.Person) error {
	book := jsonBook{Persons: make([]jsonPerson, len(persons))}
	for i, p := range persons {
		book.Persons[i] = fromPerson(p)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(book); err != nil {
		return fmt.Errorf("encoding contact book: %w", err)
	}
	return nil
}

// Decode reads a JSON document written by Encode. Every contact is
// validated, and two contacts with the same name are rejected with
// nb.ErrDuplicateRecord.
func (JSONCodec) Decode(r io.Reader) ([]person.Person, error) {
	var book jsonBook
	if err := json.NewDecoder(r).Decode(&book); err != nil {
		return nil, fmt.Errorf("decoding contact book: %w", err)
	}

	persons := make([]person.Person, 0, len(book.Persons))
	for i, jp := range book.Persons {
		p, err := jp.toPerson()
		if err != nil {
			return nil, fmt.Errorf("contact %d: %w", i+1, err)
		}
		if slices.ContainsFunc(persons, p.IsSame) {
			return nil, fmt.Errorf("contact %d: %s: %w", i+1, p.Name(), nb.ErrDuplicateRecord)
		}
		persons = append(persons, p)
	}
	return persons, nil
}
