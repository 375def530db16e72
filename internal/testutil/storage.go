package testutil

import (
	"errors"
	"slices"
	"sync"

	"networkbook/internal/nb"
	"networkbook/internal/person"
)

// ErrStorageFailed is returned by a FlakyStorage once it is told to fail.
var ErrStorageFailed = errors.New("storage failed")

// FlakyStorage keeps contacts in memory and fails every Save after Fail is
// called. It is used to exercise rollback paths.
type FlakyStorage struct {
	mu      sync.Mutex
	persons []person.Person
	failing bool
	saves   int
}

var _ nb.Storage = (*FlakyStorage)(nil)

func NewFlakyStorage(persons ...person.Person) *FlakyStorage {
	return &FlakyStorage{persons: slices.Clone(persons)}
}

// Fail makes every later Save return ErrStorageFailed.
func (s *FlakyStorage) Fail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing = true
}

func (s *FlakyStorage) Load() ([]person.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.persons), nil
}

func (s *FlakyStorage) Save(persons []person.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return ErrStorageFailed
	}
	s.persons = slices.Clone(persons)
	s.saves++
	return nil
}

// Saves returns the number of successful saves.
func (s *FlakyStorage) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// Persons returns the contacts from the last successful save.
func (s *FlakyStorage) Persons() []person.Person {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.persons)
}

func (s *FlakyStorage) Close() error { return nil }
