package storage

import (
	"slices"
	"sync"

	"networkbook/internal/nb"
	"networkbook/internal/person"
)

// MemoryStorage keeps the book in memory. Useful for tests and for sessions
// that should leave nothing on disk. Safe for concurrent use.
type MemoryStorage struct {
	mu      sync.RWMutex
	persons []person.Person
	saves   int
}

var _ nb.Storage = (*MemoryStorage)(nil)

// NewMemoryStorage returns a store preloaded with persons.
func NewMemoryStorage(persons ...person.Person) *MemoryStorage {
	return &MemoryStorage{persons: slices.Clone(persons)}
}

func (s *MemoryStorage) Load() ([]person.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]person.Person{}, s.persons...), nil
}

func (s *MemoryStorage) Save(persons []person.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persons = slices.Clone(persons)
	s.saves++
	return nil
}

// Saves returns how many times Save has been called.
func (s *MemoryStorage) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

func (s *MemoryStorage) Close() error {
	return nil
}
