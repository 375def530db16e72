package nb

import (
	"fmt"
	"slices"

	"networkbook/internal/person"
)

// Predicate selects the contacts shown to the user.
type Predicate func(person.Person) bool

// Model is the contact book of one session: the contacts in book order plus
// the filter and sort order that produce the displayed list. Commands receive
// the Model explicitly; nothing else holds a reference to the contacts.
//
// Indexes passed to a Model are zero-based positions in the displayed list.
type Model struct {
	persons []person.Person
	filter  Predicate
	order   func(a, b person.Person) int
	version uint64
}

// NewModel returns a model holding persons in order. Two contacts with the
// same name are rejected with ErrDuplicateRecord.
func NewModel(persons ...person.Person) (*Model, error) {
	m := &Model{}
	if err := m.Replace(persons); err != nil {
		return nil, err
	}
	m.version = 0
	return m, nil
}

// Persons returns a copy of every contact in book order, ignoring the
// current filter and sort.
func (m *Model) Persons() []person.Person {
	return slices.Clone(m.persons)
}

// Displayed returns the contacts the user currently sees: the book filtered
// by the current predicate, then stably sorted by the current order.
func (m *Model) Displayed() []person.Person {
	shown := make([]person.Person, 0, len(m.persons))
	for _, p := range m.persons {
		if m.filter == nil || m.filter(p) {
			shown = append(shown, p)
		}
	}
	if m.order != nil {
		slices.SortStableFunc(shown, m.order)
	}
	return shown
}

// PersonAt returns the contact at index i of the displayed list.
func (m *Model) PersonAt(i int) (person.Person, error) {
	shown := m.Displayed()
	if i < 0 || i >= len(shown) {
		return person.Person{}, fmt.Errorf("index %d of %d displayed: %w", i+1, len(shown), ErrIndexOutOfRange)
	}
	return shown[i], nil
}

// HasPerson reports whether a contact with p's name is in the book.
func (m *Model) HasPerson(p person.Person) bool {
	return slices.ContainsFunc(m.persons, p.IsSame)
}

// AddPerson appends p to the book.
func (m *Model) AddPerson(p person.Person) error {
	if m.HasPerson(p) {
		return fmt.Errorf("adding %s: %w", p.Name(), ErrDuplicateRecord)
	}
	m.persons = append(m.persons, p)
	m.version++
	return nil
}

// SetPerson replaces target with edited at target's position. edited may
// keep target's name, but may not take the name of any other contact.
func (m *Model) SetPerson(target, edited person.Person) error {
	i := m.indexOf(target)
	if i < 0 {
		return fmt.Errorf("replacing %s: %w", target.Name(), ErrPersonNotFound)
	}
	if !target.IsSame(edited) && m.HasPerson(edited) {
		return fmt.Errorf("renaming %s to %s: %w", target.Name(), edited.Name(), ErrDuplicateRecord)
	}
	m.persons[i] = edited
	m.version++
	return nil
}

// DeletePerson removes target from the book.
func (m *Model) DeletePerson(target person.Person) error {
	i := m.indexOf(target)
	if i < 0 {
		return fmt.Errorf("deleting %s: %w", target.Name(), ErrPersonNotFound)
	}
	m.persons = slices.Delete(m.persons, i, i+1)
	m.version++
	return nil
}

// Replace swaps the whole book for persons. On error the book is unchanged.
func (m *Model) Replace(persons []person.Person) error {
	for i, p := range persons {
		if slices.ContainsFunc(persons[:i], p.IsSame) {
			return fmt.Errorf("%s appears more than once: %w", p.Name(), ErrDuplicateRecord)
		}
	}
	m.persons = slices.Clone(persons)
	m.version++
	return nil
}

// SetFilter limits the displayed list to contacts matching pred.
// A nil pred shows every contact.
func (m *Model) SetFilter(pred Predicate) {
	m.filter = pred
}

// ShowAll removes the filter. The sort order is kept.
func (m *Model) ShowAll() {
	m.filter = nil
}

// SetOrder sorts the displayed list by cmp. A nil cmp restores book order.
func (m *Model) SetOrder(cmp func(a, b person.Person) int) {
	m.order = cmp
}

// Version changes every time the book's contents change. Filter and sort
// changes do not count.
func (m *Model) Version() uint64 {
	return m.version
}

// indexOf returns the book position of a contact equal to target, or -1.
func (m *Model) indexOf(target person.Person) int {
	return slices.IndexFunc(m.persons, target.Equal)
}
