package nb

import (
	"fmt"

	"networkbook/internal/person"
)

// CreateCommand adds a new contact to the book.
type CreateCommand struct {
	Person person.Person
}

func (c *CreateCommand) Execute(m *Model) (Result, error) {
	if err := m.AddPerson(c.Person); err != nil {
		return Result{}, err
	}
	return Result{Message: fmt.Sprintf("New person added: %s", c.Person)}, nil
}

// DeleteCommand removes the contact at a displayed index.
type DeleteCommand struct {
	// Index is zero-based.
	Index int
}

func (c *DeleteCommand) Execute(m *Model) (Result, error) {
	target, err := m.PersonAt(c.Index)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeletePerson(target); err != nil {
		return Result{}, err
	}
	return Result{Message: fmt.Sprintf("Deleted Person: %s", target)}, nil
}

// ClearCommand empties the book.
type ClearCommand struct{}

func (ClearCommand) Execute(m *Model) (Result, error) {
	if err := m.Replace(nil); err != nil {
		return Result{}, err
	}
	return Result{Message: "Network book has been cleared!"}, nil
}
