package nb

import (
	"fmt"

	"networkbook/internal/edit"
)

// EditCommand applies a sequence of field changes to the contact at a
// displayed index. The actions are applied in order to a descriptor seeded
// from that contact, the descriptor is merged onto it, and the result
// replaces it in the book.
type EditCommand struct {
	// Index is zero-based.
	Index   int
	Actions []edit.Action
}

func (c *EditCommand) Execute(m *Model) (Result, error) {
	if len(c.Actions) == 0 {
		return Result{}, ErrNoFieldsEdited
	}

	target, err := m.PersonAt(c.Index)
	if err != nil {
		return Result{}, err
	}

	d := edit.NewDescriptor(target)
	if err := d.Apply(c.Actions...); err != nil {
		return Result{}, fmt.Errorf("editing person %d: %w", c.Index+1, err)
	}
	if !d.IsAnyFieldEdited() {
		return Result{}, ErrNoFieldsEdited
	}

	edited, err := d.MergeOnto(target)
	if err != nil {
		return Result{}, fmt.Errorf("editing person %d: %w", c.Index+1, err)
	}
	if err := m.SetPerson(target, edited); err != nil {
		return Result{}, err
	}

	m.ShowAll()
	return Result{Message: fmt.Sprintf("Edited Person: %s", edited)}, nil
}
