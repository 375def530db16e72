package nb

import (
	"fmt"
	"strings"

	"networkbook/internal/person"
)

// ListCommand shows every contact, removing any filter.
type ListCommand struct{}

func (ListCommand) Execute(m *Model) (Result, error) {
	m.ShowAll()
	return Result{Message: "Listed all persons", ShowList: true}, nil
}

// FindCommand shows the contacts whose name contains any of Terms,
// ignoring case.
type FindCommand struct {
	Terms []string
}

func (c *FindCommand) Execute(m *Model) (Result, error) {
	m.SetFilter(func(p person.Person) bool {
		return containsAny(p.Name().String(), c.Terms)
	})
	return listed(m), nil
}

// FilterField names the field a FilterCommand matches against.
type FilterField int

const (
	FilterByCourse FilterField = iota + 1
	FilterBySpecialisation
	FilterByGraduatingYear
	FilterByTag
)

func (f FilterField) String() string {
	switch f {
	case FilterByCourse:
		return "course"
	case FilterBySpecialisation:
		return "spec"
	case FilterByGraduatingYear:
		return "grad"
	case FilterByTag:
		return "tag"
	default:
		return fmt.Sprintf("FilterField(%d)", int(f))
	}
}

// FilterCommand shows the contacts whose Field contains any of Terms,
// ignoring case. Graduating years must match a term exactly. Contacts
// without a value for Field never match.
type FilterCommand struct {
	Field FilterField
	Terms []string
}

func (c *FilterCommand) Execute(m *Model) (Result, error) {
	var pred Predicate
	switch c.Field {
	case FilterByCourse:
		pred = func(p person.Person) bool {
			v, ok := p.Course().Get()
			return ok && containsAny(v.String(), c.Terms)
		}
	case FilterBySpecialisation:
		pred = func(p person.Person) bool {
			v, ok := p.Specialisation().Get()
			return ok && containsAny(v.String(), c.Terms)
		}
	case FilterByGraduatingYear:
		pred = func(p person.Person) bool {
			v, ok := p.GraduatingYear().Get()
			if !ok {
				return false
			}
			for _, term := range c.Terms {
				if v.String() == term {
					return true
				}
			}
			return false
		}
	case FilterByTag:
		pred = func(p person.Person) bool {
			for _, tag := range p.Tags().All() {
				if containsAny(tag.String(), c.Terms) {
					return true
				}
			}
			return false
		}
	default:
		return Result{}, fmt.Errorf("unknown filter field %v", c.Field)
	}

	m.SetFilter(pred)
	return listed(m), nil
}

func listed(m *Model) Result {
	return Result{Message: fmt.Sprintf("%d persons listed!", len(m.Displayed())), ShowList: true}
}

func containsAny(s string, terms []string) bool {
	s = strings.ToLower(s)
	for _, term := range terms {
		if term != "" && strings.Contains(s, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

// HelpCommand shows the usage of every command.
type HelpCommand struct{}

func (HelpCommand) Execute(*Model) (Result, error) {
	return Result{Message: AllUsages()}, nil
}

// ExitCommand ends the session.
type ExitCommand struct{}

func (ExitCommand) Execute(*Model) (Result, error) {
	return Result{Message: "Exiting Network Book as requested ...", Exit: true}, nil
}
