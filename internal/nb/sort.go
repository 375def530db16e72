package nb

import (
	"cmp"
	"fmt"
	"strings"

	"networkbook/internal/person"
)

// SortField names the field a SortCommand orders by.
type SortField int

const (
	SortByName SortField = iota + 1
	SortByGraduatingYear
	SortByCourse
	SortBySpecialisation
	SortByPriority
)

func (f SortField) String() string {
	switch f {
	case SortByName:
		return "name"
	case SortByGraduatingYear:
		return "grad"
	case SortByCourse:
		return "course"
	case SortBySpecialisation:
		return "spec"
	case SortByPriority:
		return "priority"
	default:
		return fmt.Sprintf("SortField(%d)", int(f))
	}
}

// SortOrder is the direction of a sort.
type SortOrder int

const (
	Ascending SortOrder = iota + 1
	Descending
)

func (o SortOrder) String() string {
	if o == Descending {
		return "descending"
	}
	return "ascending"
}

// SortCommand orders the displayed list.
type SortCommand struct {
	Field SortField
	Order SortOrder
}

func (c *SortCommand) Execute(m *Model) (Result, error) {
	order, err := Comparator(c.Field, c.Order)
	if err != nil {
		return Result{}, err
	}
	m.SetOrder(order)
	return Result{Message: fmt.Sprintf("Sorted by %s in %s order", c.Field, c.Order), ShowList: true}, nil
}

// Comparator returns the comparison used to sort by field in order.
// Text compares case-insensitively. Priority ascends from HIGH to LOW.
// Contacts without a value for field sort last in either order.
func Comparator(field SortField, order SortOrder) (func(a, b person.Person) int, error) {
	var key func(person.Person) (string, bool)
	switch field {
	case SortByName:
		key = func(p person.Person) (string, bool) { return p.Name().String(), true }
	case SortByGraduatingYear:
		key = optionalKey(person.Person.GraduatingYear)
	case SortByCourse:
		key = optionalKey(person.Person.Course)
	case SortBySpecialisation:
		key = optionalKey(person.Person.Specialisation)
	case SortByPriority:
		key = func(p person.Person) (string, bool) {
			pr, ok := p.Priority().Get()
			return fmt.Sprint(int(pr.Level())), ok
		}
	default:
		return nil, fmt.Errorf("unknown sort field %v", field)
	}

	return func(a, b person.Person) int {
		ka, okA := key(a)
		kb, okB := key(b)
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return 1
		case !okB:
			return -1
		}
		c := cmp.Compare(strings.ToLower(ka), strings.ToLower(kb))
		if order == Descending {
			return -c
		}
		return c
	}, nil
}

func optionalKey[T comparable](get func(person.Person) person.Optional[T]) func(person.Person) (string, bool) {
	return func(p person.Person) (string, bool) {
		v, ok := get(p).Get()
		if !ok {
			return "", false
		}
		return fmt.Sprint(v), true
	}
}
