// Package storage persists the contact book: the JSON document form of a
// contact, and the stores that hold the whole book.
package storage

import (
	"fmt"

	"networkbook/internal/person"
)

// MissingFieldMessageFormat is the message for a required key absent from a
// stored contact. The verb is the field's display name.
const MissingFieldMessageFormat = "Person's %s field is missing!"

// jsonProperty is one entry of a stored list field.
type jsonProperty struct {
	Name string `json:"name"`
}

// jsonPerson is the stored form of a person.Person. Optional fields are
// pointers so an absent key can be told apart from an empty value.
type jsonPerson struct {
	Name           *string        `json:"name,omitempty"`
	Phone          *string        `json:"phone,omitempty"`
	Emails         []jsonProperty `json:"emails"`
	Links          []jsonProperty `json:"links"`
	GraduatingYear *string        `json:"graduating year,omitempty"`
	Course         *string        `json:"course,omitempty"`
	Specialisation *string        `json:"specialisation,omitempty"`
	Tags           []jsonProperty `json:"tags"`
	Priority       *string        `json:"priority,omitempty"`
}

func fromPerson(p person.Person) jsonPerson {
	return jsonPerson{
		Name:           ptr(p.Name().String()),
		Phone:          ptr(p.Phone().String()),
		Emails:         properties(p.Emails().Items()),
		Links:          properties(p.Links().Items()),
		GraduatingYear: optional(p.GraduatingYear()),
		Course:         optional(p.Course()),
		Specialisation: optional(p.Specialisation()),
		Tags:           properties(p.Tags().Items()),
		Priority:       optional(p.Priority()),
	}
}

// toPerson rebuilds the contact, validating every field.
func (j jsonPerson) toPerson() (person.Person, error) {
	if j.Name == nil {
		return person.Person{}, missingField("name", "Name")
	}
	if j.Phone == nil {
		return person.Person{}, missingField("phone", "Phone")
	}

	var f person.Fields
	var err error
	if f.Name, err = person.NewName(*j.Name); err != nil {
		return person.Person{}, err
	}
	if f.Phone, err = person.NewPhone(*j.Phone); err != nil {
		return person.Person{}, err
	}
	if f.Emails, err = values(j.Emails, person.NewEmail); err != nil {
		return person.Person{}, err
	}
	if f.Links, err = values(j.Links, person.NewLink); err != nil {
		return person.Person{}, err
	}
	if f.Tags, err = values(j.Tags, person.NewTag); err != nil {
		return person.Person{}, err
	}
	if f.GraduatingYear, err = person.FromOptional(j.GraduatingYear, person.NewGraduatingYear); err != nil {
		return person.Person{}, err
	}
	if f.Course, err = person.FromOptional(j.Course, person.NewCourse); err != nil {
		return person.Person{}, err
	}
	if f.Specialisation, err = person.FromOptional(j.Specialisation, person.NewSpecialisation); err != nil {
		return person.Person{}, err
	}
	if f.Priority, err = person.FromOptional(j.Priority, person.NewPriority); err != nil {
		return person.Person{}, err
	}

	return person.New(f)
}

func missingField(field, display string) error {
	return &person.FieldError{
		Field:   field,
		Message: fmt.Sprintf(MissingFieldMessageFormat, display),
		Err:     person.ErrMissingField,
	}
}

func properties[T fmt.Stringer](items []T) []jsonProperty {
	out := make([]jsonProperty, len(items))
	for i, item := range items {
		out[i] = jsonProperty{Name: item.String()}
	}
	return out
}

func values[T any](props []jsonProperty, ctor func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(props))
	for _, prop := range props {
		v, err := ctor(prop.Name)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func optional[T comparable](o person.Optional[T]) *string {
	v, ok := o.Get()
	if !ok {
		return nil
	}
	return ptr(fmt.Sprint(v))
}

func ptr(s string) *string { return &s }
