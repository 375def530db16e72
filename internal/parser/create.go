package parser

import (
	"fmt"

	"networkbook/internal/nb"
	"networkbook/internal/person"
)

// ParseCreate parses the arguments of a create command. Name, phone and at
// least one email are mandatory; emails, links and tags may repeat.
func ParseCreate(args string) (*nb.CreateCommand, error) {
	m := Tokenize(args, personPrefixes...)

	if m.Preamble() != "" {
		return nil, formatError(fmt.Sprintf("unexpected text %q before the first field", m.Preamble()), nb.CreateUsage)
	}
	for _, p := range []Prefix{PrefixName, PrefixPhone, PrefixEmail} {
		if !m.Has(p) {
			return nil, formatError(fmt.Sprintf("%s is required", p), nb.CreateUsage)
		}
	}
	if err := m.VerifyNoDuplicatePrefixesFor(singleValuedPrefixes...); err != nil {
		return nil, err
	}

	var f person.Fields
	var err error
	if f.Name, err = person.Required("name", m.Optional(PrefixName), person.NewName); err != nil {
		return nil, err
	}
	if f.Phone, err = person.Required("phone", m.Optional(PrefixPhone), person.NewPhone); err != nil {
		return nil, err
	}
	if f.Emails, err = parseAll(m.AllValues(PrefixEmail), person.NewEmail); err != nil {
		return nil, err
	}
	if f.Links, err = parseAll(m.AllValues(PrefixLink), person.NewLink); err != nil {
		return nil, err
	}
	if f.Tags, err = parseAll(m.AllValues(PrefixTag), person.NewTag); err != nil {
		return nil, err
	}
	if f.GraduatingYear, err = person.FromOptional(m.Optional(PrefixGraduatingYear), person.NewGraduatingYear); err != nil {
		return nil, err
	}
	if f.Course, err = person.FromOptional(m.Optional(PrefixCourse), person.NewCourse); err != nil {
		return nil, err
	}
	if f.Specialisation, err = person.FromOptional(m.Optional(PrefixSpecialisation), person.NewSpecialisation); err != nil {
		return nil, err
	}
	if f.Priority, err = person.FromOptional(m.Optional(PrefixPriority), person.NewPriority); err != nil {
		return nil, err
	}

	p, err := person.New(f)
	if err != nil {
		return nil, err
	}
	return &nb.CreateCommand{Person: p}, nil
}

func parseAll[T any](raw []string, ctor func(string) (T, error)) ([]T, error) {
	values := make([]T, 0, len(raw))
	for _, r := range raw {
		v, err := ctor(r)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
