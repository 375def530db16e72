package testutil

import (
	"testing"

	"networkbook/internal/person"
)

// Default field values used by NewPersonBuilder.
const (
	DefaultName           = "Amy Bee"
	DefaultPhone          = "85355255"
	DefaultEmail          = "amy@gmail.com"
	DefaultLink           = "www.amy-bee.com"
	DefaultGraduatingYear = "2025"
	DefaultCourse         = "Computer Science"
	DefaultSpecialisation = "Software Engineering"
	DefaultPriority       = "high"
)

// PersonBuilder builds person.Person values from raw strings. Every value is
// validated by the real constructors when Build is called.
type PersonBuilder struct {
	name           string
	phone          string
	emails         []string
	links          []string
	graduatingYear *string
	course         *string
	specialisation *string
	tags           []string
	priority       *string
}

// NewPersonBuilder returns a builder preloaded with the Default* values.
func NewPersonBuilder() *PersonBuilder {
	return &PersonBuilder{
		name:           DefaultName,
		phone:          DefaultPhone,
		emails:         []string{DefaultEmail},
		links:          []string{DefaultLink},
		graduatingYear: ptr(DefaultGraduatingYear),
		course:         ptr(DefaultCourse),
		specialisation: ptr(DefaultSpecialisation),
		priority:       ptr(DefaultPriority),
	}
}

// PersonBuilderFrom returns a builder preloaded with p's values.
func PersonBuilderFrom(p person.Person) *PersonBuilder {
	b := &PersonBuilder{
		name:  p.Name().String(),
		phone: p.Phone().String(),
	}
	for _, e := range p.Emails().All() {
		b.emails = append(b.emails, e.String())
	}
	for _, l := range p.Links().All() {
		b.links = append(b.links, l.String())
	}
	for _, tg := range p.Tags().All() {
		b.tags = append(b.tags, tg.String())
	}
	if v, ok := p.GraduatingYear().Get(); ok {
		b.graduatingYear = ptr(v.String())
	}
	if v, ok := p.Course().Get(); ok {
		b.course = ptr(v.String())
	}
	if v, ok := p.Specialisation().Get(); ok {
		b.specialisation = ptr(v.String())
	}
	if v, ok := p.Priority().Get(); ok {
		b.priority = ptr(v.String())
	}
	return b
}

func (b *PersonBuilder) WithName(name string) *PersonBuilder   { b.name = name; return b }
func (b *PersonBuilder) WithPhone(phone string) *PersonBuilder { b.phone = phone; return b }

// WithEmails replaces all emails.
func (b *PersonBuilder) WithEmails(emails ...string) *PersonBuilder { b.emails = emails; return b }

// WithLinks replaces all links.
func (b *PersonBuilder) WithLinks(links ...string) *PersonBuilder { b.links = links; return b }

// WithTags replaces all tags.
func (b *PersonBuilder) WithTags(tags ...string) *PersonBuilder { b.tags = tags; return b }

func (b *PersonBuilder) WithGraduatingYear(year string) *PersonBuilder {
	b.graduatingYear = ptr(year)
	return b
}

func (b *PersonBuilder) WithCourse(course string) *PersonBuilder {
	b.course = ptr(course)
	return b
}

func (b *PersonBuilder) WithSpecialisation(spec string) *PersonBuilder {
	b.specialisation = ptr(spec)
	return b
}

func (b *PersonBuilder) WithPriority(priority string) *PersonBuilder {
	b.priority = ptr(priority)
	return b
}

// WithoutOptionalFields clears graduating year, course, specialisation and
// priority.
func (b *PersonBuilder) WithoutOptionalFields() *PersonBuilder {
	b.graduatingYear, b.course, b.specialisation, b.priority = nil, nil, nil, nil
	return b
}

// WithoutPriority clears the priority.
func (b *PersonBuilder) WithoutPriority() *PersonBuilder {
	b.priority = nil
	return b
}

// Build validates the builder's values and returns the Person, failing the
// test on any error.
func (b *PersonBuilder) Build(t testing.TB) person.Person {
	t.Helper()

	f := person.Fields{
		Name:  must(t, person.NewName, b.name),
		Phone: must(t, person.NewPhone, b.phone),
	}
	for _, e := range b.emails {
		f.Emails = append(f.Emails, must(t, person.NewEmail, e))
	}
	for _, l := range b.links {
		f.Links = append(f.Links, must(t, person.NewLink, l))
	}
	for _, tg := range b.tags {
		f.Tags = append(f.Tags, must(t, person.NewTag, tg))
	}

	var err error
	if f.GraduatingYear, err = person.FromOptional(b.graduatingYear, person.NewGraduatingYear); err != nil {
		t.Fatalf("building graduating year: %v", err)
	}
	if f.Course, err = person.FromOptional(b.course, person.NewCourse); err != nil {
		t.Fatalf("building course: %v", err)
	}
	if f.Specialisation, err = person.FromOptional(b.specialisation, person.NewSpecialisation); err != nil {
		t.Fatalf("building specialisation: %v", err)
	}
	if f.Priority, err = person.FromOptional(b.priority, person.NewPriority); err != nil {
		t.Fatalf("building priority: %v", err)
	}

	p, err := person.New(f)
	if err != nil {
		t.Fatalf("person.New() error = %v", err)
	}
	return p
}

func must[T any](t testing.TB, ctor func(string) (T, error), raw string) T {
	t.Helper()
	v, err := ctor(raw)
	if err != nil {
		t.Fatalf("building value from %q: %v", raw, err)
	}
	return v
}

func ptr(s string) *string { return &s }
