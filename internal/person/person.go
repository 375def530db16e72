package person

import (
	"fmt"
	"strings"

	"networkbook/internal/uniquelist"
)

// Fields lists the values a Person is built from. Name and Phone are
// required; the remaining fields may be empty or absent.
type Fields struct {
	Name           Name
	Phone          Phone
	Emails         []Email
	Links          []Link
	GraduatingYear Optional[GraduatingYear]
	Course         Optional[Course]
	Specialisation Optional[Specialisation]
	Tags           []Tag
	Priority       Optional[Priority]
}

// Person is a single contact. A Person never changes once built: the
// multi-valued fields are only exposed as read-only views, and edits produce
// a new Person.
type Person struct {
	name           Name
	phone          Phone
	emails         *uniquelist.List[Email]
	links          *uniquelist.List[Link]
	graduatingYear Optional[GraduatingYear]
	course         Optional[Course]
	specialisation Optional[Specialisation]
	tags           *uniquelist.List[Tag]
	priority       Optional[Priority]
}

// New builds a Person from f. It fails when Name or Phone is unset, or when
// a multi-valued field holds the same value twice.
func New(f Fields) (Person, error) {
	if f.Name == (Name{}) {
		return Person{}, missing("name")
	}
	if f.Phone == (Phone{}) {
		return Person{}, missing("phone")
	}

	emails, err := uniquelist.New(f.Emails...)
	if err != nil {
		return Person{}, fmt.Errorf("emails: %w", err)
	}
	links, err := uniquelist.New(f.Links...)
	if err != nil {
		return Person{}, fmt.Errorf("links: %w", err)
	}
	tags, err := uniquelist.New(f.Tags...)
	if err != nil {
		return Person{}, fmt.Errorf("tags: %w", err)
	}

	return Person{
		name:           f.Name,
		phone:          f.Phone,
		emails:         emails,
		links:          links,
		graduatingYear: f.GraduatingYear,
		course:         f.Course,
		specialisation: f.Specialisation,
		tags:           tags,
		priority:       f.Priority,
	}, nil
}

func (p Person) Name() Name                               { return p.name }
func (p Person) Phone() Phone                             { return p.phone }
func (p Person) Emails() uniquelist.View[Email]           { return p.emails.View() }
func (p Person) Links() uniquelist.View[Link]             { return p.links.View() }
func (p Person) GraduatingYear() Optional[GraduatingYear] { return p.graduatingYear }
func (p Person) Course() Optional[Course]                 { return p.course }
func (p Person) Specialisation() Optional[Specialisation] { return p.specialisation }
func (p Person) Tags() uniquelist.View[Tag]               { return p.tags.View() }
func (p Person) Priority() Optional[Priority]             { return p.priority }

// Fields returns a copy of p's values, suitable for building a modified
// Person with New.
func (p Person) Fields() Fields {
	return Fields{
		Name:           p.name,
		Phone:          p.phone,
		Emails:         p.emails.Items(),
		Links:          p.links.Items(),
		GraduatingYear: p.graduatingYear,
		Course:         p.course,
		Specialisation: p.specialisation,
		Tags:           p.tags.Items(),
		Priority:       p.priority,
	}
}

// IsSame reports whether p and other are the same contact, meaning their
// names are exactly equal. Case and whitespace are significant.
func (p Person) IsSame(other Person) bool {
	return p.name == other.name
}

// Equal reports whether every field of p and other is equal.
func (p Person) Equal(other Person) bool {
	return p.name == other.name &&
		p.phone == other.phone &&
		p.emails.Equal(other.emails) &&
		p.links.Equal(other.links) &&
		p.graduatingYear == other.graduatingYear &&
		p.course == other.course &&
		p.specialisation == other.specialisation &&
		p.tags.Equal(other.tags) &&
		p.priority == other.priority
}

// String formats p for display in command results.
func (p Person) String() string {
	var b strings.Builder
	b.WriteString(p.name.String())
	fmt.Fprintf(&b, "; Phone: %s", p.phone)
	fmt.Fprintf(&b, "; Emails: %s", p.emails)
	fmt.Fprintf(&b, "; Links: %s", p.links)
	if g, ok := p.graduatingYear.Get(); ok {
		fmt.Fprintf(&b, "; Graduating Year: %s", g)
	}
	if c, ok := p.course.Get(); ok {
		fmt.Fprintf(&b, "; Course: %s", c)
	}
	if s, ok := p.specialisation.Get(); ok {
		fmt.Fprintf(&b, "; Specialisation: %s", s)
	}
	fmt.Fprintf(&b, "; Tags: %s", p.tags)
	if pr, ok := p.priority.Get(); ok {
		fmt.Fprintf(&b, "; Priority: %s", pr)
	}
	return b.String()
}
