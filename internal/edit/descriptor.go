// Package edit describes pending changes to a contact and merges them onto
// an existing record.
package edit

import (
	"fmt"

	"networkbook/internal/person"
	"networkbook/internal/uniquelist"
)

// Descriptor accumulates the changes of one edit command. Single-valued
// fields are tracked as a Patch. Multi-valued fields are nil until the first
// action on that field, which seeds them with a copy of the base contact's
// list; later actions in the same command see the result of earlier ones.
//
// A Descriptor is discarded after use. When Apply fails part-way the
// descriptor may hold some of the changes and should not be merged.
type Descriptor struct {
	base person.Person

	name           Patch[person.Name]
	phone          Patch[person.Phone]
	emails         *uniquelist.List[person.Email]
	links          *uniquelist.List[person.Link]
	graduatingYear Patch[person.GraduatingYear]
	course         Patch[person.Course]
	specialisation Patch[person.Specialisation]
	tags           *uniquelist.List[person.Tag]
	priority       Patch[person.Priority]
}

// NewDescriptor returns an empty descriptor whose list actions operate on
// base's lists.
func NewDescriptor(base person.Person) *Descriptor {
	return &Descriptor{base: base}
}

// Apply applies actions in order, stopping at the first failure.
func (d *Descriptor) Apply(actions ...Action) error {
	for _, a := range actions {
		if err := d.apply(a); err != nil {
			return err
		}
	}
	return nil
}

func (d *Descriptor) apply(a Action) error {
	switch a := a.(type) {
	case SetName:
		d.name.Set(a.Name)
	case SetPhone:
		d.phone.Set(a.Phone)

	case AddEmail:
		return wrap("email", seed(&d.emails, d.base.Emails()).Add(a.Email))
	case DeleteEmailAt:
		return wrapAt("email", a.Index, seed(&d.emails, d.base.Emails()).RemoveAt(a.Index))
	case EditEmailAt:
		return wrapAt("email", a.Index, seed(&d.emails, d.base.Emails()).SetAt(a.Index, a.Email))
	case ClearEmails:
		d.emails = &uniquelist.List[person.Email]{}

	case AddLink:
		return wrap("link", seed(&d.links, d.base.Links()).Add(a.Link))
	case DeleteLinkAt:
		return wrapAt("link", a.Index, seed(&d.links, d.base.Links()).RemoveAt(a.Index))
	case EditLinkAt:
		return wrapAt("link", a.Index, seed(&d.links, d.base.Links()).SetAt(a.Index, a.Link))
	case ClearLinks:
		d.links = &uniquelist.List[person.Link]{}

	case SetGraduatingYear:
		d.graduatingYear.Set(a.GraduatingYear)
	case DeleteGraduatingYear:
		d.graduatingYear.Clear()
	case SetCourse:
		d.course.Set(a.Course)
	case DeleteCourse:
		d.course.Clear()
	case SetSpecialisation:
		d.specialisation.Set(a.Specialisation)
	case DeleteSpecialisation:
		d.specialisation.Clear()

	case AddTag:
		return wrap("tag", seed(&d.tags, d.base.Tags()).Add(a.Tag))
	case DeleteTagAt:
		return wrapAt("tag", a.Index, seed(&d.tags, d.base.Tags()).RemoveAt(a.Index))
	case EditTagAt:
		return wrapAt("tag", a.Index, seed(&d.tags, d.base.Tags()).SetAt(a.Index, a.Tag))
	case ClearTags:
		d.tags = &uniquelist.List[person.Tag]{}

	case SetPriority:
		d.priority.Set(a.Priority)
	case DeletePriority:
		d.priority.Clear()

	default:
		return fmt.Errorf("unknown edit action %T", a)
	}
	return nil
}

func seed[T comparable](l **uniquelist.List[T], base uniquelist.View[T]) *uniquelist.List[T] {
	if *l == nil {
		*l = base.Clone()
	}
	return *l
}

func wrap(field string, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	return nil
}

// wrapAt reports index one-based, the way users type it.
func wrapAt(field string, index int, err error) error {
	if err != nil {
		return fmt.Errorf("%s %d: %w", field, index+1, err)
	}
	return nil
}

// IsAnyFieldEdited reports whether at least one field was touched.
func (d *Descriptor) IsAnyFieldEdited() bool {
	return d.name.IsTouched() ||
		d.phone.IsTouched() ||
		d.emails != nil ||
		d.links != nil ||
		d.graduatingYear.IsTouched() ||
		d.course.IsTouched() ||
		d.specialisation.IsTouched() ||
		d.tags != nil ||
		d.priority.IsTouched()
}

// MergeOnto returns a new contact holding the descriptor's values for the
// touched fields and existing's values for the rest. Neither existing nor
// the descriptor is modified.
func (d *Descriptor) MergeOnto(existing person.Person) (person.Person, error) {
	f := existing.Fields()
	if v, ok := d.name.Get(); ok {
		f.Name = v
	}
	if v, ok := d.phone.Get(); ok {
		f.Phone = v
	}
	if d.emails != nil {
		f.Emails = d.emails.Items()
	}
	if d.links != nil {
		f.Links = d.links.Items()
	}
	if d.tags != nil {
		f.Tags = d.tags.Items()
	}
	f.GraduatingYear = d.graduatingYear.Resolve(f.GraduatingYear)
	f.Course = d.course.Resolve(f.Course)
	f.Specialisation = d.specialisation.Resolve(f.Specialisation)
	f.Priority = d.priority.Resolve(f.Priority)

	p, err := person.New(f)
	if err != nil {
		return person.Person{}, fmt.Errorf("merging edit: %w", err)
	}
	return p, nil
}

func (d *Descriptor) Name() Patch[person.Name]                     { return d.name }
func (d *Descriptor) Phone() Patch[person.Phone]                   { return d.phone }
func (d *Descriptor) GraduatingYear() Patch[person.GraduatingYear] { return d.graduatingYear }
func (d *Descriptor) Course() Patch[person.Course]                 { return d.course }
func (d *Descriptor) Specialisation() Patch[person.Specialisation] { return d.specialisation }
func (d *Descriptor) Priority() Patch[person.Priority]             { return d.priority }

// Emails returns the pending email list and whether the field was touched.
func (d *Descriptor) Emails() (uniquelist.View[person.Email], bool) {
	return d.emails.View(), d.emails != nil
}

func (d *Descriptor) Links() (uniquelist.View[person.Link], bool) {
	return d.links.View(), d.links != nil
}

func (d *Descriptor) Tags() (uniquelist.View[person.Tag], bool) {
	return d.tags.View(), d.tags != nil
}
