package edit

import "networkbook/internal/person"

// Action is one discrete change to a contact's fields. The set of actions is
// closed: every implementation lives in this package and is handled by
// Descriptor.Apply.
//
// Indexes are zero-based and refer to the field's list as it stands in the
// descriptor when the action is applied, after earlier actions of the same
// command.
type Action interface {
	isAction()
}

// SetName replaces the name.
type SetName struct{ Name person.Name }

// SetPhone replaces the phone number.
type SetPhone struct{ Phone person.Phone }

// AddEmail appends an email. It fails if the contact already has it.
type AddEmail struct{ Email person.Email }

// DeleteEmailAt removes the email at Index. Index is zero-based and measured
// against the descriptor's current email list.
type DeleteEmailAt struct{ Index int }

// EditEmailAt replaces the email at Index. Index is zero-based and measured
// against the descriptor's current email list.
type EditEmailAt struct {
	Index int
	Email person.Email
}

// ClearEmails removes every email.
type ClearEmails struct{}

// AddLink appends a link. It fails if the contact already has it.
type AddLink struct{ Link person.Link }

// DeleteLinkAt removes the link at Index. Index is zero-based and measured
// against the descriptor's current link list.
type DeleteLinkAt struct{ Index int }

// EditLinkAt replaces the link at Index. Index is zero-based and measured
// against the descriptor's current link list.
type EditLinkAt struct {
	Index int
	Link  person.Link
}

// ClearLinks removes every link.
type ClearLinks struct{}

// SetGraduatingYear sets or replaces the graduating year.
type SetGraduatingYear struct{ GraduatingYear person.GraduatingYear }

// DeleteGraduatingYear removes the graduating year.
type DeleteGraduatingYear struct{}

// SetCourse sets or replaces the course.
type SetCourse struct{ Course person.Course }

// DeleteCourse removes the course.
type DeleteCourse struct{}

// SetSpecialisation sets or replaces the specialisation.
type SetSpecialisation struct{ Specialisation person.Specialisation }

// DeleteSpecialisation removes the specialisation.
type DeleteSpecialisation struct{}

// AddTag appends a tag. It fails if the contact already has it.
type AddTag struct{ Tag person.Tag }

// DeleteTagAt removes the tag at Index. Index is zero-based and measured
// against the descriptor's current tag list.
type DeleteTagAt struct{ Index int }

// EditTagAt replaces the tag at Index. Index is zero-based and measured
// against the descriptor's current tag list.
type EditTagAt struct {
	Index int
	Tag   person.Tag
}

// ClearTags removes every tag.
type ClearTags struct{}

// SetPriority sets or replaces the priority.
type SetPriority struct{ Priority person.Priority }

// DeletePriority removes the priority, leaving the contact without one.
type DeletePriority struct{}

func (SetName) isAction()              {}
func (SetPhone) isAction()             {}
func (AddEmail) isAction()             {}
func (DeleteEmailAt) isAction()        {}
func (EditEmailAt) isAction()          {}
func (ClearEmails) isAction()          {}
func (AddLink) isAction()              {}
func (DeleteLinkAt) isAction()         {}
func (EditLinkAt) isAction()           {}
func (ClearLinks) isAction()           {}
func (SetGraduatingYear) isAction()    {}
func (DeleteGraduatingYear) isAction() {}
func (SetCourse) isAction()            {}
func (DeleteCourse) isAction()         {}
func (SetSpecialisation) isAction()    {}
func (DeleteSpecialisation) isAction() {}
func (AddTag) isAction()               {}
func (DeleteTagAt) isAction()          {}
func (EditTagAt) isAction()            {}
func (ClearTags) isAction()            {}
func (SetPriority) isAction()          {}
func (DeletePriority) isAction()       {}
