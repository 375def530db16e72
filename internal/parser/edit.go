package parser

import (
	"fmt"

	"networkbook/internal/edit"
	"networkbook/internal/nb"
	"networkbook/internal/person"
)

// listField turns the arguments of one multi-valued field into actions.
type listField struct {
	add      func(value string) (edit.Action, error)
	editAt   func(index int, value string) (edit.Action, error)
	deleteAt func(index int) edit.Action
	clear    edit.Action
}

var listFields = map[Prefix]listField{
	PrefixEmail: {
		add: func(v string) (edit.Action, error) {
			e, err := person.NewEmail(v)
			return edit.AddEmail{Email: e}, err
		},
		editAt: func(i int, v string) (edit.Action, error) {
			e, err := person.NewEmail(v)
			return edit.EditEmailAt{Index: i, Email: e}, err
		},
		deleteAt: func(i int) edit.Action { return edit.DeleteEmailAt{Index: i} },
		clear:    edit.ClearEmails{},
	},
	PrefixLink: {
		add: func(v string) (edit.Action, error) {
			l, err := person.NewLink(v)
			return edit.AddLink{Link: l}, err
		},
		editAt: func(i int, v string) (edit.Action, error) {
			l, err := person.NewLink(v)
			return edit.EditLinkAt{Index: i, Link: l}, err
		},
		deleteAt: func(i int) edit.Action { return edit.DeleteLinkAt{Index: i} },
		clear:    edit.ClearLinks{},
	},
	PrefixTag: {
		add: func(v string) (edit.Action, error) {
			t, err := person.NewTag(v)
			return edit.AddTag{Tag: t}, err
		},
		editAt: func(i int, v string) (edit.Action, error) {
			t, err := person.NewTag(v)
			return edit.EditTagAt{Index: i, Tag: t}, err
		},
		deleteAt: func(i int) edit.Action { return edit.DeleteTagAt{Index: i} },
		clear:    edit.ClearTags{},
	},
}

// optionalField turns the argument of an optional scalar field into an
// action. An empty value deletes the field.
type optionalField struct {
	set func(value string) (edit.Action, error)
	del edit.Action
}

var optionalFields = map[Prefix]optionalField{
	PrefixGraduatingYear: {
		set: func(v string) (edit.Action, error) {
			g, err := person.NewGraduatingYear(v)
			return edit.SetGraduatingYear{GraduatingYear: g}, err
		},
		del: edit.DeleteGraduatingYear{},
	},
	PrefixCourse: {
		set: func(v string) (edit.Action, error) {
			c, err := person.NewCourse(v)
			return edit.SetCourse{Course: c}, err
		},
		del: edit.DeleteCourse{},
	},
	PrefixSpecialisation: {
		set: func(v string) (edit.Action, error) {
			s, err := person.NewSpecialisation(v)
			return edit.SetSpecialisation{Specialisation: s}, err
		},
		del: edit.DeleteSpecialisation{},
	},
	PrefixPriority: {
		set: func(v string) (edit.Action, error) {
			p, err := person.NewPriority(v)
			return edit.SetPriority{Priority: p}, err
		},
		del: edit.DeletePriority{},
	},
}

// ParseEdit parses the arguments of an edit command into the target index
// and the actions to apply, in the order they were typed.
//
// For /email, /link and /tag a value adds an item, a value followed by
// /index N replaces item N, an empty value followed by /index N deletes
// item N, and an empty value alone clears the field. A clear must be the
// only change to its field.
func ParseEdit(args string) (*nb.EditCommand, error) {
	m := Tokenize(args, append(personPrefixes, PrefixIndex)...)

	if m.Preamble() == "" {
		return nil, formatError("missing person index", nb.EditUsage)
	}
	index, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, formatError(err.Error(), nb.EditUsage)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(singleValuedPrefixes...); err != nil {
		return nil, err
	}

	argsList := m.Arguments()
	if len(argsList) == 0 {
		return nil, nb.ErrNoFieldsEdited
	}
	actions := make([]edit.Action, 0, len(argsList))
	cleared := make(map[Prefix]bool)
	changes := make(map[Prefix]int)

	for i := 0; i < len(argsList); i++ {
		arg := argsList[i]

		var action edit.Action
		switch arg.Prefix {
		case PrefixName:
			n, err := person.NewName(arg.Value)
			if err != nil {
				return nil, err
			}
			action = edit.SetName{Name: n}

		case PrefixPhone:
			p, err := person.NewPhone(arg.Value)
			if err != nil {
				return nil, err
			}
			action = edit.SetPhone{Phone: p}

		case PrefixGraduatingYear, PrefixCourse, PrefixSpecialisation, PrefixPriority:
			field := optionalFields[arg.Prefix]
			if arg.Value == "" {
				action = field.del
				break
			}
			if action, err = field.set(arg.Value); err != nil {
				return nil, err
			}

		case PrefixEmail, PrefixLink, PrefixTag:
			field := listFields[arg.Prefix]
			if i+1 < len(argsList) && argsList[i+1].Prefix == PrefixIndex {
				i++
				at, err := ParseIndex(argsList[i].Value)
				if err != nil {
					return nil, formatError(fmt.Sprintf("%s %s: %v", arg.Prefix, PrefixIndex, err), nb.EditUsage)
				}
				if arg.Value == "" {
					action = field.deleteAt(at)
				} else if action, err = field.editAt(at, arg.Value); err != nil {
					return nil, err
				}
			} else if arg.Value == "" {
				action = field.clear
				cleared[arg.Prefix] = true
			} else if action, err = field.add(arg.Value); err != nil {
				return nil, err
			}

		case PrefixIndex:
			return nil, formatError(
				fmt.Sprintf("%s must follow %s, %s or %s", PrefixIndex, PrefixEmail, PrefixLink, PrefixTag),
				nb.EditUsage)
		}

		changes[arg.Prefix]++
		actions = append(actions, action)
	}

	for p := range cleared {
		if changes[p] > 1 {
			return nil, fmt.Errorf("%w: %s", ErrConflictingClear, p)
		}
	}

	return &nb.EditCommand{Index: index, Actions: actions}, nil
}
