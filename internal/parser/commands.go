package parser

import (
	"fmt"
	"strings"
	"unicode"

	"networkbook/internal/nb"
)

// ParseDelete parses "delete INDEX".
func ParseDelete(args string) (*nb.DeleteCommand, error) {
	index, err := ParseIndex(args)
	if err != nil {
		return nil, formatError(err.Error(), nb.DeleteUsage)
	}
	return &nb.DeleteCommand{Index: index}, nil
}

// ParseFind parses "find KEYTERM...".
func ParseFind(args string) (*nb.FindCommand, error) {
	terms := strings.Fields(args)
	if len(terms) == 0 {
		return nil, formatError("at least one key term is required", nb.FindUsage)
	}
	return &nb.FindCommand{Terms: terms}, nil
}

var sortFields = map[string]nb.SortField{
	"name":     nb.SortByName,
	"grad":     nb.SortByGraduatingYear,
	"course":   nb.SortByCourse,
	"spec":     nb.SortBySpecialisation,
	"priority": nb.SortByPriority,
}

var sortOrders = map[string]nb.SortOrder{
	"":           nb.Ascending,
	"asc":        nb.Ascending,
	"ascending":  nb.Ascending,
	"desc":       nb.Descending,
	"descending": nb.Descending,
}

// ParseSort parses "sort /by FIELD [/order ORDER]". Field and order are
// case-insensitive; the order defaults to ascending.
func ParseSort(args string) (*nb.SortCommand, error) {
	m := Tokenize(args, PrefixBy, PrefixOrder)
	if m.Preamble() != "" {
		return nil, formatError(fmt.Sprintf("unexpected text %q", m.Preamble()), nb.SortUsage)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(PrefixBy, PrefixOrder); err != nil {
		return nil, err
	}

	by, ok := m.Value(PrefixBy)
	if !ok {
		return nil, formatError(fmt.Sprintf("%s is required", PrefixBy), nb.SortUsage)
	}
	field, ok := sortFields[strings.ToLower(by)]
	if !ok {
		return nil, formatError(fmt.Sprintf("cannot sort by %q", by), nb.SortUsage)
	}

	rawOrder, _ := m.Value(PrefixOrder)
	order, ok := sortOrders[strings.ToLower(rawOrder)]
	if !ok {
		return nil, formatError(fmt.Sprintf("unknown sort order %q", rawOrder), nb.SortUsage)
	}

	return &nb.SortCommand{Field: field, Order: order}, nil
}

var filterFields = map[string]nb.FilterField{
	"course": nb.FilterByCourse,
	"spec":   nb.FilterBySpecialisation,
	"grad":   nb.FilterByGraduatingYear,
	"tag":    nb.FilterByTag,
}

// ParseFilter parses "filter /by FIELD /with KEYTERM...".
func ParseFilter(args string) (*nb.FilterCommand, error) {
	m := Tokenize(args, PrefixBy, PrefixWith)
	if m.Preamble() != "" {
		return nil, formatError(fmt.Sprintf("unexpected text %q", m.Preamble()), nb.FilterUsage)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(PrefixBy, PrefixWith); err != nil {
		return nil, err
	}

	by, ok := m.Value(PrefixBy)
	if !ok {
		return nil, formatError(fmt.Sprintf("%s is required", PrefixBy), nb.FilterUsage)
	}
	field, ok := filterFields[strings.ToLower(by)]
	if !ok {
		return nil, formatError(fmt.Sprintf("cannot filter by %q", by), nb.FilterUsage)
	}

	with, _ := m.Value(PrefixWith)
	terms := strings.Fields(with)
	if len(terms) == 0 {
		return nil, formatError(fmt.Sprintf("%s needs at least one key term", PrefixWith), nb.FilterUsage)
	}

	return &nb.FilterCommand{Field: field, Terms: terms}, nil
}

// ParseCommand parses one line of user input into a command. The first word
// selects the command; list, clear, help and exit ignore any arguments.
func ParseCommand(line string) (nb.Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, formatError("no command given", nb.HelpUsage)
	}

	word, args := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		word, args = line[:i], line[i:]
	}

	switch word {
	case "create":
		return command(ParseCreate(args))
	case "edit":
		return command(ParseEdit(args))
	case "delete":
		return command(ParseDelete(args))
	case "find":
		return command(ParseFind(args))
	case "sort":
		return command(ParseSort(args))
	case "filter":
		return command(ParseFilter(args))
	case "list":
		return nb.ListCommand{}, nil
	case "clear":
		return nb.ClearCommand{}, nil
	case "help":
		return nb.HelpCommand{}, nil
	case "exit":
		return nb.ExitCommand{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, word)
	}
}

// command drops the concrete type of a parsed command, returning a nil
// Command on error.
func command[C nb.Command](c C, err error) (nb.Command, error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}
