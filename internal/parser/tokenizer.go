package parser

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Argument is one prefix occurrence and the text that follows it, up to the
// next prefix.
type Argument struct {
	Prefix Prefix
	Value  string
}

// ArgumentMultimap is the result of tokenizing a command's arguments: the
// preamble before the first prefix, and every prefixed argument in the order
// it was typed.
type ArgumentMultimap struct {
	preamble string
	args     []Argument
}

// Tokenize splits args on the given prefixes. A prefix is recognised only at
// the start of args or after whitespace, and only when followed by
// whitespace or the end of args, so "/named" or "a/name" are plain text.
// Values and the preamble are trimmed; a prefix with nothing after it has an
// empty value.
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	type position struct {
		start  int
		prefix Prefix
	}

	var found []position
	for i := 0; i < len(args); i++ {
		if i > 0 {
			prev, _ := utf8.DecodeLastRuneInString(args[:i])
			if !unicode.IsSpace(prev) {
				continue
			}
		}
		for _, p := range prefixes {
			if p == "" || !strings.HasPrefix(args[i:], string(p)) {
				continue
			}
			end := i + len(p)
			if end < len(args) {
				next, _ := utf8.DecodeRuneInString(args[end:])
				if !unicode.IsSpace(next) {
					continue
				}
			}
			found = append(found, position{start: i, prefix: p})
			i = end - 1
			break
		}
	}

	m := ArgumentMultimap{preamble: strings.TrimSpace(args)}
	if len(found) == 0 {
		return m
	}

	m.preamble = strings.TrimSpace(args[:found[0].start])
	for i, pos := range found {
		end := len(args)
		if i+1 < len(found) {
			end = found[i+1].start
		}
		value := args[pos.start+len(pos.prefix) : end]
		m.args = append(m.args, Argument{Prefix: pos.prefix, Value: strings.TrimSpace(value)})
	}
	return m
}

// Preamble returns the text before the first prefix.
func (m ArgumentMultimap) Preamble() string { return m.preamble }

// Arguments returns every prefixed argument in input order.
func (m ArgumentMultimap) Arguments() []Argument { return slices.Clone(m.args) }

// Value returns the last value given for p.
func (m ArgumentMultimap) Value(p Prefix) (string, bool) {
	for i := len(m.args) - 1; i >= 0; i-- {
		if m.args[i].Prefix == p {
			return m.args[i].Value, true
		}
	}
	return "", false
}

// AllValues returns every value given for p, in input order.
func (m ArgumentMultimap) AllValues(p Prefix) []string {
	var values []string
	for _, a := range m.args {
		if a.Prefix == p {
			values = append(values, a.Value)
		}
	}
	return values
}

// Has reports whether p appears at least once.
func (m ArgumentMultimap) Has(p Prefix) bool {
	_, ok := m.Value(p)
	return ok
}

// Optional returns a pointer to the last value for p, or nil when p is absent.
func (m ArgumentMultimap) Optional(p Prefix) *string {
	v, ok := m.Value(p)
	if !ok {
		return nil
	}
	return &v
}

// VerifyNoDuplicatePrefixesFor fails with ErrDuplicateArgument, naming every
// offending prefix, when any of prefixes appears more than once.
func (m ArgumentMultimap) VerifyNoDuplicatePrefixesFor(prefixes ...Prefix) error {
	var dups []string
	for _, p := range prefixes {
		if len(m.AllValues(p)) > 1 {
			dups = append(dups, string(p))
		}
	}
	if len(dups) > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateArgument, strings.Join(dups, " "))
	}
	return nil
}
