package nb

import "errors"

var (
	// ErrIndexOutOfRange is returned when a command's person index does not
	// address a displayed contact.
	ErrIndexOutOfRange = errors.New("the person index provided is invalid")

	// ErrNoFieldsEdited is returned by an edit that changes nothing.
	ErrNoFieldsEdited = errors.New("at least one field to edit must be provided")

	// ErrDuplicateRecord is returned when a contact would share its name with
	// a different contact in the book.
	ErrDuplicateRecord = errors.New("this person already exists in the network book")

	// ErrPersonNotFound is returned when a contact passed to the model is not
	// in the book.
	ErrPersonNotFound = errors.New("person not found")

	// ErrNoVault is returned by backup and restore when no vault is configured.
	ErrNoVault = errors.New("no vault configured")
)
