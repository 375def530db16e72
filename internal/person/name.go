package person

import "regexp"

const NameConstraints = "Names should start with a letter or digit, and only contain letters, digits, " +
	"spaces and the characters ' . , - ( ) / @ &"

var nameRegex = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} '.,\-()/@&]*$`)

// Name is a contact's full name. It is also the identity key of a contact:
// two contacts with exactly equal names are the same contact.
type Name struct {
	value string
}

// NewName validates raw and returns it as a Name.
func NewName(raw string) (Name, error) {
	if !IsValidName(raw) {
		return Name{}, invalid("name", NameConstraints)
	}
	return Name{value: raw}, nil
}

// IsValidName reports whether raw is an acceptable name.
func IsValidName(raw string) bool {
	return nameRegex.MatchString(raw)
}

func (n Name) String() string { return n.value }

// Phone is a contact's phone number.
type Phone struct {
	value string
}

const PhoneConstraints = "Phone numbers should only contain digits, and it should be at least 3 digits long"

var phoneRegex = regexp.MustCompile(`^\d{3,}$`)

// NewPhone validates raw and returns it as a Phone.
func NewPhone(raw string) (Phone, error) {
	if !IsValidPhone(raw) {
		return Phone{}, invalid("phone", PhoneConstraints)
	}
	return Phone{value: raw}, nil
}

// IsValidPhone reports whether raw is an acceptable phone number.
func IsValidPhone(raw string) bool {
	return phoneRegex.MatchString(raw)
}

func (p Phone) String() string { return p.value }
