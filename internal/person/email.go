package person

import "regexp"

const EmailConstraints = "Emails should be of the format local-part@domain and adhere to the following constraints:\n" +
	"1. The local-part should only contain alphanumeric characters and these special characters, excluding " +
	"the parentheses, (+_.-). The local-part may not start or end with any special characters.\n" +
	"2. This is followed by a '@' and then a domain name. The domain name is made up of domain labels " +
	"separated by periods.\n" +
	"The domain name must:\n" +
	"    - end with a domain label at least 2 characters long\n" +
	"    - have each domain label start and end with alphanumeric characters\n" +
	"    - have each domain label consist of alphanumeric characters, separated only by hyphens, if any."

const (
	alnum       = `[a-zA-Z0-9]+`
	domainLabel = alnum + `(?:-` + alnum + `)*`
	localPart   = alnum + `(?:[+_.\-]` + alnum + `)*`
	domain      = `(?:` + domainLabel + `\.)*` + `[a-zA-Z0-9]{2,}(?:-` + alnum + `)*`
)

var emailRegex = regexp.MustCompile(`^` + localPart + `@` + domain + `$`)

// Email is one of a contact's email addresses.
type Email struct {
	value string
}

// NewEmail validates raw and returns it as an Email.
func NewEmail(raw string) (Email, error) {
	if !IsValidEmail(raw) {
		return Email{}, invalid("email", EmailConstraints)
	}
	return Email{value: raw}, nil
}

// IsValidEmail reports whether raw is an acceptable email address.
func IsValidEmail(raw string) bool {
	return emailRegex.MatchString(raw)
}

func (e Email) String() string { return e.value }

const LinkConstraints = "Links should be valid URLs: an optional http:// or https:// scheme, " +
	"a domain made of alphanumeric labels (hyphens allowed inside a label) separated by periods, " +
	"an optional port and an optional path without spaces."

var linkRegex = regexp.MustCompile(`^(?:https?://)?` +
	`(?:` + domainLabel + `\.)+` + domainLabel +
	`(?::\d{1,5})?` +
	`(?:/\S*)?$`)

// Link is a web address associated with a contact, such as a profile page.
type Link struct {
	value string
}

// NewLink validates raw and returns it as a Link.
func NewLink(raw string) (Link, error) {
	if !IsValidLink(raw) {
		return Link{}, invalid("link", LinkConstraints)
	}
	return Link{value: raw}, nil
}

// IsValidLink reports whether raw is an acceptable link.
func IsValidLink(raw string) bool {
	return linkRegex.MatchString(raw)
}

func (l Link) String() string { return l.value }
