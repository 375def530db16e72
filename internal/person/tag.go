package person

import "regexp"

const TagConstraints = "Tags should be made of letters and digits, with words joined by a single space or hyphen"

var tagRegex = regexp.MustCompile(`^[\p{L}\p{N}]+(?:[ \-][\p{L}\p{N}]+)*$`)

// Tag is a free-form label attached to a contact.
type Tag struct {
	value string
}

// NewTag validates raw and returns it as a Tag.
func NewTag(raw string) (Tag, error) {
	if !IsValidTag(raw) {
		return Tag{}, invalid("tag", TagConstraints)
	}
	return Tag{value: raw}, nil
}

// IsValidTag reports whether raw is an acceptable tag.
func IsValidTag(raw string) bool {
	return tagRegex.MatchString(raw)
}

func (t Tag) String() string { return t.value }
