package parser

// Prefix marks the start of an argument, e.g. "/name" in "/name Alex Yeoh".
type Prefix string

func (p Prefix) String() string { return string(p) }

const (
	PrefixName           Prefix = "/name"
	PrefixPhone          Prefix = "/phone"
	PrefixEmail          Prefix = "/email"
	PrefixLink           Prefix = "/link"
	PrefixGraduatingYear Prefix = "/grad"
	PrefixCourse         Prefix = "/course"
	PrefixSpecialisation Prefix = "/spec"
	PrefixTag            Prefix = "/tag"
	PrefixPriority       Prefix = "/priority"

	// PrefixIndex addresses one item of the multi-valued field named just
	// before it.
	PrefixIndex Prefix = "/index"

	PrefixBy    Prefix = "/by"
	PrefixOrder Prefix = "/order"
	PrefixWith  Prefix = "/with"
)

// personPrefixes are the prefixes naming a contact field.
var personPrefixes = []Prefix{
	PrefixName, PrefixPhone, PrefixEmail, PrefixLink, PrefixGraduatingYear,
	PrefixCourse, PrefixSpecialisation, PrefixTag, PrefixPriority,
}

// singleValuedPrefixes may appear at most once in a create or edit command.
var singleValuedPrefixes = []Prefix{
	PrefixName, PrefixPhone, PrefixGraduatingYear, PrefixCourse, PrefixSpecialisation, PrefixPriority,
}
