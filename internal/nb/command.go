package nb

import "strings"

// Command is one parsed user command, ready to run against a Model.
// A command that fails leaves the Model unchanged.
type Command interface {
	Execute(m *Model) (Result, error)
}

// Result is what a successful command reports back to the user.
type Result struct {
	Message string

	// ShowList asks the caller to print the displayed contacts.
	ShowList bool

	// Exit asks the caller to end the session.
	Exit bool
}

// Usage text for each command, shown on format errors and by help.
const (
	CreateUsage = "create: Creates a person in the network book.\n" +
		"Parameters: /name NAME /phone PHONE /email EMAIL [/email EMAIL]... [/link LINK]... " +
		"[/grad GRADUATING YEAR] [/course COURSE] [/spec SPECIALISATION] [/tag TAG]... [/priority PRIORITY]\n" +
		"Example: create /name John Doe /phone 98765432 /email johnd@example.com /link github.com/johnd /tag friends"

	EditUsage = "edit: Edits the details of the person identified by the index number used in the " +
		"displayed person list. Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) [/name NAME] [/phone PHONE] " +
		"[/email [EMAIL] [/index EMAIL INDEX]]... [/link [LINK] [/index LINK INDEX]]... " +
		"[/grad [GRADUATING YEAR]] [/course [COURSE]] [/spec [SPECIALISATION]] " +
		"[/tag [TAG] [/index TAG INDEX]]... [/priority [PRIORITY]]\n" +
		"An empty value clears the field. With /index, a value replaces that item and no value deletes it.\n" +
		"Example: edit 1 /phone 91234567 /email johndoe@example.com /tag /index 2"

	DeleteUsage = "delete: Deletes the person identified by the index number used in the displayed person list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: delete 1"

	FindUsage = "find: Finds all persons whose names contain any of the specified key terms " +
		"(case-insensitive) and displays them as a list with index numbers.\n" +
		"Parameters: KEY TERM [MORE KEY TERMS]...\n" +
		"Example: find alice bob charlie"

	SortUsage = "sort: Sorts the displayed person list.\n" +
		"Parameters: /by FIELD [/order ORDER]\n" +
		"FIELD is one of name, grad, course, spec, priority. ORDER is asc (default) or desc.\n" +
		"Example: sort /by grad /order desc"

	FilterUsage = "filter: Lists the persons whose field contains any of the specified key terms (case-insensitive).\n" +
		"Parameters: /by FIELD /with KEY TERM [MORE KEY TERMS]...\n" +
		"FIELD is one of course, spec, grad, tag.\n" +
		"Example: filter /by course /with computer"

	ListUsage  = "list: Lists all persons in the network book."
	ClearUsage = "clear: Removes every person from the network book."
	HelpUsage  = "help: Shows the usage of every command."
	ExitUsage  = "exit: Exits the program."
)

// AllUsages lists the usage of every command in the order help prints them.
func AllUsages() string {
	return strings.Join([]string{
		CreateUsage, EditUsage, DeleteUsage, ListUsage, FindUsage,
		FilterUsage, SortUsage, ClearUsage, HelpUsage, ExitUsage,
	}, "\n\n")
}
