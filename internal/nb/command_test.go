package nb_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"networkbook/internal/edit"
	"networkbook/internal/nb"
	"networkbook/internal/person"
	"networkbook/internal/testutil"
	"networkbook/internal/uniquelist"
)

func mustValue[T any](t *testing.T, ctor func(string) (T, error), raw string) T {
	t.Helper()
	v, err := ctor(raw)
	if err != nil {
		t.Fatalf("building %q: %v", raw, err)
	}
	return v
}

func TestEditCommand(t *testing.T) {
	t.Run("edits fields and reports the result", func(t *testing.T) {
		m := newTypicalModel(t)
		cmd := &nb.EditCommand{Index: 0, Actions: []edit.Action{
			edit.SetPhone{Phone: mustValue(t, person.NewPhone, "12345678")},
			edit.AddTag{Tag: mustValue(t, person.NewTag, "mentor")},
		}}

		result, err := cmd.Execute(m)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		want := testutil.PersonBuilderFrom(testutil.Alice(t)).WithPhone("12345678").
			WithTags("friends", "mentor").Build(t)
		got, _ := m.PersonAt(0)
		if !got.Equal(want) {
			t.Errorf("edited person = %v, want %v", got, want)
		}
		if result.Message != "Edited Person: "+want.String() {
			t.Errorf("Message = %q", result.Message)
		}
		if m.Version() != 1 {
			t.Errorf("Version() = %d, want 1", m.Version())
		}
	})

	t.Run("renaming onto another contact fails", func(t *testing.T) {
		alex := testutil.NewPersonBuilder().WithName("Alex Yeoh").Build(t)
		sam := testutil.NewPersonBuilder().WithName("Sam Lee").Build(t)
		m, err := nb.NewModel(alex, sam)
		if err != nil {
			t.Fatalf("NewModel() error = %v", err)
		}

		cmd := &nb.EditCommand{Index: 1, Actions: []edit.Action{
			edit.SetName{Name: mustValue(t, person.NewName, "Alex Yeoh")},
		}}
		if _, err := cmd.Execute(m); !errors.Is(err, nb.ErrDuplicateRecord) {
			t.Fatalf("Execute() error = %v, want ErrDuplicateRecord", err)
		}
		got, _ := m.PersonAt(1)
		if !got.Equal(sam) {
			t.Errorf("PersonAt(1) = %v after failed edit, want %v", got, sam)
		}
	})

	t.Run("keeping the same name succeeds", func(t *testing.T) {
		m := newTypicalModel(t)
		cmd := &nb.EditCommand{Index: 0, Actions: []edit.Action{
			edit.SetName{Name: mustValue(t, person.NewName, "Alice Pauline")},
		}}
		if _, err := cmd.Execute(m); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
	})

	t.Run("clearing emails leaves none", func(t *testing.T) {
		m := newTypicalModel(t)
		cmd := &nb.EditCommand{Index: 1, Actions: []edit.Action{edit.ClearEmails{}}}
		if _, err := cmd.Execute(m); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		got, _ := m.PersonAt(1)
		if got.Emails().Len() != 0 {
			t.Errorf("Emails() = %v, want none", got.Emails())
		}
	})

	t.Run("no actions", func(t *testing.T) {
		m := newTypicalModel(t)
		if _, err := (&nb.EditCommand{Index: 0}).Execute(m); !errors.Is(err, nb.ErrNoFieldsEdited) {
			t.Errorf("Execute() error = %v, want ErrNoFieldsEdited", err)
		}
	})

	t.Run("index out of range", func(t *testing.T) {
		m := newTypicalModel(t)
		cmd := &nb.EditCommand{Index: 5, Actions: []edit.Action{edit.ClearTags{}}}
		if _, err := cmd.Execute(m); !errors.Is(err, nb.ErrIndexOutOfRange) {
			t.Errorf("Execute() error = %v, want ErrIndexOutOfRange", err)
		}
	})

	t.Run("failing action leaves the book unchanged", func(t *testing.T) {
		m := newTypicalModel(t)
		cmd := &nb.EditCommand{Index: 1, Actions: []edit.Action{
			edit.SetPhone{Phone: mustValue(t, person.NewPhone, "12345678")},
			edit.DeleteEmailAt{Index: 2},
		}}
		if _, err := cmd.Execute(m); !errors.Is(err, uniquelist.ErrIndexOutOfRange) {
			t.Fatalf("Execute() error = %v, want ErrIndexOutOfRange", err)
		}
		got, _ := m.PersonAt(1)
		if !got.Equal(testutil.Benson(t)) {
			t.Errorf("PersonAt(1) = %v, want Benson unchanged", got)
		}
		if m.Version() != 0 {
			t.Errorf("Version() = %d, want 0", m.Version())
		}
	})

	t.Run("index follows the displayed list and resets the filter", func(t *testing.T) {
		m := newTypicalModel(t)
		if _, err := (&nb.FindCommand{Terms: []string{"meier"}}).Execute(m); err != nil {
			t.Fatalf("find error = %v", err)
		}

		cmd := &nb.EditCommand{Index: 1, Actions: []edit.Action{edit.DeletePriority{}}}
		if _, err := cmd.Execute(m); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if got := len(m.Displayed()); got != 5 {
			t.Errorf("len(Displayed()) = %d after edit, want 5", got)
		}
		daniel, _ := m.PersonAt(3)
		if daniel.Priority().IsPresent() {
			t.Errorf("Daniel still has priority %v", daniel.Priority())
		}
	})
}

func TestCreateCommand(t *testing.T) {
	m := newTypicalModel(t)
	amy := testutil.Amy(t)

	result, err := (&nb.CreateCommand{Person: amy}).Execute(m)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Message != "New person added: "+amy.String() {
		t.Errorf("Message = %q", result.Message)
	}
	if !m.HasPerson(amy) {
		t.Error("HasPerson() = false after create")
	}

	if _, err := (&nb.CreateCommand{Person: amy}).Execute(m); !errors.Is(err, nb.ErrDuplicateRecord) {
		t.Errorf("second Execute() error = %v, want ErrDuplicateRecord", err)
	}
}

func TestDeleteCommand(t *testing.T) {
	m := newTypicalModel(t)
	if _, err := (&nb.SortCommand{Field: nb.SortByName, Order: nb.Descending}).Execute(m); err != nil {
		t.Fatalf("sort error = %v", err)
	}

	result, err := (&nb.DeleteCommand{Index: 0}).Execute(m)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(result.Message, "Deleted Person: Elle Meyer") {
		t.Errorf("Message = %q, want Elle deleted", result.Message)
	}
	if m.HasPerson(testutil.Elle(t)) {
		t.Error("Elle still in book")
	}

	if _, err := (&nb.DeleteCommand{Index: 4}).Execute(m); !errors.Is(err, nb.ErrIndexOutOfRange) {
		t.Errorf("Execute() error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestClearCommand(t *testing.T) {
	m := newTypicalModel(t)
	result, err := nb.ClearCommand{}.Execute(m)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Message != "Network book has been cleared!" {
		t.Errorf("Message = %q", result.Message)
	}
	if len(m.Persons()) != 0 {
		t.Errorf("Persons() = %v, want empty", m.Persons())
	}
}

func TestFindCommand(t *testing.T) {
	tests := []struct {
		name  string
		terms []string
		want  []string
	}{
		{name: "single term", terms: []string{"meier"}, want: []string{"Benson Meier", "Daniel Meier"}},
		{name: "any term matches", terms: []string{"ALICE", "carl"}, want: []string{"Alice Pauline", "Carl Kurz"}},
		{name: "substring", terms: []string{"ey"}, want: []string{"Elle Meyer"}},
		{name: "no match", terms: []string{"zed"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTypicalModel(t)
			result, err := (&nb.FindCommand{Terms: tt.terms}).Execute(m)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			assertNames(t, names(m.Displayed()), tt.want)
			if want := len(tt.want); result.Message != fmt.Sprintf("%d persons listed!", want) {
				t.Errorf("Message = %q, want %d persons listed", result.Message, want)
			}
			if !result.ShowList {
				t.Error("ShowList = false, want true")
			}
		})
	}
}

func TestFilterCommand(t *testing.T) {
	tests := []struct {
		name  string
		field nb.FilterField
		terms []string
		want  []string
	}{
		{name: "course", field: nb.FilterByCourse, terms: []string{"computer"},
			want: []string{"Alice Pauline", "Benson Meier"}},
		{name: "specialisation", field: nb.FilterBySpecialisation, terms: []string{"DATA", "market"},
			want: []string{"Daniel Meier", "Elle Meyer"}},
		{name: "graduating year is exact", field: nb.FilterByGraduatingYear, terms: []string{"2001", "202"},
			want: []string{"Benson Meier"}},
		{name: "tag", field: nb.FilterByTag, terms: []string{"owes"}, want: []string{"Benson Meier"}},
		{name: "empty term matches nothing", field: nb.FilterByCourse, terms: []string{""}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTypicalModel(t)
			if _, err := (&nb.FilterCommand{Field: tt.field, Terms: tt.terms}).Execute(m); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			assertNames(t, names(m.Displayed()), tt.want)
		})
	}

	t.Run("list clears the filter", func(t *testing.T) {
		m := newTypicalModel(t)
		(&nb.FilterCommand{Field: nb.FilterByTag, Terms: []string{"owes"}}).Execute(m)
		if _, err := (nb.ListCommand{}).Execute(m); err != nil {
			t.Fatalf("list error = %v", err)
		}
		if got := len(m.Displayed()); got != 5 {
			t.Errorf("len(Displayed()) = %d, want 5", got)
		}
	})
}

func TestSortCommand(t *testing.T) {
	tests := []struct {
		field nb.SortField
		order nb.SortOrder
		want  []string
	}{
		{nb.SortByName, nb.Ascending, []string{"Alice Pauline", "Benson Meier", "Carl Kurz", "Daniel Meier", "Elle Meyer"}},
		{nb.SortByName, nb.Descending, []string{"Elle Meyer", "Daniel Meier", "Carl Kurz", "Benson Meier", "Alice Pauline"}},
		{nb.SortByGraduatingYear, nb.Ascending, []string{"Alice Pauline", "Benson Meier", "Elle Meyer", "Daniel Meier", "Carl Kurz"}},
		{nb.SortByGraduatingYear, nb.Descending, []string{"Daniel Meier", "Elle Meyer", "Benson Meier", "Alice Pauline", "Carl Kurz"}},
		{nb.SortByCourse, nb.Ascending, []string{"Elle Meyer", "Benson Meier", "Alice Pauline", "Daniel Meier", "Carl Kurz"}},
		{nb.SortBySpecialisation, nb.Ascending, []string{"Daniel Meier", "Benson Meier", "Alice Pauline", "Elle Meyer", "Carl Kurz"}},
		{nb.SortByPriority, nb.Ascending, []string{"Alice Pauline", "Daniel Meier", "Elle Meyer", "Benson Meier", "Carl Kurz"}},
		{nb.SortByPriority, nb.Descending, []string{"Elle Meyer", "Daniel Meier", "Alice Pauline", "Benson Meier", "Carl Kurz"}},
	}

	for _, tt := range tests {
		t.Run(tt.field.String()+"/"+tt.order.String(), func(t *testing.T) {
			m := newTypicalModel(t)
			result, err := (&nb.SortCommand{Field: tt.field, Order: tt.order}).Execute(m)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			assertNames(t, names(m.Displayed()), tt.want)
			want := fmt.Sprintf("Sorted by %s in %s order", tt.field, tt.order)
			if result.Message != want {
				t.Errorf("Message = %q, want %q", result.Message, want)
			}
			if !result.ShowList {
				t.Error("ShowList = false, want true")
			}
		})
	}

	t.Run("name ignores case", func(t *testing.T) {
		lower := testutil.NewPersonBuilder().WithName("aaron").Build(t)
		upper := testutil.NewPersonBuilder().WithName("Zed").Build(t)
		m, _ := nb.NewModel(upper, lower)
		(&nb.SortCommand{Field: nb.SortByName, Order: nb.Ascending}).Execute(m)
		assertNames(t, names(m.Displayed()), []string{"aaron", "Zed"})
	})

	t.Run("unknown field", func(t *testing.T) {
		if _, err := (&nb.SortCommand{Field: nb.SortField(99)}).Execute(newTypicalModel(t)); err == nil {
			t.Error("Execute() expected error for unknown field")
		}
	})
}

func TestHelpAndExit(t *testing.T) {
	m := newTypicalModel(t)

	help, err := nb.HelpCommand{}.Execute(m)
	if err != nil {
		t.Fatalf("help error = %v", err)
	}
	for _, usage := range []string{nb.CreateUsage, nb.EditUsage, nb.SortUsage} {
		if !strings.Contains(help.Message, usage) {
			t.Errorf("help message missing usage %q", usage)
		}
	}
	if help.Exit {
		t.Error("help asked to exit")
	}

	exit, err := nb.ExitCommand{}.Execute(m)
	if err != nil {
		t.Fatalf("exit error = %v", err)
	}
	if !exit.Exit {
		t.Error("exit did not ask to exit")
	}
}
