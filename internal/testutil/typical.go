package testutil

import (
	"testing"

	"networkbook/internal/person"
)

// Values shared by tests that need two distinguishable contacts.
const (
	ValidNameAmy           = "Amy Bee"
	ValidNameBob           = "Bob Choo"
	ValidPhoneAmy          = "11111111"
	ValidPhoneBob          = "22222222"
	ValidEmailAmy          = "amy@example.com"
	ValidEmailBob          = "bob@example.com"
	ValidLinkAmy           = "linkedin.com/in/amy"
	ValidLinkBob           = "github.com/bob"
	ValidGraduatingYearAmy = "2024"
	ValidGraduatingYearBob = "2026"
	ValidCourseAmy         = "Computer Science"
	ValidCourseBob         = "Business Analytics"
	ValidSpecialisationAmy = "Software Engineering"
	ValidSpecialisationBob = "Artificial Intelligence"
	ValidTagFriend         = "friend"
	ValidTagHusband        = "husband"
	ValidPriorityAmy       = "high"
	ValidPriorityBob       = "low"
)

// Alice and friends form the default contents of a test book.
func Alice(t testing.TB) person.Person {
	t.Helper()
	return NewPersonBuilder().WithName("Alice Pauline").WithPhone("94351253").
		WithEmails("alice@example.com").WithLinks("www.alice.com").WithTags("friends").
		WithGraduatingYear("2000").WithCourse("Computer Science").
		WithSpecialisation("Game Development").WithPriority("high").Build(t)
}

func Benson(t testing.TB) person.Person {
	t.Helper()
	return NewPersonBuilder().WithName("Benson Meier").WithPhone("98765432").
		WithEmails("johnd@example.com", "benson@example.com").WithLinks("www.benson.com").
		WithTags("owesMoney", "friends").WithGraduatingYear("2001").
		WithCourse("Computer Engineering").WithSpecialisation("Embedded Systems").
		WithoutPriority().Build(t)
}

func Carl(t testing.TB) person.Person {
	t.Helper()
	return NewPersonBuilder().WithName("Carl Kurz").WithPhone("95352563").
		WithEmails("heinz@example.com").WithLinks().WithoutOptionalFields().Build(t)
}

func Daniel(t testing.TB) person.Person {
	t.Helper()
	return NewPersonBuilder().WithName("Daniel Meier").WithPhone("87652533").
		WithEmails("cornelia@example.com").WithLinks("github.com/daniel").WithTags("friends").
		WithGraduatingYear("2026").WithCourse("Information Systems").
		WithSpecialisation("Data Analytics").WithPriority("medium").Build(t)
}

func Elle(t testing.TB) person.Person {
	t.Helper()
	return NewPersonBuilder().WithName("Elle Meyer").WithPhone("9482224").
		WithEmails("werner@example.com").WithLinks().WithCourse("Business").
		WithGraduatingYear("2023").WithSpecialisation("Marketing").WithPriority("low").Build(t)
}

// Amy and Bob are built from the Valid*Amy and Valid*Bob constants.
func Amy(t testing.TB) person.Person {
	t.Helper()
	return NewPersonBuilder().WithName(ValidNameAmy).WithPhone(ValidPhoneAmy).
		WithEmails(ValidEmailAmy).WithLinks(ValidLinkAmy).
		WithGraduatingYear(ValidGraduatingYearAmy).WithCourse(ValidCourseAmy).
		WithSpecialisation(ValidSpecialisationAmy).WithTags(ValidTagFriend).
		WithPriority(ValidPriorityAmy).Build(t)
}

func Bob(t testing.TB) person.Person {
	t.Helper()
	return NewPersonBuilder().WithName(ValidNameBob).WithPhone(ValidPhoneBob).
		WithEmails(ValidEmailBob).WithLinks(ValidLinkBob).
		WithGraduatingYear(ValidGraduatingYearBob).WithCourse(ValidCourseBob).
		WithSpecialisation(ValidSpecialisationBob).WithTags(ValidTagHusband, ValidTagFriend).
		WithPriority(ValidPriorityBob).Build(t)
}

// TypicalPersons returns Alice, Benson, Carl, Daniel and Elle in that order.
func TypicalPersons(t testing.TB) []person.Person {
	t.Helper()
	return []person.Person{Alice(t), Benson(t), Carl(t), Daniel(t), Elle(t)}
}
