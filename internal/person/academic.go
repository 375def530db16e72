package person

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minGraduatingYear = 1900
	maxGraduatingYear = 2099
)

const GraduatingYearConstraints = "Graduating year should be a 4-digit year between 1900 and 2099"

var yearRegex = regexp.MustCompile(`^\d{4}$`)

// GraduatingYear is the year a contact graduates (or graduated).
type GraduatingYear struct {
	value string
}

// NewGraduatingYear validates raw and returns it as a GraduatingYear.
func NewGraduatingYear(raw string) (GraduatingYear, error) {
	if !IsValidGraduatingYear(raw) {
		return GraduatingYear{}, invalid("graduating year", GraduatingYearConstraints)
	}
	return GraduatingYear{value: raw}, nil
}

// IsValidGraduatingYear reports whether raw is an acceptable graduating year.
func IsValidGraduatingYear(raw string) bool {
	if !yearRegex.MatchString(raw) {
		return false
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return false
	}
	return year >= minGraduatingYear && year <= maxGraduatingYear
}

// Year returns the numeric year.
func (g GraduatingYear) Year() int {
	year, _ := strconv.Atoi(g.value)
	return year
}

func (g GraduatingYear) String() string { return g.value }

const CourseConstraints = "Course should not be blank and should not start with whitespace"

var courseRegex = regexp.MustCompile(`^\S.*$`)

// Course is the course of study a contact is taking.
type Course struct {
	value string
}

// NewCourse validates raw and returns it as a Course.
func NewCourse(raw string) (Course, error) {
	if !IsValidCourse(raw) {
		return Course{}, invalid("course", CourseConstraints)
	}
	return Course{value: raw}, nil
}

// IsValidCourse reports whether raw is an acceptable course.
func IsValidCourse(raw string) bool {
	return courseRegex.MatchString(raw)
}

func (c Course) String() string { return c.value }

const SpecialisationConstraints = "Specialisation should not be blank, words should be separated by a single space, " +
	"no word may start with a comma, period or dash, and a word may only contain uppercase letters after its " +
	"first character if the whole word is uppercase"

// Specialisation is the area a contact specialises in within their course.
type Specialisation struct {
	value string
}

// NewSpecialisation validates raw and returns it as a Specialisation.
func NewSpecialisation(raw string) (Specialisation, error) {
	if !IsValidSpecialisation(raw) {
		return Specialisation{}, invalid("specialisation", SpecialisationConstraints)
	}
	return Specialisation{value: raw}, nil
}

// IsValidSpecialisation reports whether raw is an acceptable specialisation.
func IsValidSpecialisation(raw string) bool {
	if raw == "" {
		return false
	}
	for _, word := range strings.Split(raw, " ") {
		if !isValidSpecialisationWord(word) {
			return false
		}
	}
	return true
}

// isValidSpecialisationWord rejects empty words (from leading, trailing or
// repeated spaces), words starting with , . or -, and mixed-case words with
// an uppercase letter past the first rune.
func isValidSpecialisationWord(word string) bool {
	first, size := utf8.DecodeRuneInString(word)
	if first == utf8.RuneError || unicode.IsSpace(first) {
		return false
	}
	if strings.ContainsRune(",.-", first) {
		return false
	}
	rest := word[size:]
	hasLower := strings.IndexFunc(word, unicode.IsLower) >= 0
	restHasUpper := strings.IndexFunc(rest, unicode.IsUpper) >= 0
	return !(hasLower && restHasUpper)
}

func (s Specialisation) String() string { return s.value }
