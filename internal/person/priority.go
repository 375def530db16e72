package person

import "strings"

// Level is one of the fixed priority levels.
type Level int

const (
	LevelHigh Level = iota + 1
	LevelMedium
	LevelLow
)

const PriorityConstraints = "Priority should be one of high, medium or low (or h, m, l), case-insensitive"

// Priority is how important a contact is to the user.
type Priority struct {
	level Level
}

// NewPriority parses raw, case-insensitively, as a priority level.
func NewPriority(raw string) (Priority, error) {
	level, ok := parseLevel(raw)
	if !ok {
		return Priority{}, invalid("priority", PriorityConstraints)
	}
	return Priority{level: level}, nil
}

// IsValidPriority reports whether raw names a priority level.
func IsValidPriority(raw string) bool {
	_, ok := parseLevel(raw)
	return ok
}

func parseLevel(raw string) (Level, bool) {
	switch strings.ToLower(raw) {
	case "high", "h":
		return LevelHigh, true
	case "medium", "m":
		return LevelMedium, true
	case "low", "l":
		return LevelLow, true
	default:
		return 0, false
	}
}

// Level returns the priority level. Lower values are more important.
func (p Priority) Level() Level { return p.level }

func (p Priority) String() string {
	switch p.level {
	case LevelHigh:
		return "HIGH"
	case LevelMedium:
		return "MEDIUM"
	case LevelLow:
		return "LOW"
	default:
		return ""
	}
}
