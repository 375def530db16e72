package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIndex converts a one-based index as typed by the user into a
// zero-based one.
func ParseIndex(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 || strings.HasPrefix(s, "+") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIndex, s)
	}
	return n - 1, nil
}
