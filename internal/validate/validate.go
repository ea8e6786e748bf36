package validate

import (
	"strconv"
	"strings"

	"mercadito/internal/domain"
)

// Name trims a display name and rejects blank results.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

// Condition validates the allowed condition enums.
func Condition(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s == domain.ConditionNew || s == domain.ConditionUsed
}

// ID parses a path id as a positive integer.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
