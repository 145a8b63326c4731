package utils

import (
	"strconv"
	"strings"
)

// ToInt parses a loosely formatted integer string, returning 0 when the
// value is empty or not a number. Query parameters feed it, so absence and
// malformed input both read as "not set".
func ToInt(s string) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return i
}

// ToBool reports whether a query parameter spells an affirmative: "1",
// "true", "yes" or "on", case-insensitive. Everything else, the empty
// string included, is false.
func ToBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
