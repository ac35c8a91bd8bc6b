package common

import (
	"strings"
)

func ToLowerWithTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ParseFlag interprets a query flag: only "true" in any letter case enables it.
// Absent, empty or any other value is false.
func ParseFlag(val string) bool {
	return strings.EqualFold(val, "true")
}
