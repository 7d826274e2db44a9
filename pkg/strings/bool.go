// Package strings holds small string helpers shared by the command layer and the host adapter.
package strings

import (
	"fmt"
	"strings"
)

// ParseBool parses the loose boolean spellings accepted on the command line.
//
// "true", "1", "yes" and "on" are true; "false", "0", "no" and "off" are false.
// Matching is case-insensitive and ignores surrounding whitespace. Any other
// value, including the empty string, is an error.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value %q", s)
	}
}

// FormatBool renders b the way boolean fields are printed: "1" or "0".
func FormatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// FormatOptionalBool renders a tri-state boolean. A nil pointer renders as
// the empty string so an undeclared value is never shown as false.
func FormatOptionalBool(b *bool) string {
	if b == nil {
		return ""
	}
	return FormatBool(*b)
}
