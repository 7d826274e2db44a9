package strings

import (
	"strings"
)

// DefaultCellMaxLen is the widest a free-text cell gets in table output.
const DefaultCellMaxLen = 60

// MinTruncateLen is the smallest maxLen TruncateCell accepts; it leaves room
// for one rune plus the ellipsis.
const MinTruncateLen = 4

// TruncateCell collapses all whitespace runs in s to single spaces and cuts
// the result to maxLen runes, ending in "..." when something was removed.
// maxLen values below MinTruncateLen are raised to MinTruncateLen.
func TruncateCell(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}
