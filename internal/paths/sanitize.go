package paths

import "strings"

// replacement is written in place of every reserved character.
const replacement = "-"

var reservedReplacer = strings.NewReplacer(
	"\\", replacement,
	"/", replacement,
	":", replacement,
	"*", replacement,
	"?", replacement,
	"\"", replacement,
	"<", replacement,
	">", replacement,
	"|", replacement,
)

// Sanitize makes name usable as a single path segment.
//
// Characters reserved on common filesystems (\ / : * ? " < > |) are
// replaced with "-" and surrounding whitespace is trimmed. Sanitize is
// idempotent.
//
// Example:
//
//	Sanitize(" AC/DC: Live ") // Returns "AC-DC- Live"
func Sanitize(name string) string {
	return strings.TrimSpace(reservedReplacer.Replace(name))
}

// truncate returns at most n runes of s.
func truncate(s string, n int) string {
	if n < 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
