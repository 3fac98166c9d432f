package paths

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatDuration renders seconds as H:MM:SS, dropping the hour part when it
// is zero: 65 renders as "1:05", 3725 as "1:02:05".
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h, m, s := seconds/3600, seconds/60%60, seconds%60
	if h == 0 {
		return fmt.Sprintf("%d:%02d", m, s)
	}
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// ReleaseYear extracts the year of an ISO-like release date ("2020-05-01").
// Unknown dates yield "".
func ReleaseYear(date *string) string {
	if date == nil {
		return ""
	}
	year, _, _ := strings.Cut(strings.TrimSpace(*date), "-")
	return year
}

// padNumber renders n with at least two digits.
func padNumber(n int) string {
	return fmt.Sprintf("%02d", n)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
