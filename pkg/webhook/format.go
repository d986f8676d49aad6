package webhook

import (
	"fmt"
	"strings"
	"time"
)

// displayName renders a broadcaster for card titles. When the display name
// is just a re-cased login it stands alone; otherwise the login is shown in
// parentheses so localized display names stay identifiable.
func displayName(userName, userLogin string) string {
	if strings.ToLower(userName) == userLogin {
		return userName
	}
	return fmt.Sprintf("%s (%s)", userName, userLogin)
}

// humanDuration renders the elapsed time between start and end as hXhMMm,
// e.g. "1h05m". Negative spans render as "<in the future>".
func humanDuration(start, end time.Time) string {
	minutes := int64(end.Sub(start).Minutes())
	if minutes < 0 {
		return "<in the future>"
	}
	return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
}
