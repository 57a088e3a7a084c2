package helpers

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var time12Pattern = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})\s*(AM|PM)$`)

// FormatTime12h converts a 24-hour "HH:MM" string to "HH:MM AM/PM".
// Empty input yields an empty string; anything that does not parse as a
// real time of day is returned unchanged.
func FormatTime12h(time24 string) string {
	if time24 == "" {
		return ""
	}
	parts := strings.SplitN(time24, ":", 2)
	if len(parts) != 2 {
		return time24
	}
	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return time24
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return time24
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return time24
	}

	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	hours12 := hours % 12
	if hours12 == 0 {
		hours12 = 12
	}
	return fmt.Sprintf("%02d:%02d %s", hours12, minutes, period)
}

// FormatTime24h converts "H:MM AM/PM" back to 24-hour "HH:MM". Input not
// matching the strict 12-hour pattern is returned unchanged.
func FormatTime24h(time12 string) string {
	if time12 == "" {
		return ""
	}
	match := time12Pattern.FindStringSubmatch(time12)
	if match == nil {
		return time12
	}
	hours, err := strconv.Atoi(match[1])
	if err != nil || hours < 1 || hours > 12 {
		return time12
	}
	period := strings.ToUpper(match[3])

	if period == "PM" && hours != 12 {
		hours += 12
	} else if period == "AM" && hours == 12 {
		hours = 0
	}
	return fmt.Sprintf("%02d:%s", hours, match[2])
}
