package infer

import (
	"regexp"
	"time"
)

const dateLayout = "2006-01-02"

var (
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockPattern    = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2}(\.\d{1,9})?)?(Z|[+-]\d{2}:\d{2})?$`)
	dateTimePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})[T ](.+)$`)
)

// IsDate reports whether s is a calendar date in YYYY-MM-DD form.
func IsDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// IsTime reports whether s is an ISO time of day: HH:MM, optionally with
// seconds, a fraction of up to nine digits and a UTC offset.
func IsTime(s string) bool {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	layout := "15:04"
	if m[1] != "" {
		// Fractional seconds are accepted after the seconds field without a layout element.
		layout += ":05"
	}
	if m[3] != "" {
		layout += "Z07:00"
	}
	_, err := time.Parse(layout, s)
	return err == nil
}

// IsDateTime reports whether s is an ISO date, a "T" or space separator and
// an ISO time of day.
func IsDateTime(s string) bool {
	m := dateTimePattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	return IsDate(m[1]) && IsTime(m[2])
}
