// Package converters handles conversion between the wire representation
// of due dates (full ISO-8601 instants) and the date-only form shown in
// edit fields.
//
// The conversion is deliberately lossy in one direction: a date-only
// value parses to local midnight, so editing a task whose stored
// instant carried a time-of-day and saving truncates it to 00:00.
// That matches the behavior the backend's other clients exhibit.
package converters

import "time"

// dateOnlyLayout is the form-field representation of a due date.
const dateOnlyLayout = "2006-01-02"

// DateOnly formats an instant as a date-only string in local time,
// suitable for pre-filling an edit field. A zero time formats as "".
func DateOnly(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(dateOnlyLayout)
}

// ParseDateOnly parses a date-only field value into an instant at
// local midnight. An empty string returns the zero time with no error,
// leaving the default-due-date decision to the caller.
func ParseDateOnly(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(dateOnlyLayout, s, time.Local)
}

// FormatDue renders a due date for display in lists and cards.
func FormatDue(t time.Time) string {
	return t.Local().Format("Jan 2, 2006")
}
