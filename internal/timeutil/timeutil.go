package timeutil

import (
	"fmt"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ZuluLayout is the upstream timestamp format: UTC, no fractional seconds.
const ZuluLayout = "2006-01-02T15:04:05Z"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseZulu parses a strict YYYY-MM-DDTHH:MM:SSZ timestamp.
func ParseZulu(value string) (time.Time, error) {
	// time.Parse tolerates fractional seconds the layout does not declare.
	if len(value) != len(ZuluLayout) {
		return time.Time{}, fmt.Errorf("timestamp %q is not in %s form", value, ZuluLayout)
	}
	return time.ParseInLocation(ZuluLayout, value, time.UTC)
}

// ResolveLocation loads a named zone; empty or unknown names yield time.Local.
func ResolveLocation(name string) (*time.Location, bool) {
	if name == "" {
		return time.Local, true
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local, false
	}
	return loc, true
}
