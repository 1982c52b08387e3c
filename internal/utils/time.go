package util

import (
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Now is the clock used for join and creation dates. Tests replace it.
var Now = time.Now

// Today returns the current local date as YYYY-MM-DD.
func Today() string {
	return Now().Format(DateLayout)
}

// IsDate reports whether s is a YYYY-MM-DD calendar date.
func IsDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// NormalizeTime accepts HH:MM or HH:MM:SS and returns HH:MM.
func NormalizeTime(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{TimeLayout, "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(TimeLayout), true
		}
	}
	return "", false
}
