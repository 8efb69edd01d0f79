// Package params parses query string and path values.
package params

import (
	"strconv"
	"strings"
	"time"
)

// ParseBool accepts true/1/yes/on/active and false/0/no/off/inactive in any
// case. ok is false for anything else, including the empty string.
func ParseBool(s string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on", "active":
		return true, true
	case "false", "0", "no", "off", "inactive":
		return false, true
	}
	return false, false
}

// ParseID parses a positive int64 identifier.
func ParseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

const dateLayout = "2006-01-02"

// ParseDate accepts YYYY-MM-DD or RFC 3339. With endOfDay set, a bare date
// means the last instant of that day so that ranges include it.
func ParseDate(s string, endOfDay bool) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, true
}
