package domain

import (
	"regexp"
	"strings"
	"time"
)

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
)

// Slugify converts a mission name into its stable identifier.
func Slugify(text string) string {
	text = strings.ToLower(text)
	text = slugStrip.ReplaceAllString(text, "")
	text = slugCollapse.ReplaceAllString(text, "-")
	return strings.Trim(text, "-")
}

// MissionName extracts the mission part of an upstream launch name,
// e.g. "SLS Block 1 | Artemis II" -> "Artemis II".
func MissionName(launchName string) string {
	if i := strings.LastIndex(launchName, "|"); i >= 0 {
		return strings.TrimSpace(launchName[i+1:])
	}
	return strings.TrimSpace(launchName)
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses an upstream ISO-8601 timestamp. Values without an
// offset are taken as UTC. It reports false for empty or malformed input.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
