package resource

import (
	"regexp"
	"strings"
	"time"
)

// timestampPattern matches the date-like substrings the API embeds in
// attribute values: an optional date part followed by a time part, with an
// optional microsecond fraction and an optional trailing UTC marker.
var timestampPattern = regexp.MustCompile(
	`(\d{4}-\d{2}-\d{2}[T ])?\d{2}:\d{2}:\d{2}(\.\d{6})?Z?`)

// timestampLayouts are the wire formats the API is known to emit, tried in
// order. The matched substring is reformatted with whichever layout parsed.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.000000",
	"2006-01-02 15:04:05.000000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// NormalizeTimestamps rewrites UTC timestamps embedded in s to local time.
//
// Only substrings carrying an explicit UTC marker (a trailing "Z") are
// converted; the marker is dropped on output, so a second pass over the
// result is a no-op. Substrings that fail every known layout are passed
// through unchanged rather than failing the caller.
func NormalizeTimestamps(s string) string {
	if s == "" || !strings.Contains(s, ":") {
		return s
	}
	return timestampPattern.ReplaceAllStringFunc(s, convertTimestamp)
}

func convertTimestamp(match string) string {
	if !strings.HasSuffix(match, "Z") {
		return match
	}
	bare := strings.TrimSuffix(match, "Z")
	for _, layout := range timestampLayouts {
		parsed, err := time.ParseInLocation(layout, bare, time.UTC)
		if err != nil {
			continue
		}
		return parsed.In(time.Local).Format(layout)
	}
	return match
}
