// Package mpris controls MPRIS-capable Linux players through dbus-send and
// scans the textual reply format of property introspection calls.
package mpris

import (
	"strconv"
	"strings"

	"medley/internal/player"
)

// Metadata key tokens as they appear in a dbus-send property dump. Each key
// is followed, on the same or a later line, by a typed value token:
// `string "…"`, `array [ string "…" ]`, or `int64 …`.
const (
	titleKey  = "xesam:title"
	artistKey = "xesam:artist"
	albumKey  = "xesam:album"
	lengthKey = "mpris:length"
	artKey    = "mpris:artUrl"
)

const microsPerSecond = 1e6

// ParseMetadata scans a property-dump reply and applies every field it finds
// to track. A key that is absent from the dump leaves the corresponding
// field at its prior value; the function never fails.
func ParseMetadata(out string, track *player.TrackInfo) {
	if idx := strings.Index(out, titleKey); idx >= 0 {
		if v, ok := stringAfter(out[idx:]); ok {
			track.Title = orUnknown(v)
		}
	}

	if idx := strings.Index(out, artistKey); idx >= 0 {
		rest := out[idx:]
		// The artist is array-valued; only the first element is read.
		if arr := strings.Index(rest, "array ["); arr >= 0 {
			if v, ok := stringAfter(rest[arr+len("array ["):]); ok {
				track.Artist = orUnknown(v)
			}
		}
	}

	if idx := strings.Index(out, albumKey); idx >= 0 {
		if v, ok := stringAfter(out[idx:]); ok {
			track.Album = orUnknown(v)
		}
	}

	if idx := strings.Index(out, lengthKey); idx >= 0 {
		if secs, ok := int64After(out[idx:]); ok {
			track.Duration = secs
		}
	}

	if idx := strings.Index(out, artKey); idx >= 0 {
		if v, ok := stringAfter(out[idx:]); ok && v != "" {
			track.ArtURL = v
		}
	}
}

// ParsePosition extracts the playback position, in seconds, from the reply
// to a single-value Position query. Same value rule as mpris:length, no key
// search needed.
func ParsePosition(out string) (float64, bool) {
	return int64After(out)
}

// IsPlayingOutput reports whether a PlaybackStatus reply indicates active
// playback. The check is a case-sensitive substring match; an empty reply
// means not playing.
func IsPlayingOutput(out string) bool {
	return strings.Contains(out, "Playing")
}

// stringAfter implements the scalar string extraction rule: find the next
// `string` value tag, take the remainder of that line, trim whitespace,
// strip one pair of surrounding double quotes, then strip one leading colon.
// Colons anywhere else are preserved, they may be part of the real value.
func stringAfter(s string) (string, bool) {
	idx := strings.Index(s, "string")
	if idx < 0 {
		return "", false
	}
	rest := s[idx+len("string"):]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}

	v := strings.TrimSpace(rest)
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		v = v[1 : len(v)-1]
	}
	v = strings.TrimPrefix(v, ":")
	return v, true
}

// int64After finds the next `int64` value tag, parses the integer that
// follows it on the same line, and converts microseconds to seconds. A
// missing tag or a failed parse reports false so the caller leaves the prior
// value in place.
func int64After(s string) (float64, bool) {
	idx := strings.Index(s, "int64")
	if idx < 0 {
		return 0, false
	}
	rest := s[idx+len("int64"):]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}

	micros, err := strconv.ParseInt(strings.TrimSpace(rest), 10, 64)
	if err != nil {
		return 0, false
	}
	return float64(micros) / microsPerSecond, true
}

// orUnknown substitutes the sentinel for an empty extraction result.
func orUnknown(v string) string {
	if v == "" {
		return player.UnknownTitle
	}
	return v
}
