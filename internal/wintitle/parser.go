// Package wintitle controls Windows players that expose no scripting
// interface: track metadata is scraped from the foreground window title and
// transport commands are delivered as synthetic keystrokes.
package wintitle

import (
	"strings"

	"medley/internal/player"
)

const separator = " - "

// Parse extracts track metadata from a window title of the form
// "<field> - <field> - … - <ApplicationName>" and applies it to track,
// returning whether the player is playing.
//
// A title equal to the bare application name means nothing is playing;
// track is left untouched. Otherwise the trailing application name is
// stripped and the remaining fields map left-to-right to title, artist and
// album, with "Unknown" filling whatever is missing.
func Parse(title, app string, track *player.TrackInfo) bool {
	if title == app {
		return false
	}

	rest := title
	if strings.HasSuffix(rest, separator+app) {
		rest = strings.TrimSuffix(rest, separator+app)
	} else if strings.HasSuffix(rest, app) {
		rest = strings.TrimSuffix(rest, app)
	}
	if rest == "" {
		return false
	}

	parts := strings.Split(rest, separator)
	track.Title = orUnknown(parts[0])
	if len(parts) > 1 {
		track.Artist = orUnknown(parts[1])
	} else {
		track.Artist = player.UnknownTitle
	}
	if len(parts) > 2 {
		track.Album = orUnknown(parts[2])
	} else {
		track.Album = player.UnknownTitle
	}
	return true
}

func orUnknown(v string) string {
	if v == "" {
		return player.UnknownTitle
	}
	return v
}
