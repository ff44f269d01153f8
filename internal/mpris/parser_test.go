package mpris

import (
	"testing"

	"medley/internal/player"
)

// spotifyDump mirrors the reply shape of
// dbus-send --print-reply ... Properties.Get ... Metadata
const spotifyDump = `method return time=1699373254.123 sender=:1.52 -> destination=:1.999 serial=42 reply_serial=2
   variant       array [
         dict entry(
            string "mpris:trackid"
            variant                string "spotify:track:4uLU6hMCjMI75M1A2tKUQC"
         )
         dict entry(
            string "mpris:length"
            variant                int64 245000000
         )
         dict entry(
            string "mpris:artUrl"
            variant                string "https://i.scdn.co/image/ab67616d0000b273"
         )
         dict entry(
            string "xesam:album"
            variant                string "Phoenix"
         )
         dict entry(
            string "xesam:artist"
            variant                array [
                  string "Netrum"
               ]
         )
         dict entry(
            string "xesam:title"
            variant                string "Phoenix"
         )
      ]
`

func TestParseMetadataFullDump(t *testing.T) {
	track := player.NewTrackInfo()
	ParseMetadata(spotifyDump, track)

	if track.Title != "Phoenix" {
		t.Errorf("Title = %q, want %q", track.Title, "Phoenix")
	}
	if track.Artist != "Netrum" {
		t.Errorf("Artist = %q, want %q", track.Artist, "Netrum")
	}
	if track.Album != "Phoenix" {
		t.Errorf("Album = %q, want %q", track.Album, "Phoenix")
	}
	if track.Duration != 245.0 {
		t.Errorf("Duration = %v, want 245.0", track.Duration)
	}
	if track.ArtURL != "https://i.scdn.co/image/ab67616d0000b273" {
		t.Errorf("ArtURL = %q", track.ArtURL)
	}
	if !track.HasTrackInfo() {
		t.Error("HasTrackInfo() = false after a full parse")
	}
}

func TestParseMetadataStringRules(t *testing.T) {
	tests := []struct {
		name string
		dump string
		want string
	}{
		{
			name: "plain quoted value",
			dump: "string \"xesam:title\"\nvariant  string \"Phoenix\"\n",
			want: "Phoenix",
		},
		{
			name: "one leading colon stripped",
			dump: "string \"xesam:title\"\nvariant  string \"::Title\"\n",
			want: ":Title",
		},
		{
			name: "internal colons preserved",
			dump: "string \"xesam:title\"\nvariant  string \"Re: Your Brains\"\n",
			want: "Re: Your Brains",
		},
		{
			name: "only one surrounding quote pair stripped",
			dump: "string \"xesam:title\"\nvariant  string \"\"Heroes\"\"\n",
			want: "\"Heroes\"",
		},
		{
			name: "empty value yields sentinel",
			dump: "string \"xesam:title\"\nvariant  string \"\"\n",
			want: player.UnknownTitle,
		},
		{
			name: "surrounding whitespace trimmed",
			dump: "string \"xesam:title\"\nvariant  string    \"Phoenix\"   \n",
			want: "Phoenix",
		},
		{
			name: "key and value on the same line",
			dump: "xesam:title variant string \"Phoenix\"",
			want: "Phoenix",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track := player.NewTrackInfo()
			ParseMetadata(tt.dump, track)
			if track.Title != tt.want {
				t.Errorf("Title = %q, want %q", track.Title, tt.want)
			}
		})
	}
}

func TestParseMetadataAbsentKeyLeavesPriorValue(t *testing.T) {
	track := player.NewTrackInfo()
	track.Title = "Previous Title"
	track.Artist = "Previous Artist"
	track.Duration = 100

	ParseMetadata("string \"xesam:album\"\nvariant  string \"Some Album\"\n", track)

	if track.Title != "Previous Title" {
		t.Errorf("Title overwritten to %q without a title key", track.Title)
	}
	if track.Artist != "Previous Artist" {
		t.Errorf("Artist overwritten to %q without an artist key", track.Artist)
	}
	if track.Duration != 100 {
		t.Errorf("Duration overwritten to %v without a length key", track.Duration)
	}
	if track.Album != "Some Album" {
		t.Errorf("Album = %q, want %q", track.Album, "Some Album")
	}
}

func TestParseMetadataArtistArray(t *testing.T) {
	// Only the first array element is read.
	dump := "string \"xesam:artist\"\nvariant  array [\n      string \"Netrum\"\n      string \"Halvorsen\"\n   ]\n"

	track := player.NewTrackInfo()
	ParseMetadata(dump, track)

	if track.Artist != "Netrum" {
		t.Errorf("Artist = %q, want %q", track.Artist, "Netrum")
	}
}

func TestParseMetadataBadLength(t *testing.T) {
	track := player.NewTrackInfo()
	track.Duration = 245

	ParseMetadata("string \"mpris:length\"\nvariant  int64 notanumber\n", track)

	if track.Duration != 245 {
		t.Errorf("Duration = %v after a failed parse, want prior value 245", track.Duration)
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		name   string
		out    string
		want   float64
		wantOK bool
	}{
		{
			name:   "typical reply",
			out:    "method return time=1699373254.5 sender=:1.52 -> destination=:1.999 serial=44 reply_serial=2\n   variant       int64 115000000\n",
			want:   115.0,
			wantOK: true,
		},
		{
			name:   "missing tag",
			out:    "method return\n   variant       double 0.5\n",
			wantOK: false,
		},
		{
			name:   "unparsable integer",
			out:    "variant int64 bogus",
			wantOK: false,
		},
		{
			name:   "empty reply",
			out:    "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePosition(tt.out)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("position = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsPlayingOutput(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want bool
	}{
		{"playing status", "   variant       string \"Playing\"\n", true},
		{"playing anywhere in reply", "noise Playing noise", true},
		{"paused", "   variant       string \"Paused\"\n", false},
		{"stopped", "   variant       string \"Stopped\"\n", false},
		{"case sensitive", "   variant       string \"playing\"\n", false},
		{"empty reply", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPlayingOutput(tt.out); got != tt.want {
				t.Errorf("IsPlayingOutput(%q) = %v, want %v", tt.out, got, tt.want)
			}
		})
	}
}
