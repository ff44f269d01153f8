package player

// Sentinel values for absent metadata. They are compared by exact equality,
// so a real track literally titled "Unknown" is indistinguishable from no
// track; this mirrors how the players themselves report missing fields.
const (
	UnknownTitle     = "Unknown"
	UnknownArtist    = "Unknown Artist"
	UnknownAlbum     = "Unknown Album"
	UnableToRetrieve = "Unable To Retrieve"
)

// TrackInfo describes the track a player currently reports. Each backend owns
// exactly one instance and mutates it in place on every metadata refresh;
// callers holding the pointer observe live updates.
type TrackInfo struct {
	Title    string
	Artist   string
	Album    string
	Duration float64 // seconds
	Position float64 // seconds
	ArtURL   string  // optional album art location, empty when absent
}

// NewTrackInfo returns a TrackInfo with every field at its sentinel.
func NewTrackInfo() *TrackInfo {
	return &TrackInfo{
		Title:  UnknownTitle,
		Artist: UnknownArtist,
		Album:  UnknownAlbum,
	}
}

// SetTitle sets the title. An explicit empty value marks the title as
// queried-but-missing, which is distinct from never having been set.
func (t *TrackInfo) SetTitle(title string) {
	if title == "" {
		t.Title = UnableToRetrieve
		return
	}
	t.Title = title
}

// SetArtist sets the artist, substituting the sentinel for an empty value.
func (t *TrackInfo) SetArtist(artist string) {
	if artist == "" {
		t.Artist = UnknownArtist
		return
	}
	t.Artist = artist
}

// SetAlbum sets the album, substituting the sentinel for an empty value.
func (t *TrackInfo) SetAlbum(album string) {
	if album == "" {
		t.Album = UnknownAlbum
		return
	}
	t.Album = album
}

// HasTrackInfo reports whether the title holds a real value rather than a
// sentinel.
func (t *TrackInfo) HasTrackInfo() bool {
	return t.Title != UnknownTitle && t.Title != UnableToRetrieve
}

// ClampVolume bounds a volume level to [0, 1]. Every backend applies this
// before caching or transmitting a level.
func ClampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
