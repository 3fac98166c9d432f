package model

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Values reported by the catalog for quality and mode fields.
const (
	// QualityHiRes marks master-quality (MQA / hi-res) assets.
	QualityHiRes = "HI_RES"

	// ModeDolbyAtmos marks albums available as Dolby Atmos mixes.
	ModeDolbyAtmos = "DOLBY_ATMOS"
)

// Kind identifies the entity type a flag or path is computed for.
type Kind int

const (
	KindAlbum Kind = iota
	KindTrack
	KindPlaylist
	KindArtist
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAlbum:
		return "album"
	case KindTrack:
		return "track"
	case KindPlaylist:
		return "playlist"
	case KindArtist:
		return "artist"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Flags is the subset of an entity that quality badges are derived from.
type Flags struct {
	AudioQuality string
	AudioModes   []string
	Explicit     bool
}

// Artist is a catalog artist.
type Artist struct {
	ID   int64
	Name string
}

// Album is an album snapshot.
type Album struct {
	ID int64

	Title string

	// ArtistID references the main album artist in the catalog.
	ArtistID int64

	// Artists is the display credit line, comma-joined ("A, B").
	Artists string

	// ReleaseDate is an ISO-like date ("2020-05-01"), nil when unknown.
	ReleaseDate *string

	// Duration is the total length in seconds.
	Duration int

	NumberOfTracks int

	// NumberOfVolumes is the disc count, at least 1.
	NumberOfVolumes int

	AudioQuality string
	AudioModes   []string
	Explicit     bool

	// Type is the record type ("ALBUM", "EP", "SINGLE").
	Type string
}

// MultiVolume reports whether the album spans more than one disc.
func (a Album) MultiVolume() bool {
	return a.NumberOfVolumes > 1
}

// HasAudioMode reports whether mode is listed in AudioModes.
func (a Album) HasAudioMode(mode string) bool {
	return slices.Contains(a.AudioModes, mode)
}

// Flags returns the badge inputs of the album.
func (a Album) Flags() Flags {
	return Flags{AudioQuality: a.AudioQuality, AudioModes: a.AudioModes, Explicit: a.Explicit}
}

// Track is a track snapshot.
type Track struct {
	ID int64

	Title string

	// Version is the optional version label ("Remastered 2009").
	Version *string

	TrackNumber  int
	VolumeNumber int

	// TrackNumberOnPlaylist is the 1-based position when the track was
	// fetched as part of a playlist, 0 otherwise.
	TrackNumberOnPlaylist int

	// Duration is the length in seconds.
	Duration int

	Explicit     bool
	AudioQuality string

	// ArtistID references the main track artist in the catalog.
	ArtistID int64

	// Artists is the comma-joined display credit line.
	Artists *string

	AlbumID int64
}

// Flags returns the badge inputs of the track. Tracks carry no audio modes.
func (t Track) Flags() Flags {
	return Flags{AudioQuality: t.AudioQuality, Explicit: t.Explicit}
}

// Playlist is a user or editorial playlist.
type Playlist struct {
	UUID  uuid.UUID
	Title string
}

// StreamURL describes the media a track would be fetched from.
//
// URL may reveal the container (".flac", ".mp4"); Codec holds the codec
// identifiers reported alongside it ("flac", "mp4a.40.2", "flac, DASH").
type StreamURL struct {
	URL   string
	Codec string
}

// Optional returns a pointer to s, for populating optional fields.
func Optional(s string) *string {
	return &s
}

// Value returns the pointed-to string, or "" when p is nil.
func Value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// JoinArtists builds a display credit line from artist names.
func JoinArtists(names []string) string {
	return strings.Join(names, ", ")
}
