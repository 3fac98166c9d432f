package paths

import (
	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/config"
	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/model"
)

// Field length limits, in runes.
const (
	maxArtistLength = 50
	maxTitleLength  = 150
)

// ArtistLookup resolves catalog artists by ID.
type ArtistLookup interface {
	LookupArtist(id int64) (model.Artist, bool)
}

// ArtistLookupFunc adapts a function to the ArtistLookup interface.
type ArtistLookupFunc func(id int64) (model.Artist, bool)

// LookupArtist calls f(id).
func (f ArtistLookupFunc) LookupArtist(id int64) (model.Artist, bool) {
	return f(id)
}

// Builder computes album, playlist and track paths from one settings
// snapshot.
//
// The settings are copied when the Builder is created, so later changes to
// the caller's Settings do not affect it. Create a new Builder to pick up
// refreshed settings.
type Builder struct {
	settings config.Settings
	artists  ArtistLookup
}

// NewBuilder creates a Builder for the given settings and catalog.
//
// A nil settings uses config.DefaultSettings(). A nil artists lookup
// resolves no artist, so every AlbumPath reports false.
func NewBuilder(settings *config.Settings, artists ArtistLookup) *Builder {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	if artists == nil {
		artists = ArtistLookupFunc(func(int64) (model.Artist, bool) { return model.Artist{}, false })
	}
	return &Builder{settings: *settings, artists: artists}
}

// Settings returns the snapshot the Builder renders with.
func (b *Builder) Settings() config.Settings {
	return b.settings
}

// join appends a rendered segment to a base directory.
func join(base, segment string) string {
	return base + "/" + segment
}
