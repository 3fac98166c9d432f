package dto

import "github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/model"

// JSONTrack represents a track from the Tidal v1 API.
type JSONTrack struct {
	ID           int64          `json:"id"`
	Title        string         `json:"title"`
	Version      *string        `json:"version"`
	Duration     int            `json:"duration"`
	TrackNumber  int            `json:"trackNumber"`
	VolumeNumber int            `json:"volumeNumber"`
	Explicit     bool           `json:"explicit"`
	AudioQuality string         `json:"audioQuality"`
	Artist       *JSONArtist    `json:"artist"`
	Artists      []JSONArtist   `json:"artists"`
	Album        *JSONAlbumLink `json:"album"`
}

// JSONAlbumLink is the album reference embedded in a track.
type JSONAlbumLink struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// ToTrack converts JSONTrack to a model.Track.
func (jt *JSONTrack) ToTrack() model.Track {
	track := model.Track{
		ID:           jt.ID,
		Title:        jt.Title,
		Version:      jt.Version,
		TrackNumber:  jt.TrackNumber,
		VolumeNumber: max(jt.VolumeNumber, 1),
		Duration:     jt.Duration,
		Explicit:     jt.Explicit,
		AudioQuality: jt.AudioQuality,
	}

	if len(jt.Artists) > 0 {
		track.Artists = model.Optional(model.JoinArtists(artistNames(jt.Artists)))
	}
	if main := mainArtist(jt.Artist, jt.Artists); main != nil {
		track.ArtistID = main.ID
	}
	if jt.Album != nil {
		track.AlbumID = jt.Album.ID
	}

	return track
}

// CreditedArtists returns every artist named by the track.
func (jt *JSONTrack) CreditedArtists() []model.Artist {
	return collect(jt.Artist, jt.Artists)
}
