package dto

import (
	"strings"

	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/model"
)

// JSONAlbum represents an album from the Tidal v1 API.
type JSONAlbum struct {
	ID              int64        `json:"id"`
	Title           string       `json:"title"`
	Duration        int          `json:"duration"`
	NumberOfTracks  int          `json:"numberOfTracks"`
	NumberOfVolumes int          `json:"numberOfVolumes"`
	ReleaseDate     *string      `json:"releaseDate"`
	Type            string       `json:"type"`
	Explicit        bool         `json:"explicit"`
	AudioQuality    string       `json:"audioQuality"`
	AudioModes      []string     `json:"audioModes"`
	Artist          *JSONArtist  `json:"artist"`
	Artists         []JSONArtist `json:"artists"`
}

// ToAlbum converts JSONAlbum to a model.Album.
//
// An empty release date is treated as unknown, and albums that report no
// volumes count as a single volume.
func (ja *JSONAlbum) ToAlbum() model.Album {
	album := model.Album{
		ID:              ja.ID,
		Title:           ja.Title,
		Artists:         model.JoinArtists(artistNames(ja.Artists)),
		Duration:        ja.Duration,
		NumberOfTracks:  ja.NumberOfTracks,
		NumberOfVolumes: max(ja.NumberOfVolumes, 1),
		AudioQuality:    ja.AudioQuality,
		AudioModes:      ja.AudioModes,
		Explicit:        ja.Explicit,
		Type:            ja.Type,
	}

	if ja.ReleaseDate != nil && strings.TrimSpace(*ja.ReleaseDate) != "" {
		album.ReleaseDate = model.Optional(*ja.ReleaseDate)
	}

	if main := mainArtist(ja.Artist, ja.Artists); main != nil {
		album.ArtistID = main.ID
		if album.Artists == "" {
			album.Artists = main.Name
		}
	}

	return album
}

// CreditedArtists returns every artist named by the album.
func (ja *JSONAlbum) CreditedArtists() []model.Artist {
	return collect(ja.Artist, ja.Artists)
}
