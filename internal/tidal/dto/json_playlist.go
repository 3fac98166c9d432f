package dto

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/model"
)

// JSONPlaylist represents a playlist from the Tidal v1 API.
type JSONPlaylist struct {
	UUID           string `json:"uuid"`
	Title          string `json:"title"`
	NumberOfTracks int    `json:"numberOfTracks"`
}

// ToPlaylist converts JSONPlaylist to a model.Playlist. It fails when the
// uuid is not a valid UUID.
func (jp *JSONPlaylist) ToPlaylist() (model.Playlist, error) {
	id, err := uuid.Parse(jp.UUID)
	if err != nil {
		return model.Playlist{}, fmt.Errorf("invalid playlist uuid %q: %w", jp.UUID, err)
	}
	return model.Playlist{UUID: id, Title: jp.Title}, nil
}
