package tidal

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/model"
	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/tidal/dto"
)

// ParseAlbum decodes an album document.
//
// Example:
//
//	album, artists, err := tidal.ParseAlbum([]byte(`{"id": 19882, "title": "Random Access Memories", ...}`))
//	if err != nil {
//	    return fmt.Errorf("failed to parse album: %w", err)
//	}
func ParseAlbum(data []byte) (model.Album, []model.Artist, error) {
	var ja dto.JSONAlbum
	if err := json.Unmarshal(data, &ja); err != nil {
		return model.Album{}, nil, fmt.Errorf("failed to parse album JSON: %w", err)
	}
	return ja.ToAlbum(), ja.CreditedArtists(), nil
}

// ParseTrack decodes a track document.
func ParseTrack(data []byte) (model.Track, []model.Artist, error) {
	var jt dto.JSONTrack
	if err := json.Unmarshal(data, &jt); err != nil {
		return model.Track{}, nil, fmt.Errorf("failed to parse track JSON: %w", err)
	}
	return jt.ToTrack(), jt.CreditedArtists(), nil
}

// ParsePlaylist decodes a playlist document.
func ParsePlaylist(data []byte) (model.Playlist, error) {
	var jp dto.JSONPlaylist
	if err := json.Unmarshal(data, &jp); err != nil {
		return model.Playlist{}, fmt.Errorf("failed to parse playlist JSON: %w", err)
	}
	return jp.ToPlaylist()
}

// ParseArtist decodes an artist document.
func ParseArtist(data []byte) (model.Artist, error) {
	var ja dto.JSONArtist
	if err := json.Unmarshal(data, &ja); err != nil {
		return model.Artist{}, fmt.Errorf("failed to parse artist JSON: %w", err)
	}
	return ja.ToArtist(), nil
}

// ParsePlaylistItems decodes a page of playlist items.
//
// Only items of type "track" are kept. They are numbered 1..n in page order
// through TrackNumberOnPlaylist; videos and other items take no number.
func ParsePlaylistItems(data []byte) ([]model.Track, []model.Artist, error) {
	if !gjson.ValidBytes(data) {
		return nil, nil, fmt.Errorf("failed to parse playlist items: invalid JSON")
	}

	var (
		tracks  []model.Track
		artists []model.Artist
		err     error
	)
	gjson.GetBytes(data, "items").ForEach(func(_, item gjson.Result) bool {
		if item.Get("type").String() != "track" {
			return true
		}

		var jt dto.JSONTrack
		if err = json.Unmarshal([]byte(item.Get("item").Raw), &jt); err != nil {
			err = fmt.Errorf("failed to parse playlist item %d: %w", len(tracks)+1, err)
			return false
		}

		track := jt.ToTrack()
		track.TrackNumberOnPlaylist = len(tracks) + 1
		tracks = append(tracks, track)
		artists = append(artists, jt.CreditedArtists()...)
		return true
	})
	if err != nil {
		return nil, nil, err
	}

	return tracks, artists, nil
}

// CollectArtists merges artist lists, keeping the first occurrence of each
// ID. Artists without an ID or name are dropped.
func CollectArtists(groups ...[]model.Artist) []model.Artist {
	seen := make(map[int64]struct{})
	var out []model.Artist
	for _, group := range groups {
		for _, a := range group {
			if a.ID == 0 || a.Name == "" {
				continue
			}
			if _, ok := seen[a.ID]; ok {
				continue
			}
			seen[a.ID] = struct{}{}
			out = append(out, a)
		}
	}
	return out
}
