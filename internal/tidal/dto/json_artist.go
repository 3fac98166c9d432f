package dto

import "github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/model"

// JSONArtist is an artist as embedded in Tidal API payloads.
type JSONArtist struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// ToArtist converts JSONArtist to a model.Artist.
func (ja JSONArtist) ToArtist() model.Artist {
	return model.Artist{ID: ja.ID, Name: ja.Name}
}

// artistNames returns the names of artists in credit order.
func artistNames(artists []JSONArtist) []string {
	names := make([]string, 0, len(artists))
	for _, a := range artists {
		names = append(names, a.Name)
	}
	return names
}

// mainArtist returns the primary artist, falling back to the first
// credited one when the payload has no "artist" object.
func mainArtist(artist *JSONArtist, artists []JSONArtist) *JSONArtist {
	if artist != nil {
		return artist
	}
	if len(artists) > 0 {
		return &artists[0]
	}
	return nil
}

// collect returns the primary artist followed by every credited artist.
func collect(artist *JSONArtist, artists []JSONArtist) []model.Artist {
	out := make([]model.Artist, 0, len(artists)+1)
	if artist != nil {
		out = append(out, artist.ToArtist())
	}
	for _, a := range artists {
		out = append(out, a.ToArtist())
	}
	return out
}
