package plan

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/model"
	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/tidal"
)

// Manifest is a decoded batch of albums and playlists.
type Manifest struct {
	// Artists holds every known artist: those listed explicitly first,
	// then those credited by the documents.
	Artists   []model.Artist
	Albums    []AlbumItem
	Playlists []PlaylistItem
}

// AlbumItem is an album with the tracks to plan for it.
type AlbumItem struct {
	Album  model.Album
	Tracks []TrackItem
}

// PlaylistItem is a playlist with its tracks in playlist order.
type PlaylistItem struct {
	Playlist model.Playlist
	Tracks   []TrackItem
}

// TrackItem is a track and its stream. StreamErr is set when the playback
// info could not be decoded; the track is then skipped.
type TrackItem struct {
	Track     model.Track
	Stream    model.StreamURL
	StreamErr error
}

type rawManifest struct {
	Artists   []json.RawMessage `json:"artists"`
	Albums    []rawAlbum        `json:"albums"`
	Playlists []rawPlaylist     `json:"playlists"`
}

type rawAlbum struct {
	Album  json.RawMessage `json:"album"`
	Tracks []rawTrack      `json:"tracks"`
}

type rawPlaylist struct {
	Playlist json.RawMessage `json:"playlist"`
	Tracks   []rawTrack      `json:"tracks"`
}

type rawTrack struct {
	Track  json.RawMessage `json:"track"`
	Stream json.RawMessage `json:"stream"`
}

// LoadManifest reads and decodes the manifest file at path.
func LoadManifest(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()

	m, err := DecodeManifest(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// DecodeManifest decodes a manifest document.
//
// Album, playlist, track and artist documents must be valid; playback info
// that cannot be decoded only marks its track (see TrackItem.StreamErr).
// Playlist tracks without a playlist position are numbered by their order
// in the manifest.
func DecodeManifest(r io.Reader) (*Manifest, error) {
	var raw rawManifest
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse manifest JSON: %w", err)
	}

	m := &Manifest{}
	var credited [][]model.Artist

	explicit := make([]model.Artist, 0, len(raw.Artists))
	for i, data := range raw.Artists {
		artist, err := tidal.ParseArtist(data)
		if err != nil {
			return nil, fmt.Errorf("artist %d: %w", i+1, err)
		}
		explicit = append(explicit, artist)
	}

	for i, ra := range raw.Albums {
		album, artists, err := tidal.ParseAlbum(ra.Album)
		if err != nil {
			return nil, fmt.Errorf("album %d: %w", i+1, err)
		}
		credited = append(credited, artists)

		tracks, trackArtists, err := decodeTracks(ra.Tracks)
		if err != nil {
			return nil, fmt.Errorf("album %d: %w", i+1, err)
		}
		credited = append(credited, trackArtists)

		m.Albums = append(m.Albums, AlbumItem{Album: album, Tracks: tracks})
	}

	for i, rp := range raw.Playlists {
		playlist, err := tidal.ParsePlaylist(rp.Playlist)
		if err != nil {
			return nil, fmt.Errorf("playlist %d: %w", i+1, err)
		}

		tracks, trackArtists, err := decodeTracks(rp.Tracks)
		if err != nil {
			return nil, fmt.Errorf("playlist %d: %w", i+1, err)
		}
		credited = append(credited, trackArtists)

		for j := range tracks {
			if tracks[j].Track.TrackNumberOnPlaylist == 0 {
				tracks[j].Track.TrackNumberOnPlaylist = j + 1
			}
		}

		m.Playlists = append(m.Playlists, PlaylistItem{Playlist: playlist, Tracks: tracks})
	}

	m.Artists = tidal.CollectArtists(append([][]model.Artist{explicit}, credited...)...)
	return m, nil
}

func decodeTracks(raw []rawTrack) ([]TrackItem, []model.Artist, error) {
	items := make([]TrackItem, 0, len(raw))
	var artists []model.Artist

	for i, rt := range raw {
		track, credited, err := tidal.ParseTrack(rt.Track)
		if err != nil {
			return nil, nil, fmt.Errorf("track %d: %w", i+1, err)
		}
		artists = append(artists, credited...)

		item := TrackItem{Track: track}
		if len(rt.Stream) == 0 {
			item.StreamErr = fmt.Errorf("track %d has no playback info", track.ID)
		} else {
			item.Stream, item.StreamErr = tidal.ParseStream(rt.Stream)
		}
		items = append(items, item)
	}

	return items, artists, nil
}

// albumIndex returns the manifest albums by ID.
func (m *Manifest) albumIndex() map[int64]*model.Album {
	index := make(map[int64]*model.Album, len(m.Albums))
	for i := range m.Albums {
		index[m.Albums[i].Album.ID] = &m.Albums[i].Album
	}
	return index
}
