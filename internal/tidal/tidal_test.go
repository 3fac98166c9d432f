package tidal

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/model"
	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/paths"
)

const albumJSON = `{
	"id": 19882,
	"title": "Random Access Memories",
	"duration": 4493,
	"numberOfTracks": 13,
	"numberOfVolumes": 1,
	"releaseDate": "2013-05-17",
	"type": "ALBUM",
	"explicit": false,
	"audioQuality": "HI_RES",
	"audioModes": ["STEREO", "DOLBY_ATMOS"],
	"artist": {"id": 8847, "name": "Daft Punk", "type": "MAIN"},
	"artists": [
		{"id": 8847, "name": "Daft Punk", "type": "MAIN"},
		{"id": 3727, "name": "Pharrell Williams", "type": "FEATURED"}
	]
}`

const trackJSON = `{
	"id": 19890,
	"title": "Get Lucky",
	"version": "Radio Edit",
	"duration": 369,
	"trackNumber": 8,
	"volumeNumber": 1,
	"explicit": false,
	"audioQuality": "LOSSLESS",
	"artist": {"id": 8847, "name": "Daft Punk"},
	"artists": [
		{"id": 8847, "name": "Daft Punk"},
		{"id": 3727, "name": "Pharrell Williams"},
		{"id": 4161, "name": "Nile Rodgers"}
	],
	"album": {"id": 19882, "title": "Random Access Memories"}
}`

func encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestParseAlbum(t *testing.T) {
	album, artists, err := ParseAlbum([]byte(albumJSON))
	require.NoError(t, err)

	assert.Equal(t, int64(19882), album.ID)
	assert.Equal(t, int64(8847), album.ArtistID)
	assert.Equal(t, "Daft Punk, Pharrell Williams", album.Artists)
	assert.Equal(t, "2013-05-17", model.Value(album.ReleaseDate))
	assert.True(t, album.HasAudioMode(model.ModeDolbyAtmos))
	assert.Equal(t, "MA", paths.ResolveFlag(album, model.KindAlbum, true, ""))
	assert.Len(t, artists, 3)
}

func TestParseAlbum_InvalidJSON(t *testing.T) {
	_, _, err := ParseAlbum([]byte(`{"id": `))
	assert.Error(t, err)
}

func TestParseTrack(t *testing.T) {
	track, artists, err := ParseTrack([]byte(trackJSON))
	require.NoError(t, err)

	assert.Equal(t, "Get Lucky", track.Title)
	assert.Equal(t, "Radio Edit", model.Value(track.Version))
	assert.Equal(t, "Daft Punk, Pharrell Williams, Nile Rodgers", model.Value(track.Artists))
	assert.Equal(t, int64(19882), track.AlbumID)
	assert.Equal(t, 8, track.TrackNumber)
	assert.Len(t, CollectArtists(artists), 3)
}

func TestParsePlaylist(t *testing.T) {
	playlist, err := ParsePlaylist([]byte(`{"uuid": "36ea71a8-445e-41a4-82ab-6628c581535d", "title": "Essentials"}`))
	require.NoError(t, err)
	assert.Equal(t, "36ea71a8-445e-41a4-82ab-6628c581535d", playlist.UUID.String())
	assert.Equal(t, "Essentials", playlist.Title)

	_, err = ParsePlaylist([]byte(`{"uuid": "nope"}`))
	assert.Error(t, err)
}

func TestParseArtist(t *testing.T) {
	artist, err := ParseArtist([]byte(`{"id": 8847, "name": "Daft Punk"}`))
	require.NoError(t, err)
	assert.Equal(t, model.Artist{ID: 8847, Name: "Daft Punk"}, artist)
}

func TestParsePlaylistItems(t *testing.T) {
	page := `{
		"limit": 10,
		"offset": 0,
		"totalNumberOfItems": 3,
		"items": [
			{"type": "track", "item": {"id": 1, "title": "First", "trackNumber": 5, "artists": [{"id": 8847, "name": "Daft Punk"}]}},
			{"type": "video", "item": {"id": 2, "title": "Music Video"}},
			{"type": "track", "item": {"id": 3, "title": "Second", "trackNumber": 2, "artists": [{"id": 3727, "name": "Pharrell Williams"}]}}
		]
	}`

	tracks, artists, err := ParsePlaylistItems([]byte(page))
	require.NoError(t, err)
	require.Len(t, tracks, 2)

	assert.Equal(t, "First", tracks[0].Title)
	assert.Equal(t, 1, tracks[0].TrackNumberOnPlaylist)
	assert.Equal(t, 5, tracks[0].TrackNumber)
	assert.Equal(t, "Second", tracks[1].Title)
	assert.Equal(t, 2, tracks[1].TrackNumberOnPlaylist)
	assert.Len(t, artists, 2)
}

func TestParsePlaylistItems_Errors(t *testing.T) {
	_, _, err := ParsePlaylistItems([]byte(`{"items": [`))
	assert.Error(t, err)

	_, _, err = ParsePlaylistItems([]byte(`{"items": [{"type": "track", "item": "oops"}]}`))
	assert.Error(t, err)

	tracks, _, err := ParsePlaylistItems([]byte(`{"items": []}`))
	require.NoError(t, err)
	assert.Empty(t, tracks)
}

func TestParseStream(t *testing.T) {
	bts := encode(`{"mimeType": "audio/flac", "codecs": "flac", "encryptionType": "NONE", "urls": ["https://sp-pr-fa.audio.tidal.com/mediatracks/abc/0.flac?token=1"]}`)
	dash := encode(`<?xml version="1.0"?><MPD><Period><AdaptationSet mimeType="audio/mp4"><Representation codecs="flac" bandwidth="1000"><SegmentTemplate media="https://sp-ad-fa.audio.tidal.com/abc/$Number$.mp4?a=1&amp;b=2" initialization="init.mp4"/></Representation></AdaptationSet></Period></MPD>`)

	tests := []struct {
		name      string
		info      string
		expected  model.StreamURL
		extension string
	}{
		{
			name:      "bts flac",
			info:      `{"trackId": 1, "manifestMimeType": "application/vnd.tidal.bts", "manifest": "` + bts + `"}`,
			expected:  model.StreamURL{URL: "https://sp-pr-fa.audio.tidal.com/mediatracks/abc/0.flac?token=1", Codec: "flac"},
			extension: paths.ExtFLAC,
		},
		{
			name:      "dash flac",
			info:      `{"trackId": 1, "manifestMimeType": "application/dash+xml", "manifest": "` + dash + `"}`,
			expected:  model.StreamURL{URL: "https://sp-ad-fa.audio.tidal.com/abc/$Number$.mp4?a=1&b=2", Codec: "flac, DASH"},
			extension: paths.ExtMP4,
		},
		{
			name:      "plain url",
			info:      `{"url": "https://example.com/track.mp4", "codecs": "mp4a.40.2"}`,
			expected:  model.StreamURL{URL: "https://example.com/track.mp4", Codec: "mp4a.40.2"},
			extension: paths.ExtM4A,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream, err := ParseStream([]byte(tt.info))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stream)
			assert.Equal(t, tt.extension, paths.ResolveExtension(stream))
		})
	}
}

func TestParseStream_Unsupported(t *testing.T) {
	encrypted := encode(`{"codecs": "flac", "encryptionType": "OLD_AES", "urls": ["https://x/0.flac"]}`)
	empty := encode(`{"codecs": "flac", "urls": []}`)
	noMedia := encode(`<MPD></MPD>`)

	tests := []struct {
		name string
		info string
	}{
		{"unknown mime type", `{"manifestMimeType": "application/x-mpegurl", "manifest": "` + encode("#EXTM3U") + `"}`},
		{"encrypted bts", `{"manifestMimeType": "application/vnd.tidal.bts", "manifest": "` + encrypted + `"}`},
		{"bts without urls", `{"manifestMimeType": "application/vnd.tidal.bts", "manifest": "` + empty + `"}`},
		{"dash without media", `{"manifestMimeType": "application/dash+xml", "manifest": "` + noMedia + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStream([]byte(tt.info))
			assert.ErrorIs(t, err, ErrUnsupportedManifest)
		})
	}
}

func TestParseStream_Malformed(t *testing.T) {
	_, err := ParseStream([]byte(`not json`))
	assert.Error(t, err)

	_, err = ParseStream([]byte(`{"manifestMimeType": "application/vnd.tidal.bts", "manifest": "%%%"}`))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedManifest)
}

func TestCollectArtists(t *testing.T) {
	got := CollectArtists(
		[]model.Artist{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}},
		[]model.Artist{{ID: 1, Name: "A again"}, {ID: 0, Name: "no id"}, {ID: 3}},
		nil,
		[]model.Artist{{ID: 4, Name: "D"}},
	)

	assert.Equal(t, []model.Artist{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 4, Name: "D"}}, got)
}
