package paths

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/config"
	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/model"
)

const (
	daftPunkID = 8847
	pharrellID = 3727
)

func testArtists() ArtistLookup {
	artists := map[int64]model.Artist{
		daftPunkID: {ID: daftPunkID, Name: "Daft Punk"},
		pharrellID: {ID: pharrellID, Name: "Pharrell Williams"},
	}
	return ArtistLookupFunc(func(id int64) (model.Artist, bool) {
		a, ok := artists[id]
		return a, ok
	})
}

func testSettings() *config.Settings {
	s := config.DefaultSettings()
	s.DownloadPath = "/music"
	return s
}

func testAlbum() model.Album {
	return model.Album{
		ID:              19882,
		Title:           "Random Access Memories",
		ArtistID:        daftPunkID,
		Artists:         "Daft Punk, Pharrell Williams",
		ReleaseDate:     model.Optional("2013-05-17"),
		Duration:        4493,
		NumberOfTracks:  13,
		NumberOfVolumes: 1,
		AudioQuality:    "LOSSLESS",
		Type:            "ALBUM",
	}
}

func testTrack() model.Track {
	return model.Track{
		ID:           19890,
		Title:        "Get Lucky",
		TrackNumber:  8,
		VolumeNumber: 1,
		Duration:     369,
		AudioQuality: "LOSSLESS",
		ArtistID:     daftPunkID,
		Artists:      model.Optional("Daft Punk, Pharrell Williams, Nile Rodgers"),
		AlbumID:      19882,
	}
}

var flacStream = model.StreamURL{URL: "https://sp-ad-cf.audio.tidal.com/mediatracks/abc/0.flac", Codec: "flac"}

func Test_AlbumPath_DefaultTemplate(t *testing.T) {
	b := NewBuilder(testSettings(), testArtists())

	path, ok := b.AlbumPath(testAlbum())
	require.True(t, ok)
	assert.Equal(t, "/music/Daft Punk/Random Access Memories [19882] [2013]", path)
}

func Test_AlbumPath_UnknownArtistHasNoPath(t *testing.T) {
	b := NewBuilder(testSettings(), testArtists())

	album := testAlbum()
	album.ArtistID = 1
	path, ok := b.AlbumPath(album)
	assert.False(t, ok)
	assert.Empty(t, path)
}

func Test_AlbumPath_NilLookupResolvesNothing(t *testing.T) {
	b := NewBuilder(testSettings(), nil)

	_, ok := b.AlbumPath(testAlbum())
	assert.False(t, ok)
}

func Test_AlbumPath_MasterBadgeFollowsTargetQuality(t *testing.T) {
	album := model.Album{
		ID:              1,
		Title:           "Test/Album",
		ArtistID:        daftPunkID,
		Artists:         "Daft Punk",
		ReleaseDate:     model.Optional("2020-05-01"),
		NumberOfVolumes: 1,
		AudioQuality:    model.QualityHiRes,
		AudioModes:      []string{},
		Explicit:        false,
	}

	tests := []struct {
		quality  config.AudioQuality
		expected string
	}{
		{config.QualityNormal, "/music/Daft Punk/Test-Album [1] [2020]"},
		{config.QualityHiFi, "/music/Daft Punk/Test-Album [1] [2020]"},
		{config.QualityMaster, "/music/Daft Punk/[M] Test-Album [1] [2020]"},
		{config.QualityMax, "/music/Daft Punk/[M] Test-Album [1] [2020]"},
	}

	for _, tt := range tests {
		t.Run(string(tt.quality), func(t *testing.T) {
			settings := testSettings()
			settings.AudioQuality = tt.quality

			path, ok := NewBuilder(settings, testArtists()).AlbumPath(album)
			require.True(t, ok)
			assert.Equal(t, tt.expected, path)
		})
	}
}

func Test_AlbumPath_BadgesBelowMasterKeepAtmosAndExplicit(t *testing.T) {
	album := testAlbum()
	album.AudioQuality = model.QualityHiRes
	album.AudioModes = []string{model.ModeDolbyAtmos}
	album.Explicit = true

	settings := testSettings()
	settings.AlbumFolderFormat = "{Flag}{AlbumTitle}"

	path, ok := NewBuilder(settings, testArtists()).AlbumPath(album)
	require.True(t, ok)
	assert.Equal(t, "/music/[AE] Random Access Memories", path)

	settings.AudioQuality = config.QualityMaster
	path, ok = NewBuilder(settings, testArtists()).AlbumPath(album)
	require.True(t, ok)
	assert.Equal(t, "/music/[MAE] Random Access Memories", path)
}

func Test_AlbumPath_AllTokens(t *testing.T) {
	settings := testSettings()
	settings.AlbumFolderFormat = strings.Join([]string{
		"{ArtistName}", "{AlbumArtistName}", "{AlbumID}", "{AlbumYear}", "{AlbumTitle}",
		"{AudioQuality}", "{DurationSeconds}", "{Duration}", "{NumberOfTracks}",
		"{NumberOfVolumes}", "{ReleaseDate}", "{RecordType}{None}",
	}, "|")

	album := testAlbum()
	album.Artists = "Daft Punk / Friends, Pharrell Williams"

	path, ok := NewBuilder(settings, testArtists()).AlbumPath(album)
	require.True(t, ok)
	assert.Equal(t,
		"/music/Daft Punk - Friends|Daft Punk|19882|2013|Random Access Memories|LOSSLESS|4493|1:14:53|13|1|2013-05-17|ALBUM",
		path)
}

func Test_AlbumPath_TruncatesLeadingArtist(t *testing.T) {
	settings := testSettings()
	settings.AlbumFolderFormat = "{ArtistName}"

	album := testAlbum()
	album.Artists = strings.Repeat("é", 60) + ", Someone Else"

	path, ok := NewBuilder(settings, testArtists()).AlbumPath(album)
	require.True(t, ok)
	assert.Equal(t, "/music/"+strings.Repeat("é", 50), path)
}

func Test_AlbumPath_MissingReleaseDate(t *testing.T) {
	settings := testSettings()
	settings.AlbumFolderFormat = "{AlbumTitle} [{AlbumYear}] {ReleaseDate}"

	album := testAlbum()
	album.ReleaseDate = nil

	path, ok := NewBuilder(settings, testArtists()).AlbumPath(album)
	require.True(t, ok)
	assert.Equal(t, "/music/Random Access Memories []", path)
}

func Test_PlaylistPath(t *testing.T) {
	id := uuid.MustParse("36ea71a8-445e-41a4-82ab-6628c581535d")
	playlist := model.Playlist{UUID: id, Title: "Daft Punk: Essentials"}

	b := NewBuilder(testSettings(), nil)
	assert.Equal(t, "/music/Playlist/Daft Punk- Essentials [36ea71a8-445e-41a4-82ab-6628c581535d]", b.PlaylistPath(playlist))

	settings := testSettings()
	settings.PlaylistFolderFormat = "{PlaylistName}{None}"
	b = NewBuilder(settings, nil)
	assert.Equal(t, "/music/Daft Punk- Essentials", b.PlaylistPath(playlist))
}

func Test_TrackPath_DefaultTemplate(t *testing.T) {
	album := testAlbum()
	b := NewBuilder(testSettings(), testArtists())

	path, ok := b.TrackPath(testTrack(), flacStream, TrackOptions{Album: &album})
	require.True(t, ok)
	assert.Equal(t, "/music/Daft Punk/Random Access Memories [19882] [2013]/08 - Daft Punk - Get Lucky.flac", path)
}

func Test_TrackPath_Numbering(t *testing.T) {
	settings := testSettings()
	settings.TrackFileFormat = "{TrackNumber}"
	b := NewBuilder(settings, testArtists())

	tests := []struct {
		name     string
		volumes  int
		volume   int
		number   int
		expected string
	}{
		{name: "single disc", volumes: 1, volume: 1, number: 7, expected: "07"},
		{name: "second disc", volumes: 2, volume: 2, number: 1, expected: "201"},
		{name: "double digit track", volumes: 3, volume: 3, number: 12, expected: "312"},
		{name: "three digit track", volumes: 1, volume: 1, number: 104, expected: "104"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			album := testAlbum()
			album.NumberOfVolumes = tt.volumes
			track := testTrack()
			track.VolumeNumber = tt.volume
			track.TrackNumber = tt.number

			name, ok := b.TrackPath(track, flacStream, TrackOptions{Album: &album, FilenameOnly: true})
			require.True(t, ok)
			assert.Equal(t, tt.expected+ExtFLAC, name)
		})
	}
}

func Test_TrackPath_PlaylistFolder(t *testing.T) {
	album := testAlbum()
	album.NumberOfVolumes = 2
	playlist := model.Playlist{UUID: uuid.MustParse("36ea71a8-445e-41a4-82ab-6628c581535d"), Title: "Mix"}

	track := testTrack()
	track.VolumeNumber = 2
	track.TrackNumberOnPlaylist = 3

	settings := testSettings()
	settings.TrackFileFormat = "{TrackNumber} {TrackTitle}"

	path, ok := NewBuilder(settings, testArtists()).TrackPath(track, flacStream, TrackOptions{Album: &album, Playlist: &playlist})
	require.True(t, ok)
	assert.Equal(t, "/music/Playlist/Mix [36ea71a8-445e-41a4-82ab-6628c581535d]/03 Get Lucky.flac", path)

	settings.UsePlaylistFolder = false
	path, ok = NewBuilder(settings, testArtists()).TrackPath(track, flacStream, TrackOptions{Album: &album, Playlist: &playlist})
	require.True(t, ok)
	assert.Equal(t, "/music/Daft Punk/Random Access Memories [19882] [2013]/208 Get Lucky.flac", path)
}

func Test_TrackPath_PlaylistFolderRescuesUnknownAlbumArtist(t *testing.T) {
	album := testAlbum()
	album.ArtistID = 1
	playlist := model.Playlist{UUID: uuid.Nil, Title: "Mix"}

	b := NewBuilder(testSettings(), testArtists())

	_, ok := b.TrackPath(testTrack(), flacStream, TrackOptions{Album: &album})
	assert.False(t, ok, "album path is unresolvable")

	path, ok := b.TrackPath(testTrack(), flacStream, TrackOptions{Album: &album, Playlist: &playlist})
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(path, "/music/Playlist/Mix ["), path)

	name, ok := b.TrackPath(testTrack(), flacStream, TrackOptions{Album: &album, FilenameOnly: true})
	require.True(t, ok)
	assert.Equal(t, "08 - Daft Punk - Get Lucky.flac", name)
}

func Test_TrackPath_WithoutAlbum(t *testing.T) {
	settings := testSettings()
	settings.TrackFileFormat = "{TrackNumber} {AlbumTitle}{AlbumYear} {TrackTitle}"

	path, ok := NewBuilder(settings, testArtists()).TrackPath(testTrack(), model.StreamURL{URL: "x.mp4", Codec: "mp4a.40.2"}, TrackOptions{})
	require.True(t, ok)
	assert.Equal(t, "./08  Get Lucky.m4a", path)
}

func Test_TrackPath_Tokens(t *testing.T) {
	settings := testSettings()
	settings.TrackFileFormat = "{ArtistName}|{ArtistsName}|{TrackTitle}|{ExplicitFlag}|{AlbumYear}|{AlbumTitle}|{AudioQuality}|{DurationSeconds}|{Duration}|{TrackID}"

	album := testAlbum()
	album.Title = "Random Access: Memories"
	track := testTrack()
	track.Version = model.Optional("Radio Edit / Remastered")
	track.Explicit = true
	track.Artists = model.Optional("Daft Punk, Pharrell Williams: Live")

	name, ok := NewBuilder(settings, testArtists()).TrackPath(track, flacStream, TrackOptions{Album: &album, FilenameOnly: true})
	require.True(t, ok)
	assert.Equal(t,
		"Daft Punk|Daft Punk, Pharrell Williams- Live|Get Lucky (Radio Edit - Remastered)|(Explicit)|2013|Random Access- Memories|LOSSLESS|369|6:09|19890.flac",
		name)
}

func Test_TrackPath_UnknownArtistAndMissingCredits(t *testing.T) {
	settings := testSettings()
	settings.TrackFileFormat = "[{ArtistName}][{ArtistsName}] {TrackTitle}"

	track := testTrack()
	track.ArtistID = 99
	track.Artists = nil
	track.Version = model.Optional("")

	name, ok := NewBuilder(settings, testArtists()).TrackPath(track, flacStream, TrackOptions{FilenameOnly: true})
	require.True(t, ok)
	assert.Equal(t, "[][] Get Lucky.flac", name)
}

func Test_TrackPath_TruncatesTitleBeforeVersion(t *testing.T) {
	settings := testSettings()
	settings.TrackFileFormat = "{TrackTitle}"

	track := testTrack()
	track.Title = strings.Repeat("a", 200)
	track.Version = model.Optional("Live")

	name, ok := NewBuilder(settings, testArtists()).TrackPath(track, flacStream, TrackOptions{FilenameOnly: true})
	require.True(t, ok)
	assert.Equal(t, strings.Repeat("a", 150)+" (Live).flac", name)
}

func Test_TrackPath_TruncatesLookedUpArtist(t *testing.T) {
	long := model.Artist{ID: 5, Name: strings.Repeat("x", 49) + "/yz"}
	lookup := ArtistLookupFunc(func(int64) (model.Artist, bool) { return long, true })

	settings := testSettings()
	settings.TrackFileFormat = "{ArtistName}"

	name, ok := NewBuilder(settings, lookup).TrackPath(testTrack(), flacStream, TrackOptions{FilenameOnly: true})
	require.True(t, ok)
	assert.Equal(t, strings.Repeat("x", 49)+"-.flac", name)
}

func Test_Builder_CopiesSettings(t *testing.T) {
	settings := testSettings()
	b := NewBuilder(settings, testArtists())

	settings.DownloadPath = "/elsewhere"
	album := testAlbum()
	path, ok := b.AlbumPath(album)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(path, "/music/"), path)
	assert.Equal(t, "/music", b.Settings().DownloadPath)
}

func Test_Builder_ConcurrentUse(t *testing.T) {
	b := NewBuilder(testSettings(), testArtists())
	album := testAlbum()
	want, ok := b.TrackPath(testTrack(), flacStream, TrackOptions{Album: &album})
	require.True(t, ok)

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = b.TrackPath(testTrack(), flacStream, TrackOptions{Album: &album})
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
