package paths

import (
	"strings"

	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/model"
)

// AlbumPath returns the folder an album is saved to.
//
// The folder layout is artist-first, so an album whose artist is not in the
// catalog has no path: ok is false and the album should be skipped.
//
// The master badge is only shown when the configured quality is Master or
// Max, since lower qualities never download the master asset.
//
// Example, with the default template and DownloadPath "/music":
//
//	dir, ok := b.AlbumPath(album)
//	// dir = "/music/Daft Punk/[E] Random Access Memories [19882] [2013]"
func (b *Builder) AlbumPath(album model.Album) (string, bool) {
	tokens, ok := b.albumTokens(album)
	if !ok {
		return "", false
	}
	return join(b.settings.DownloadPath, Render(b.settings.AlbumFormat(), tokens)), true
}

func (b *Builder) albumTokens(album model.Album) ([]Token, bool) {
	artist, ok := b.artists.LookupArtist(album.ArtistID)
	if !ok {
		return nil, false
	}

	artistName := Sanitize(truncate(leadingArtist(album.Artists), maxArtistLength))
	albumArtistName := Sanitize(artist.Name)

	flag := ResolveFlag(album, model.KindAlbum, true, "")
	if !b.settings.AudioQuality.IsMasterTier() {
		flag = strings.ReplaceAll(flag, "M", "")
	}
	if flag != "" {
		flag = "[" + flag + "] "
	}

	return []Token{
		{TokenArtistName, artistName},
		{TokenAlbumArtistName, albumArtistName},
		{TokenFlag, flag},
		{TokenAlbumID, formatID(album.ID)},
		{TokenAlbumYear, ReleaseYear(album.ReleaseDate)},
		{TokenAlbumTitle, Sanitize(album.Title)},
		{TokenAudioQuality, album.AudioQuality},
		{TokenDurationSeconds, itoa(album.Duration)},
		{TokenDuration, FormatDuration(album.Duration)},
		{TokenNumberOfTracks, itoa(album.NumberOfTracks)},
		{TokenNumberOfVolumes, itoa(album.NumberOfVolumes)},
		{TokenReleaseDate, model.Value(album.ReleaseDate)},
		{TokenRecordType, album.Type},
		{TokenNone, ""},
	}, true
}

// leadingArtist returns the first name of a comma-joined credit line.
func leadingArtist(artists string) string {
	first, _, _ := strings.Cut(artists, ", ")
	return first
}
