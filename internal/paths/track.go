package paths

import (
	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/model"
)

// defaultBase is the directory of tracks saved without an album.
const defaultBase = "."

// TrackOptions carries the optional context of a track path.
type TrackOptions struct {
	// Album is the track's album. Without it the track is saved to the
	// current directory and album tokens render empty.
	Album *model.Album

	// Playlist, when set and UsePlaylistFolder is enabled, moves the track
	// into the playlist folder and numbers it by playlist position.
	Playlist *model.Playlist

	// FilenameOnly returns the file name without its directory.
	FilenameOnly bool
}

// TrackPath returns the file a track is saved to, extension included.
//
// The track number is zero-padded to two digits. On multi-volume albums it
// is prefixed with the volume number, so disc 2 track 1 becomes "201".
//
// When the album's own path is unresolvable (see AlbumPath) and no playlist
// folder replaces it, ok is false. With FilenameOnly ok is always true.
//
// Example, with the default template:
//
//	file, ok := b.TrackPath(track, stream, TrackOptions{Album: &album})
//	// file = "/music/Daft Punk/Random Access Memories [19882] [2013]/08 - Daft Punk - Get Lucky.flac"
func (b *Builder) TrackPath(track model.Track, stream model.StreamURL, opts TrackOptions) (string, bool) {
	number := padNumber(track.TrackNumber)
	if opts.Album != nil && opts.Album.MultiVolume() {
		number = itoa(track.VolumeNumber) + number
	}

	base, ok := defaultBase, true
	if opts.Album != nil {
		base, ok = b.AlbumPath(*opts.Album)
	}

	if opts.Playlist != nil && b.settings.UsePlaylistFolder {
		base, ok = b.PlaylistPath(*opts.Playlist), true
		number = padNumber(track.TrackNumberOnPlaylist)
	}

	rendered := Render(b.settings.TrackFormat(), b.trackTokens(track, opts.Album, number))
	ext := ResolveExtension(stream)

	if opts.FilenameOnly {
		return rendered + ext, true
	}
	if !ok {
		return "", false
	}
	return join(base, rendered+ext), true
}

func (b *Builder) trackTokens(track model.Track, album *model.Album, number string) []Token {
	// ArtistsName keeps the complete credit line; only album folders cut it
	// down to the leading artist.
	artists := Sanitize(model.Value(track.Artists))

	var artist string
	if a, ok := b.artists.LookupArtist(track.ArtistID); ok {
		artist = Sanitize(truncate(a.Name, maxArtistLength))
	}

	title := truncate(Sanitize(track.Title), maxTitleLength)
	if version := model.Value(track.Version); version != "" {
		title += " (" + Sanitize(version) + ")"
	}

	var explicit string
	if track.Explicit {
		explicit = "(Explicit)"
	}

	var albumTitle, year string
	if album != nil {
		albumTitle = Sanitize(album.Title)
		year = ReleaseYear(album.ReleaseDate)
	}

	return []Token{
		{TokenTrackNumber, number},
		{TokenArtistName, artist},
		{TokenArtistsName, artists},
		{TokenTrackTitle, title},
		{TokenExplicitFlag, explicit},
		{TokenAlbumYear, year},
		{TokenAlbumTitle, albumTitle},
		{TokenAudioQuality, track.AudioQuality},
		{TokenDurationSeconds, itoa(track.Duration)},
		{TokenDuration, FormatDuration(track.Duration)},
		{TokenTrackID, formatID(track.ID)},
	}
}
