package paths

import "github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/model"

// PlaylistPath returns the folder a playlist is saved to.
func (b *Builder) PlaylistPath(playlist model.Playlist) string {
	tokens := []Token{
		{TokenPlaylistUUID, playlist.UUID.String()},
		{TokenPlaylistName, Sanitize(playlist.Title)},
	}
	return join(b.settings.DownloadPath, Render(b.settings.PlaylistFormat(), tokens))
}
