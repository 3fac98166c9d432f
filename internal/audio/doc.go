// Package audio renders playlist files for planned albums and playlists.
//
// Generate playlists in various formats:
//
//	creator := audio.NewPlaylistCreator(audio.FormatM3U, true) // extended M3U
//	content := creator.CreatePlaylist(playlist)
//	os.WriteFile(playlist.Folder+"/"+creator.FileName(playlist), []byte(content), 0644)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
//   - WPL (Windows Media Player)
//   - ZPL (Zune Media Player)
//
// Track paths are written relative to the playlist folder when they lie
// inside it, so the folder can be moved as a whole.
package audio
