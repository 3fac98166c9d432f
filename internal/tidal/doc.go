// Package tidal decodes Tidal v1 API payloads into model entities.
//
// The package covers the payloads a path plan needs:
//
//  1. Album, track, playlist and artist documents
//  2. Playlist item pages, numbered by playlist position
//  3. Playback info, whose base64 manifest names the stream URL and codec
//
// # Entities
//
//	album, artists, err := tidal.ParseAlbum(body)
//	if err != nil {
//	    return err
//	}
//
// The artists credited by each document are returned next to the entity so
// callers can seed a catalog with them (see CollectArtists).
//
// # Streams
//
// Playback info carries a manifest encoded by manifestMimeType:
//
//   - application/vnd.tidal.bts: JSON with "urls" and "codecs"
//   - application/dash+xml: an MPEG-DASH document; its codec is suffixed
//     with ", DASH" so the extension resolver can tell segmented FLAC apart
//
// Any other manifest type yields ErrUnsupportedManifest.
package tidal
