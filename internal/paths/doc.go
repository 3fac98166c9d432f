// Package paths turns metadata snapshots and naming templates into
// download paths.
//
// Everything in this package is a pure string computation that never touches
// the filesystem. A Builder may be shared between goroutines as long as its
// ArtistLookup is safe for concurrent reads.
//
// # Templates
//
// Templates are plain strings with {Token} placeholders:
//
//	{ArtistName}/{Flag}{AlbumTitle} [{AlbumID}] [{AlbumYear}]
//
// Placeholders are replaced literally and in a single pass. Unknown
// placeholders are left as they are, and {None} always renders as nothing,
// which lets optional parts of a template collapse.
//
// # Building paths
//
//	b := paths.NewBuilder(settings, catalog)
//	dir, ok := b.AlbumPath(album)
//	if !ok {
//	    // album artist unknown: skip the album
//	}
//	file, _ := b.TrackPath(track, stream, paths.TrackOptions{Album: &album})
//
// Results are joined with forward slashes regardless of the host OS.
package paths
