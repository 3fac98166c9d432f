// Package model defines the metadata snapshots that paths are built from.
//
// All types are plain values. A path computation reads them and never
// mutates them, so the same Album can be shared by every track of a batch.
//
// # Album
//
// Album carries the fields used for album folder naming:
//
//	album := model.Album{
//	    ID:              17,
//	    Title:           "Abbey Road",
//	    ArtistID:        4,
//	    Artists:         "The Beatles",
//	    ReleaseDate:     model.Optional("1969-09-26"),
//	    NumberOfVolumes: 1,
//	    AudioQuality:    model.QualityHiRes,
//	}
//
// # Track
//
// Track numbering depends on its album: when the album spans more than one
// volume the track number is prefixed with the volume number.
//
// # Optional fields
//
// Fields the catalog may omit (track version, track artists, album release
// date) are pointers. Use Optional to build them and Value to read them.
package model
