// Package config provides the settings snapshot that path building reads.
//
// This package handles:
//   - Loading settings from JSON or YAML files, with TIDALRR_* environment overrides
//   - Default configuration values and built-in naming templates
//   - Saving settings back to JSON
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Downloads to ./download
//	// Album folders: {ArtistName}/{Flag}{AlbumTitle} [{AlbumID}] [{AlbumYear}]
//	// Target quality: HiFi
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/settings.json")
//	if err != nil {
//	    // A missing file is not an error, defaults are returned
//	}
//
// # Environment
//
// Every key can be overridden from the environment, for example
// TIDALRR_DOWNLOAD_PATH=/music or TIDALRR_AUDIO_QUALITY=Master.
//
// # Templates
//
// An empty format string means "use the built-in default". Use
// AlbumFormat, PlaylistFormat and TrackFormat to get the effective template.
package config
