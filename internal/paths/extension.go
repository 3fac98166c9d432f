package paths

import (
	"strings"

	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/model"
)

// File extensions a track can be saved with.
const (
	ExtFLAC = ".flac"
	ExtMP4  = ".mp4"
	ExtM4A  = ".m4a"
)

// ResolveExtension infers the file extension of a stream.
//
// The URL names the container, but for adaptive (DASH) and immersive
// streams the codec decides:
//   - URL contains ".flac": .flac
//   - URL contains ".mp4" and codec is ac4 or mha1: .mp4
//   - URL contains ".mp4" and codec is flac: .mp4 for DASH, .flac otherwise
//   - anything else: .m4a
func ResolveExtension(stream model.StreamURL) string {
	switch {
	case strings.Contains(stream.URL, ".flac"):
		return ExtFLAC
	case strings.Contains(stream.URL, ".mp4"):
		if strings.Contains(stream.Codec, "ac4") || strings.Contains(stream.Codec, "mha1") {
			return ExtMP4
		}
		if strings.Contains(stream.Codec, "flac") {
			if strings.Contains(stream.Codec, "DASH") {
				return ExtMP4
			}
			return ExtFLAC
		}
		return ExtM4A
	default:
		return ExtM4A
	}
}
