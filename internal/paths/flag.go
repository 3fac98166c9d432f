package paths

import (
	"slices"
	"strings"

	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/model"
)

// FlagSource is implemented by entities that carry quality badges.
// model.Album and model.Track both satisfy it.
type FlagSource interface {
	Flags() model.Flags
}

// ResolveFlag builds the quality badge string of an entity.
//
// Only albums and tracks have badges. The badges are, in this order:
//   - master, when the audio quality is HI_RES: "M" or "Master"
//   - atmos, for albums offered in Dolby Atmos: "A" or "Dolby Atmos"
//   - explicit: "E" or "Explicit"
//
// short selects the one-letter labels; the labels present are joined with
// separator. An entity without badges yields "".
//
// Example:
//
//	ResolveFlag(album, model.KindAlbum, true, "")     // "ME"
//	ResolveFlag(album, model.KindAlbum, false, " / ") // "Master / Explicit"
func ResolveFlag(src FlagSource, kind model.Kind, short bool, separator string) string {
	if kind != model.KindAlbum && kind != model.KindTrack {
		return ""
	}

	flags := src.Flags()
	master := flags.AudioQuality == model.QualityHiRes
	atmos := kind == model.KindAlbum && slices.Contains(flags.AudioModes, model.ModeDolbyAtmos)
	explicit := flags.Explicit

	if !master && !atmos && !explicit {
		return ""
	}

	labels := make([]string, 0, 3)
	if master {
		labels = append(labels, pick(short, "M", "Master"))
	}
	if atmos {
		labels = append(labels, pick(short, "A", "Dolby Atmos"))
	}
	if explicit {
		labels = append(labels, pick(short, "E", "Explicit"))
	}
	return strings.Join(labels, separator)
}

func pick(short bool, shortLabel, longLabel string) string {
	if short {
		return shortLabel
	}
	return longLabel
}
