package tidal

import (
	"encoding/base64"
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/model"
)

// Manifest MIME types of Tidal playback info.
const (
	MimeTypeBTS  = "application/vnd.tidal.bts"
	MimeTypeDASH = "application/dash+xml"
)

// dashCodecSuffix marks codecs read from a DASH manifest.
const dashCodecSuffix = ", DASH"

// ErrUnsupportedManifest is returned for playback info whose manifest
// cannot be turned into a single stream URL.
var ErrUnsupportedManifest = errors.New("unsupported stream manifest")

var (
	dashMediaPattern = regexp.MustCompile(`media="([^"]+)"`)
	dashCodecPattern = regexp.MustCompile(`codecs="([^"]+)"`)
)

// ParseStream extracts the stream URL and codec from playback info.
//
// Playback info without a manifest but with "url" and "codec" (or "codecs")
// fields is read directly, which lets hand-written plans skip the encoding.
//
// Example:
//
//	stream, err := tidal.ParseStream(playbackInfo)
//	if errors.Is(err, tidal.ErrUnsupportedManifest) {
//	    // skip the track
//	}
func ParseStream(data []byte) (model.StreamURL, error) {
	if !gjson.ValidBytes(data) {
		return model.StreamURL{}, fmt.Errorf("failed to parse playback info: invalid JSON")
	}

	info := gjson.ParseBytes(data)
	mimeType := info.Get("manifestMimeType").String()

	if mimeType == "" && info.Get("url").Exists() {
		codec := info.Get("codec")
		if !codec.Exists() {
			codec = info.Get("codecs")
		}
		return model.StreamURL{URL: info.Get("url").String(), Codec: codec.String()}, nil
	}

	manifest, err := base64.StdEncoding.DecodeString(info.Get("manifest").String())
	if err != nil {
		return model.StreamURL{}, fmt.Errorf("failed to decode %s manifest: %w", mimeType, err)
	}

	switch mimeType {
	case MimeTypeBTS, "vnd.tidal.bt":
		return parseBTSManifest(manifest)
	case MimeTypeDASH, "dash+xml":
		return parseDASHManifest(manifest)
	default:
		return model.StreamURL{}, fmt.Errorf("%w: %q", ErrUnsupportedManifest, mimeType)
	}
}

func parseBTSManifest(manifest []byte) (model.StreamURL, error) {
	if !gjson.ValidBytes(manifest) {
		return model.StreamURL{}, fmt.Errorf("failed to parse %s manifest: invalid JSON", MimeTypeBTS)
	}

	m := gjson.ParseBytes(manifest)
	if enc := m.Get("encryptionType").String(); enc != "" && enc != "NONE" {
		return model.StreamURL{}, fmt.Errorf("%w: encrypted with %s", ErrUnsupportedManifest, enc)
	}

	url := m.Get("urls.0").String()
	if url == "" {
		return model.StreamURL{}, fmt.Errorf("%w: no stream URLs", ErrUnsupportedManifest)
	}

	return model.StreamURL{URL: url, Codec: m.Get("codecs").String()}, nil
}

func parseDASHManifest(manifest []byte) (model.StreamURL, error) {
	doc := string(manifest)

	media := dashMediaPattern.FindStringSubmatch(doc)
	if media == nil {
		return model.StreamURL{}, fmt.Errorf("%w: DASH manifest without media template", ErrUnsupportedManifest)
	}

	var codec string
	if m := dashCodecPattern.FindStringSubmatch(doc); m != nil {
		codec = m[1]
	}

	return model.StreamURL{
		URL:   html.UnescapeString(media[1]),
		Codec: strings.TrimSpace(codec) + dashCodecSuffix,
	}, nil
}
