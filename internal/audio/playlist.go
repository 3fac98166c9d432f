package audio

import (
	"fmt"
	"strings"
)

// PlaylistFormat represents supported playlist file formats.
//
// Each format has different features and compatibility:
//   - M3U: Simple text format, widely supported
//   - PLS: INI-style format, used by Winamp
//   - WPL: XML format, Windows Media Player
//   - ZPL: XML format, Zune/Groove Music
type PlaylistFormat int

const (
	// FormatM3U creates .m3u files (most compatible).
	// Can be extended with EXTINF lines for duration/title info.
	FormatM3U PlaylistFormat = iota

	// FormatPLS creates .pls files (Winamp/SHOUTcast format).
	FormatPLS

	// FormatWPL creates .wpl files (Windows Media Player).
	FormatWPL

	// FormatZPL creates .zpl files (Zune/Groove Music).
	FormatZPL
)

// ParsePlaylistFormat returns the format named by s ("m3u", "pls", "wpl"
// or "zpl", case-insensitive).
func ParsePlaylistFormat(s string) (PlaylistFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m3u":
		return FormatM3U, nil
	case "pls":
		return FormatPLS, nil
	case "wpl":
		return FormatWPL, nil
	case "zpl":
		return FormatZPL, nil
	default:
		return FormatM3U, fmt.Errorf("unknown playlist format %q", s)
	}
}

// Extension returns the file extension of the format, dot included.
func (f PlaylistFormat) Extension() string {
	switch f {
	case FormatPLS:
		return ".pls"
	case FormatWPL:
		return ".wpl"
	case FormatZPL:
		return ".zpl"
	default:
		return ".m3u"
	}
}

// Track is a planned track as listed in a playlist.
type Track struct {
	Path     string
	Title    string
	Artist   string
	Duration int // seconds
}

// Playlist is a planned album or playlist folder with its tracks.
type Playlist struct {
	Title  string
	Artist string
	Folder string
	Tracks []Track
}

// PlaylistCreator generates playlist files in various formats.
//
// Example:
//
//	creator := NewPlaylistCreator(FormatM3U, true)
//	content := creator.CreatePlaylist(playlist)
//
//	// Result:
//	// #EXTM3U
//	// #EXTINF:369,Daft Punk - Get Lucky
//	// 08 - Daft Punk - Get Lucky.flac
type PlaylistCreator struct {
	format   PlaylistFormat
	extended bool // For M3U: include EXTINF lines with duration/title
}

// NewPlaylistCreator creates a new PlaylistCreator.
//
// extended applies to M3U only and adds #EXTINF lines.
func NewPlaylistCreator(format PlaylistFormat, extended bool) *PlaylistCreator {
	return &PlaylistCreator{
		format:   format,
		extended: extended,
	}
}

// FileName returns the playlist file name for pl, without directory.
func (p *PlaylistCreator) FileName(pl Playlist) string {
	name := pl.Title
	if i := strings.LastIndex(pl.Folder, "/"); name == "" && i >= 0 {
		name = pl.Folder[i+1:]
	}
	if name == "" {
		name = "playlist"
	}
	return strings.NewReplacer("/", "-", "\\", "-").Replace(name) + p.format.Extension()
}

// CreatePlaylist generates playlist content for pl.
func (p *PlaylistCreator) CreatePlaylist(pl Playlist) string {
	switch p.format {
	case FormatPLS:
		return p.createPLS(pl)
	case FormatWPL:
		return p.createWPL(pl)
	case FormatZPL:
		return p.createZPL(pl)
	default:
		return p.createM3U(pl)
	}
}

// createM3U generates an M3U playlist.
//
// Extended M3U format (when extended=true):
//
//	#EXTM3U
//	#EXTINF:180,Artist - Title
//	filename1.flac
func (p *PlaylistCreator) createM3U(pl Playlist) string {
	var sb strings.Builder

	if p.extended {
		sb.WriteString("#EXTM3U\n")
	}

	for _, track := range pl.Tracks {
		if p.extended {
			sb.WriteString(fmt.Sprintf("#EXTINF:%d,%s\n", track.Duration, displayName(track)))
		}
		sb.WriteString(relativePath(pl.Folder, track.Path) + "\n")
	}

	return sb.String()
}

// createPLS generates a PLS playlist.
//
//	[playlist]
//	File1=filename1.flac
//	Title1=Song Title
//	Length1=180
//	NumberOfEntries=1
//	Version=2
func (p *PlaylistCreator) createPLS(pl Playlist) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")

	for i, track := range pl.Tracks {
		idx := i + 1
		sb.WriteString(fmt.Sprintf("File%d=%s\n", idx, relativePath(pl.Folder, track.Path)))
		sb.WriteString(fmt.Sprintf("Title%d=%s\n", idx, displayName(track)))
		sb.WriteString(fmt.Sprintf("Length%d=%d\n", idx, track.Duration))
	}

	sb.WriteString(fmt.Sprintf("NumberOfEntries=%d\n", len(pl.Tracks)))
	sb.WriteString("Version=2\n")

	return sb.String()
}

// createWPL generates a Windows Media Player playlist.
func (p *PlaylistCreator) createWPL(pl Playlist) string {
	var sb strings.Builder

	sb.WriteString("<?wpl version=\"1.0\"?>\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	sb.WriteString(fmt.Sprintf("    <title>%s</title>\n", escapeXML(pl.Title)))
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")

	for _, track := range pl.Tracks {
		sb.WriteString(fmt.Sprintf("      <media src=\"%s\"/>\n", escapeXML(relativePath(pl.Folder, track.Path))))
	}

	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
}

// createZPL generates a Zune/Groove Music playlist. Durations are in
// milliseconds.
func (p *PlaylistCreator) createZPL(pl Playlist) string {
	var sb strings.Builder

	sb.WriteString("<?zpl version=\"2.0\"?>\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	sb.WriteString(fmt.Sprintf("    <title>%s</title>\n", escapeXML(pl.Title)))
	sb.WriteString("    <meta name=\"Generator\" content=\"tidalrr-paths\"/>\n")
	sb.WriteString(fmt.Sprintf("    <meta name=\"ItemCount\" content=\"%d\"/>\n", len(pl.Tracks)))
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")

	for _, track := range pl.Tracks {
		sb.WriteString(fmt.Sprintf("      <media src=\"%s\" albumTitle=\"%s\" albumArtist=\"%s\" trackTitle=\"%s\" trackArtist=\"%s\" duration=\"%d\"/>\n",
			escapeXML(relativePath(pl.Folder, track.Path)),
			escapeXML(pl.Title),
			escapeXML(pl.Artist),
			escapeXML(track.Title),
			escapeXML(track.Artist),
			track.Duration*1000))
	}

	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
}

// relativePath strips folder from path when path lies inside it.
func relativePath(folder, path string) string {
	if folder == "" {
		return path
	}
	if rel, ok := strings.CutPrefix(path, strings.TrimSuffix(folder, "/")+"/"); ok {
		return rel
	}
	return path
}

func displayName(track Track) string {
	if track.Artist == "" {
		return track.Title
	}
	return track.Artist + " - " + track.Title
}

// escapeXML escapes special XML characters in a string.
var escapeXML = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
).Replace
