package paths

import "strings"

// Placeholders understood by the builders.
const (
	TokenArtistName      = "{ArtistName}"
	TokenAlbumArtistName = "{AlbumArtistName}"
	TokenArtistsName     = "{ArtistsName}"
	TokenFlag            = "{Flag}"
	TokenAlbumID         = "{AlbumID}"
	TokenAlbumYear       = "{AlbumYear}"
	TokenAlbumTitle      = "{AlbumTitle}"
	TokenAudioQuality    = "{AudioQuality}"
	TokenDurationSeconds = "{DurationSeconds}"
	TokenDuration        = "{Duration}"
	TokenNumberOfTracks  = "{NumberOfTracks}"
	TokenNumberOfVolumes = "{NumberOfVolumes}"
	TokenReleaseDate     = "{ReleaseDate}"
	TokenRecordType      = "{RecordType}"
	TokenPlaylistUUID    = "{PlaylistUUID}"
	TokenPlaylistName    = "{PlaylistName}"
	TokenTrackNumber     = "{TrackNumber}"
	TokenTrackTitle      = "{TrackTitle}"
	TokenExplicitFlag    = "{ExplicitFlag}"
	TokenTrackID         = "{TrackID}"

	// TokenNone always renders as the empty string.
	TokenNone = "{None}"
)

// Token pairs a placeholder with the value it renders as.
type Token struct {
	Placeholder string
	Value       string
}

// Render substitutes tokens into template.
//
// Each placeholder is replaced literally and case-sensitively. Substituted
// values are never scanned again, so a title containing "{AlbumID}" stays as
// written. When two placeholders could match at the same position the one
// declared first wins. Placeholders without a token are left verbatim,
// {None} is replaced with "", and the result is trimmed of surrounding
// whitespace.
//
// Example:
//
//	Render("{TrackNumber} - {TrackTitle} {None}", []Token{
//	    {TokenTrackNumber, "01"},
//	    {TokenTrackTitle, "Intro"},
//	}) // Returns "01 - Intro"
func Render(template string, tokens []Token) string {
	pairs := make([]string, 0, 2*len(tokens)+2)
	for _, tok := range tokens {
		if tok.Placeholder == "" {
			continue
		}
		pairs = append(pairs, tok.Placeholder, tok.Value)
	}
	pairs = append(pairs, TokenNone, "")

	return strings.TrimSpace(strings.NewReplacer(pairs...).Replace(template))
}
