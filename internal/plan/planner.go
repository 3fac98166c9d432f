package plan

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/config"
	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/model"
	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/paths"
	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/tidal"
)

// Skip reasons.
const (
	ReasonUnknownArtist = "artist not in catalog"
	ReasonNoStream      = "no usable stream"
	ReasonNoAlbumFolder = "album folder unresolved"
)

// Entry is one planned album, playlist or track.
type Entry struct {
	Kind     model.Kind `json:"kind"`
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Artist   string     `json:"artist,omitempty"`
	Duration int        `json:"duration,omitempty"`
	Path     string     `json:"path,omitempty"`

	// Parent is the index of the album or playlist entry a track belongs
	// to, or -1.
	Parent int `json:"parent"`

	Skipped bool   `json:"skipped,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// Option configures a Planner.
type Option func(*Planner)

// WithFilenameOnly makes track entries carry file names instead of full
// paths.
func WithFilenameOnly(enabled bool) Option {
	return func(p *Planner) {
		p.filenameOnly = enabled
	}
}

// Planner computes the paths of a manifest.
type Planner struct {
	builder      *paths.Builder
	limit        int
	filenameOnly bool
	logger       zerolog.Logger
}

// NewPlanner creates a Planner rendering with settings and resolving
// artists through artists.
func NewPlanner(settings *config.Settings, artists paths.ArtistLookup, logger zerolog.Logger, opts ...Option) *Planner {
	builder := paths.NewBuilder(settings, artists)
	p := &Planner{
		builder: builder,
		limit:   max(builder.Settings().MaxConcurrentPaths, 1),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// job fills one entry. album is the album of a track, if known.
type job struct {
	index    int
	album    *model.Album
	playlist *model.Playlist
	track    *TrackItem
}

// Plan returns one entry per album, playlist and track of m, each album or
// playlist followed by its tracks.
//
// Items whose path cannot be computed are returned with Skipped set; they
// are not errors. Plan only fails when ctx is canceled.
func (p *Planner) Plan(ctx context.Context, m *Manifest) ([]Entry, error) {
	entries, jobs := p.layout(m)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.limit)

	for _, j := range jobs {
		j := j
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p.fill(&entries[j.index], j)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, e := range entries {
		if e.Skipped {
			p.logger.Warn().
				Str("kind", e.Kind.String()).
				Str("id", e.ID).
				Str("title", e.Title).
				Str("reason", e.Reason).
				Msg("skipped")
		}
	}

	return entries, nil
}

// layout reserves an entry per item in manifest order.
func (p *Planner) layout(m *Manifest) ([]Entry, []job) {
	var (
		entries []Entry
		jobs    []job
	)
	albums := m.albumIndex()

	for i := range m.Albums {
		item := &m.Albums[i]
		parent := len(entries)
		entries = append(entries, Entry{
			Kind:     model.KindAlbum,
			ID:       formatID(item.Album.ID),
			Title:    item.Album.Title,
			Artist:   item.Album.Artists,
			Duration: item.Album.Duration,
			Parent:   -1,
		})
		jobs = append(jobs, job{index: parent, album: &item.Album})

		for k := range item.Tracks {
			entries = append(entries, trackEntry(&item.Tracks[k], parent))
			jobs = append(jobs, job{index: len(entries) - 1, album: &item.Album, track: &item.Tracks[k]})
		}
	}

	for i := range m.Playlists {
		item := &m.Playlists[i]
		parent := len(entries)
		entries = append(entries, Entry{
			Kind:   model.KindPlaylist,
			ID:     item.Playlist.UUID.String(),
			Title:  item.Playlist.Title,
			Parent: -1,
		})
		jobs = append(jobs, job{index: parent, playlist: &item.Playlist})

		for k := range item.Tracks {
			t := &item.Tracks[k]
			entries = append(entries, trackEntry(t, parent))
			jobs = append(jobs, job{index: len(entries) - 1, album: albums[t.Track.AlbumID], playlist: &item.Playlist, track: t})
		}
	}

	return entries, jobs
}

func trackEntry(item *TrackItem, parent int) Entry {
	return Entry{
		Kind:     model.KindTrack,
		ID:       formatID(item.Track.ID),
		Title:    item.Track.Title,
		Artist:   model.Value(item.Track.Artists),
		Duration: item.Track.Duration,
		Parent:   parent,
	}
}

func (p *Planner) fill(e *Entry, j job) {
	switch e.Kind {
	case model.KindAlbum:
		path, ok := p.builder.AlbumPath(*j.album)
		resolve(e, path, ok, ReasonUnknownArtist)
	case model.KindPlaylist:
		e.Path = p.builder.PlaylistPath(*j.playlist)
	case model.KindTrack:
		if j.track.StreamErr != nil {
			e.Skipped, e.Reason = true, streamReason(j.track.StreamErr)
			return
		}
		path, ok := p.builder.TrackPath(j.track.Track, j.track.Stream, paths.TrackOptions{
			Album:        j.album,
			Playlist:     j.playlist,
			FilenameOnly: p.filenameOnly,
		})
		resolve(e, path, ok, ReasonNoAlbumFolder)
	}
}

func resolve(e *Entry, path string, ok bool, reason string) {
	if !ok {
		e.Skipped, e.Reason = true, reason
		return
	}
	e.Path = path
}

func streamReason(err error) string {
	if errors.Is(err, tidal.ErrUnsupportedManifest) {
		return ReasonNoStream + ": " + err.Error()
	}
	return err.Error()
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// Tracks returns the track entries belonging to the entry at index parent.
func Tracks(entries []Entry, parent int) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Kind == model.KindTrack && e.Parent == parent {
			out = append(out, e)
		}
	}
	return out
}

// Summary counts planned and skipped entries.
type Summary struct {
	Planned int
	Skipped int
}

// Summarize counts the entries of a plan.
func Summarize(entries []Entry) Summary {
	var s Summary
	for _, e := range entries {
		if e.Skipped {
			s.Skipped++
		} else {
			s.Planned++
		}
	}
	return s
}
