// Package tui provides a Bubble Tea template previewer for tidalrr path
// formats.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/catalog"
	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/config"
	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/model"
	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/paths"
	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/plan"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// maxPlannedRows is how many planned entries the plan view lists.
const maxPlannedRows = 12

// State represents the current UI state.
type State int

const (
	StateEditing State = iota
	StatePlanning
	StatePlanned
	StateError
)

// editOrder is the order tab cycles through templates.
var editOrder = []model.Kind{model.KindAlbum, model.KindPlaylist, model.KindTrack}

// Options configures the previewer.
type Options struct {
	// Settings are the settings being edited. Nil uses the defaults.
	Settings *config.Settings

	// ConfigPath is where ctrl+s saves the settings. Empty disables saving.
	ConfigPath string

	// Manifest, when set, supplies the sample entities and the batch
	// planned with enter.
	Manifest *plan.Manifest
}

// samples are the entities previewed while editing.
type samples struct {
	album    model.Album
	track    model.Track
	stream   model.StreamURL
	playlist model.Playlist
	artists  *catalog.Memory
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state      State
	textInput  textinput.Model
	spinner    spinner.Model
	progress   progress.Model
	settings   config.Settings
	configPath string
	manifest   *plan.Manifest
	samples    samples
	kind       int // index into editOrder

	status  string
	entries []plan.Entry
	err     error

	ctx    context.Context
	cancel context.CancelFunc

	width int
}

// NewModel creates a new TUI model.
func NewModel(opts Options) Model {
	settings := config.DefaultSettings()
	if opts.Settings != nil {
		settings = opts.Settings
	}

	ti := textinput.New()
	ti.Placeholder = settings.DefaultAlbumFolderFormat()
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 72
	ti.SetValue(settings.AlbumFormat())

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:      StateEditing,
		textInput:  ti,
		spinner:    sp,
		progress:   prog,
		settings:   *settings,
		configPath: opts.ConfigPath,
		manifest:   opts.Manifest,
		samples:    pickSamples(opts.Manifest),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Message types
type (
	// PlanDoneMsg is sent when the manifest has been planned.
	PlanDoneMsg struct {
		Entries []plan.Entry
		Err     error
	}

	// SavedMsg is sent when the settings have been saved.
	SavedMsg struct {
		Path string
		Err  error
	}
)

// Kind returns the entity kind whose template is being edited.
func (m Model) Kind() model.Kind {
	return editOrder[m.kind]
}

// Settings returns the settings with the edited template applied.
func (m Model) Settings() config.Settings {
	s := m.settings
	setFormat(&s, m.Kind(), m.textInput.Value())
	return s
}

// Preview renders the sample entity of the edited kind. ok is false when
// the sample has no path.
func (m Model) Preview() (string, bool) {
	settings := m.Settings()
	b := paths.NewBuilder(&settings, m.samples.artists)

	switch m.Kind() {
	case model.KindAlbum:
		return b.AlbumPath(m.samples.album)
	case model.KindPlaylist:
		return b.PlaylistPath(m.samples.playlist), true
	default:
		return b.TrackPath(m.samples.track, m.samples.stream, paths.TrackOptions{Album: &m.samples.album})
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.textInput.Width = min(max(msg.Width-10, 20), 120)
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			switch m.state {
			case StateEditing:
				m.cancel()
				return m, tea.Quit
			case StatePlanning:
				m.cancel()
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.state = StateEditing
				m.status = "planning cancelled"
			default:
				m.state = StateEditing
				m.err = nil
			}
			return m, nil

		case "tab", "shift+tab":
			if m.state == StateEditing {
				m.settings = m.Settings()
				step := 1
				if msg.String() == "shift+tab" {
					step = len(editOrder) - 1
				}
				m.kind = (m.kind + step) % len(editOrder)
				m.textInput.SetValue(format(&m.settings, m.Kind()))
				m.textInput.Placeholder = defaultFormat(&m.settings, m.Kind())
				m.textInput.CursorEnd()
				m.status = ""
			}
			return m, nil

		case "ctrl+r":
			if m.state == StateEditing {
				m.textInput.SetValue(defaultFormat(&m.settings, m.Kind()))
				m.textInput.CursorEnd()
			}
			return m, nil

		case "ctrl+s":
			if m.state == StateEditing {
				m.settings = m.Settings()
				return m, m.save()
			}
			return m, nil

		case "enter":
			if m.state == StateEditing && m.manifest != nil {
				m.settings = m.Settings()
				m.state = StatePlanning
				return m, tea.Batch(m.plan(), m.spinner.Tick)
			}
			return m, nil
		}

	case spinner.TickMsg:
		if m.state == StatePlanning {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case PlanDoneMsg:
		if m.state != StatePlanning {
			return m, nil
		}
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			return m, nil
		}
		m.state = StatePlanned
		m.entries = msg.Entries
		var percent float64
		if len(msg.Entries) > 0 {
			percent = float64(plan.Summarize(msg.Entries).Planned) / float64(len(msg.Entries))
		}
		cmds = append(cmds, m.progress.SetPercent(percent))

	case SavedMsg:
		if msg.Err != nil {
			m.status = errorStyle.Render("save failed: " + msg.Err.Error())
		} else {
			m.status = successStyle.Render("saved " + msg.Path)
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	if m.state == StateEditing {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Tidalrr path templates"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Download path: %s  Quality: %s", m.settings.DownloadPath, m.settings.AudioQuality)))
	b.WriteString("\n\n")

	switch m.state {
	case StateEditing:
		b.WriteString(m.viewEditing())
	case StatePlanning:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render("Planning manifest..."))
		b.WriteString("\n")
	case StatePlanned:
		b.WriteString(m.viewPlanned())
	case StateError:
		b.WriteString(errorStyle.Render("Error occurred:"))
		b.WriteString("\n\n")
		if m.err != nil {
			b.WriteString(fmt.Sprintf("  %s\n", m.err.Error()))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewEditing() string {
	var b strings.Builder

	tabs := make([]string, len(editOrder))
	for i, k := range editOrder {
		if i == m.kind {
			tabs[i] = kindStyle.Render("[" + k.String() + "]")
		} else {
			tabs[i] = dimStyle.Render(" " + k.String() + " ")
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%s template:", strings.ToUpper(m.Kind().String()[:1])+m.Kind().String()[1:])))
	b.WriteString("\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	preview, ok := m.Preview()
	if ok {
		b.WriteString(boxStyle.Render(preview))
	} else {
		b.WriteString(warningStyle.Render("no path: the sample album's artist is not in the catalog"))
	}
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render("Placeholders:"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Join(placeholders(m.Kind()), " ")))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewPlanned() string {
	var b strings.Builder

	summary := plan.Summarize(m.entries)
	b.WriteString(m.progress.View())
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Planned: %d | Skipped: %d", summary.Planned, summary.Skipped)))
	b.WriteString("\n\n")

	for i, e := range m.entries {
		if i == maxPlannedRows {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  ... %d more", len(m.entries)-maxPlannedRows)))
			b.WriteString("\n")
			break
		}
		if e.Skipped {
			b.WriteString(warningStyle.Render(fmt.Sprintf("! %s %s: %s", e.Kind, e.Title, e.Reason)))
		} else {
			b.WriteString(successStyle.Render("✓ ") + e.Path)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateEditing:
		help := "tab: next template • ctrl+r: reset"
		if m.configPath != "" {
			help += " • ctrl+s: save"
		}
		if m.manifest != nil {
			help += " • enter: plan manifest"
		}
		return help + " • esc: quit"
	case StatePlanning:
		return "esc: cancel"
	case StatePlanned, StateError:
		return "esc: back • ctrl+c: quit"
	}
	return ""
}

// plan computes the manifest paths in the background.
func (m Model) plan() tea.Cmd {
	settings := m.settings
	manifest := m.manifest
	ctx := m.ctx
	return func() tea.Msg {
		planner := plan.NewPlanner(&settings, catalog.NewMemory(manifest.Artists...), zerolog.Nop())
		entries, err := planner.Plan(ctx, manifest)
		return PlanDoneMsg{Entries: entries, Err: err}
	}
}

// save writes the settings to the config path.
func (m Model) save() tea.Cmd {
	settings := m.settings
	path := m.configPath
	return func() tea.Msg {
		if path == "" {
			return SavedMsg{Err: fmt.Errorf("no config file given")}
		}
		if err := settings.Validate(); err != nil {
			return SavedMsg{Path: path, Err: err}
		}
		return SavedMsg{Path: path, Err: settings.Save(path)}
	}
}

func format(s *config.Settings, kind model.Kind) string {
	switch kind {
	case model.KindAlbum:
		return s.AlbumFormat()
	case model.KindPlaylist:
		return s.PlaylistFormat()
	default:
		return s.TrackFormat()
	}
}

func defaultFormat(s *config.Settings, kind model.Kind) string {
	switch kind {
	case model.KindAlbum:
		return s.DefaultAlbumFolderFormat()
	case model.KindPlaylist:
		return s.DefaultPlaylistFolderFormat()
	default:
		return s.DefaultTrackFileFormat()
	}
}

func setFormat(s *config.Settings, kind model.Kind, value string) {
	switch kind {
	case model.KindAlbum:
		s.AlbumFolderFormat = value
	case model.KindPlaylist:
		s.PlaylistFolderFormat = value
	default:
		s.TrackFileFormat = value
	}
}

func placeholders(kind model.Kind) []string {
	switch kind {
	case model.KindAlbum:
		return []string{
			paths.TokenArtistName, paths.TokenAlbumArtistName, paths.TokenFlag, paths.TokenAlbumID,
			paths.TokenAlbumYear, paths.TokenAlbumTitle, paths.TokenAudioQuality, paths.TokenDurationSeconds,
			paths.TokenDuration, paths.TokenNumberOfTracks, paths.TokenNumberOfVolumes, paths.TokenReleaseDate,
			paths.TokenRecordType, paths.TokenNone,
		}
	case model.KindPlaylist:
		return []string{paths.TokenPlaylistUUID, paths.TokenPlaylistName, paths.TokenNone}
	default:
		return []string{
			paths.TokenTrackNumber, paths.TokenArtistName, paths.TokenArtistsName, paths.TokenTrackTitle,
			paths.TokenExplicitFlag, paths.TokenAlbumYear, paths.TokenAlbumTitle, paths.TokenAudioQuality,
			paths.TokenDurationSeconds, paths.TokenDuration, paths.TokenTrackID, paths.TokenNone,
		}
	}
}

var sampleArtist = model.Artist{ID: 8847, Name: "Daft Punk"}

// pickSamples uses the first manifest album, track and playlist, falling
// back to built-in entities.
func pickSamples(m *plan.Manifest) samples {
	s := samples{
		album: model.Album{
			ID:              19882,
			Title:           "Random Access Memories",
			ArtistID:        8847,
			Artists:         "Daft Punk, Pharrell Williams",
			ReleaseDate:     model.Optional("2013-05-17"),
			Duration:        4493,
			NumberOfTracks:  13,
			NumberOfVolumes: 1,
			AudioQuality:    model.QualityHiRes,
			AudioModes:      []string{"STEREO"},
			Explicit:        false,
			Type:            "ALBUM",
		},
		track: model.Track{
			ID:           19890,
			Title:        "Get Lucky",
			TrackNumber:  8,
			VolumeNumber: 1,
			Duration:     369,
			AudioQuality: "LOSSLESS",
			ArtistID:     8847,
			Artists:      model.Optional("Daft Punk, Pharrell Williams, Nile Rodgers"),
			AlbumID:      19882,
		},
		stream:   model.StreamURL{URL: "https://sp-pr-fa.audio.tidal.com/mediatracks/0.flac", Codec: "flac"},
		playlist: model.Playlist{UUID: uuid.MustParse("36ea71a8-445e-41a4-82ab-6628c581535d"), Title: "Robot Rock Essentials"},
		artists:  catalog.NewMemory(sampleArtist),
	}
	if m == nil {
		return s
	}

	// Manifest artists override the built-in one on ID clashes.
	s.artists = catalog.NewMemory(append([]model.Artist{sampleArtist}, m.Artists...)...)
	for _, a := range m.Albums {
		if len(a.Tracks) == 0 || a.Tracks[0].StreamErr != nil {
			continue
		}
		s.album, s.track, s.stream = a.Album, a.Tracks[0].Track, a.Tracks[0].Stream
		break
	}
	if len(m.Playlists) > 0 {
		s.playlist = m.Playlists[0].Playlist
	}
	return s
}

// Run starts the TUI application.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
