package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the environment variable prefix for settings overrides.
const EnvPrefix = "TIDALRR"

// Built-in naming templates, used when the matching format is empty.
const (
	DefaultAlbumFolderFormat    = "{ArtistName}/{Flag}{AlbumTitle} [{AlbumID}] [{AlbumYear}]"
	DefaultPlaylistFolderFormat = "Playlist/{PlaylistName} [{PlaylistUUID}]"
	DefaultTrackFileFormat      = "{TrackNumber} - {ArtistName} - {TrackTitle} {ExplicitFlag}"
)

// AudioQuality is the download quality the user selected.
type AudioQuality string

const (
	QualityNormal AudioQuality = "Normal"
	QualityHigh   AudioQuality = "High"
	QualityHiFi   AudioQuality = "HiFi"
	QualityMaster AudioQuality = "Master"
	QualityMax    AudioQuality = "Max"
)

// IsMasterTier reports whether downloads at this quality are guaranteed to
// be master quality, which is when album folders may carry the "M" badge.
func (q AudioQuality) IsMasterTier() bool {
	return q == QualityMaster || q == QualityMax
}

// Valid reports whether q is one of the known qualities.
func (q AudioQuality) Valid() bool {
	switch q {
	case QualityNormal, QualityHigh, QualityHiFi, QualityMaster, QualityMax:
		return true
	}
	return false
}

// Settings holds all configuration options.
type Settings struct {
	// Path settings
	DownloadPath         string `json:"download_path" mapstructure:"download_path"`
	AlbumFolderFormat    string `json:"album_folder_format" mapstructure:"album_folder_format"`
	PlaylistFolderFormat string `json:"playlist_folder_format" mapstructure:"playlist_folder_format"`
	TrackFileFormat      string `json:"track_file_format" mapstructure:"track_file_format"`
	UsePlaylistFolder    bool   `json:"use_playlist_folder" mapstructure:"use_playlist_folder"`

	// Quality settings
	AudioQuality AudioQuality `json:"audio_quality" mapstructure:"audio_quality"`

	// Batch planning
	MaxConcurrentPaths int `json:"max_concurrent_paths" mapstructure:"max_concurrent_paths"`

	// Logging: debug, info, warn, error
	LogLevel string `json:"log_level" mapstructure:"log_level"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		DownloadPath:         "./download",
		AlbumFolderFormat:    DefaultAlbumFolderFormat,
		PlaylistFolderFormat: DefaultPlaylistFolderFormat,
		TrackFileFormat:      DefaultTrackFileFormat,
		UsePlaylistFolder:    true,

		AudioQuality: QualityHiFi,

		MaxConcurrentPaths: 8,

		LogLevel: "info",
	}
}

// DefaultAlbumFolderFormat returns the built-in album folder template.
func (s *Settings) DefaultAlbumFolderFormat() string { return DefaultAlbumFolderFormat }

// DefaultPlaylistFolderFormat returns the built-in playlist folder template.
func (s *Settings) DefaultPlaylistFolderFormat() string { return DefaultPlaylistFolderFormat }

// DefaultTrackFileFormat returns the built-in track file template.
func (s *Settings) DefaultTrackFileFormat() string { return DefaultTrackFileFormat }

// AlbumFormat returns the configured album template, or the default when unset.
func (s *Settings) AlbumFormat() string {
	return orDefault(s.AlbumFolderFormat, s.DefaultAlbumFolderFormat())
}

// PlaylistFormat returns the configured playlist template, or the default when unset.
func (s *Settings) PlaylistFormat() string {
	return orDefault(s.PlaylistFolderFormat, s.DefaultPlaylistFolderFormat())
}

// TrackFormat returns the configured track template, or the default when unset.
func (s *Settings) TrackFormat() string {
	return orDefault(s.TrackFileFormat, s.DefaultTrackFileFormat())
}

func orDefault(format, def string) string {
	if format == "" {
		return def
	}
	return format
}

// Validate checks the settings for values the rest of the program cannot use.
func (s *Settings) Validate() error {
	if !s.AudioQuality.Valid() {
		return fmt.Errorf("unknown audio quality %q", s.AudioQuality)
	}
	if s.MaxConcurrentPaths <= 0 {
		return fmt.Errorf("max_concurrent_paths must be positive, got %d", s.MaxConcurrentPaths)
	}
	return nil
}

// Load reads settings from a JSON or YAML file and the environment.
//
// Values missing from the file keep their defaults. A missing file yields
// the defaults, still subject to environment overrides.
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v, DefaultSettings())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if filepath.Ext(path) == "" {
				v.SetConfigType("json")
			}
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &settings, nil
}

func setDefaults(v *viper.Viper, s *Settings) {
	v.SetDefault("download_path", s.DownloadPath)
	v.SetDefault("album_folder_format", s.AlbumFolderFormat)
	v.SetDefault("playlist_folder_format", s.PlaylistFolderFormat)
	v.SetDefault("track_file_format", s.TrackFileFormat)
	v.SetDefault("use_playlist_folder", s.UsePlaylistFolder)
	v.SetDefault("audio_quality", string(s.AudioQuality))
	v.SetDefault("max_concurrent_paths", s.MaxConcurrentPaths)
	v.SetDefault("log_level", s.LogLevel)
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
