package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/model"
)

// ErrArtistNotFound is returned when an artist ID is not in the catalog.
var ErrArtistNotFound = errors.New("artist not found")

// artistRecord is the database row of an artist.
type artistRecord struct {
	ID        int64  `gorm:"primaryKey;autoIncrement:false"`
	Name      string `gorm:"not null"`
	UpdatedAt time.Time
}

func (artistRecord) TableName() string { return "artists" }

// Store is an artist catalog persisted in SQLite.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the SQLite catalog at dsn and migrates its
// schema. Use "file::memory:?cache=shared" for a throwaway catalog.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", dsn, err)
	}

	if err := db.AutoMigrate(&artistRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate catalog: %w", err)
	}

	return &Store{db: db}, nil
}

// SaveArtists inserts artists, updating the name of those already stored.
func (s *Store) SaveArtists(ctx context.Context, artists ...model.Artist) error {
	if len(artists) == 0 {
		return nil
	}

	records := make([]artistRecord, len(artists))
	for i, a := range artists {
		records[i] = artistRecord{ID: a.ID, Name: a.Name}
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
		}).
		Create(&records).Error
	if err != nil {
		return fmt.Errorf("failed to save %d artists: %w", len(artists), err)
	}
	return nil
}

// Artist returns the artist with the given ID, or ErrArtistNotFound.
func (s *Store) Artist(ctx context.Context, id int64) (model.Artist, error) {
	var record artistRecord
	err := s.db.WithContext(ctx).First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Artist{}, ErrArtistNotFound
	}
	if err != nil {
		return model.Artist{}, fmt.Errorf("failed to load artist %d: %w", id, err)
	}
	return model.Artist{ID: record.ID, Name: record.Name}, nil
}

// LookupArtist implements paths.ArtistLookup. Database errors are reported
// as a missing artist.
func (s *Store) LookupArtist(id int64) (model.Artist, bool) {
	a, err := s.Artist(context.Background(), id)
	return a, err == nil
}

// Count returns the number of stored artists.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&artistRecord{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count artists: %w", err)
	}
	return n, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
