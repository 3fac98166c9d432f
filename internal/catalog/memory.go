package catalog

import (
	"context"
	"sync"

	"github.com/Robert-Janssen/Plex-Friendly-Tidalrr/internal/model"
)

// Memory is an in-memory artist catalog, safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	artists map[int64]model.Artist
}

// NewMemory returns a catalog holding the given artists.
func NewMemory(artists ...model.Artist) *Memory {
	m := &Memory{artists: make(map[int64]model.Artist, len(artists))}
	for _, a := range artists {
		m.artists[a.ID] = a
	}
	return m
}

// SaveArtists adds or replaces artists.
func (m *Memory) SaveArtists(_ context.Context, artists ...model.Artist) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range artists {
		m.artists[a.ID] = a
	}
	return nil
}

// Artist returns the artist with the given ID, or ErrArtistNotFound.
func (m *Memory) Artist(_ context.Context, id int64) (model.Artist, error) {
	if a, ok := m.LookupArtist(id); ok {
		return a, nil
	}
	return model.Artist{}, ErrArtistNotFound
}

// LookupArtist implements paths.ArtistLookup.
func (m *Memory) LookupArtist(id int64) (model.Artist, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.artists[id]
	return a, ok
}

// Len returns the number of artists held.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.artists)
}
