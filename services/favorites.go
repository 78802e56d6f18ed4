package services

import (
	"sort"
	"sync"

	"Flicks/metrics"
)

// FavoritesStore holds the ids of favorited movies for the lifetime of the
// process. Nothing is persisted and nothing is ever removed.
type FavoritesStore struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

func NewFavoritesStore() *FavoritesStore {
	return &FavoritesStore{ids: make(map[string]struct{})}
}

// Add inserts movieID and reports whether it was not already present.
// Empty ids are ignored.
func (s *FavoritesStore) Add(movieID string) bool {
	if movieID == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[movieID]; ok {
		return false
	}
	s.ids[movieID] = struct{}{}
	metrics.SetFavorites(len(s.ids))
	return true
}

// List returns a snapshot of the stored ids, sorted so pages render stably.
func (s *FavoritesStore) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *FavoritesStore) Contains(movieID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[movieID]
	return ok
}

func (s *FavoritesStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}
