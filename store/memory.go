package store

import (
	"context"
	"sort"
	"sync"

	"github.com/PackPilot/packpilot-backend/types"
)

// MemoryStore is a map-backed ChecklistStore. Safe for concurrent use; it
// stores deep copies so callers cannot mutate stored state through a
// returned pointer.
type MemoryStore struct {
	mu         sync.RWMutex
	checklists map[string]*types.TripChecklist
}

var _ ChecklistStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{checklists: make(map[string]*types.TripChecklist)}
}

func (s *MemoryStore) CreateChecklist(ctx context.Context, checklist *types.TripChecklist) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.checklists[checklist.ID]; exists {
		return ErrConflict
	}
	s.checklists[checklist.ID] = copyChecklist(checklist)
	return nil
}

func (s *MemoryStore) GetChecklist(ctx context.Context, id string) (*types.TripChecklist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	checklist, ok := s.checklists[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyChecklist(checklist), nil
}

// ListChecklists returns the user's checklists, newest first.
func (s *MemoryStore) ListChecklists(ctx context.Context, userID string) ([]*types.TripChecklist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*types.TripChecklist{}
	for _, checklist := range s.checklists {
		if checklist.UserID == userID {
			out = append(out, copyChecklist(checklist))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) UpdateChecklist(ctx context.Context, checklist *types.TripChecklist) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.checklists[checklist.ID]; !ok {
		return ErrNotFound
	}
	s.checklists[checklist.ID] = copyChecklist(checklist)
	return nil
}

func (s *MemoryStore) DeleteChecklist(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.checklists[id]; !ok {
		return ErrNotFound
	}
	delete(s.checklists, id)
	return nil
}

func copyChecklist(src *types.TripChecklist) *types.TripChecklist {
	dst := *src
	dst.Items = make([]types.ChecklistItem, len(src.Items))
	copy(dst.Items, src.Items)
	if src.WeatherData != nil {
		weather := *src.WeatherData
		dst.WeatherData = &weather
	}
	return &dst
}
