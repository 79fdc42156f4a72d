// Package services holds the application services: checklist lifecycle over
// the store boundary, and the weather forecast client.
package services

import (
	"context"
	"time"

	"github.com/PackPilot/packpilot-backend/errors"
	"github.com/PackPilot/packpilot-backend/internal/engine"
	"github.com/PackPilot/packpilot-backend/logger"
	"github.com/PackPilot/packpilot-backend/store"
	"github.com/PackPilot/packpilot-backend/types"
)

// ChecklistService drives checklist generation and mutation. Mutations go
// through loadMutateSave, which serializes access per checklist so the
// aggregate itself needs no locking.
type ChecklistService struct {
	engine *engine.Engine
	store  store.ChecklistStore
	locks  *keyedLocks
}

func NewChecklistService(eng *engine.Engine, st store.ChecklistStore) *ChecklistService {
	return &ChecklistService{
		engine: eng,
		store:  st,
		locks:  newKeyedLocks(),
	}
}

// GenerateChecklist runs the generation pipeline and persists the result.
func (s *ChecklistService) GenerateChecklist(ctx context.Context, req *types.TripRequest) (*types.TripChecklist, error) {
	checklist, err := s.engine.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateChecklist(ctx, checklist); err != nil {
		return nil, errors.InternalServerError("failed to save checklist")
	}
	return checklist, nil
}

func (s *ChecklistService) GetChecklist(ctx context.Context, id string) (*types.TripChecklist, error) {
	checklist, err := s.store.GetChecklist(ctx, id)
	if err != nil {
		return nil, errors.ChecklistNotFoundError(id)
	}
	return checklist, nil
}

func (s *ChecklistService) ListChecklists(ctx context.Context, userID string) ([]*types.TripChecklist, error) {
	checklists, err := s.store.ListChecklists(ctx, userID)
	if err != nil {
		return nil, errors.InternalServerError("failed to list checklists")
	}
	return checklists, nil
}

func (s *ChecklistService) DeleteChecklist(ctx context.Context, id string) error {
	if err := s.store.DeleteChecklist(ctx, id); err != nil {
		return errors.ChecklistNotFoundError(id)
	}
	return nil
}

// ToggleItem flips an item's checked state and returns the new state.
func (s *ChecklistService) ToggleItem(ctx context.Context, checklistID, itemID string) (bool, error) {
	var checked bool
	err := s.loadMutateSave(ctx, checklistID, func(checklist *types.TripChecklist) error {
		var err error
		checked, err = checklist.ToggleItem(itemID)
		return err
	})
	return checked, err
}

// AddItem appends a user-added item and returns it with its generated id.
func (s *ChecklistService) AddItem(ctx context.Context, checklistID, name string, category types.ItemCategory) (*types.ChecklistItem, error) {
	item := types.NewChecklistItem(name, category, false)
	err := s.loadMutateSave(ctx, checklistID, func(checklist *types.TripChecklist) error {
		checklist.AddItem(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *ChecklistService) RemoveItem(ctx context.Context, checklistID, itemID string) error {
	return s.loadMutateSave(ctx, checklistID, func(checklist *types.TripChecklist) error {
		return checklist.RemoveItem(itemID)
	})
}

// Reschedule moves the trip to new dates, applies the duration threshold
// adjustments, and returns the human-readable adjustment messages.
func (s *ChecklistService) Reschedule(ctx context.Context, checklistID string, newStart, newEnd time.Time) ([]string, error) {
	if newEnd.Before(newStart) {
		return nil, errors.ValidationFailed("end date must not be before start date", "")
	}

	var messages []string
	err := s.loadMutateSave(ctx, checklistID, func(checklist *types.TripChecklist) error {
		oldDuration := int(checklist.EndDate.Sub(checklist.StartDate).Hours() / 24)
		newDuration := int(newEnd.Sub(newStart).Hours() / 24)

		checklist.StartDate = newStart
		checklist.EndDate = newEnd
		messages = checklist.AdjustForDurationChange(oldDuration, newDuration)

		logger.GetLogger().Infow("Rescheduled checklist",
			"checklistId", checklistID,
			"oldDuration", oldDuration,
			"newDuration", newDuration,
			"adjustments", len(messages))
		return nil
	})
	return messages, err
}

// loadMutateSave applies mutate to the stored checklist under the per-id
// lock and persists the result. The mutate error propagates unchanged.
func (s *ChecklistService) loadMutateSave(ctx context.Context, id string, mutate func(*types.TripChecklist) error) error {
	unlock := s.locks.lock(id)
	defer unlock()

	checklist, err := s.store.GetChecklist(ctx, id)
	if err != nil {
		return errors.ChecklistNotFoundError(id)
	}

	if err := mutate(checklist); err != nil {
		return err
	}

	checklist.UpdatedAt = time.Now().UTC()
	if err := s.store.UpdateChecklist(ctx, checklist); err != nil {
		return errors.InternalServerError("failed to save checklist")
	}
	return nil
}
