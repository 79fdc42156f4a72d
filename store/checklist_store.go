// Package store defines the persistence boundary for trip checklists and an
// in-memory implementation of it.
package store

import (
	"context"

	"github.com/PackPilot/packpilot-backend/types"
)

// ChecklistStore handles checklist persistence. Implementations persist the
// checklist's markdown serialization plus a small metadata record; the
// in-memory implementation keeps the aggregate directly.
type ChecklistStore interface {
	CreateChecklist(ctx context.Context, checklist *types.TripChecklist) error
	GetChecklist(ctx context.Context, id string) (*types.TripChecklist, error)
	ListChecklists(ctx context.Context, userID string) ([]*types.TripChecklist, error)
	UpdateChecklist(ctx context.Context, checklist *types.TripChecklist) error
	DeleteChecklist(ctx context.Context, id string) error
}
