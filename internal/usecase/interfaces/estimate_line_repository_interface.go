package interfaces

import (
	"context"
	"estimate_editor/internal/domain/entities"
)

// IEstimateLineRepository abstracts persistence for EstimateLine.
//
// GetByID returns a zero line and nil error when the line does not exist.
// Update and Delete return lineerr.ErrNotFound for a missing line.

type IEstimateLineRepository interface {
	Create(ctx context.Context, l entities.EstimateLine) (entities.EstimateLine, error)
	GetByID(ctx context.Context, id string) (entities.EstimateLine, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.EstimateLine, error)
	Update(ctx context.Context, l entities.EstimateLine) (entities.EstimateLine, error)
	Delete(ctx context.Context, estimateID, id string) error
}
