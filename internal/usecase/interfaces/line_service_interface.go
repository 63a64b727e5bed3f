package interfaces

import (
	"context"
	"estimate_editor/internal/domain/entities"
)

// ILineService is the remote estimate-line service consumed by editing sessions.
//
//   - Create assigns the id; a zero sequence number means "max existing + 1".
//   - Update returns the stored line; callers trust only the fields they sent.
//   - List returns lines ordered by sequence number.
//   - BulkUpdate reports per-item outcomes instead of failing as a whole. A returned error
//     means the request itself failed and no item outcome is known.
//
// Errors are classified with lineerr.Classify.

type ILineService interface {
	Create(ctx context.Context, line entities.EstimateLine) (entities.EstimateLine, error)
	Update(ctx context.Context, estimateID, id string, fields entities.FieldSet) (entities.EstimateLine, error)
	Delete(ctx context.Context, estimateID, id string) error
	List(ctx context.Context, estimateID string) ([]entities.EstimateLine, error)
	BulkUpdate(ctx context.Context, estimateID string, items []entities.LineUpdate) ([]entities.LineUpdateResult, error)
}
