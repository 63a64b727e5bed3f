package interfaces

import (
	"context"
	"estimate_editor/internal/domain/entities"
)

// IEstimateRepository abstracts persistence for Estimate.
//
// Lookups that find nothing return a zero Estimate and a nil error; callers check ID.

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	GetByClaimID(ctx context.Context, claimID string) (entities.Estimate, error)
	UpdateRates(ctx context.Context, id string, rates entities.RateConfig) (entities.Estimate, error)
	UpdateTotals(ctx context.Context, id string, totals entities.Totals) (entities.Estimate, error)
}

// IEstimateProvider is what an editing session needs from the estimate side:
// the rate configuration to price with and a place to record computed totals.
type IEstimateProvider interface {
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	RecordTotals(ctx context.Context, id string, totals entities.Totals) error
}
