package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"estimate_editor/internal/domain/entities"
	"estimate_editor/internal/domain/pricing"
	"estimate_editor/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound      = errors.New("estimate not found")
	ErrEstimateAlreadyExists = errors.New("estimate already exists")
	ErrInvalidClaimID        = errors.New("invalid claim_id")
	ErrInvalidEstimateID     = errors.New("invalid estimate id")
)

// IEstimateUseCase exposes estimate operations: one estimate per claim, its rate
// configuration and the totals computed from its lines.

type IEstimateUseCase interface {
	CreateEstimate(ctx context.Context, claimID string, rates *entities.RateConfig) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	GetByClaimID(ctx context.Context, claimID string) (entities.Estimate, error)
	UpdateRates(ctx context.Context, id string, rates entities.RateConfig) (entities.Estimate, error)
	RecordTotals(ctx context.Context, id string, totals entities.Totals) error
	ComputeTotals(ctx context.Context, id string) (entities.Estimate, error)
}

type EstimateUseCase struct {
	repo         interfaces.IEstimateRepository
	lines        interfaces.IEstimateLineRepository
	defaultRates entities.RateConfig
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)
var _ interfaces.IEstimateProvider = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, lines interfaces.IEstimateLineRepository, defaultRates entities.RateConfig) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, lines: lines, defaultRates: defaultRates}
}

// CreateEstimate opens the estimate of a claim. Without rates the configured defaults apply.
func (u *EstimateUseCase) CreateEstimate(ctx context.Context, claimID string, rates *entities.RateConfig) (entities.Estimate, error) {
	claimID = strings.TrimSpace(claimID)
	if claimID == "" {
		return entities.Estimate{}, ErrInvalidClaimID
	}
	cfg := u.defaultRates
	if rates != nil {
		cfg = *rates
	}
	if err := cfg.Validate(); err != nil {
		return entities.Estimate{}, err
	}

	// Enforce: 1 estimate per claim.
	if existing, err := u.repo.GetByClaimID(ctx, claimID); err != nil {
		return entities.Estimate{}, err
	} else if existing.ID != "" {
		return entities.Estimate{}, ErrEstimateAlreadyExists
	}

	now := time.Now().UTC()
	e := entities.Estimate{
		ID:        uuid.NewString(),
		ClaimID:   claimID,
		Rates:     cfg,
		Totals:    pricing.ComputeTotals(nil, cfg),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, e)
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) GetByClaimID(ctx context.Context, claimID string) (entities.Estimate, error) {
	claimID = strings.TrimSpace(claimID)
	if claimID == "" {
		return entities.Estimate{}, ErrInvalidClaimID
	}

	e, err := u.repo.GetByClaimID(ctx, claimID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

// UpdateRates replaces the rate configuration and recomputes the totals.
func (u *EstimateUseCase) UpdateRates(ctx context.Context, id string, rates entities.RateConfig) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	if err := rates.Validate(); err != nil {
		return entities.Estimate{}, err
	}

	updated, err := u.repo.UpdateRates(ctx, id, rates)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return u.ComputeTotals(ctx, id)
}

// RecordTotals stores totals computed elsewhere, typically by an editing session.
func (u *EstimateUseCase) RecordTotals(ctx context.Context, id string, totals entities.Totals) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEstimateID
	}
	updated, err := u.repo.UpdateTotals(ctx, id, totals)
	if err != nil {
		return err
	}
	if updated.ID == "" {
		return ErrEstimateNotFound
	}
	return nil
}

// ComputeTotals prices the stored lines of an estimate and persists the result.
func (u *EstimateUseCase) ComputeTotals(ctx context.Context, id string) (entities.Estimate, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	lines, err := u.lines.ListByEstimateID(ctx, e.ID)
	if err != nil {
		return entities.Estimate{}, err
	}

	totals := pricing.ComputeTotals(lines, e.Rates)
	if totals.Equal(e.Totals) {
		return e, nil
	}
	updated, err := u.repo.UpdateTotals(ctx, e.ID, totals)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	log.Printf("[estimate][usecase] totals updated estimate_id=%s lines=%d total=%s", e.ID, len(lines), totals.TotalAmount.StringFixed(2))
	return updated, nil
}
