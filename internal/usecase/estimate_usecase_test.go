package usecase

import (
	"context"
	"errors"
	"testing"

	"estimate_editor/internal/domain/entities"
	mock_interfaces "estimate_editor/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func defaultRates() entities.RateConfig {
	return entities.RateConfig{
		LaborRate:               350,
		PaintMaterialRate:       2000,
		VATRatePercentage:       15,
		PartMarkupPercentage:    25,
		SpecialMarkupPercentage: entities.DefaultSpecialMarkupPercentage,
	}
}

func TestEstimateUseCase_CreateEstimate(t *testing.T) {
	t.Run("invalid claim id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, defaultRates())
		_, err := uc.CreateEstimate(context.Background(), "   ", nil)
		if !errors.Is(err, ErrInvalidClaimID) {
			t.Fatalf("expected ErrInvalidClaimID, got %v", err)
		}
	})

	t.Run("invalid rates", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, defaultRates())
		rates := defaultRates()
		rates.VATRatePercentage = 120
		_, err := uc.CreateEstimate(context.Background(), "claim-1", &rates)
		if !errors.Is(err, entities.ErrInvalidRates) {
			t.Fatalf("expected ErrInvalidRates, got %v", err)
		}
	})

	t.Run("repo get by claim id error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, defaultRates())

		repo.EXPECT().GetByClaimID(gomock.Any(), "claim-1").Return(entities.Estimate{}, errors.New("db"))

		_, err := uc.CreateEstimate(context.Background(), "claim-1", nil)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, defaultRates())

		repo.EXPECT().GetByClaimID(gomock.Any(), "claim-1").Return(entities.Estimate{ID: "existing"}, nil)

		_, err := uc.CreateEstimate(context.Background(), "claim-1", nil)
		if !errors.Is(err, ErrEstimateAlreadyExists) {
			t.Fatalf("expected ErrEstimateAlreadyExists, got %v", err)
		}
	})

	t.Run("create with default rates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, defaultRates())

		repo.EXPECT().GetByClaimID(gomock.Any(), "claim-1").Return(entities.Estimate{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID == "" || e.ClaimID != "claim-1" || e.Rates != defaultRates() {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				if e.CreatedAt.IsZero() || e.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				if !e.Totals.TotalAmount.IsZero() {
					t.Fatalf("expected zero totals, got %s", e.Totals.TotalAmount)
				}
				return e, nil
			},
		)

		res, err := uc.CreateEstimate(context.Background(), " claim-1 ", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ClaimID != "claim-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("create with explicit rates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, defaultRates())

		rates := defaultRates()
		rates.LaborRate = 400
		repo.EXPECT().GetByClaimID(gomock.Any(), "claim-1").Return(entities.Estimate{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) { return e, nil },
		)

		res, err := uc.CreateEstimate(context.Background(), "claim-1", &rates)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Rates.LaborRate != 400 {
			t.Fatalf("expected the explicit labor rate, got %v", res.Rates.LaborRate)
		}
	})
}

func TestEstimateUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, defaultRates())
		if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, defaultRates())

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{}, nil)

		if _, err := uc.GetByID(context.Background(), "est-1"); !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, defaultRates())

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1"}, nil)

		res, err := uc.GetByID(context.Background(), " est-1 ")
		if err != nil || res.ID != "est-1" {
			t.Fatalf("unexpected result: %+v, %v", res, err)
		}
	})
}

func TestEstimateUseCase_GetByClaimID(t *testing.T) {
	t.Run("invalid claim id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, defaultRates())
		if _, err := uc.GetByClaimID(context.Background(), ""); !errors.Is(err, ErrInvalidClaimID) {
			t.Fatalf("expected ErrInvalidClaimID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, defaultRates())

		repo.EXPECT().GetByClaimID(gomock.Any(), "claim-1").Return(entities.Estimate{}, nil)

		if _, err := uc.GetByClaimID(context.Background(), "claim-1"); !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})
}

func TestEstimateUseCase_ComputeTotals(t *testing.T) {
	lines := func() []entities.EstimateLine {
		part := entities.NewBlankLine("l-1", "est-1", 1)
		part.OperationCode = entities.OperationNew
		part.PartCost = decimal.NewFromInt(100)
		part.Quantity = 2
		return []entities.EstimateLine{part}
	}

	t.Run("persists changed totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		lineRepo := mock_interfaces.NewMockIEstimateLineRepository(ctrl)
		uc := NewEstimateUseCase(repo, lineRepo, defaultRates())

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", Rates: defaultRates()}, nil)
		lineRepo.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return(lines(), nil)
		repo.EXPECT().UpdateTotals(gomock.Any(), "est-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, totals entities.Totals) (entities.Estimate, error) {
				// 200 + 25% markup, plus 15% VAT
				if !totals.TotalAmount.Equal(decimal.RequireFromString("287.50")) {
					t.Fatalf("unexpected total: %s", totals.TotalAmount)
				}
				return entities.Estimate{ID: id, Totals: totals}, nil
			},
		)

		res, err := uc.ComputeTotals(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Totals.PartSubtotal.Equal(decimal.RequireFromString("250")) {
			t.Fatalf("unexpected part subtotal: %s", res.Totals.PartSubtotal)
		}
	})

	t.Run("unchanged totals are not written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		lineRepo := mock_interfaces.NewMockIEstimateLineRepository(ctrl)
		uc := NewEstimateUseCase(repo, lineRepo, defaultRates())

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", Rates: defaultRates()}, nil)
		lineRepo.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return(nil, nil)

		if _, err := uc.ComputeTotals(context.Background(), "est-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("line repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		lineRepo := mock_interfaces.NewMockIEstimateLineRepository(ctrl)
		uc := NewEstimateUseCase(repo, lineRepo, defaultRates())

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1"}, nil)
		lineRepo.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return(nil, errors.New("db"))

		if _, err := uc.ComputeTotals(context.Background(), "est-1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestEstimateUseCase_UpdateRates(t *testing.T) {
	t.Run("invalid rates", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, defaultRates())
		rates := defaultRates()
		rates.LaborRate = -1
		if _, err := uc.UpdateRates(context.Background(), "est-1", rates); !errors.Is(err, entities.ErrInvalidRates) {
			t.Fatalf("expected ErrInvalidRates, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, defaultRates())

		repo.EXPECT().UpdateRates(gomock.Any(), "est-1", defaultRates()).Return(entities.Estimate{}, nil)

		if _, err := uc.UpdateRates(context.Background(), "est-1", defaultRates()); !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("recomputes totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		lineRepo := mock_interfaces.NewMockIEstimateLineRepository(ctrl)
		uc := NewEstimateUseCase(repo, lineRepo, defaultRates())

		rates := defaultRates()
		rates.VATRatePercentage = 0
		labor := entities.NewBlankLine("l-1", "est-1", 1)
		labor.RepairHours = 1

		stored := entities.Estimate{ID: "est-1", Rates: rates}
		repo.EXPECT().UpdateRates(gomock.Any(), "est-1", rates).Return(stored, nil)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(stored, nil)
		lineRepo.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return([]entities.EstimateLine{labor}, nil)
		repo.EXPECT().UpdateTotals(gomock.Any(), "est-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, totals entities.Totals) (entities.Estimate, error) {
				return entities.Estimate{ID: id, Rates: rates, Totals: totals}, nil
			},
		)

		res, err := uc.UpdateRates(context.Background(), "est-1", rates)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Totals.TotalAmount.Equal(decimal.RequireFromString("350")) {
			t.Fatalf("unexpected total: %s", res.Totals.TotalAmount)
		}
	})
}

func TestEstimateUseCase_RecordTotals(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, defaultRates())

		repo.EXPECT().UpdateTotals(gomock.Any(), "est-1", gomock.Any()).Return(entities.Estimate{}, nil)

		if err := uc.RecordTotals(context.Background(), "est-1", entities.Totals{}); !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, defaultRates())

		repo.EXPECT().UpdateTotals(gomock.Any(), "est-1", gomock.Any()).Return(entities.Estimate{ID: "est-1"}, nil)

		if err := uc.RecordTotals(context.Background(), "est-1", entities.Totals{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
