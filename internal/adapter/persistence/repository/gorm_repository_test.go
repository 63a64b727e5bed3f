package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"estimate_editor/internal/domain/entities"
	"estimate_editor/internal/domain/lineerr"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func TestEstimateGormRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewEstimateGormRepository(testDB(t))
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	e := entities.Estimate{
		ID:        "est-1",
		ClaimID:   "claim-1",
		Rates:     entities.RateConfig{LaborRate: 350, VATRatePercentage: 15},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := repo.Create(ctx, e); err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("get by id and claim", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "est-1")
		if err != nil || got.ClaimID != "claim-1" || got.Rates.LaborRate != 350 {
			t.Fatalf("unexpected estimate: %+v, %v", got, err)
		}
		got, err = repo.GetByClaimID(ctx, "claim-1")
		if err != nil || got.ID != "est-1" {
			t.Fatalf("unexpected estimate: %+v, %v", got, err)
		}
	})

	t.Run("missing reads as zero", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "nope")
		if err != nil || got.ID != "" {
			t.Fatalf("expected a zero estimate, got %+v, %v", got, err)
		}
	})

	t.Run("update rates and totals", func(t *testing.T) {
		rates := entities.RateConfig{LaborRate: 400, SpecialMarkupPercentage: 25}
		got, err := repo.UpdateRates(ctx, "est-1", rates)
		if err != nil || got.Rates != rates {
			t.Fatalf("unexpected rates: %+v, %v", got.Rates, err)
		}

		totals := entities.Totals{TotalAmount: decimal.RequireFromString("3507.50")}
		got, err = repo.UpdateTotals(ctx, "est-1", totals)
		if err != nil {
			t.Fatalf("update totals: %v", err)
		}
		if !got.Totals.TotalAmount.Equal(totals.TotalAmount) {
			t.Fatalf("expected total 3507.50, got %s", got.Totals.TotalAmount)
		}
	})

	t.Run("update missing", func(t *testing.T) {
		got, err := repo.UpdateRates(ctx, "nope", entities.RateConfig{})
		if err != nil || got.ID != "" {
			t.Fatalf("expected a zero estimate, got %+v, %v", got, err)
		}
	})

	t.Run("duplicate claim", func(t *testing.T) {
		dup := e
		dup.ID = "est-2"
		if _, err := repo.Create(ctx, dup); err == nil {
			t.Fatalf("expected the unique claim index to reject a second estimate")
		}
	})
}

func TestEstimateLineGormRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewEstimateLineGormRepository(testDB(t))

	a := entities.NewBlankLine("l-1", "est-1", 2)
	a.Subtotals.Labor = decimal.RequireFromString("700")
	a.UpdatedAt = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	b := entities.NewBlankLine("l-2", "est-1", 1)
	other := entities.NewBlankLine("l-3", "est-2", 1)
	for _, l := range []entities.EstimateLine{a, b, other} {
		if _, err := repo.Create(ctx, l); err != nil {
			t.Fatalf("create %s: %v", l.ID, err)
		}
	}

	t.Run("list is scoped and ordered", func(t *testing.T) {
		got, err := repo.ListByEstimateID(ctx, "est-1")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(got) != 2 || got[0].ID != "l-2" || got[1].ID != "l-1" {
			t.Fatalf("unexpected lines: %+v", got)
		}
		if !got[1].Subtotals.Labor.Equal(decimal.RequireFromString("700")) {
			t.Fatalf("expected the subtotal to round-trip, got %s", got[1].Subtotals.Labor)
		}
		if !got[1].UpdatedAt.Equal(a.UpdatedAt) {
			t.Fatalf("expected the stored timestamp, got %s", got[1].UpdatedAt)
		}
	})

	t.Run("update writes zero values", func(t *testing.T) {
		l := a
		l.IsIncluded = false
		l.Quantity = 0
		if _, err := repo.Update(ctx, l); err != nil {
			t.Fatalf("update: %v", err)
		}
		got, _ := repo.GetByID(ctx, "l-1")
		if got.IsIncluded || got.Quantity != 0 {
			t.Fatalf("expected zero values to be stored, got %+v", got)
		}
	})

	t.Run("update of another estimate's line", func(t *testing.T) {
		l := other
		l.EstimateID = "est-1"
		if _, err := repo.Update(ctx, l); !errors.Is(err, lineerr.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := repo.Delete(ctx, "est-1", "l-2"); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if err := repo.Delete(ctx, "est-1", "l-2"); !errors.Is(err, lineerr.ErrNotFound) {
			t.Fatalf("expected ErrNotFound on second delete, got %v", err)
		}
		got, _ := repo.GetByID(ctx, "l-2")
		if got.ID != "" {
			t.Fatalf("expected the line to be gone")
		}
	})
}
