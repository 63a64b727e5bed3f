package repository

import (
	"context"
	"errors"
	"time"

	"estimate_editor/internal/domain/entities"
	"estimate_editor/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// EstimateGormRepository persists estimates in the embedded sqlite store.
type EstimateGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IEstimateRepository = (*EstimateGormRepository)(nil)

func NewEstimateGormRepository(db *gorm.DB) *EstimateGormRepository {
	return &EstimateGormRepository{db: db}
}

func (r *EstimateGormRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	rec := toEstimateRecord(e)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateGormRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *EstimateGormRepository) GetByClaimID(ctx context.Context, claimID string) (entities.Estimate, error) {
	return r.first(ctx, "claim_id = ?", claimID)
}

func (r *EstimateGormRepository) first(ctx context.Context, query string, arg string) (entities.Estimate, error) {
	var rec EstimateRecord
	err := r.db.WithContext(ctx).Where(query, arg).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Estimate{}, nil
	}
	if err != nil {
		return entities.Estimate{}, err
	}
	return rec.toEntity(), nil
}

func (r *EstimateGormRepository) UpdateRates(ctx context.Context, id string, rates entities.RateConfig) (entities.Estimate, error) {
	return r.update(ctx, id, map[string]any{
		"labor_rate":                rates.LaborRate,
		"paint_material_rate":       rates.PaintMaterialRate,
		"vat_rate_percentage":       rates.VATRatePercentage,
		"part_markup_percentage":    rates.PartMarkupPercentage,
		"special_markup_percentage": rates.SpecialMarkupPercentage,
	})
}

func (r *EstimateGormRepository) UpdateTotals(ctx context.Context, id string, totals entities.Totals) (entities.Estimate, error) {
	values := map[string]any{}
	for _, a := range totalsAttributes(totals) {
		values[a.name] = a.value
	}
	return r.update(ctx, id, values)
}

func (r *EstimateGormRepository) update(ctx context.Context, id string, values map[string]any) (entities.Estimate, error) {
	values["updated_at"] = time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&EstimateRecord{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return entities.Estimate{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Estimate{}, nil
	}
	return r.GetByID(ctx, id)
}
