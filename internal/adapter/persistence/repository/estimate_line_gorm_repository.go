package repository

import (
	"context"
	"errors"
	"fmt"

	"estimate_editor/internal/domain/entities"
	"estimate_editor/internal/domain/lineerr"
	"estimate_editor/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// EstimateLineGormRepository persists estimate lines in the embedded sqlite store.
type EstimateLineGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IEstimateLineRepository = (*EstimateLineGormRepository)(nil)

func NewEstimateLineGormRepository(db *gorm.DB) *EstimateLineGormRepository {
	return &EstimateLineGormRepository{db: db}
}

func (r *EstimateLineGormRepository) Create(ctx context.Context, l entities.EstimateLine) (entities.EstimateLine, error) {
	rec := toLineRecord(l)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return entities.EstimateLine{}, err
	}
	return l, nil
}

func (r *EstimateLineGormRepository) GetByID(ctx context.Context, id string) (entities.EstimateLine, error) {
	var rec LineRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.EstimateLine{}, nil
	}
	if err != nil {
		return entities.EstimateLine{}, err
	}
	return rec.toEntity(), nil
}

func (r *EstimateLineGormRepository) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.EstimateLine, error) {
	var recs []LineRecord
	err := r.db.WithContext(ctx).
		Where("estimate_id = ?", estimateID).
		Order("sequence_number ASC, id ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.EstimateLine, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toEntity())
	}
	return out, nil
}

func (r *EstimateLineGormRepository) Update(ctx context.Context, l entities.EstimateLine) (entities.EstimateLine, error) {
	rec := toLineRecord(l)
	res := r.db.WithContext(ctx).
		Model(&LineRecord{}).
		Where("id = ? AND estimate_id = ?", l.ID, l.EstimateID).
		Select("*").
		Updates(&rec)
	if res.Error != nil {
		return entities.EstimateLine{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.EstimateLine{}, fmt.Errorf("%w: %s", lineerr.ErrNotFound, l.ID)
	}
	return l, nil
}

func (r *EstimateLineGormRepository) Delete(ctx context.Context, estimateID, id string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND estimate_id = ?", id, estimateID).Delete(&LineRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", lineerr.ErrNotFound, id)
	}
	return nil
}
