package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"estimate_editor/internal/domain/entities"
	"estimate_editor/internal/domain/lineerr"
	"estimate_editor/internal/domain/pricing"
	"estimate_editor/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const DefaultMaxBulkItems = 50

var ErrBulkTooLarge = errors.New("too many items in bulk request")

// ILineUseCase is the line service as exposed over HTTP.

type ILineUseCase interface {
	interfaces.ILineService
}

// LineUseCase implements the estimate-line service on top of a line repository.
//
// Writes are serialized so that sequence numbers stay unique within an estimate.
type LineUseCase struct {
	mu        sync.Mutex
	repo      interfaces.IEstimateLineRepository
	estimates interfaces.IEstimateRepository
	maxBulk   int
	now       func() time.Time
}

var _ ILineUseCase = (*LineUseCase)(nil)

func NewLineUseCase(repo interfaces.IEstimateLineRepository, estimates interfaces.IEstimateRepository, maxBulk int) *LineUseCase {
	if maxBulk <= 0 {
		maxBulk = DefaultMaxBulkItems
	}
	return &LineUseCase{
		repo:      repo,
		estimates: estimates,
		maxBulk:   maxBulk,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *LineUseCase) rates(ctx context.Context, estimateID string) (entities.RateConfig, error) {
	e, err := u.estimates.GetByID(ctx, estimateID)
	if err != nil {
		return entities.RateConfig{}, err
	}
	if e.ID == "" {
		return entities.RateConfig{}, fmt.Errorf("%w: estimate %s", lineerr.ErrNotFound, estimateID)
	}
	return e.Rates, nil
}

// Create stores a new line. A zero or already used sequence number is replaced by the
// highest existing number plus one.
func (u *LineUseCase) Create(ctx context.Context, line entities.EstimateLine) (entities.EstimateLine, error) {
	line.EstimateID = strings.TrimSpace(line.EstimateID)
	if line.EstimateID == "" {
		return entities.EstimateLine{}, fmt.Errorf("%w: missing estimate id", lineerr.ErrNotFound)
	}
	if err := validateLine(line); err != nil {
		return entities.EstimateLine{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	rates, err := u.rates(ctx, line.EstimateID)
	if err != nil {
		return entities.EstimateLine{}, err
	}
	existing, err := u.repo.ListByEstimateID(ctx, line.EstimateID)
	if err != nil {
		return entities.EstimateLine{}, err
	}
	highest, taken := 0, false
	for _, l := range existing {
		if l.SequenceNumber > highest {
			highest = l.SequenceNumber
		}
		if l.SequenceNumber == line.SequenceNumber {
			taken = true
		}
	}
	if line.SequenceNumber <= 0 || taken {
		line.SequenceNumber = highest + 1
	}

	line.ID = uuid.NewString()
	line.Subtotals = pricing.LineSubtotals(line, rates)
	line.UpdatedAt = u.now()
	created, err := u.repo.Create(ctx, line)
	if err != nil {
		return entities.EstimateLine{}, err
	}
	log.Printf("[line][usecase] created estimate_id=%s line_id=%s seq=%d", created.EstimateID, created.ID, created.SequenceNumber)
	return created, nil
}

// Update applies a field diff to a line. Either every field is written or none is.
func (u *LineUseCase) Update(ctx context.Context, estimateID, id string, fields entities.FieldSet) (entities.EstimateLine, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.updateLocked(ctx, estimateID, id, fields)
}

func (u *LineUseCase) updateLocked(ctx context.Context, estimateID, id string, fields entities.FieldSet) (entities.EstimateLine, error) {
	estimateID, id = strings.TrimSpace(estimateID), strings.TrimSpace(id)
	if id == "" {
		return entities.EstimateLine{}, fmt.Errorf("%w: empty line id", lineerr.ErrNotFound)
	}

	cur, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.EstimateLine{}, err
	}
	if cur.ID == "" || cur.EstimateID != estimateID {
		return entities.EstimateLine{}, fmt.Errorf("%w: %s", lineerr.ErrNotFound, id)
	}

	var errs []error
	for _, f := range entities.Fields() {
		v, ok := fields[f]
		if !ok {
			continue
		}
		if err := cur.Set(f, v); err != nil {
			errs = append(errs, lineerr.Validation(f, err.Error()))
		}
	}
	if len(errs) > 0 {
		return entities.EstimateLine{}, errors.Join(errs...)
	}

	if _, ok := fields[entities.FieldSequenceNumber]; ok {
		siblings, err := u.repo.ListByEstimateID(ctx, estimateID)
		if err != nil {
			return entities.EstimateLine{}, err
		}
		for _, l := range siblings {
			if l.ID != cur.ID && l.SequenceNumber == cur.SequenceNumber {
				return entities.EstimateLine{}, lineerr.Validation(entities.FieldSequenceNumber,
					fmt.Sprintf("sequence number %d is already used", cur.SequenceNumber))
			}
		}
	}

	rates, err := u.rates(ctx, estimateID)
	if err != nil {
		return entities.EstimateLine{}, err
	}
	cur.Subtotals = pricing.LineSubtotals(cur, rates)
	cur.UpdatedAt = u.now()
	return u.repo.Update(ctx, cur)
}

func (u *LineUseCase) Delete(ctx context.Context, estimateID, id string) error {
	estimateID, id = strings.TrimSpace(estimateID), strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: empty line id", lineerr.ErrNotFound)
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if err := u.repo.Delete(ctx, estimateID, id); err != nil {
		return err
	}
	log.Printf("[line][usecase] deleted estimate_id=%s line_id=%s", estimateID, id)
	return nil
}

// List returns the lines of an estimate ordered by sequence number.
func (u *LineUseCase) List(ctx context.Context, estimateID string) ([]entities.EstimateLine, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return nil, ErrInvalidEstimateID
	}
	lines, err := u.repo.ListByEstimateID(ctx, estimateID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].SequenceNumber == lines[j].SequenceNumber {
			return lines[i].ID < lines[j].ID
		}
		return lines[i].SequenceNumber < lines[j].SequenceNumber
	})
	return lines, nil
}

// BulkUpdate applies each item independently and reports per-item outcomes.
func (u *LineUseCase) BulkUpdate(ctx context.Context, estimateID string, items []entities.LineUpdate) ([]entities.LineUpdateResult, error) {
	if len(items) > u.maxBulk {
		return nil, fmt.Errorf("%w: %d items, limit %d", ErrBulkTooLarge, len(items), u.maxBulk)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	out := make([]entities.LineUpdateResult, 0, len(items))
	failed := 0
	for _, it := range items {
		line, err := u.updateLocked(ctx, estimateID, it.LineID, it.Fields)
		if err != nil {
			failed++
		}
		out = append(out, entities.LineUpdateResult{LineID: it.LineID, Line: line, Err: err})
	}
	log.Printf("[line][usecase] bulk update estimate_id=%s items=%d failed=%d", estimateID, len(items), failed)
	return out, nil
}

func validateLine(l entities.EstimateLine) error {
	var errs []error
	for _, f := range entities.Fields() {
		if f == entities.FieldSequenceNumber && l.SequenceNumber == 0 {
			continue
		}
		if err := f.Check(l.Get(f)); err != nil {
			errs = append(errs, lineerr.Validation(f, err.Error()))
		}
	}
	return errors.Join(errs...)
}
