package request

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"estimate_editor/internal/domain/entities"
	"estimate_editor/internal/domain/lineerr"

	"github.com/shopspring/decimal"
)

var ErrNoFields = errors.New("no fields to update")

// LineRequest creates a line. Omitted values take the defaults of a blank line.
type LineRequest struct {
	SequenceNumber int             `json:"sequence_number"`
	OperationCode  string          `json:"operation_code"`
	Description    string          `json:"description"`
	PartType       string          `json:"part_type"`
	PartNumber     string          `json:"part_number"`
	PartCost       decimal.Decimal `json:"part_cost"`
	Quantity       *float64        `json:"quantity"`
	StripFitHours  float64         `json:"strip_fit_hours"`
	RepairHours    float64         `json:"repair_hours"`
	PaintHours     float64         `json:"paint_hours"`
	SubletCost     decimal.Decimal `json:"sublet_cost"`
	IsIncluded     *bool           `json:"is_included"`
	LineNotes      string          `json:"line_notes"`
}

func (r LineRequest) ToEntity(estimateID string) entities.EstimateLine {
	l := entities.NewBlankLine("", estimateID, r.SequenceNumber)
	if code := strings.ToUpper(strings.TrimSpace(r.OperationCode)); code != "" {
		l.OperationCode = entities.OperationCode(code)
	}
	l.Description = r.Description
	l.PartType = entities.PartType(strings.ToUpper(strings.TrimSpace(r.PartType)))
	l.PartNumber = r.PartNumber
	l.PartCost = r.PartCost
	if r.Quantity != nil {
		l.Quantity = *r.Quantity
	}
	l.StripFitHours = r.StripFitHours
	l.RepairHours = r.RepairHours
	l.PaintHours = r.PaintHours
	l.SubletCost = r.SubletCost
	if r.IsIncluded != nil {
		l.IsIncluded = *r.IsIncluded
	}
	l.LineNotes = r.LineNotes
	return l
}

// FieldsRequest is a field diff: {"fields": {"quantity": 2, "description": "..."}}.
type FieldsRequest struct {
	Fields map[string]json.RawMessage `json:"fields" binding:"required"`
}

func (r FieldsRequest) ToFieldSet() (entities.FieldSet, error) {
	return parseFields(r.Fields)
}

type BulkItemRequest struct {
	LineID string                     `json:"line_id" binding:"required"`
	Fields map[string]json.RawMessage `json:"fields"`
}

type BulkUpdateRequest struct {
	Items []BulkItemRequest `json:"items" binding:"required,dive"`
}

// ToUpdates decodes every item. An undecodable value fails the whole request.
func (r BulkUpdateRequest) ToUpdates() ([]entities.LineUpdate, error) {
	out := make([]entities.LineUpdate, 0, len(r.Items))
	var errs []error
	for _, it := range r.Items {
		fields, err := parseFields(it.Fields)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, entities.LineUpdate{LineID: strings.TrimSpace(it.LineID), Fields: fields})
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

func parseFields(raw map[string]json.RawMessage) (entities.FieldSet, error) {
	if len(raw) == 0 {
		return nil, ErrNoFields
	}
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(entities.FieldSet, len(raw))
	var errs []error
	for _, k := range keys {
		f, err := entities.ParseField(k)
		if err != nil {
			errs = append(errs, lineerr.Validation(entities.Field(k), err.Error()))
			continue
		}
		v, err := entities.ParseValue(f, raw[k])
		if err != nil {
			errs = append(errs, lineerr.Validation(f, err.Error()))
			continue
		}
		out[f] = v
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}
