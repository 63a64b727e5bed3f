package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OperationCode classifies the work a line describes.
type OperationCode string

const (
	OperationNew     OperationCode = "NEW"
	OperationRepair  OperationCode = "REPAIR"
	OperationAlign   OperationCode = "ALIGN"
	OperationPaint   OperationCode = "PAINT"
	OperationBlend   OperationCode = "BLEND"
	OperationOther   OperationCode = "OTHER"
	OperationSpecial OperationCode = "SPECIAL"
)

var operationCodes = []OperationCode{
	OperationNew, OperationRepair, OperationAlign, OperationPaint,
	OperationBlend, OperationOther, OperationSpecial,
}

func (c OperationCode) Valid() bool {
	for _, v := range operationCodes {
		if v == c {
			return true
		}
	}
	return false
}

// CarriesPartCost reports whether part_cost is meaningful for the code.
func (c OperationCode) CarriesPartCost() bool {
	return c == OperationNew || c == OperationOther || c == OperationSpecial
}

// PartType is the sourcing of a part. The zero value means "not set".
type PartType string

const (
	PartTypeNone          PartType = ""
	PartTypeOEM           PartType = "OEM"
	PartTypeAlternate     PartType = "ALTERNATE"
	PartTypeUsed          PartType = "USED"
	PartTypeReconditioned PartType = "RECONDITIONED"
)

func (p PartType) Valid() bool {
	switch p {
	case PartTypeNone, PartTypeOEM, PartTypeAlternate, PartTypeUsed, PartTypeReconditioned:
		return true
	}
	return false
}

// LineSubtotals are computed by the line service whenever a line is written.
type LineSubtotals struct {
	Part    decimal.Decimal `json:"part"`
	Labor   decimal.Decimal `json:"labor"`
	Paint   decimal.Decimal `json:"paint"`
	Sublet  decimal.Decimal `json:"sublet"`
	Special decimal.Decimal `json:"special"`
	Total   decimal.Decimal `json:"total"`
}

// EstimateLine is a single line item of an estimate.
//
// Lines created by an editing session carry a temporary id (see IsTemporaryID) until
// the line service assigns the permanent one.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (estimate_id-index): estimate_id
type EstimateLine struct {
	ID             string          `json:"id"`
	EstimateID     string          `json:"estimate_id"`
	SequenceNumber int             `json:"sequence_number"`
	OperationCode  OperationCode   `json:"operation_code"`
	Description    string          `json:"description"`
	PartType       PartType        `json:"part_type,omitempty"`
	PartNumber     string          `json:"part_number"`
	PartCost       decimal.Decimal `json:"part_cost"`
	Quantity       float64         `json:"quantity"`
	StripFitHours  float64         `json:"strip_fit_hours"`
	RepairHours    float64         `json:"repair_hours"`
	PaintHours     float64         `json:"paint_hours"`
	SubletCost     decimal.Decimal `json:"sublet_cost"`
	IsIncluded     bool            `json:"is_included"`
	LineNotes      string          `json:"line_notes"`

	Subtotals LineSubtotals `json:"subtotals"`
	UpdatedAt time.Time     `json:"updated_at"`
}

const temporaryIDPrefix = "tmp-"

// TemporaryID builds a client-side placeholder id from a unique suffix.
func TemporaryID(suffix string) string {
	return temporaryIDPrefix + suffix
}

func IsTemporaryID(id string) bool {
	return strings.HasPrefix(id, temporaryIDPrefix)
}

// NewBlankLine returns the defaults used for optimistically inserted lines.
func NewBlankLine(id, estimateID string, seq int) EstimateLine {
	return EstimateLine{
		ID:             id,
		EstimateID:     estimateID,
		SequenceNumber: seq,
		OperationCode:  OperationRepair,
		Quantity:       1,
		IsIncluded:     true,
	}
}

// LineUpdate is one row of a bulk write.
type LineUpdate struct {
	LineID string   `json:"line_id"`
	Fields FieldSet `json:"fields"`
}

// LineUpdateResult is the per-item outcome of a bulk write. Err is nil on success,
// in which case Line holds the stored row.
type LineUpdateResult struct {
	LineID string
	Line   EstimateLine
	Err    error
}
