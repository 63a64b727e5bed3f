package response

import (
	"time"

	"estimate_editor/internal/domain/entities"
	"estimate_editor/pkg"

	"github.com/shopspring/decimal"
)

type LineSubtotalsResponse struct {
	Part    string `json:"part"`
	Labor   string `json:"labor"`
	Paint   string `json:"paint"`
	Sublet  string `json:"sublet"`
	Special string `json:"special"`
	Total   string `json:"total"`
}

type LineResponse struct {
	ID             string                `json:"id"`
	EstimateID     string                `json:"estimate_id"`
	SequenceNumber int                   `json:"sequence_number"`
	OperationCode  string                `json:"operation_code"`
	Description    string                `json:"description"`
	PartType       string                `json:"part_type"`
	PartNumber     string                `json:"part_number"`
	PartCost       decimal.Decimal       `json:"part_cost"`
	Quantity       float64               `json:"quantity"`
	StripFitHours  float64               `json:"strip_fit_hours"`
	RepairHours    float64               `json:"repair_hours"`
	PaintHours     float64               `json:"paint_hours"`
	SubletCost     decimal.Decimal       `json:"sublet_cost"`
	IsIncluded     bool                  `json:"is_included"`
	LineNotes      string                `json:"line_notes"`
	Subtotals      LineSubtotalsResponse `json:"subtotals"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

func FromLine(l entities.EstimateLine) LineResponse {
	return LineResponse{
		ID:             l.ID,
		EstimateID:     l.EstimateID,
		SequenceNumber: l.SequenceNumber,
		OperationCode:  string(l.OperationCode),
		Description:    l.Description,
		PartType:       string(l.PartType),
		PartNumber:     l.PartNumber,
		PartCost:       l.PartCost,
		Quantity:       l.Quantity,
		StripFitHours:  l.StripFitHours,
		RepairHours:    l.RepairHours,
		PaintHours:     l.PaintHours,
		SubletCost:     l.SubletCost,
		IsIncluded:     l.IsIncluded,
		LineNotes:      l.LineNotes,
		Subtotals: LineSubtotalsResponse{
			Part:    l.Subtotals.Part.StringFixed(2),
			Labor:   l.Subtotals.Labor.StringFixed(2),
			Paint:   l.Subtotals.Paint.StringFixed(2),
			Sublet:  l.Subtotals.Sublet.StringFixed(2),
			Special: l.Subtotals.Special.StringFixed(2),
			Total:   l.Subtotals.Total.StringFixed(2),
		},
		UpdatedAt: l.UpdatedAt,
	}
}

func FromLines(lines []entities.EstimateLine) []LineResponse {
	out := make([]LineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, FromLine(l))
	}
	return out
}

// ToEntity decodes a line received from the line service. Unparseable amounts read as zero.
func (r LineResponse) ToEntity() entities.EstimateLine {
	return entities.EstimateLine{
		ID:             r.ID,
		EstimateID:     r.EstimateID,
		SequenceNumber: r.SequenceNumber,
		OperationCode:  entities.OperationCode(r.OperationCode),
		Description:    r.Description,
		PartType:       entities.PartType(r.PartType),
		PartNumber:     r.PartNumber,
		PartCost:       r.PartCost,
		Quantity:       r.Quantity,
		StripFitHours:  r.StripFitHours,
		RepairHours:    r.RepairHours,
		PaintHours:     r.PaintHours,
		SubletCost:     r.SubletCost,
		IsIncluded:     r.IsIncluded,
		LineNotes:      r.LineNotes,
		Subtotals: entities.LineSubtotals{
			Part:    amount(r.Subtotals.Part),
			Labor:   amount(r.Subtotals.Labor),
			Paint:   amount(r.Subtotals.Paint),
			Sublet:  amount(r.Subtotals.Sublet),
			Special: amount(r.Subtotals.Special),
			Total:   amount(r.Subtotals.Total),
		},
		UpdatedAt: r.UpdatedAt,
	}
}

func amount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

type LinesResponse struct {
	Lines []LineResponse `json:"lines"`
}

// BulkItemResponse carries either the stored line or the item error.
type BulkItemResponse struct {
	LineID string         `json:"line_id"`
	Line   *LineResponse  `json:"line,omitempty"`
	Error  *pkg.HTTPError `json:"error,omitempty"`
}

type BulkUpdateResponse struct {
	Results []BulkItemResponse `json:"results"`
}

func FromBulkResults(results []entities.LineUpdateResult, mapErr func(error) *pkg.AppError) BulkUpdateResponse {
	out := BulkUpdateResponse{Results: make([]BulkItemResponse, 0, len(results))}
	for _, r := range results {
		item := BulkItemResponse{LineID: r.LineID}
		if r.Err != nil {
			httpErr := mapErr(r.Err).ToHTTPError()
			item.Error = &httpErr
		} else {
			line := FromLine(r.Line)
			item.Line = &line
		}
		out.Results = append(out.Results, item)
	}
	return out
}
