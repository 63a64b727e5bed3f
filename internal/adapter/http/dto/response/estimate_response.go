package response

import (
	"time"

	"estimate_editor/internal/domain/entities"
)

// TotalsResponse renders money as fixed two-decimal strings.
type TotalsResponse struct {
	PartSubtotal    string `json:"part_subtotal"`
	LaborSubtotal   string `json:"labor_subtotal"`
	PaintSubtotal   string `json:"paint_subtotal"`
	SubletSubtotal  string `json:"sublet_subtotal"`
	SpecialSubtotal string `json:"special_subtotal"`
	OtherSubtotal   string `json:"other_subtotal"`
	TotalBeforeVAT  string `json:"total_before_vat"`
	TotalVAT        string `json:"total_vat"`
	TotalAmount     string `json:"total_amount"`
}

func FromTotals(t entities.Totals) TotalsResponse {
	return TotalsResponse{
		PartSubtotal:    t.PartSubtotal.StringFixed(2),
		LaborSubtotal:   t.LaborSubtotal.StringFixed(2),
		PaintSubtotal:   t.PaintSubtotal.StringFixed(2),
		SubletSubtotal:  t.SubletSubtotal.StringFixed(2),
		SpecialSubtotal: t.SpecialSubtotal.StringFixed(2),
		OtherSubtotal:   t.OtherSubtotal.StringFixed(2),
		TotalBeforeVAT:  t.TotalBeforeVAT.StringFixed(2),
		TotalVAT:        t.TotalVAT.StringFixed(2),
		TotalAmount:     t.TotalAmount.StringFixed(2),
	}
}

type EstimateResponse struct {
	ID        string              `json:"id"`
	ClaimID   string              `json:"claim_id"`
	Rates     entities.RateConfig `json:"rates"`
	Totals    TotalsResponse      `json:"totals"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:        e.ID,
		ClaimID:   e.ClaimID,
		Rates:     e.Rates,
		Totals:    FromTotals(e.Totals),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
