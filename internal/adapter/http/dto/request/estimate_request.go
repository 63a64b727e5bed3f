package request

import (
	"strings"

	"estimate_editor/internal/domain/entities"
)

type RatesRequest struct {
	LaborRate            float64 `json:"labor_rate"`
	PaintMaterialRate    float64 `json:"paint_material_rate"`
	VATRatePercentage    float64 `json:"vat_rate_percentage"`
	PartMarkupPercentage float64 `json:"part_markup_percentage"`
	// Omitted means entities.DefaultSpecialMarkupPercentage.
	SpecialMarkupPercentage *float64 `json:"special_markup_percentage"`
}

func (r RatesRequest) ToEntity() entities.RateConfig {
	special := float64(entities.DefaultSpecialMarkupPercentage)
	if r.SpecialMarkupPercentage != nil {
		special = *r.SpecialMarkupPercentage
	}
	return entities.RateConfig{
		LaborRate:               r.LaborRate,
		PaintMaterialRate:       r.PaintMaterialRate,
		VATRatePercentage:       r.VATRatePercentage,
		PartMarkupPercentage:    r.PartMarkupPercentage,
		SpecialMarkupPercentage: special,
	}
}

// EstimateRequest opens the estimate of a claim. Rates fall back to the service defaults.
type EstimateRequest struct {
	ClaimID string        `json:"claim_id" binding:"required"`
	Rates   *RatesRequest `json:"rates"`
}

func (r EstimateRequest) ResolveClaimID() string {
	return strings.TrimSpace(r.ClaimID)
}

func (r EstimateRequest) ResolveRates() *entities.RateConfig {
	if r.Rates == nil {
		return nil
	}
	cfg := r.Rates.ToEntity()
	return &cfg
}
