package entities

import (
	"errors"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// RateConfig is the markup/VAT rule set used to price an estimate.
//
// Percentages are expressed as 0-100 (15 means 15%).
type RateConfig struct {
	LaborRate               float64 `json:"labor_rate"`
	PaintMaterialRate       float64 `json:"paint_material_rate"`
	VATRatePercentage       float64 `json:"vat_rate_percentage"`
	PartMarkupPercentage    float64 `json:"part_markup_percentage"`
	SpecialMarkupPercentage float64 `json:"special_markup_percentage"`
}

// DefaultSpecialMarkupPercentage applies when an estimate is created without an explicit
// special-services markup.
const DefaultSpecialMarkupPercentage = 25

var ErrInvalidRates = errors.New("invalid rate configuration")

// Validate rejects negative or non-finite rates and a VAT above 100%.
func (r RateConfig) Validate() error {
	for _, v := range []float64{r.LaborRate, r.PaintMaterialRate, r.VATRatePercentage, r.PartMarkupPercentage, r.SpecialMarkupPercentage} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return ErrInvalidRates
		}
	}
	if r.VATRatePercentage > 100 {
		return ErrInvalidRates
	}
	return nil
}

// Totals are the aggregate subtotals of an estimate, rounded half-up to 2 decimals.
type Totals struct {
	PartSubtotal    decimal.Decimal `json:"part_subtotal"`
	LaborSubtotal   decimal.Decimal `json:"labor_subtotal"`
	PaintSubtotal   decimal.Decimal `json:"paint_subtotal"`
	SubletSubtotal  decimal.Decimal `json:"sublet_subtotal"`
	SpecialSubtotal decimal.Decimal `json:"special_subtotal"`
	OtherSubtotal   decimal.Decimal `json:"other_subtotal"`
	TotalBeforeVAT  decimal.Decimal `json:"total_before_vat"`
	TotalVAT        decimal.Decimal `json:"total_vat"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
}

// Equal reports whether every subtotal matches.
func (t Totals) Equal(o Totals) bool {
	return t.PartSubtotal.Equal(o.PartSubtotal) &&
		t.LaborSubtotal.Equal(o.LaborSubtotal) &&
		t.PaintSubtotal.Equal(o.PaintSubtotal) &&
		t.SubletSubtotal.Equal(o.SubletSubtotal) &&
		t.SpecialSubtotal.Equal(o.SpecialSubtotal) &&
		t.OtherSubtotal.Equal(o.OtherSubtotal) &&
		t.TotalBeforeVAT.Equal(o.TotalBeforeVAT) &&
		t.TotalVAT.Equal(o.TotalVAT) &&
		t.TotalAmount.Equal(o.TotalAmount)
}

// Estimate is the itemized cost estimate of a vehicle-damage claim.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (claim_id-index): claim_id
//
// Totals hold the last values computed from the estimate lines; the lines themselves
// live in their own table.
type Estimate struct {
	ID        string     `json:"id"`
	ClaimID   string     `json:"claim_id"`
	Rates     RateConfig `json:"rates"`
	Totals    Totals     `json:"totals"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
