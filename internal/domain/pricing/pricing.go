// Package pricing computes estimate subtotals and totals from lines and a rate configuration.
//
// Arithmetic is carried at full precision with shopspring/decimal; only the returned values
// are rounded (half-up, 2 decimals). Every function here is pure.
package pricing

import (
	"estimate_editor/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const displayPlaces = 2

var hundred = decimal.NewFromInt(100)

// amounts are the unrounded contributions of one line.
type amounts struct {
	part    decimal.Decimal
	labor   decimal.Decimal
	paint   decimal.Decimal
	sublet  decimal.Decimal
	special decimal.Decimal
}

func (a amounts) add(b amounts) amounts {
	return amounts{
		part:    a.part.Add(b.part),
		labor:   a.labor.Add(b.labor),
		paint:   a.paint.Add(b.paint),
		sublet:  a.sublet.Add(b.sublet),
		special: a.special.Add(b.special),
	}
}

func (a amounts) sum() decimal.Decimal {
	return a.part.Add(a.labor).Add(a.paint).Add(a.sublet).Add(a.special)
}

func zeroAmounts() amounts {
	return amounts{
		part:    decimal.Zero,
		labor:   decimal.Zero,
		paint:   decimal.Zero,
		sublet:  decimal.Zero,
		special: decimal.Zero,
	}
}

func withMarkup(amount decimal.Decimal, percentage float64) decimal.Decimal {
	return amount.Add(amount.Mul(decimal.NewFromFloat(percentage)).Div(hundred))
}

func lineAmounts(l entities.EstimateLine, rates entities.RateConfig) amounts {
	out := zeroAmounts()
	if !l.IsIncluded {
		return out
	}

	if l.OperationCode.CarriesPartCost() {
		parts := l.PartCost.Mul(decimal.NewFromFloat(l.Quantity))
		out.part = withMarkup(parts, rates.PartMarkupPercentage)
	}

	hours := decimal.NewFromFloat(l.StripFitHours).Add(decimal.NewFromFloat(l.RepairHours))
	out.labor = hours.Mul(decimal.NewFromFloat(rates.LaborRate))

	// paint_hours is a panel count for paint material.
	out.paint = decimal.NewFromFloat(l.PaintHours).Mul(decimal.NewFromFloat(rates.PaintMaterialRate))

	sublet := l.SubletCost
	if l.OperationCode == entities.OperationSpecial {
		out.special = withMarkup(sublet, rates.SpecialMarkupPercentage)
	} else {
		out.sublet = sublet
	}
	return out
}

// ComputeTotals prices a set of lines.
func ComputeTotals(lines []entities.EstimateLine, rates entities.RateConfig) entities.Totals {
	acc := zeroAmounts()
	for _, l := range lines {
		acc = acc.add(lineAmounts(l, rates))
	}

	other := decimal.Zero
	beforeVAT := acc.sum().Add(other)
	vat := beforeVAT.Mul(decimal.NewFromFloat(rates.VATRatePercentage)).Div(hundred)
	total := beforeVAT.Add(vat)

	return entities.Totals{
		PartSubtotal:    Round(acc.part),
		LaborSubtotal:   Round(acc.labor),
		PaintSubtotal:   Round(acc.paint),
		SubletSubtotal:  Round(acc.sublet),
		SpecialSubtotal: Round(acc.special),
		OtherSubtotal:   Round(other),
		TotalBeforeVAT:  Round(beforeVAT),
		TotalVAT:        Round(vat),
		TotalAmount:     Round(total),
	}
}

// LineSubtotals prices a single line, as stored alongside it by the line service.
func LineSubtotals(l entities.EstimateLine, rates entities.RateConfig) entities.LineSubtotals {
	a := lineAmounts(l, rates)
	return entities.LineSubtotals{
		Part:    Round(a.part),
		Labor:   Round(a.labor),
		Paint:   Round(a.paint),
		Sublet:  Round(a.sublet),
		Special: Round(a.special),
		Total:   Round(a.sum()),
	}
}

// Round rounds half-up to the display precision.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(displayPlaces)
}
