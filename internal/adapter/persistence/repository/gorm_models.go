package repository

import (
	"time"

	"estimate_editor/internal/domain/entities"

	"gorm.io/gorm"
)

// EstimateRecord is the sqlite row of an estimate.
type EstimateRecord struct {
	ID                      string `gorm:"primaryKey;size:64"`
	ClaimID                 string `gorm:"size:128;uniqueIndex"`
	LaborRate               float64
	PaintMaterialRate       float64
	VATRatePercentage       float64
	PartMarkupPercentage    float64
	SpecialMarkupPercentage float64
	PartSubtotal            string `gorm:"size:32"`
	LaborSubtotal           string `gorm:"size:32"`
	PaintSubtotal           string `gorm:"size:32"`
	SubletSubtotal          string `gorm:"size:32"`
	SpecialSubtotal         string `gorm:"size:32"`
	OtherSubtotal           string `gorm:"size:32"`
	TotalBeforeVAT          string `gorm:"size:32"`
	TotalVAT                string `gorm:"size:32"`
	TotalAmount             string `gorm:"size:32"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

func (EstimateRecord) TableName() string { return "estimates" }

// LineRecord is the sqlite row of an estimate line.
type LineRecord struct {
	ID              string `gorm:"primaryKey;size:64"`
	EstimateID      string `gorm:"size:64;index"`
	SequenceNumber  int
	OperationCode   string `gorm:"size:16"`
	Description     string `gorm:"type:text"`
	PartType        string `gorm:"size:16"`
	PartNumber      string `gorm:"size:64"`
	PartCost        string `gorm:"size:32"`
	Quantity        float64
	StripFitHours   float64
	RepairHours     float64
	PaintHours      float64
	SubletCost      string `gorm:"size:32"`
	IsIncluded      bool
	LineNotes       string    `gorm:"type:text"`
	PartSubtotal    string    `gorm:"size:32"`
	LaborSubtotal   string    `gorm:"size:32"`
	PaintSubtotal   string    `gorm:"size:32"`
	SubletSubtotal  string    `gorm:"size:32"`
	SpecialSubtotal string    `gorm:"size:32"`
	LineTotal       string    `gorm:"size:32"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime:false"`
}

func (LineRecord) TableName() string { return "estimate_lines" }

// AutoMigrate creates the sqlite tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&EstimateRecord{}, &LineRecord{})
}

func toEstimateRecord(e entities.Estimate) EstimateRecord {
	return EstimateRecord{
		ID:                      e.ID,
		ClaimID:                 e.ClaimID,
		LaborRate:               e.Rates.LaborRate,
		PaintMaterialRate:       e.Rates.PaintMaterialRate,
		VATRatePercentage:       e.Rates.VATRatePercentage,
		PartMarkupPercentage:    e.Rates.PartMarkupPercentage,
		SpecialMarkupPercentage: e.Rates.SpecialMarkupPercentage,
		PartSubtotal:            e.Totals.PartSubtotal.String(),
		LaborSubtotal:           e.Totals.LaborSubtotal.String(),
		PaintSubtotal:           e.Totals.PaintSubtotal.String(),
		SubletSubtotal:          e.Totals.SubletSubtotal.String(),
		SpecialSubtotal:         e.Totals.SpecialSubtotal.String(),
		OtherSubtotal:           e.Totals.OtherSubtotal.String(),
		TotalBeforeVAT:          e.Totals.TotalBeforeVAT.String(),
		TotalVAT:                e.Totals.TotalVAT.String(),
		TotalAmount:             e.Totals.TotalAmount.String(),
		CreatedAt:               e.CreatedAt.UTC(),
		UpdatedAt:               e.UpdatedAt.UTC(),
	}
}

func (r EstimateRecord) toEntity() entities.Estimate {
	return entities.Estimate{
		ID:      r.ID,
		ClaimID: r.ClaimID,
		Rates: entities.RateConfig{
			LaborRate:               r.LaborRate,
			PaintMaterialRate:       r.PaintMaterialRate,
			VATRatePercentage:       r.VATRatePercentage,
			PartMarkupPercentage:    r.PartMarkupPercentage,
			SpecialMarkupPercentage: r.SpecialMarkupPercentage,
		},
		Totals: entities.Totals{
			PartSubtotal:    parseAmount(r.PartSubtotal),
			LaborSubtotal:   parseAmount(r.LaborSubtotal),
			PaintSubtotal:   parseAmount(r.PaintSubtotal),
			SubletSubtotal:  parseAmount(r.SubletSubtotal),
			SpecialSubtotal: parseAmount(r.SpecialSubtotal),
			OtherSubtotal:   parseAmount(r.OtherSubtotal),
			TotalBeforeVAT:  parseAmount(r.TotalBeforeVAT),
			TotalVAT:        parseAmount(r.TotalVAT),
			TotalAmount:     parseAmount(r.TotalAmount),
		},
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
}

func toLineRecord(l entities.EstimateLine) LineRecord {
	return LineRecord{
		ID:              l.ID,
		EstimateID:      l.EstimateID,
		SequenceNumber:  l.SequenceNumber,
		OperationCode:   string(l.OperationCode),
		Description:     l.Description,
		PartType:        string(l.PartType),
		PartNumber:      l.PartNumber,
		PartCost:        l.PartCost.String(),
		Quantity:        l.Quantity,
		StripFitHours:   l.StripFitHours,
		RepairHours:     l.RepairHours,
		PaintHours:      l.PaintHours,
		SubletCost:      l.SubletCost.String(),
		IsIncluded:      l.IsIncluded,
		LineNotes:       l.LineNotes,
		PartSubtotal:    l.Subtotals.Part.String(),
		LaborSubtotal:   l.Subtotals.Labor.String(),
		PaintSubtotal:   l.Subtotals.Paint.String(),
		SubletSubtotal:  l.Subtotals.Sublet.String(),
		SpecialSubtotal: l.Subtotals.Special.String(),
		LineTotal:       l.Subtotals.Total.String(),
		UpdatedAt:       l.UpdatedAt.UTC(),
	}
}

func (r LineRecord) toEntity() entities.EstimateLine {
	return entities.EstimateLine{
		ID:             r.ID,
		EstimateID:     r.EstimateID,
		SequenceNumber: r.SequenceNumber,
		OperationCode:  entities.OperationCode(r.OperationCode),
		Description:    r.Description,
		PartType:       entities.PartType(r.PartType),
		PartNumber:     r.PartNumber,
		PartCost:       parseAmount(r.PartCost),
		Quantity:       r.Quantity,
		StripFitHours:  r.StripFitHours,
		RepairHours:    r.RepairHours,
		PaintHours:     r.PaintHours,
		SubletCost:     parseAmount(r.SubletCost),
		IsIncluded:     r.IsIncluded,
		LineNotes:      r.LineNotes,
		Subtotals: entities.LineSubtotals{
			Part:    parseAmount(r.PartSubtotal),
			Labor:   parseAmount(r.LaborSubtotal),
			Paint:   parseAmount(r.PaintSubtotal),
			Sublet:  parseAmount(r.SubletSubtotal),
			Special: parseAmount(r.SpecialSubtotal),
			Total:   parseAmount(r.LineTotal),
		},
		UpdatedAt: r.UpdatedAt.UTC(),
	}
}
