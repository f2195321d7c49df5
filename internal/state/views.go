package state

import (
	"github.com/shopspring/decimal"

	"github.com/forgeline/forgetop/internal/forgeline"
)

// ReadinessView is the readiness payload plus its derived convenience
// fields, computed once when the fetch fulfills and cached with the data.
// It is a denormalized projection, never mutated independently.
type ReadinessView struct {
	BomID                string
	IsReadyForProduction bool
	BuildableUnits       int
	BottleneckParts      []forgeline.BottleneckPart
	BottleneckCount      int
	Warehouse            string
	CheckedAt            string
}

// NewReadinessView derives the view from a readiness response.
func NewReadinessView(r forgeline.Readiness) ReadinessView {
	return ReadinessView{
		BomID:                r.BomID,
		IsReadyForProduction: r.Ready,
		BuildableUnits:       r.BuildableUnits,
		BottleneckParts:      r.Metadata.BottleneckParts,
		BottleneckCount:      len(r.Metadata.BottleneckParts),
		Warehouse:            r.Metadata.Warehouse,
		CheckedAt:            r.Metadata.CheckedAt,
	}
}

// CostOverview summarizes the visible pricing page: how many records are
// costed over standard and the variance total.
type CostOverview struct {
	Records       int
	OverStandard  int
	TotalVariance decimal.Decimal
}

// BuildCostOverview computes the overview for one page of pricing records.
func BuildCostOverview(records []forgeline.PricingRecord) CostOverview {
	overview := CostOverview{Records: len(records)}
	for _, rec := range records {
		overview.TotalVariance = overview.TotalVariance.Add(rec.CostVariance)
		if rec.OverStandard() {
			overview.OverStandard++
		}
	}
	return overview
}
