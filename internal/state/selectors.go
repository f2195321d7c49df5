package state

import (
	"github.com/forgeline/forgetop/internal/forgeline"
	"github.com/forgeline/forgetop/internal/resource"
)

// Selectors are the memoized derived projections over the store. Each is
// pure over container snapshots and recomputes only when its container's
// version changes, so an unchanged store yields referentially stable
// results across repeated render passes.
type Selectors struct {
	costOverview *resource.Memo1[resource.PagedList[forgeline.PricingRecord], CostOverview]
	bottlenecks  *resource.Memo1[ReadinessView, []forgeline.BottleneckPart]
	shortLines   *resource.Memo1[forgeline.BomDetail, []forgeline.BomLine]
	outlook      *resource.Memo2[forgeline.BomDetail, ReadinessView, BuildOutlook]
}

// BuildOutlook combines a BOM's component detail with its readiness verdict
// into one projection for the detail screen.
type BuildOutlook struct {
	ShortLines      int
	BottleneckCount int
	BuildableUnits  int
	Ready           bool
}

// NewSelectors builds the selector set.
func NewSelectors() *Selectors {
	return &Selectors{
		costOverview: resource.NewMemo1(func(list resource.PagedList[forgeline.PricingRecord]) CostOverview {
			return BuildCostOverview(list.Items)
		}),
		bottlenecks: resource.NewMemo1(func(view ReadinessView) []forgeline.BottleneckPart {
			return view.BottleneckParts
		}),
		shortLines: resource.NewMemo1(func(detail forgeline.BomDetail) []forgeline.BomLine {
			var short []forgeline.BomLine
			for _, line := range detail.Lines {
				if line.Shortage.IsPositive() {
					short = append(short, line)
				}
			}
			return short
		}),
		outlook: resource.NewMemo2(func(detail forgeline.BomDetail, view ReadinessView) BuildOutlook {
			outlook := BuildOutlook{
				BottleneckCount: view.BottleneckCount,
				BuildableUnits:  view.BuildableUnits,
				Ready:           view.IsReadyForProduction,
			}
			for _, line := range detail.Lines {
				if line.Shortage.IsPositive() {
					outlook.ShortLines++
				}
			}
			return outlook
		}),
	}
}

// CostOverview projects the pricing page into its cost summary.
func (s *Selectors) CostOverview(snap resource.State[resource.PagedList[forgeline.PricingRecord]]) CostOverview {
	return s.costOverview.Get(snap.Version, snap.Data)
}

// BottleneckParts projects the readiness view's constraining parts.
func (s *Selectors) BottleneckParts(snap resource.State[ReadinessView]) []forgeline.BottleneckPart {
	return s.bottlenecks.Get(snap.Version, snap.Data)
}

// ShortLines projects the BOM lines currently short of stock.
func (s *Selectors) ShortLines(snap resource.State[forgeline.BomDetail]) []forgeline.BomLine {
	return s.shortLines.Get(snap.Version, snap.Data)
}

// Outlook combines the detail and readiness snapshots for one BOM.
func (s *Selectors) Outlook(detail resource.State[forgeline.BomDetail], readiness resource.State[ReadinessView]) BuildOutlook {
	return s.outlook.Get(detail.Version, detail.Data, readiness.Version, readiness.Data)
}

// IsEmpty reports whether a fulfilled list container holds no records.
func IsEmpty[T any](snap resource.State[resource.PagedList[T]]) bool {
	return snap.HasData && len(snap.Data.Items) == 0
}

// TotalRecords returns the server-reported record count for a list.
func TotalRecords[T any](snap resource.State[resource.PagedList[T]]) int {
	return snap.Data.Page.TotalRecords
}

// HasMorePages reports whether pages remain after the one on screen.
func HasMorePages[T any](snap resource.State[resource.PagedList[T]]) bool {
	return snap.Data.Page.HasMore()
}
