package state

import (
	"github.com/forgeline/forgetop/internal/forgeline"
	"github.com/forgeline/forgetop/internal/resource"
)

// Store holds one state container per Forgeline resource. Each container is
// written only by its own fetch operation (see Dispatcher) and read by the
// UI through snapshots; the containers serialize their own access.
type Store struct {
	Status           *resource.Container[forgeline.SystemStatus]
	Boms             *resource.Paginated[forgeline.BomListItem]
	BomDetail        *resource.Container[forgeline.BomDetail]
	Readiness        *resource.Container[ReadinessView]
	Allocations      *resource.Paginated[forgeline.Allocation]
	Orders           *resource.Paginated[forgeline.Order]
	Pricing          *resource.Paginated[forgeline.PricingRecord]
	Products         *resource.Paginated[forgeline.Product]
	Compliance       *resource.Paginated[forgeline.ComplianceRecord]
	ComplianceDetail *resource.Container[forgeline.ComplianceRecord]
}

// NewStore builds an idle store; every container starts at its initial
// value and stays there until its first dispatch.
func NewStore() *Store {
	return &Store{
		Status: resource.NewContainer[forgeline.SystemStatus](),
		Boms:   resource.NewPaginated[forgeline.BomListItem](),
		BomDetail: resource.NewContainerWithClone(func(d forgeline.BomDetail) forgeline.BomDetail {
			d.Lines = append([]forgeline.BomLine(nil), d.Lines...)
			return d
		}),
		Readiness: resource.NewContainerWithClone(func(v ReadinessView) ReadinessView {
			v.BottleneckParts = append([]forgeline.BottleneckPart(nil), v.BottleneckParts...)
			return v
		}),
		Allocations:      resource.NewPaginated[forgeline.Allocation](),
		Orders:           resource.NewPaginated[forgeline.Order](),
		Pricing:          resource.NewPaginated[forgeline.PricingRecord](),
		Products:         resource.NewPaginated[forgeline.Product](),
		Compliance:       resource.NewPaginated[forgeline.ComplianceRecord](),
		ComplianceDetail: resource.NewContainer[forgeline.ComplianceRecord](),
	}
}

// ResetDetail restores the per-record containers to their initial value,
// typically on leaving a detail view so the next visit starts clean.
func (s *Store) ResetDetail() {
	s.BomDetail.Reset()
	s.Readiness.Reset()
	s.ComplianceDetail.Reset()
}

// Offline reports whether the server looks unreachable: the status poll has
// failed and never delivered data.
func (s *Store) Offline() bool {
	snap := s.Status.Snapshot()
	return snap.Failure != nil && !snap.HasData
}

func pageInfo(p *forgeline.Pagination) resource.PageInfo {
	if p == nil {
		return resource.PageInfo{}
	}
	return resource.PageInfo{
		Page:         p.Page,
		Limit:        p.Limit,
		TotalRecords: p.TotalRecords,
		TotalPages:   p.TotalPages,
	}
}
