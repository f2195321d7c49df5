package ui

import (
	"fmt"
	"time"
)

// currentListPage builds the page model for the active list view.
func (m Model) currentListPage() listPage {
	switch m.view {
	case ViewAllocations:
		return m.allocationsPage()
	case ViewOrders:
		return m.ordersPage()
	case ViewPricing:
		return m.pricingPage()
	case ViewProducts:
		return m.productsPage()
	case ViewCompliance:
		return m.compliancePage()
	default:
		return m.bomsPage()
	}
}

func (m Model) bomsPage() listPage {
	snap := m.snaps.boms
	rows := make([]listRow, 0, len(snap.Data.Items))
	for _, bom := range snap.Data.Items {
		rows = append(rows, listRow{
			statusCell: 4,
			cells: []string{
				bom.BomNumber,
				bom.ProductName,
				bom.SkuCode,
				bom.Revision,
				bom.Status,
				formatCount(bom.LineCount),
				money(bom.TotalCost),
				relativeTime(bom.ParsedUpdatedAt()),
			},
		})
	}
	return listPage{
		title: "Bills of Materials",
		columns: []listColumn{
			{title: "BOM", width: 12},
			{title: "Product", flex: true},
			{title: "SKU", width: 12},
			{title: "Rev", width: 4},
			{title: "Status", width: 10},
			{title: "Lines", width: 5},
			{title: "Cost", width: 10},
			{title: "Updated", width: 11},
		},
		rows:    rows,
		page:    snap.Data.Page,
		loading: snap.Loading,
		hasData: snap.HasData,
		failure: snap.Failure,
		empty:   "No BOMs match the current filter",
	}
}

func (m Model) allocationsPage() listPage {
	snap := m.snaps.allocations
	rows := make([]listRow, 0, len(snap.Data.Items))
	for _, alloc := range snap.Data.Items {
		rows = append(rows, listRow{
			statusCell: 6,
			cells: []string{
				alloc.OrderNumber,
				alloc.SkuCode,
				alloc.PartName,
				alloc.WarehouseID,
				alloc.Strategy,
				alloc.Quantity.String(),
				alloc.Status,
				relativeTime(alloc.ParsedCreatedAt()),
			},
		})
	}
	return listPage{
		title: "Inventory Allocations",
		columns: []listColumn{
			{title: "Order", width: 12},
			{title: "SKU", width: 12},
			{title: "Part", flex: true},
			{title: "Warehouse", width: 10},
			{title: "Strategy", width: 8},
			{title: "Qty", width: 8},
			{title: "Status", width: 11},
			{title: "Created", width: 11},
		},
		rows:    rows,
		page:    snap.Data.Page,
		loading: snap.Loading,
		hasData: snap.HasData,
		failure: snap.Failure,
		empty:   "No allocations recorded",
	}
}

func (m Model) ordersPage() listPage {
	snap := m.snaps.orders
	rows := make([]listRow, 0, len(snap.Data.Items))
	for _, order := range snap.Data.Items {
		rows = append(rows, listRow{
			statusCell: 2,
			cells: []string{
				order.OrderNumber,
				order.CustomerName,
				order.OrderStatus,
				order.FulfillmentStatus,
				order.AllocationStatus,
				formatCount(order.LineCount),
				money(order.TotalValue),
				formatDate(order.ParsedPromisedDate()),
			},
		})
	}
	return listPage{
		title: "Outbound Orders",
		columns: []listColumn{
			{title: "Order", width: 12},
			{title: "Customer", flex: true},
			{title: "Status", width: 9},
			{title: "Fulfillment", width: 11},
			{title: "Allocation", width: 11},
			{title: "Lines", width: 5},
			{title: "Value", width: 11},
			{title: "Promised", width: 10},
		},
		rows:    rows,
		page:    snap.Data.Page,
		loading: snap.Loading,
		hasData: snap.HasData,
		failure: snap.Failure,
		summary: "a: allocate stock   c: confirm fulfillment",
		empty:   "No open orders",
	}
}

func (m Model) pricingPage() listPage {
	snap := m.snaps.pricing
	rows := make([]listRow, 0, len(snap.Data.Items))
	for _, rec := range snap.Data.Items {
		variance := money(rec.CostVariance)
		if rec.OverStandard() {
			variance = "+" + variance
		}
		rows = append(rows, listRow{
			statusCell: -1,
			cells: []string{
				rec.SkuCode,
				rec.ProductName,
				rec.Currency,
				money(rec.ListPrice),
				money(rec.UnitCost),
				money(rec.StandardCost),
				variance,
				money(rec.Margin),
			},
		})
	}

	overview := m.selectors.CostOverview(snap)
	summary := ""
	if snap.HasData {
		summary = fmt.Sprintf("%d records, %d over standard cost, net variance %s",
			overview.Records, overview.OverStandard, money(overview.TotalVariance))
	}

	return listPage{
		title: "Pricing",
		columns: []listColumn{
			{title: "SKU", width: 12},
			{title: "Product", flex: true},
			{title: "Cur", width: 3},
			{title: "List", width: 10},
			{title: "Unit", width: 10},
			{title: "Std", width: 10},
			{title: "Variance", width: 10},
			{title: "Margin", width: 8},
		},
		rows:    rows,
		page:    snap.Data.Page,
		loading: snap.Loading,
		hasData: snap.HasData,
		failure: snap.Failure,
		summary: summary,
		empty:   "No pricing records",
	}
}

func (m Model) productsPage() listPage {
	snap := m.snaps.products
	rows := make([]listRow, 0, len(snap.Data.Items))
	for _, product := range snap.Data.Items {
		rows = append(rows, listRow{
			statusCell: 3,
			cells: []string{
				product.SkuCode,
				product.Name,
				product.Category,
				product.Status,
				product.OnHand.String(),
				product.Reserved.String(),
				product.Available().String(),
				relativeTime(product.ParsedUpdatedAt()),
			},
		})
	}
	return listPage{
		title: "Product Catalog",
		columns: []listColumn{
			{title: "SKU", width: 12},
			{title: "Name", flex: true},
			{title: "Category", width: 12},
			{title: "Status", width: 12},
			{title: "On Hand", width: 8},
			{title: "Reserved", width: 8},
			{title: "Avail", width: 8},
			{title: "Updated", width: 11},
		},
		rows:    rows,
		page:    snap.Data.Page,
		loading: snap.Loading,
		hasData: snap.HasData,
		failure: snap.Failure,
		empty:   "No products match the current filter",
	}
}

func (m Model) compliancePage() listPage {
	snap := m.snaps.compliance
	now := time.Now()
	rows := make([]listRow, 0, len(snap.Data.Items))
	for _, rec := range snap.Data.Items {
		status := rec.Status
		if rec.Expired(now) {
			status = "expired"
		}
		rows = append(rows, listRow{
			statusCell: 4,
			cells: []string{
				rec.PartNumber,
				rec.SkuCode,
				rec.Kind,
				rec.Authority,
				status,
				rec.Reference,
				formatDate(rec.ParsedExpiresAt()),
			},
		})
	}
	return listPage{
		title: "Compliance Records",
		columns: []listColumn{
			{title: "Part", width: 14},
			{title: "SKU", width: 12},
			{title: "Kind", width: 10},
			{title: "Authority", width: 12},
			{title: "Status", width: 14},
			{title: "Reference", flex: true},
			{title: "Expires", width: 10},
		},
		rows:    rows,
		page:    snap.Data.Page,
		loading: snap.Loading,
		hasData: snap.HasData,
		failure: snap.Failure,
		empty:   "No compliance records",
	}
}
