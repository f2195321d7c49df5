package forgeline

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// BomListItem describes one bill of materials in list form.
type BomListItem struct {
	ID          string          `json:"id"`
	BomNumber   string          `json:"bomNumber"`
	ProductName string          `json:"productName"`
	SkuCode     string          `json:"skuCode"`
	Revision    string          `json:"revision"`
	Status      string          `json:"status"`
	LineCount   int             `json:"lineCount"`
	TotalCost   decimal.Decimal `json:"totalCost"`
	UpdatedAt   string          `json:"updatedAt"`
}

// ParsedUpdatedAt returns the parsed UpdatedAt timestamp.
func (b BomListItem) ParsedUpdatedAt() time.Time {
	return parseTime(b.UpdatedAt)
}

// bomDetailResponse mirrors the nested payload of /api/boms/:id/details.
type bomDetailResponse struct {
	Header  bomHeader  `json:"header"`
	Details []BomLine  `json:"details"`
	Summary bomSummary `json:"summary"`
}

type bomHeader struct {
	ID          string `json:"id"`
	BomNumber   string `json:"bomNumber"`
	ProductName string `json:"productName"`
	SkuCode     string `json:"skuCode"`
	Revision    string `json:"revision"`
	Status      string `json:"status"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type bomSummary struct {
	LineCount     int             `json:"lineCount"`
	TotalCost     decimal.Decimal `json:"totalCost"`
	MaterialCost  decimal.Decimal `json:"materialCost"`
	LaborCost     decimal.Decimal `json:"laborCost"`
	OverheadCost  decimal.Decimal `json:"overheadCost"`
	CostVariance  decimal.Decimal `json:"costVariance"`
	ShortageCount int             `json:"shortageCount"`
}

// BomLine is one component row of a bill of materials.
type BomLine struct {
	LineNumber   int             `json:"lineNumber"`
	PartNumber   string          `json:"partNumber"`
	PartName     string          `json:"partName"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	UnitCost     decimal.Decimal `json:"unitCost"`
	ExtendedCost decimal.Decimal `json:"extendedCost"`
	OnHand       decimal.Decimal `json:"onHand"`
	Shortage     decimal.Decimal `json:"shortage"`
}

// BomDetail is the client-side flattening of the nested detail payload:
// header and summary fields are merged to one level so tables and detail
// panes can render without digging through sub-objects.
type BomDetail struct {
	ID          string
	BomNumber   string
	ProductName string
	SkuCode     string
	Revision    string
	Status      string
	Description string
	CreatedAt   string
	UpdatedAt   string

	Lines []BomLine

	LineCount     int
	TotalCost     decimal.Decimal
	MaterialCost  decimal.Decimal
	LaborCost     decimal.Decimal
	OverheadCost  decimal.Decimal
	CostVariance  decimal.Decimal
	ShortageCount int
}

func flattenBomDetail(resp bomDetailResponse) BomDetail {
	return BomDetail{
		ID:          resp.Header.ID,
		BomNumber:   resp.Header.BomNumber,
		ProductName: resp.Header.ProductName,
		SkuCode:     resp.Header.SkuCode,
		Revision:    resp.Header.Revision,
		Status:      resp.Header.Status,
		Description: resp.Header.Description,
		CreatedAt:   resp.Header.CreatedAt,
		UpdatedAt:   resp.Header.UpdatedAt,

		Lines: resp.Details,

		LineCount:     resp.Summary.LineCount,
		TotalCost:     resp.Summary.TotalCost,
		MaterialCost:  resp.Summary.MaterialCost,
		LaborCost:     resp.Summary.LaborCost,
		OverheadCost:  resp.Summary.OverheadCost,
		CostVariance:  resp.Summary.CostVariance,
		ShortageCount: resp.Summary.ShortageCount,
	}
}

// BottleneckPart identifies the component constraining production output.
type BottleneckPart struct {
	PartNumber string          `json:"partNumber"`
	PartName   string          `json:"partName"`
	Required   decimal.Decimal `json:"required"`
	OnHand     decimal.Decimal `json:"onHand"`
	Shortfall  decimal.Decimal `json:"shortfall"`
}

// Readiness mirrors /api/boms/:id/readiness. The readiness verdict and
// bottleneck computation are server-side; the client only renders them.
type Readiness struct {
	BomID          string            `json:"bomId"`
	Ready          bool              `json:"isReadyForProduction"`
	BuildableUnits int               `json:"buildableUnits"`
	Metadata       ReadinessMetadata `json:"metadata"`
}

// ReadinessMetadata carries the supporting detail for a readiness verdict.
type ReadinessMetadata struct {
	BottleneckParts []BottleneckPart `json:"bottleneckParts"`
	CheckedAt       string           `json:"checkedAt"`
	Warehouse       string           `json:"warehouse"`
}

// ListBoms retrieves one page of the BOM catalog.
func (c *Client) ListBoms(ctx context.Context, query ListQuery) ([]BomListItem, *Pagination, error) {
	rel := &url.URL{Path: "/api/boms", RawQuery: query.Values().Encode()}
	var items []BomListItem
	page, err := c.get(ctx, rel, &items)
	if err != nil {
		return nil, nil, err
	}
	return items, page, nil
}

// FetchBomDetail retrieves and flattens a single BOM's detail payload.
func (c *Client) FetchBomDetail(ctx context.Context, bomID string) (*BomDetail, error) {
	if bomID == "" {
		return nil, fmt.Errorf("bom id required")
	}
	rel := &url.URL{Path: "/api/boms/" + url.PathEscape(bomID) + "/details"}
	var resp bomDetailResponse
	if _, err := c.get(ctx, rel, &resp); err != nil {
		return nil, err
	}
	detail := flattenBomDetail(resp)
	return &detail, nil
}

// FetchBomReadiness retrieves the server-computed production readiness
// verdict for a BOM.
func (c *Client) FetchBomReadiness(ctx context.Context, bomID string) (*Readiness, error) {
	if bomID == "" {
		return nil, fmt.Errorf("bom id required")
	}
	rel := &url.URL{Path: "/api/boms/" + url.PathEscape(bomID) + "/readiness"}
	var payload Readiness
	if _, err := c.get(ctx, rel, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
