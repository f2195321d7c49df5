package forgeline

import (
	"context"
	"net/url"

	"github.com/shopspring/decimal"
)

// PricingRecord describes the costed price position of one SKU. Amounts are
// decimals end to end; float64 drift is not acceptable for cost variance.
type PricingRecord struct {
	ID           string          `json:"id"`
	SkuCode      string          `json:"skuCode"`
	ProductName  string          `json:"productName"`
	Currency     string          `json:"currency"`
	ListPrice    decimal.Decimal `json:"listPrice"`
	UnitCost     decimal.Decimal `json:"unitCost"`
	StandardCost decimal.Decimal `json:"standardCost"`
	CostVariance decimal.Decimal `json:"costVariance"`
	Margin       decimal.Decimal `json:"margin"`
	EffectiveAt  string          `json:"effectiveAt"`
}

// OverStandard reports whether actual unit cost exceeds standard cost.
func (p PricingRecord) OverStandard() bool {
	return p.CostVariance.IsPositive()
}

// ListPricing retrieves one page of pricing records.
func (c *Client) ListPricing(ctx context.Context, query ListQuery) ([]PricingRecord, *Pagination, error) {
	rel := &url.URL{Path: "/api/pricing", RawQuery: query.Values().Encode()}
	var items []PricingRecord
	page, err := c.get(ctx, rel, &items)
	if err != nil {
		return nil, nil, err
	}
	return items, page, nil
}
