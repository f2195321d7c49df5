package forgeline

import (
	"context"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// Product describes one product/SKU catalog entry.
type Product struct {
	ID          string          `json:"id"`
	SkuCode     string          `json:"skuCode"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Status      string          `json:"status"`
	UnitOfSale  string          `json:"unitOfSale"`
	OnHand      decimal.Decimal `json:"onHand"`
	Reserved    decimal.Decimal `json:"reserved"`
	ActiveBomID string          `json:"activeBomId"`
	UpdatedAt   string          `json:"updatedAt"`
}

// Available returns sellable stock (on hand minus reserved).
func (p Product) Available() decimal.Decimal {
	return p.OnHand.Sub(p.Reserved)
}

// ParsedUpdatedAt returns the parsed UpdatedAt timestamp.
func (p Product) ParsedUpdatedAt() time.Time {
	return parseTime(p.UpdatedAt)
}

// ListProducts retrieves one page of the product/SKU catalog.
func (c *Client) ListProducts(ctx context.Context, query ListQuery) ([]Product, *Pagination, error) {
	rel := &url.URL{Path: "/api/products", RawQuery: query.Values().Encode()}
	var items []Product
	page, err := c.get(ctx, rel, &items)
	if err != nil {
		return nil, nil, err
	}
	return items, page, nil
}
