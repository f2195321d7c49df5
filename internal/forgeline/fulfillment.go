package forgeline

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// Order describes an outbound order in list form.
type Order struct {
	ID                string          `json:"id"`
	OrderNumber       string          `json:"orderNumber"`
	CustomerName      string          `json:"customerName"`
	OrderStatus       string          `json:"orderStatus"`
	ShipmentStatus    string          `json:"shipmentStatus"`
	FulfillmentStatus string          `json:"fulfillmentStatus"`
	AllocationStatus  string          `json:"allocationStatus"`
	LineCount         int             `json:"lineCount"`
	TotalValue        decimal.Decimal `json:"totalValue"`
	PromisedDate      string          `json:"promisedDate"`
	UpdatedAt         string          `json:"updatedAt"`
}

// ParsedPromisedDate returns the parsed promised-ship date.
func (o Order) ParsedPromisedDate() time.Time {
	return parseTime(o.PromisedDate)
}

// ParsedUpdatedAt returns the parsed UpdatedAt timestamp.
func (o Order) ParsedUpdatedAt() time.Time {
	return parseTime(o.UpdatedAt)
}

// ConfirmRequest advances an order's fulfillment lifecycle. AllocationStatus
// is optional; the other three statuses must be supplied together.
type ConfirmRequest struct {
	OrderStatus       string `json:"orderStatus"`
	ShipmentStatus    string `json:"shipmentStatus"`
	FulfillmentStatus string `json:"fulfillmentStatus"`
	AllocationStatus  string `json:"allocationStatus,omitempty"`
}

// ListOrders retrieves one page of outbound orders.
func (c *Client) ListOrders(ctx context.Context, query ListQuery) ([]Order, *Pagination, error) {
	rel := &url.URL{Path: "/api/orders", RawQuery: query.Values().Encode()}
	var items []Order
	page, err := c.get(ctx, rel, &items)
	if err != nil {
		return nil, nil, err
	}
	return items, page, nil
}

// ConfirmFulfillment posts a fulfillment confirmation and returns the
// updated order.
func (c *Client) ConfirmFulfillment(ctx context.Context, orderID string, req ConfirmRequest) (*Order, error) {
	if orderID == "" {
		return nil, fmt.Errorf("order id required")
	}
	if req.OrderStatus == "" || req.ShipmentStatus == "" || req.FulfillmentStatus == "" {
		return nil, fmt.Errorf("order, shipment, and fulfillment statuses required")
	}
	var updated Order
	path := "/api/orders/" + url.PathEscape(orderID) + "/fulfillment/confirm"
	if _, err := c.post(ctx, path, req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
