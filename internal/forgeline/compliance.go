package forgeline

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// ComplianceRecord describes a regulatory/compliance document attached to a
// part or product (RoHS, REACH, certificate of conformance, and so on).
type ComplianceRecord struct {
	ID         string `json:"id"`
	PartNumber string `json:"partNumber"`
	SkuCode    string `json:"skuCode"`
	Kind       string `json:"kind"`
	Authority  string `json:"authority"`
	Status     string `json:"status"`
	Reference  string `json:"reference"`
	IssuedAt   string `json:"issuedAt"`
	ExpiresAt  string `json:"expiresAt"`
	Notes      string `json:"notes"`
}

// ParsedIssuedAt returns the parsed issue timestamp.
func (r ComplianceRecord) ParsedIssuedAt() time.Time {
	return parseTime(r.IssuedAt)
}

// ParsedExpiresAt returns the parsed expiry timestamp.
func (r ComplianceRecord) ParsedExpiresAt() time.Time {
	return parseTime(r.ExpiresAt)
}

// Expired reports whether the record's expiry has passed.
func (r ComplianceRecord) Expired(now time.Time) bool {
	expires := r.ParsedExpiresAt()
	return !expires.IsZero() && expires.Before(now)
}

// ListComplianceRecords retrieves one page of compliance records.
func (c *Client) ListComplianceRecords(ctx context.Context, query ListQuery) ([]ComplianceRecord, *Pagination, error) {
	rel := &url.URL{Path: "/api/compliance-records", RawQuery: query.Values().Encode()}
	var items []ComplianceRecord
	page, err := c.get(ctx, rel, &items)
	if err != nil {
		return nil, nil, err
	}
	return items, page, nil
}

// FetchComplianceRecord retrieves a single compliance record.
func (c *Client) FetchComplianceRecord(ctx context.Context, recordID string) (*ComplianceRecord, error) {
	if recordID == "" {
		return nil, fmt.Errorf("record id required")
	}
	rel := &url.URL{Path: "/api/compliance-records/" + url.PathEscape(recordID)}
	var payload ComplianceRecord
	if _, err := c.get(ctx, rel, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
