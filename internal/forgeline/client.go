package forgeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// API is the surface of the Forgeline HTTP client used by fetch operations.
// Implemented by *Client; fakes implement it in tests.
type API interface {
	FetchStatus(ctx context.Context) (*SystemStatus, error)
	ListBoms(ctx context.Context, query ListQuery) ([]BomListItem, *Pagination, error)
	FetchBomDetail(ctx context.Context, bomID string) (*BomDetail, error)
	FetchBomReadiness(ctx context.Context, bomID string) (*Readiness, error)
	ListAllocations(ctx context.Context, query ListQuery) ([]Allocation, *Pagination, error)
	AllocateOrder(ctx context.Context, orderID string, req AllocateRequest) (*AllocateResult, error)
	ListOrders(ctx context.Context, query ListQuery) ([]Order, *Pagination, error)
	ConfirmFulfillment(ctx context.Context, orderID string, req ConfirmRequest) (*Order, error)
	ListPricing(ctx context.Context, query ListQuery) ([]PricingRecord, *Pagination, error)
	ListProducts(ctx context.Context, query ListQuery) ([]Product, *Pagination, error)
	ListComplianceRecords(ctx context.Context, query ListQuery) ([]ComplianceRecord, *Pagination, error)
	FetchComplianceRecord(ctx context.Context, recordID string) (*ComplianceRecord, error)
}

var _ API = (*Client)(nil)

// Client talks to the Forgeline ERP HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBind   = "127.0.0.1:8460"
	defaultUserAgent = "forgetop/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client using the provided apiBind host:port value.
func NewClient(apiBind string) (*Client, error) {
	base, err := parseBaseURL(apiBind)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// APIError carries a server-reported failure. The server includes a
// human-readable message and, when available, a trace id for correlating
// with server logs.
type APIError struct {
	Status  int
	Message string
	TraceID string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("api returned status %d", e.Status)
	}
	return e.Message
}

// envelope mirrors the uniform Forgeline response wrapper.
type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	TraceID    string          `json:"traceId"`
	Data       json.RawMessage `json:"data"`
	Pagination *Pagination     `json:"pagination"`
}

// FetchStatus retrieves server status for the console header.
func (c *Client) FetchStatus(ctx context.Context) (*SystemStatus, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload SystemStatus
	if _, err := c.get(ctx, &url.URL{Path: "/api/status"}, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) get(ctx context.Context, rel *url.URL, dest any) (*Pagination, error) {
	return c.roundTrip(ctx, http.MethodGet, rel, nil, dest)
}

func (c *Client) post(ctx context.Context, path string, body, dest any) (*Pagination, error) {
	return c.roundTrip(ctx, http.MethodPost, &url.URL{Path: path}, body, dest)
}

// roundTrip performs one HTTP call and unwraps the response envelope into
// dest. Failures of any kind (transport, non-2xx, success=false, decode)
// come back as a single error; server-reported ones are *APIError.
func (c *Client) roundTrip(ctx context.Context, method string, rel *url.URL, body, dest any) (*Pagination, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	reqURL := c.baseURL.ResolveReference(rel)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		if decodeErr == nil {
			apiErr.Message = strings.TrimSpace(env.Message)
			apiErr.TraceID = env.TraceID
		}
		return nil, apiErr
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}
	if !env.Success {
		return nil, &APIError{
			Status:  resp.StatusCode,
			Message: strings.TrimSpace(env.Message),
			TraceID: env.TraceID,
		}
	}
	if dest != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, dest); err != nil {
			return nil, fmt.Errorf("decode response data: %w", err)
		}
	}
	return env.Pagination, nil
}

func parseBaseURL(apiBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBind)
	if trimmed == "" {
		trimmed = defaultAPIBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_bind %q: %w", apiBind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
