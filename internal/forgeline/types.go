package forgeline

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

const forgelineTimestampLayout = "2006-01-02 15:04:05"

// Pagination mirrors the server's pagination block. It is authoritative;
// TotalPagesOrFallback exists only for servers that omit totalPages.
type Pagination struct {
	Page         int `json:"page"`
	Limit        int `json:"limit"`
	TotalRecords int `json:"totalRecords"`
	TotalPages   int `json:"totalPages"`
}

// HasMore reports whether pages remain after the current one.
func (p Pagination) HasMore() bool {
	return p.Page < p.TotalPagesOrFallback()
}

// TotalPagesOrFallback returns the server total, deriving it from
// TotalRecords/Limit only when the server left it zero.
func (p Pagination) TotalPagesOrFallback() int {
	if p.TotalPages > 0 {
		return p.TotalPages
	}
	if p.Limit <= 0 || p.TotalRecords <= 0 {
		return 0
	}
	pages := p.TotalRecords / p.Limit
	if p.TotalRecords%p.Limit != 0 {
		pages++
	}
	return pages
}

// SortDir is a list sort direction.
type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// ListQuery carries pagination, sorting, and filter parameters for list
// endpoints. The zero value requests the server's defaults.
type ListQuery struct {
	Page    int
	Limit   int
	SortBy  string
	SortDir SortDir
	Search  string
	Filters map[string]string
}

// Values flattens the query into URL query-string parameters. Zero-valued
// fields are omitted so the server applies its own defaults.
func (q ListQuery) Values() url.Values {
	values := url.Values{}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if sortBy := strings.TrimSpace(q.SortBy); sortBy != "" {
		values.Set("sortBy", sortBy)
	}
	if q.SortDir != "" {
		values.Set("sortDir", string(q.SortDir))
	}
	if search := strings.TrimSpace(q.Search); search != "" {
		values.Set("search", search)
	}
	for key, value := range q.Filters {
		if strings.TrimSpace(value) == "" {
			continue
		}
		values.Set(key, value)
	}
	return values
}

// WithPage returns a copy of the query targeting a different page.
func (q ListQuery) WithPage(page int) ListQuery {
	q.Page = page
	return q
}

// SystemStatus mirrors /api/status.
type SystemStatus struct {
	Version        string `json:"version"`
	Database       string `json:"database"`
	OpenOrders     int    `json:"openOrders"`
	ActiveBoms     int    `json:"activeBoms"`
	PendingJobs    int    `json:"pendingJobs"`
	GeneratedAt    string `json:"generatedAt"`
	MaintenanceMsg string `json:"maintenanceMessage"`
}

// ParsedGeneratedAt returns the status timestamp as time.Time when possible.
func (s SystemStatus) ParsedGeneratedAt() time.Time {
	return parseTime(s.GeneratedAt)
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	if t, err := time.ParseInLocation(forgelineTimestampLayout, value, time.Local); err == nil {
		return t
	}
	return time.Time{}
}
