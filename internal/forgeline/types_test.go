package forgeline

import (
	"testing"
	"time"
)

func TestPagination_HasMore(t *testing.T) {
	tests := []struct {
		name string
		page Pagination
		want bool
	}{
		{"first of three", Pagination{Page: 1, Limit: 25, TotalRecords: 60, TotalPages: 3}, true},
		{"middle page", Pagination{Page: 2, Limit: 25, TotalRecords: 60, TotalPages: 3}, true},
		{"last page", Pagination{Page: 3, Limit: 25, TotalRecords: 60, TotalPages: 3}, false},
		{"single page", Pagination{Page: 1, Limit: 25, TotalRecords: 10, TotalPages: 1}, false},
		{"empty result", Pagination{Page: 1, Limit: 25}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.page.HasMore(); got != tt.want {
				t.Fatalf("HasMore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPagination_TotalPagesFallback(t *testing.T) {
	// Server omitted totalPages; derive it from totalRecords/limit.
	p := Pagination{Page: 1, Limit: 25, TotalRecords: 51}
	if got := p.TotalPagesOrFallback(); got != 3 {
		t.Fatalf("TotalPagesOrFallback() = %d, want 3", got)
	}
	if !p.HasMore() {
		t.Fatal("HasMore() = false, want true on derived total")
	}

	// Server-provided value wins even when it disagrees with the derivation.
	p.TotalPages = 2
	if got := p.TotalPagesOrFallback(); got != 2 {
		t.Fatalf("TotalPagesOrFallback() = %d, want server value 2", got)
	}
}

func TestListQuery_ValuesOmitsZeroFields(t *testing.T) {
	values := ListQuery{}.Values()
	if encoded := values.Encode(); encoded != "" {
		t.Fatalf("zero query encoded to %q, want empty", encoded)
	}

	values = ListQuery{
		Page:    3,
		Limit:   50,
		SortBy:  " updatedAt ",
		SortDir: SortAsc,
		Search:  "  ",
		Filters: map[string]string{"status": "active", "blank": "  "},
	}.Values()

	if got := values.Get("page"); got != "3" {
		t.Fatalf("page = %q, want 3", got)
	}
	if got := values.Get("sortBy"); got != "updatedAt" {
		t.Fatalf("sortBy = %q, want trimmed value", got)
	}
	if values.Has("search") {
		t.Fatal("blank search should be omitted")
	}
	if got := values.Get("status"); got != "active" {
		t.Fatalf("status filter = %q, want active", got)
	}
	if values.Has("blank") {
		t.Fatal("blank filter value should be omitted")
	}
}

func TestListQuery_WithPage(t *testing.T) {
	base := ListQuery{Page: 1, Limit: 25, Search: "axle"}
	next := base.WithPage(2)
	if next.Page != 2 || next.Search != "axle" {
		t.Fatalf("WithPage = %+v", next)
	}
	if base.Page != 1 {
		t.Fatal("WithPage mutated the receiver")
	}
}

func TestParseTime_AcceptedLayouts(t *testing.T) {
	tests := []struct {
		name  string
		value string
		zero  bool
	}{
		{"rfc3339", "2026-08-25T10:30:00Z", false},
		{"rfc3339 nano", "2026-08-25T10:30:00.123456789Z", false},
		{"server local layout", "2026-08-25 10:30:00", false},
		{"empty", "", true},
		{"garbage", "not-a-time", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseTime(tt.value)
			if got.IsZero() != tt.zero {
				t.Fatalf("parseTime(%q) = %v, zero = %v", tt.value, got, tt.zero)
			}
		})
	}
}

func TestComplianceRecord_Expired(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	past := ComplianceRecord{ExpiresAt: "2026-01-01T00:00:00Z"}
	if !past.Expired(now) {
		t.Fatal("record past expiry should report expired")
	}

	future := ComplianceRecord{ExpiresAt: "2027-01-01T00:00:00Z"}
	if future.Expired(now) {
		t.Fatal("record before expiry should not report expired")
	}

	unset := ComplianceRecord{}
	if unset.Expired(now) {
		t.Fatal("record without expiry should never report expired")
	}
}
