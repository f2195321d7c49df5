package ui

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a very long product name", 10, "a very lo…"},
		{"ab", 1, "…"},
		{"anything", 0, ""},
		{"ünïcode nämes", 8, "ünïcode…"},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("abc", 6); got != "abc   " {
		t.Fatalf("padRight = %q", got)
	}
	if got := padRight("abcdefgh", 4); got != "abc…" {
		t.Fatalf("padRight truncation = %q", got)
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"pending_review", "Pending Review"},
		{"active", "Active"},
		{"on_hold", "On Hold"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMoney(t *testing.T) {
	if got := money(decimal.RequireFromString("1234.5")); got != "1234.50" {
		t.Fatalf("money = %q", got)
	}
	if got := money(decimal.Zero); got != "0.00" {
		t.Fatalf("money(0) = %q", got)
	}
}

func TestRelativeTime(t *testing.T) {
	if got := relativeTime(time.Time{}); got != "never" {
		t.Fatalf("relativeTime(zero) = %q", got)
	}
	if got := relativeTime(time.Now().Add(-30 * time.Second)); got != "30s ago" {
		t.Fatalf("relativeTime(-30s) = %q", got)
	}
	if got := relativeTime(time.Now().Add(-5 * time.Minute)); got != "5m ago" {
		t.Fatalf("relativeTime(-5m) = %q", got)
	}
}

func TestVisibleRange(t *testing.T) {
	// Everything fits.
	if r := visibleRange(5, 2, 10); r.start != 0 || r.end != 5 {
		t.Fatalf("visibleRange small = %+v", r)
	}
	// Window follows the selection.
	if r := visibleRange(100, 50, 10); r.start > 50 || r.end <= 50 {
		t.Fatalf("selection 50 outside window %+v", r)
	}
	// Clamped at the end.
	if r := visibleRange(100, 99, 10); r.start != 90 || r.end != 100 {
		t.Fatalf("visibleRange end = %+v", r)
	}
	// Clamped at the start.
	if r := visibleRange(100, 0, 10); r.start != 0 || r.end != 10 {
		t.Fatalf("visibleRange start = %+v", r)
	}
}

func TestColumnWidths_FlexAbsorbsRemainder(t *testing.T) {
	columns := []listColumn{
		{title: "A", width: 10},
		{title: "B", flex: true},
		{title: "C", width: 8},
	}
	widths := columnWidths(columns, 80)
	if widths[0] != 10 || widths[2] != 8 {
		t.Fatalf("fixed widths changed: %v", widths)
	}
	// 80 - marker(2) - gutters(4) - 18 fixed = 56 for the flex column.
	if widths[1] != 56 {
		t.Fatalf("flex width = %d, want 56", widths[1])
	}

	// Flex never collapses below a readable floor.
	widths = columnWidths(columns, 20)
	if widths[1] < 8 {
		t.Fatalf("flex width = %d, want >= 8", widths[1])
	}
}
