package ui

import "testing"

func TestGetTheme_UnknownFallsBackToNightfox(t *testing.T) {
	theme := GetTheme("NoSuchTheme")
	if theme.Name != "Nightfox" {
		t.Fatalf("Name = %q, want Nightfox", theme.Name)
	}
}

func TestNextTheme_CyclesThroughAll(t *testing.T) {
	seen := map[string]bool{}
	name := themeOrder[0]
	for range themeOrder {
		seen[name] = true
		name = NextTheme(name)
	}
	if name != themeOrder[0] {
		t.Fatalf("cycle did not wrap: ended at %q", name)
	}
	for _, want := range ThemeNames() {
		if !seen[want] {
			t.Fatalf("theme %q never reached in cycle", want)
		}
	}
}

func TestNextTheme_UnknownStartsAtFirst(t *testing.T) {
	if got := NextTheme("bogus"); got != themeOrder[0] {
		t.Fatalf("NextTheme(bogus) = %q, want %q", got, themeOrder[0])
	}
}

func TestStatusColors_CoverLifecycleValues(t *testing.T) {
	statuses := []string{
		"draft", "active", "released", "on_hold", "obsolete",
		"pending", "allocated", "partial", "backordered", "cancelled",
		"open", "picking", "packed", "shipped", "delivered", "closed",
		"unfulfilled", "fulfilled",
		"compliant", "pending_review", "expired", "rejected",
		"discontinued", "preorder",
	}

	for _, name := range ThemeNames() {
		styles := GetTheme(name).Styles()
		for _, status := range statuses {
			if styles.StatusColor(status) == "" {
				t.Errorf("theme %q has no color for status %q", name, status)
			}
		}
	}
}

func TestStatusColor_UnknownStatusUsesMuted(t *testing.T) {
	theme := GetTheme("Nightfox")
	styles := theme.Styles()
	if got := styles.StatusColor("made_up_status"); got != theme.Muted {
		t.Fatalf("unknown status color = %q, want muted %q", got, theme.Muted)
	}
}
