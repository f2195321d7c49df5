package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var tabLabels = map[View]string{
	ViewBoms:        "1 BOMs",
	ViewAllocations: "2 Allocations",
	ViewOrders:      "3 Orders",
	ViewPricing:     "4 Pricing",
	ViewProducts:    "5 Products",
	ViewCompliance:  "6 Compliance",
}

// renderMain composes the full screen: status bar, tab bar, body, footer.
func (m Model) renderMain() string {
	styles := m.theme.Styles()

	sections := []string{
		m.renderStatusBar(styles),
		m.renderTabs(styles),
		"",
		m.renderBody(),
		"",
		m.renderFooter(styles),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderStatusBar renders server reachability, version, and workload
// counters from the status poll.
func (m Model) renderStatusBar(styles Styles) string {
	snap := m.snaps.status
	bar := NewBgStyle(m.theme.Surface)

	var parts []string
	parts = append(parts, bar.Render("forgetop", styles.AccentText.Bold(true)))

	switch {
	case snap.Failure != nil:
		parts = append(parts, styles.DangerText.Render("● offline"))
		parts = append(parts, styles.MutedText.Render(snap.Failure.Message))
	case !snap.HasData:
		parts = append(parts, styles.MutedText.Render("● connecting…"))
	default:
		status := snap.Data
		parts = append(parts, styles.SuccessText.Render("● online"))
		parts = append(parts, styles.MutedText.Render("v"+status.Version))
		parts = append(parts, styles.Text.Render(fmt.Sprintf("%d open orders", status.OpenOrders)))
		parts = append(parts, styles.Text.Render(fmt.Sprintf("%d active BOMs", status.ActiveBoms)))
		if status.PendingJobs > 0 {
			parts = append(parts, styles.WarningText.Render(fmt.Sprintf("%d jobs queued", status.PendingJobs)))
		}
		if status.MaintenanceMsg != "" {
			parts = append(parts, styles.WarningText.Render(status.MaintenanceMsg))
		}
	}

	if snap.HasData || snap.Failure != nil {
		parts = append(parts, styles.FaintText.Render("updated "+relativeTime(snap.LastUpdated)))
	}

	return bar.FillLine(styles.Header.Render(strings.Join(parts, "  ")), m.width)
}

func (m Model) renderTabs(styles Styles) string {
	active := m.view
	// Detail views highlight the list they were opened from.
	switch active {
	case ViewBomDetail:
		active = ViewBoms
	case ViewComplianceDetail:
		active = ViewCompliance
	}

	var tabs []string
	for _, v := range listViews {
		label := " " + tabLabels[v] + " "
		if v == active {
			tabs = append(tabs, styles.Selected.Bold(true).Render(label))
		} else {
			tabs = append(tabs, styles.MutedText.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderBody() string {
	switch m.view {
	case ViewBomDetail:
		return m.renderBomDetail()
	case ViewComplianceDetail:
		return m.renderComplianceDetail()
	}
	return m.renderList(m.currentListPage(), m.selected[m.view], m.width, m.height)
}

func (m Model) renderFooter(styles Styles) string {
	if m.filterActive {
		return styles.Footer.Render("filter: " + m.filterInput.View())
	}

	var parts []string
	if m.notice != "" {
		if m.noticeFailed {
			parts = append(parts, styles.DangerText.Render(m.notice))
		} else {
			parts = append(parts, styles.SuccessText.Render(m.notice))
		}
	}
	if query := m.queries[m.view]; m.isListView() && query.Search != "" {
		parts = append(parts, styles.InfoText.Render("filter: "+query.Search))
	}
	parts = append(parts, "tab: switch  /: filter  [ ]: page  enter: open  r: reload  h: help  e: quit")
	bar := NewBgStyle(m.theme.Surface)
	return bar.FillLine(styles.Footer.Render(strings.Join(parts, "   ")), m.width)
}
