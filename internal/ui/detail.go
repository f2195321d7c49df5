package ui

import (
	"fmt"
	"strings"
)

// renderBomDetail shows the flattened BOM detail next to the readiness
// verdict for the same BOM. The two fetches are independent, so each half
// renders its own loading and error treatment.
func (m Model) renderBomDetail() string {
	styles := m.theme.Styles()
	snap := m.snaps.bomDetail

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("BOM Detail"))
	if snap.Loading {
		b.WriteString(" " + styles.MutedText.Render(m.spin.View() + " loading"))
	}
	b.WriteString("\n")

	if snap.Failure != nil {
		b.WriteString(styles.DangerText.Render("✗ "+snap.Failure.Message) + "\n")
	}
	if !snap.HasData {
		if snap.Failure == nil {
			b.WriteString(styles.MutedText.Render("Loading…") + "\n")
		}
		b.WriteString("\n" + m.renderReadiness(styles))
		return b.String()
	}

	detail := snap.Data
	b.WriteString(fmt.Sprintf("%s  %s  rev %s  %s\n",
		styles.Text.Bold(true).Render(detail.BomNumber),
		styles.Text.Render(detail.ProductName),
		detail.Revision,
		styles.StatusBadge(detail.Status).Render(titleCase(detail.Status)),
	))
	if detail.Description != "" {
		b.WriteString(styles.MutedText.Render(detail.Description) + "\n")
	}
	b.WriteString(styles.MutedText.Render(fmt.Sprintf(
		"%d lines   total %s   material %s   labor %s   overhead %s   variance %s",
		detail.LineCount, money(detail.TotalCost), money(detail.MaterialCost),
		money(detail.LaborCost), money(detail.OverheadCost), money(detail.CostVariance),
	)) + "\n\n")

	// Component table
	header := fmt.Sprintf("%-4s  %-16s  %-28s  %10s  %-5s  %10s  %10s  %10s  %10s",
		"#", "Part", "Name", "Qty", "Unit", "Unit Cost", "Extended", "On Hand", "Short")
	b.WriteString(styles.MutedText.Bold(true).Render(header) + "\n")

	for _, line := range detail.Lines {
		row := fmt.Sprintf("%-4d  %-16s  %-28s  %10s  %-5s  %10s  %10s  %10s  %10s",
			line.LineNumber,
			truncate(line.PartNumber, 16),
			truncate(line.PartName, 28),
			line.Quantity.String(),
			line.Unit,
			money(line.UnitCost),
			money(line.ExtendedCost),
			line.OnHand.String(),
			line.Shortage.String(),
		)
		if line.Shortage.IsPositive() {
			b.WriteString(styles.DangerText.Render(row) + "\n")
		} else {
			b.WriteString(styles.Text.Render(row) + "\n")
		}
	}

	if short := m.selectors.ShortLines(snap); len(short) > 0 {
		b.WriteString(styles.WarningText.Render(
			fmt.Sprintf("%d line(s) short of stock", len(short))) + "\n")
	}

	b.WriteString("\n" + m.renderReadiness(styles))

	if m.snaps.readiness.HasData {
		outlook := m.selectors.Outlook(snap, m.snaps.readiness)
		b.WriteString(styles.MutedText.Render(fmt.Sprintf(
			"\noutlook: %d short line(s), %d bottleneck(s), %d buildable unit(s)",
			outlook.ShortLines, outlook.BottleneckCount, outlook.BuildableUnits)) + "\n")
	}
	return b.String()
}

func (m Model) renderReadiness(styles Styles) string {
	snap := m.snaps.readiness

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Production Readiness"))
	if snap.Loading {
		b.WriteString(" " + styles.MutedText.Render(m.spin.View() + " checking"))
	}
	b.WriteString("\n")

	if snap.Failure != nil {
		b.WriteString(styles.DangerText.Render("✗ "+snap.Failure.Message) + "\n")
	}
	if !snap.HasData {
		if snap.Failure == nil {
			b.WriteString(styles.MutedText.Render("Checking…") + "\n")
		}
		return b.String()
	}

	view := snap.Data
	if view.IsReadyForProduction {
		b.WriteString(styles.SuccessText.Render("✓ Ready for production"))
	} else {
		b.WriteString(styles.DangerText.Render("✗ Not ready for production"))
	}
	b.WriteString(styles.Text.Render(fmt.Sprintf("   %d buildable unit(s)", view.BuildableUnits)))
	if view.Warehouse != "" {
		b.WriteString(styles.MutedText.Render("   warehouse " + view.Warehouse))
	}
	b.WriteString("\n")

	bottlenecks := m.selectors.BottleneckParts(snap)
	if len(bottlenecks) == 0 {
		return b.String()
	}

	b.WriteString(styles.WarningText.Render(fmt.Sprintf("%d bottleneck part(s):", view.BottleneckCount)) + "\n")
	for _, part := range bottlenecks {
		b.WriteString(styles.Text.Render(fmt.Sprintf(
			"  %s  %s  required %s, on hand %s, short %s",
			part.PartNumber, truncate(part.PartName, 28),
			part.Required.String(), part.OnHand.String(), part.Shortfall.String(),
		)) + "\n")
	}
	return b.String()
}

// renderComplianceDetail shows a single compliance record as a card.
func (m Model) renderComplianceDetail() string {
	styles := m.theme.Styles()
	snap := m.snaps.complianceDetail

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Compliance Record") + "\n")

	if snap.Failure != nil {
		b.WriteString(styles.DangerText.Render("✗ "+snap.Failure.Message) + "\n")
	}
	if !snap.HasData {
		if snap.Failure == nil {
			b.WriteString(styles.MutedText.Render("Loading…") + "\n")
		}
		return b.String()
	}

	rec := snap.Data
	field := func(label, value string) {
		if value == "" {
			value = "—"
		}
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("%-12s", label)) + styles.Text.Render(value) + "\n")
	}

	b.WriteString(styles.StatusBadge(rec.Status).Render(titleCase(rec.Status)) + "\n\n")
	field("Part", rec.PartNumber)
	field("SKU", rec.SkuCode)
	field("Kind", rec.Kind)
	field("Authority", rec.Authority)
	field("Reference", rec.Reference)
	field("Issued", formatDate(rec.ParsedIssuedAt()))
	field("Expires", formatDate(rec.ParsedExpiresAt()))
	if rec.Notes != "" {
		b.WriteString("\n" + styles.FaintText.Render(rec.Notes) + "\n")
	}
	return b.String()
}
