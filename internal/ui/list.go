package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/forgeline/forgetop/internal/resource"
)

// listColumn describes one column of a resource table.
type listColumn struct {
	title string
	width int
	flex  bool // column absorbs leftover width
}

// listRow is one rendered table row. statusCell marks the cell index that
// holds a lifecycle status and gets the theme's status color; -1 for none.
type listRow struct {
	cells      []string
	statusCell int
}

// listPage is everything a list view needs to render: rows plus the
// container lifecycle fields that drive the loading, error and empty
// treatments. Stale data renders alongside the error banner.
type listPage struct {
	title   string
	columns []listColumn
	rows    []listRow
	page    resource.PageInfo
	loading bool
	hasData bool
	failure *resource.Failure
	summary string
	empty   string // message when the list has loaded with zero rows
}

func (m Model) renderList(p listPage, selected int, width, height int) string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.AccentText.Bold(true).Render(p.title))
	if p.loading {
		b.WriteString(" " + styles.MutedText.Render(m.spin.View()+" loading"))
	}
	b.WriteString("\n")

	if p.failure != nil {
		banner := p.failure.Message
		if p.failure.TraceID != "" {
			banner += "  [" + p.failure.TraceID + "]"
		}
		b.WriteString(styles.DangerText.Render("✗ "+banner) + "\n")
	}

	if !p.hasData {
		if p.failure == nil {
			b.WriteString(styles.MutedText.Render("Loading…") + "\n")
		}
		return b.String()
	}

	widths := columnWidths(p.columns, width)

	// Header row
	var header strings.Builder
	for i, col := range p.columns {
		header.WriteString(padRight(col.title, widths[i]))
		if i < len(p.columns)-1 {
			header.WriteString("  ")
		}
	}
	b.WriteString(styles.MutedText.Bold(true).Render(header.String()) + "\n")

	if len(p.rows) == 0 {
		msg := p.empty
		if msg == "" {
			msg = "No records"
		}
		b.WriteString(styles.FaintText.Render(msg) + "\n")
	}

	visible := visibleRange(len(p.rows), selected, maxRows(height))
	for idx := visible.start; idx < visible.end; idx++ {
		row := p.rows[idx]
		line := renderRow(row, widths, styles, idx == selected)
		b.WriteString(line + "\n")
	}

	b.WriteString(renderPageFooter(p.page, styles))
	if p.summary != "" {
		b.WriteString("\n" + styles.InfoText.Render(p.summary))
	}
	return b.String()
}

func renderRow(row listRow, widths []int, styles Styles, selected bool) string {
	if selected {
		// Selection overrides per-cell coloring so the row reads as one
		// highlighted unit.
		var line strings.Builder
		for i, cell := range row.cells {
			line.WriteString(padRight(cell, widths[i]))
			if i < len(row.cells)-1 {
				line.WriteString("  ")
			}
		}
		return styles.Selected.Render("▸ " + line.String())
	}

	var line strings.Builder
	line.WriteString("  ")
	for i, cell := range row.cells {
		text := padRight(cell, widths[i])
		if i == row.statusCell {
			text = lipgloss.NewStyle().
				Foreground(lipgloss.Color(styles.StatusColor(strings.ToLower(strings.TrimSpace(cell))))).
				Render(text)
		} else {
			text = styles.Text.Render(text)
		}
		line.WriteString(text)
		if i < len(row.cells)-1 {
			line.WriteString("  ")
		}
	}
	return line.String()
}

func renderPageFooter(page resource.PageInfo, styles Styles) string {
	total := page.TotalPages
	if total < 1 {
		total = 1
	}
	current := page.Page
	if current < 1 {
		current = 1
	}
	text := fmt.Sprintf("page %d/%d (%d records)", current, total, page.TotalRecords)
	if page.HasMore() {
		text += "  ] next"
	}
	if current > 1 {
		text += "  [ prev"
	}
	return styles.FaintText.Render(text)
}

// columnWidths resolves fixed widths and spreads what remains across flex
// columns. The two-space gutter between columns is accounted for here.
func columnWidths(columns []listColumn, total int) []int {
	widths := make([]int, len(columns))
	remaining := total - 2 - 2*(len(columns)-1) // selection marker + gutters
	flexCount := 0
	for i, col := range columns {
		if col.flex {
			flexCount++
			continue
		}
		widths[i] = col.width
		remaining -= col.width
	}
	if flexCount > 0 {
		share := remaining / flexCount
		if share < 8 {
			share = 8
		}
		for i, col := range columns {
			if col.flex {
				widths[i] = share
			}
		}
	}
	return widths
}

type rowRange struct {
	start, end int
}

// visibleRange windows the rows around the selection so long pages stay
// within the terminal height.
func visibleRange(total, selected, max int) rowRange {
	if max <= 0 || total <= max {
		return rowRange{0, total}
	}
	start := selected - max/2
	if start < 0 {
		start = 0
	}
	end := start + max
	if end > total {
		end = total
		start = end - max
	}
	return rowRange{start, end}
}

func maxRows(height int) int {
	// Header, status bar, list title, column header, footer, padding.
	rows := height - 8
	if rows < 3 {
		rows = 3
	}
	return rows
}
