package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/forgeline/forgetop/internal/forgeline"
	"github.com/forgeline/forgetop/internal/prefs"
	"github.com/forgeline/forgetop/internal/resource"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, keys.CycleTheme):
		next := NextTheme(m.theme.Name)
		m.theme = GetTheme(next)
		// Persist as a preference; cosmetic, so a write failure is ignored.
		_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: next})
		return m, nil

	case key.Matches(msg, keys.Escape):
		return m.handleEscape()

	case key.Matches(msg, keys.Tab):
		return m.switchView(m.nextListView(1))

	case key.Matches(msg, keys.ShiftTab):
		return m.switchView(m.nextListView(-1))

	case key.Matches(msg, keys.ViewBoms):
		return m.switchView(ViewBoms)
	case key.Matches(msg, keys.ViewAllocations):
		return m.switchView(ViewAllocations)
	case key.Matches(msg, keys.ViewOrders):
		return m.switchView(ViewOrders)
	case key.Matches(msg, keys.ViewPricing):
		return m.switchView(ViewPricing)
	case key.Matches(msg, keys.ViewProducts):
		return m.switchView(ViewProducts)
	case key.Matches(msg, keys.ViewCompliance):
		return m.switchView(ViewCompliance)

	case key.Matches(msg, keys.Refresh):
		return m, m.reloadCurrent()

	case key.Matches(msg, keys.Filter):
		if m.isListView() {
			m.filterActive = true
			m.filterInput.SetValue(m.queries[m.view].Search)
			m.filterInput.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, keys.PrevPage):
		return m.changePage(-1)
	case key.Matches(msg, keys.NextPage):
		return m.changePage(1)

	case key.Matches(msg, keys.Up):
		m.moveSelection(-1)
		return m, nil
	case key.Matches(msg, keys.Down):
		m.moveSelection(1)
		return m, nil
	case key.Matches(msg, keys.Top):
		if m.isListView() {
			m.selected[m.view] = 0
		}
		return m, nil
	case key.Matches(msg, keys.Bottom):
		if n := m.rowCount(m.view); m.isListView() && n > 0 {
			m.selected[m.view] = n - 1
		}
		return m, nil

	case key.Matches(msg, keys.Open):
		return m.openSelected()

	case key.Matches(msg, keys.Allocate):
		if m.view == ViewOrders {
			if order, ok := m.selectedOrder(); ok {
				return m, m.allocateCmd(order)
			}
		}
		return m, nil

	case key.Matches(msg, keys.Confirm):
		if m.view == ViewOrders {
			if order, ok := m.selectedOrder(); ok {
				return m, m.confirmCmd(order)
			}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.filterActive = false
		m.filterInput.Blur()
		query := m.queries[m.view]
		query.Search = m.filterInput.Value()
		query.Page = 1
		m.queries[m.view] = query
		m.selected[m.view] = 0
		return m, m.loadView(m.view)

	case tea.KeyEsc, tea.KeyCtrlC:
		m.filterActive = false
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

func (m Model) handleEscape() (tea.Model, tea.Cmd) {
	switch m.view {
	case ViewBomDetail:
		m.view = ViewBoms
		m.detailBomID = ""
		m.store.ResetDetail()
		return m, func() tea.Msg { return storeChangedMsg{} }

	case ViewComplianceDetail:
		m.view = ViewCompliance
		m.detailComplianceID = ""
		m.store.ComplianceDetail.Reset()
		return m, func() tea.Msg { return storeChangedMsg{} }
	}

	// On a list, esc drops an active filter.
	if query := m.queries[m.view]; query.Search != "" {
		query.Search = ""
		query.Page = 1
		m.queries[m.view] = query
		m.selected[m.view] = 0
		return m, m.loadView(m.view)
	}
	return m, nil
}

// switchView activates a list view, fetching it the first time it is shown.
func (m Model) switchView(v View) (tea.Model, tea.Cmd) {
	m.view = v
	m.notice = ""
	if !m.viewHasData(v) && !m.viewLoading(v) {
		return m, m.loadView(v)
	}
	return m, nil
}

func (m Model) openSelected() (tea.Model, tea.Cmd) {
	switch m.view {
	case ViewBoms:
		items := m.snaps.boms.Data.Items
		idx := m.selected[ViewBoms]
		if idx < 0 || idx >= len(items) {
			return m, nil
		}
		bom := items[idx]
		m.view = ViewBomDetail
		m.detailBomID = bom.ID
		dispatcher := m.dispatcher
		bomID := bom.ID
		return m, tea.Batch(
			m.dispatchCmd(func(ctx context.Context) error { return dispatcher.LoadBomDetail(ctx, bomID) }),
			m.dispatchCmd(func(ctx context.Context) error { return dispatcher.LoadBomReadiness(ctx, bomID) }),
		)

	case ViewCompliance:
		items := m.snaps.compliance.Data.Items
		idx := m.selected[ViewCompliance]
		if idx < 0 || idx >= len(items) {
			return m, nil
		}
		record := items[idx]
		m.view = ViewComplianceDetail
		m.detailComplianceID = record.ID
		dispatcher := m.dispatcher
		recordID := record.ID
		return m, m.dispatchCmd(func(ctx context.Context) error {
			return dispatcher.LoadComplianceRecord(ctx, recordID)
		})
	}
	return m, nil
}

func (m Model) changePage(delta int) (tea.Model, tea.Cmd) {
	if !m.isListView() {
		return m, nil
	}
	query := m.queries[m.view]
	page := m.viewPageInfo(m.view)

	next := query.Page + delta
	if next < 1 {
		return m, nil
	}
	if delta > 0 && !page.HasMore() {
		return m, nil
	}
	query.Page = next
	m.queries[m.view] = query
	m.selected[m.view] = 0
	return m, m.loadView(m.view)
}

func (m *Model) moveSelection(delta int) {
	if !m.isListView() {
		return
	}
	n := m.rowCount(m.view)
	if n == 0 {
		return
	}
	idx := m.selected[m.view] + delta
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	m.selected[m.view] = idx
}

// clampSelection keeps the cursor inside the row range after a reload
// shrinks a list.
func (m *Model) clampSelection() {
	for _, v := range listViews {
		n := m.rowCount(v)
		if n == 0 {
			m.selected[v] = 0
			continue
		}
		if m.selected[v] >= n {
			m.selected[v] = n - 1
		}
	}
}

func (m Model) isListView() bool {
	switch m.view {
	case ViewBomDetail, ViewComplianceDetail:
		return false
	}
	return true
}

func (m Model) nextListView(delta int) View {
	for i, v := range listViews {
		if v == m.view {
			return listViews[(i+delta+len(listViews))%len(listViews)]
		}
	}
	return ViewBoms
}

// reloadCurrent re-fetches whatever the active view shows.
func (m Model) reloadCurrent() tea.Cmd {
	dispatcher := m.dispatcher
	switch m.view {
	case ViewBomDetail:
		bomID := m.detailBomID
		if bomID == "" {
			return nil
		}
		return tea.Batch(
			m.dispatchCmd(func(ctx context.Context) error { return dispatcher.LoadBomDetail(ctx, bomID) }),
			m.dispatchCmd(func(ctx context.Context) error { return dispatcher.LoadBomReadiness(ctx, bomID) }),
		)
	case ViewComplianceDetail:
		recordID := m.detailComplianceID
		if recordID == "" {
			return nil
		}
		return m.dispatchCmd(func(ctx context.Context) error {
			return dispatcher.LoadComplianceRecord(ctx, recordID)
		})
	}
	return m.loadView(m.view)
}

// loadView dispatches the fetch operation behind a list view with its
// current query.
func (m Model) loadView(v View) tea.Cmd {
	dispatcher := m.dispatcher
	query := m.queries[v]
	switch v {
	case ViewBoms:
		return m.dispatchCmd(func(ctx context.Context) error { return dispatcher.LoadBoms(ctx, query) })
	case ViewAllocations:
		return m.dispatchCmd(func(ctx context.Context) error { return dispatcher.LoadAllocations(ctx, query) })
	case ViewOrders:
		return m.dispatchCmd(func(ctx context.Context) error { return dispatcher.LoadOrders(ctx, query) })
	case ViewPricing:
		return m.dispatchCmd(func(ctx context.Context) error { return dispatcher.LoadPricing(ctx, query) })
	case ViewProducts:
		return m.dispatchCmd(func(ctx context.Context) error { return dispatcher.LoadProducts(ctx, query) })
	case ViewCompliance:
		return m.dispatchCmd(func(ctx context.Context) error { return dispatcher.LoadCompliance(ctx, query) })
	}
	return nil
}

func (m Model) selectedOrder() (forgeline.Order, bool) {
	items := m.snaps.orders.Data.Items
	idx := m.selected[ViewOrders]
	if idx < 0 || idx >= len(items) {
		return forgeline.Order{}, false
	}
	return items[idx], true
}

func (m Model) rowCount(v View) int {
	switch v {
	case ViewBoms:
		return len(m.snaps.boms.Data.Items)
	case ViewAllocations:
		return len(m.snaps.allocations.Data.Items)
	case ViewOrders:
		return len(m.snaps.orders.Data.Items)
	case ViewPricing:
		return len(m.snaps.pricing.Data.Items)
	case ViewProducts:
		return len(m.snaps.products.Data.Items)
	case ViewCompliance:
		return len(m.snaps.compliance.Data.Items)
	}
	return 0
}

func (m Model) viewHasData(v View) bool {
	switch v {
	case ViewBoms:
		return m.snaps.boms.HasData
	case ViewAllocations:
		return m.snaps.allocations.HasData
	case ViewOrders:
		return m.snaps.orders.HasData
	case ViewPricing:
		return m.snaps.pricing.HasData
	case ViewProducts:
		return m.snaps.products.HasData
	case ViewCompliance:
		return m.snaps.compliance.HasData
	}
	return false
}

func (m Model) viewLoading(v View) bool {
	switch v {
	case ViewBoms:
		return m.snaps.boms.Loading
	case ViewAllocations:
		return m.snaps.allocations.Loading
	case ViewOrders:
		return m.snaps.orders.Loading
	case ViewPricing:
		return m.snaps.pricing.Loading
	case ViewProducts:
		return m.snaps.products.Loading
	case ViewCompliance:
		return m.snaps.compliance.Loading
	}
	return false
}

func (m Model) viewPageInfo(v View) resource.PageInfo {
	switch v {
	case ViewBoms:
		return m.snaps.boms.Data.Page
	case ViewAllocations:
		return m.snaps.allocations.Data.Page
	case ViewOrders:
		return m.snaps.orders.Data.Page
	case ViewPricing:
		return m.snaps.pricing.Data.Page
	case ViewProducts:
		return m.snaps.products.Data.Page
	case ViewCompliance:
		return m.snaps.compliance.Data.Page
	}
	return resource.PageInfo{}
}
