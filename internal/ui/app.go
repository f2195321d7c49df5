package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/forgeline/forgetop/internal/config"
	"github.com/forgeline/forgetop/internal/forgeline"
	"github.com/forgeline/forgetop/internal/prefs"
	"github.com/forgeline/forgetop/internal/resource"
	"github.com/forgeline/forgetop/internal/state"
)

// View identifies the active screen.
type View int

const (
	ViewBoms View = iota
	ViewAllocations
	ViewOrders
	ViewPricing
	ViewProducts
	ViewCompliance
	ViewBomDetail
	ViewComplianceDetail
)

var listViews = []View{ViewBoms, ViewAllocations, ViewOrders, ViewPricing, ViewProducts, ViewCompliance}

// Options configures the UI.
type Options struct {
	Context    context.Context
	Dispatcher *state.Dispatcher
	Store      *state.Store
	Config     *config.Config
	PollTick   time.Duration
	ThemeName  string
	PrefsPath  string
}

// snapshots is the UI's read of every container, refreshed as one unit so a
// render pass always sees a coherent store view.
type snapshots struct {
	status           resource.State[forgeline.SystemStatus]
	boms             resource.State[resource.PagedList[forgeline.BomListItem]]
	allocations      resource.State[resource.PagedList[forgeline.Allocation]]
	orders           resource.State[resource.PagedList[forgeline.Order]]
	pricing          resource.State[resource.PagedList[forgeline.PricingRecord]]
	products         resource.State[resource.PagedList[forgeline.Product]]
	compliance       resource.State[resource.PagedList[forgeline.ComplianceRecord]]
	bomDetail        resource.State[forgeline.BomDetail]
	readiness        resource.State[state.ReadinessView]
	complianceDetail resource.State[forgeline.ComplianceRecord]
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	dispatcher *state.Dispatcher
	store      *state.Store
	selectors  *state.Selectors
	config     *config.Config
	prefsPath  string
	pollTick   time.Duration

	// UI state
	theme    Theme
	keys     keyMap
	view     View
	width    int
	height   int
	ready    bool
	showHelp bool

	// Per-list presentation state: current query, selected row. Draft
	// filter text lives in the textinput until submitted.
	queries      map[View]forgeline.ListQuery
	selected     map[View]int
	filterActive bool
	filterInput  textinput.Model
	spin         spinner.Model

	// Data state
	snaps       snapshots
	lastUpdated time.Time

	// Transient mutation feedback for the header
	notice       string
	noticeFailed bool

	detailBomID        string
	detailComplianceID string
}

type (
	tickMsg         time.Time
	storeChangedMsg struct{}
	actionMsg       struct {
		text   string
		failed bool
	}
)

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = time.Second
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	limit := 25
	if opts.Config != nil && opts.Config.PageLimit > 0 {
		limit = opts.Config.PageLimit
	}
	queries := make(map[View]forgeline.ListQuery, len(listViews))
	for _, v := range listViews {
		queries[v] = forgeline.ListQuery{Page: 1, Limit: limit}
	}

	input := textinput.New()
	input.Placeholder = "filter…"
	input.CharLimit = 64

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		ctx:         ctx,
		dispatcher:  opts.Dispatcher,
		store:       opts.Store,
		selectors:   state.NewSelectors(),
		config:      opts.Config,
		prefsPath:   prefsPath,
		pollTick:    pollTick,
		theme:       GetTheme(themeName),
		keys:        DefaultKeyMap(),
		view:        ViewBoms,
		queries:     queries,
		selected:    make(map[View]int, len(listViews)),
		filterInput: input,
		spin:        spin,
	}
}

// Run starts the Bubble Tea program and blocks until exit.
func Run(opts Options) error {
	program := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.pollTick),
		m.spin.Tick,
		func() tea.Msg { return storeChangedMsg{} },
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filterActive {
			return m.handleFilterKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		m.refreshSnapshots()
		cmds := []tea.Cmd{tickCmd(m.pollTick)}
		// Keep the visible list current on the same cadence as the status
		// poll. First loads and in-flight fetches are left alone.
		if m.isListView() && !m.filterActive && m.viewHasData(m.view) && !m.viewLoading(m.view) {
			cmds = append(cmds, m.loadView(m.view))
		}
		return m, tea.Batch(cmds...)

	case storeChangedMsg:
		m.refreshSnapshots()
		m.clampSelection()
		return m, nil

	case actionMsg:
		m.notice = msg.text
		m.noticeFailed = msg.failed
		m.refreshSnapshots()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

func (m *Model) refreshSnapshots() {
	m.snaps = snapshots{
		status:           m.store.Status.Snapshot(),
		boms:             m.store.Boms.Snapshot(),
		allocations:      m.store.Allocations.Snapshot(),
		orders:           m.store.Orders.Snapshot(),
		pricing:          m.store.Pricing.Snapshot(),
		products:         m.store.Products.Snapshot(),
		compliance:       m.store.Compliance.Snapshot(),
		bomDetail:        m.store.BomDetail.Snapshot(),
		readiness:        m.store.Readiness.Snapshot(),
		complianceDetail: m.store.ComplianceDetail.Snapshot(),
	}
	m.lastUpdated = time.Now()
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// dispatchCmd runs one fetch operation off the UI goroutine and reports
// back so the model re-reads its snapshots.
func (m Model) dispatchCmd(fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		_ = fn(ctx)
		return storeChangedMsg{}
	}
}

func (m Model) allocateCmd(order forgeline.Order) tea.Cmd {
	ctx, dispatcher := m.ctx, m.dispatcher
	return func() tea.Msg {
		result, err := dispatcher.Allocate(ctx, order.ID, forgeline.AllocateRequest{})
		if err != nil {
			return actionMsg{text: fmt.Sprintf("Allocate %s failed", order.OrderNumber), failed: true}
		}
		return actionMsg{text: fmt.Sprintf("Allocated %s: %d allocation(s)", order.OrderNumber, len(result.AllocationIDs))}
	}
}

func (m Model) confirmCmd(order forgeline.Order) tea.Cmd {
	ctx, dispatcher := m.ctx, m.dispatcher
	req := forgeline.ConfirmRequest{
		OrderStatus:       "closed",
		ShipmentStatus:    "shipped",
		FulfillmentStatus: "fulfilled",
		AllocationStatus:  "released",
	}
	return func() tea.Msg {
		updated, err := dispatcher.ConfirmFulfillment(ctx, order.ID, req)
		if err != nil {
			return actionMsg{text: fmt.Sprintf("Confirm %s failed", order.OrderNumber), failed: true}
		}
		return actionMsg{text: fmt.Sprintf("Confirmed %s: %s", updated.OrderNumber, updated.FulfillmentStatus)}
	}
}
