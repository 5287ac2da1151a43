package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"github.com/zappabad/sentimentdash/internal/dashboard"
	"github.com/zappabad/sentimentdash/internal/stock"
	"github.com/zappabad/sentimentdash/tui/format"
	"github.com/zappabad/sentimentdash/tui/panels"
	"github.com/zappabad/sentimentdash/tui/styles"
)

const (
	cardHeight     = 7
	selectorHeight = 3
)

// Dashboard is the fetch service the model drives.
type Dashboard interface {
	Symbols() []stock.Symbol
	Select(ticker string) (dashboard.Token, error)
	Refresh() (dashboard.Token, bool)
	Snapshot() dashboard.Snapshot
	Events() <-chan dashboard.Snapshot
}

// Options configures the model.
type Options struct {
	// RefreshInterval re-fetches the selected symbol periodically. Zero
	// disables auto-refresh.
	RefreshInterval time.Duration
	Formatter       format.Formatter
}

// DefaultOptions returns options with auto-refresh off and US formatting.
func DefaultOptions() Options {
	return Options{Formatter: format.New(language.AmericanEnglish)}
}

// Model is the main TUI application model.
type Model struct {
	dash Dashboard
	opts Options

	// Panels
	selectorPanel   *panels.SelectorPanel
	pricePanel      *panels.PricePanel
	sentimentPanel  *panels.SentimentPanel
	predictionPanel *panels.PredictionPanel
	timelinePanel   *panels.TimelinePanel

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	// Latest applied snapshot
	snap    dashboard.Snapshot
	version uint64
	// Latest cycle token returned to this model by Select or Refresh
	issued dashboard.Token

	// Window dimensions
	width  int
	height int

	statusMsg string
	ready     bool
}

// NewModel creates a new TUI model.
func NewModel(dash Dashboard, opts Options) *Model {
	selector := panels.NewSelectorPanel(dash.Symbols())
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = styles.PlaceholderStyle

	m := &Model{
		dash:            dash,
		opts:            opts,
		selectorPanel:   selector,
		pricePanel:      panels.NewPricePanel(opts.Formatter),
		sentimentPanel:  panels.NewSentimentPanel(opts.Formatter),
		predictionPanel: panels.NewPredictionPanel(opts.Formatter),
		timelinePanel:   panels.NewTimelinePanel(opts.Formatter),
		keys:            newKeyMap(selector.Keys()),
		help:            help.New(),
		spinner:         sp,
	}
	m.updatePlaceholders()
	return m
}

// Init selects the first symbol and starts listening for snapshots.
func (m *Model) Init() tea.Cmd {
	m.selectSymbol(m.selectorPanel.Selected())
	cmds := []tea.Cmd{
		m.spinner.Tick,
		m.listenEvents(),
	}
	if m.opts.RefreshInterval > 0 {
		cmds = append(cmds, m.tickRefresh())
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		var cmds []tea.Cmd
		var cmd tea.Cmd
		before := m.selectorPanel.Selected()
		m.selectorPanel, cmd = m.selectorPanel.Update(msg)
		cmds = append(cmds, cmd)
		if after := m.selectorPanel.Selected(); after != before {
			m.selectSymbol(after)
		}
		m.timelinePanel, cmd = m.timelinePanel.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updatePanelSizes()
		m.ready = true
		return m, nil

	case panels.RefreshRequestedMsg:
		if !m.snap.Loading {
			m.refresh()
		}
		return m, nil

	case snapshotMsg:
		m.applySnapshot(dashboard.Snapshot(msg))
		return m, m.listenEvents()

	case eventsClosedMsg:
		return m, nil

	case refreshTickMsg:
		if !m.snap.Loading {
			m.refresh()
		}
		return m, m.tickRefresh()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.updatePlaceholders()
		return m, cmd
	}
	return m, nil
}

// applySnapshot pushes a snapshot into the panels unless a newer one has
// already been applied.
func (m *Model) applySnapshot(snap dashboard.Snapshot) {
	if snap.Version <= m.version {
		return
	}
	m.version = snap.Version
	m.snap = snap
	m.statusMsg = ""

	// A snapshot taken before our latest Select must not move the highlight
	// back to a symbol the user has already left.
	if snap.Token >= m.issued {
		m.selectorPanel.SetSelected(snap.Selected.Ticker)
	}
	m.selectorPanel.SetLoading(snap.Loading)
	m.pricePanel.SetQuote(snap.Quote)
	m.sentimentPanel.SetSummary(snap.Sentiment)
	m.predictionPanel.SetPrediction(snap.Prediction)

	var samples []stock.SentimentSample
	if snap.Sentiment != nil {
		samples = snap.Sentiment.LatestSentiments
	}
	m.timelinePanel.SetSamples(samples)
	m.updatePanelSizes()
}

func (m *Model) updatePlaceholders() {
	placeholder := m.spinner.View() + " Loading..."
	m.pricePanel.SetPlaceholder(placeholder)
	m.sentimentPanel.SetPlaceholder(placeholder)
	m.predictionPanel.SetPlaceholder(placeholder)
}

// View renders the UI.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	// Layout:
	// ┌──────────────────────────────────────────┐
	// │ selector                        [Refresh] │
	// ├─────────────┬──────────────┬─────────────┤
	// │    price    │  sentiment   │ prediction  │
	// ├─────────────┴──────────────┴─────────────┤
	// │ timeline                                  │
	// └──────────────────────────────────────────┘
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.pricePanel.View(),
		m.sentimentPanel.View(),
		m.predictionPanel.View(),
	)

	rows := []string{
		styles.HeaderStyle.Render("📈 Stock Sentiment Dashboard"),
		m.selectorPanel.View(),
		cards,
	}
	if m.timelinePanel.Visible() {
		rows = append(rows, m.timelinePanel.View())
	}
	rows = append(rows, m.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderStatusBar() string {
	status := "Waiting for data"
	if !m.snap.UpdatedAt.IsZero() {
		status = "Updated " + m.opts.Formatter.Clock(m.snap.UpdatedAt)
	}
	if m.statusMsg != "" {
		status += " │ " + m.statusMsg
	}
	return styles.StatusBarStyle.Width(m.width).Render(status + " │ " + m.help.View(m.keys))
}

func (m *Model) updatePanelSizes() {
	leftWidth := m.width / 3
	middleWidth := m.width / 3
	rightWidth := m.width - leftWidth - middleWidth

	m.selectorPanel.SetSize(m.width, selectorHeight)
	m.pricePanel.SetSize(leftWidth, cardHeight)
	m.sentimentPanel.SetSize(middleWidth, cardHeight)
	m.predictionPanel.SetSize(rightWidth, cardHeight)

	// title and status bar take one line each
	timelineHeight := m.height - selectorHeight - cardHeight - 2
	m.timelinePanel.SetSize(m.width, max(timelineHeight, 3))
}

// selectSymbol starts a fetch for sym. Select only spawns the cycle, so it
// runs inline and calls reach the service in key press order.
func (m *Model) selectSymbol(sym stock.Symbol) {
	if sym.Ticker == "" {
		return
	}
	tok, err := m.dash.Select(sym.Ticker)
	if err != nil {
		m.statusMsg = "❌ " + err.Error()
		return
	}
	m.issued = tok
}

func (m *Model) refresh() {
	if tok, ok := m.dash.Refresh(); ok {
		m.issued = tok
	}
}

func (m *Model) listenEvents() tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-m.dash.Events()
		if !ok {
			return eventsClosedMsg{}
		}
		return snapshotMsg(snap)
	}
}

// refreshTickMsg is sent periodically to re-fetch the selected symbol.
type refreshTickMsg struct{}

func (m *Model) tickRefresh() tea.Cmd {
	return tea.Tick(m.opts.RefreshInterval, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

// snapshotMsg carries a state snapshot from the service.
type snapshotMsg dashboard.Snapshot

type eventsClosedMsg struct{}
