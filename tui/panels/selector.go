package panels

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zappabad/sentimentdash/internal/stock"
	"github.com/zappabad/sentimentdash/tui/styles"
)

// RefreshRequestedMsg is emitted when the user asks to re-fetch the
// selected symbol.
type RefreshRequestedMsg struct {
	Symbol stock.Symbol
}

// SelectorKeyMap holds the selector bindings.
type SelectorKeyMap struct {
	Prev    key.Binding
	Next    key.Binding
	Jump    key.Binding
	Refresh key.Binding
}

// DefaultSelectorKeys returns the default selector bindings.
func DefaultSelectorKeys() SelectorKeyMap {
	return SelectorKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev symbol"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next symbol"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

// SelectorPanel shows the configured symbols and the refresh control.
type SelectorPanel struct {
	keys     SelectorKeyMap
	symbols  []stock.Symbol
	selected int
	loading  bool
	width    int
}

// NewSelectorPanel creates a selector over symbols with the first selected.
func NewSelectorPanel(symbols []stock.Symbol) *SelectorPanel {
	return &SelectorPanel{
		keys:    DefaultSelectorKeys(),
		symbols: symbols,
	}
}

// Init initializes the panel.
func (p *SelectorPanel) Init() tea.Cmd {
	return nil
}

// Update handles key presses. Selection keys move the highlight in place
// and emit nothing; Refresh returns a command emitting RefreshRequestedMsg.
func (p *SelectorPanel) Update(msg tea.Msg) (*SelectorPanel, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || len(p.symbols) == 0 {
		return p, nil
	}
	switch {
	case key.Matches(km, p.keys.Prev):
		if p.selected > 0 {
			p.selected--
		}
	case key.Matches(km, p.keys.Next):
		if p.selected < len(p.symbols)-1 {
			p.selected++
		}
	case key.Matches(km, p.keys.Jump):
		n, err := strconv.Atoi(km.String())
		if err == nil && n >= 1 && n <= len(p.symbols) {
			p.selected = n - 1
		}
	case key.Matches(km, p.keys.Refresh):
		if p.loading {
			return p, nil
		}
		sym := p.symbols[p.selected]
		return p, func() tea.Msg { return RefreshRequestedMsg{Symbol: sym} }
	}
	return p, nil
}

// View renders the panel.
func (p *SelectorPanel) View() string {
	var row strings.Builder
	for i, sym := range p.symbols {
		label := strconv.Itoa(i+1) + " " + sym.Label()
		if i == p.selected {
			row.WriteString(styles.SelectedSymbolStyle.Render(label))
		} else {
			row.WriteString(styles.SymbolStyle.Render(label))
		}
	}

	button := styles.ButtonStyle.Render("Refresh")
	if p.loading {
		button = styles.DisabledButtonStyle.Render("Loading...")
	}

	content := lipgloss.JoinHorizontal(lipgloss.Center, row.String(), "  ", button)
	return styles.PanelStyle.Width(max(p.width-2, 0)).Render(content)
}

// SetSelected moves the highlight without emitting a message.
func (p *SelectorPanel) SetSelected(ticker string) {
	for i, sym := range p.symbols {
		if sym.Ticker == ticker {
			p.selected = i
			return
		}
	}
}

// Selected returns the highlighted symbol.
func (p *SelectorPanel) Selected() stock.Symbol {
	if len(p.symbols) == 0 {
		return stock.Symbol{}
	}
	return p.symbols[p.selected]
}

// SetLoading toggles the disabled refresh control.
func (p *SelectorPanel) SetLoading(loading bool) {
	p.loading = loading
}

// Loading reports whether the refresh control is disabled.
func (p *SelectorPanel) Loading() bool {
	return p.loading
}

// Keys returns the selector bindings for the help view.
func (p *SelectorPanel) Keys() SelectorKeyMap {
	return p.keys
}

// SetSize sets the panel width.
func (p *SelectorPanel) SetSize(width, _ int) {
	p.width = width
}
