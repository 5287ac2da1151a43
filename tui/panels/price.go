package panels

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/zappabad/sentimentdash/internal/stock"
	"github.com/zappabad/sentimentdash/tui/format"
	"github.com/zappabad/sentimentdash/tui/styles"
)

// PricePanel displays the latest quote.
type PricePanel struct {
	card
	quote *stock.StockQuote
}

// NewPricePanel creates a new price panel.
func NewPricePanel(f format.Formatter) *PricePanel {
	return &PricePanel{card: card{title: "💵 Current Price", fmt: f}}
}

// SetQuote sets the quote; nil shows the loading placeholder.
func (p *PricePanel) SetQuote(q *stock.StockQuote) {
	p.quote = q
}

// View renders the panel.
func (p *PricePanel) View() string {
	if p.quote == nil {
		return p.renderLoading()
	}
	q := p.quote
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.BigValueStyle.Render(p.fmt.Price(q.Price)),
		styles.DetailStyle.Render("Volume: "+p.fmt.Volume(q.Volume)),
		styles.TimeStyle.Render("Updated: "+p.fmt.TimeOfDay(q.Timestamp)),
	)
	return p.render(body)
}
