package panels

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/zappabad/sentimentdash/internal/stock"
	"github.com/zappabad/sentimentdash/tui/format"
	"github.com/zappabad/sentimentdash/tui/styles"
)

// SentimentPanel displays the average sentiment score.
type SentimentPanel struct {
	card
	summary *stock.SentimentSummary
}

// NewSentimentPanel creates a new sentiment panel.
func NewSentimentPanel(f format.Formatter) *SentimentPanel {
	return &SentimentPanel{card: card{title: "🧠 Sentiment Analysis", fmt: f}}
}

// SetSummary sets the summary; nil shows the loading placeholder.
func (p *SentimentPanel) SetSummary(s *stock.SentimentSummary) {
	p.summary = s
}

// View renders the panel.
func (p *SentimentPanel) View() string {
	if p.summary == nil {
		return p.renderLoading()
	}
	avg := p.summary.AverageSentiment
	score := styles.ScoreStyle(avg).Render(format.SentimentIndicator(avg) + " " + format.Score(avg))
	body := lipgloss.JoinVertical(lipgloss.Left,
		score,
		styles.DetailStyle.Render(fmt.Sprintf("Based on %d data points", p.summary.SentimentCount)),
	)
	return p.render(body)
}
