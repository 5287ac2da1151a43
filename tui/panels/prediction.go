package panels

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/zappabad/sentimentdash/internal/stock"
	"github.com/zappabad/sentimentdash/tui/format"
	"github.com/zappabad/sentimentdash/tui/styles"
)

// PredictionPanel displays the model's direction forecast.
type PredictionPanel struct {
	card
	prediction *stock.Prediction
}

// NewPredictionPanel creates a new prediction panel.
func NewPredictionPanel(f format.Formatter) *PredictionPanel {
	return &PredictionPanel{card: card{title: "🤖 ML Prediction", fmt: f}}
}

// SetPrediction sets the prediction; nil shows the loading placeholder.
func (p *PredictionPanel) SetPrediction(pr *stock.Prediction) {
	p.prediction = pr
}

// View renders the panel.
func (p *PredictionPanel) View() string {
	if p.prediction == nil {
		return p.renderLoading()
	}
	pr := p.prediction
	body := lipgloss.JoinVertical(lipgloss.Left,
		directionStyle(pr.Prediction).Render(format.PredictionIndicator(pr.Prediction)+" "+string(pr.Prediction)),
		styles.DetailStyle.Render("Confidence: "+format.Confidence(pr.Confidence)),
		styles.TimeStyle.Render("Generated: "+p.fmt.TimeOfDay(pr.Timestamp)),
	)
	return p.render(body)
}

func directionStyle(d stock.Direction) lipgloss.Style {
	switch d {
	case stock.DirectionUp:
		return styles.PositiveStyle
	case stock.DirectionDown:
		return styles.NegativeStyle
	default:
		return styles.NeutralStyle
	}
}
