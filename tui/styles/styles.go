package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	// Primary colors
	PrimaryColor = lipgloss.Color("#7C3AED") // Purple
	AccentColor  = lipgloss.Color("#F59E0B") // Amber

	// Status colors
	PositiveColor = lipgloss.Color("#10B981") // Green
	NegativeColor = lipgloss.Color("#EF4444") // Red
	NeutralColor  = lipgloss.Color("#6B7280") // Gray

	// Background colors
	BackgroundColor = lipgloss.Color("#1F2937")
	BorderColor     = lipgloss.Color("#374151")

	// Text colors
	TextColor          = lipgloss.Color("#F9FAFB")
	TextSecondaryColor = lipgloss.Color("#9CA3AF")
	TextMutedColor     = lipgloss.Color("#6B7280")
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Padding(0, 1)
)

// Card value styles
var (
	BigValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	PositiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PositiveColor)

	NegativeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(NegativeColor)

	NeutralStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AccentColor)

	DetailStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor)

	TimeStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(TextMutedColor)
)

// Selector styles
var (
	SymbolStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	SelectedSymbolStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(TextColor).
				Background(PrimaryColor).
				Padding(0, 1)

	ButtonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Border(lipgloss.NormalBorder(), false, true).
			BorderForeground(PositiveColor).
			Padding(0, 1)

	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(TextMutedColor).
				Border(lipgloss.NormalBorder(), false, true).
				BorderForeground(BorderColor).
				Padding(0, 1)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(BackgroundColor).
			Foreground(TextSecondaryColor).
			Padding(0, 1)
)

// RenderTitle renders a title bar for a panel.
func RenderTitle(title string) string {
	return TitleStyle.Render(title)
}

// ScoreStyle picks the positive or negative style by sign. Zero is positive.
func ScoreStyle(v float64) lipgloss.Style {
	if v >= 0 {
		return PositiveStyle
	}
	return NegativeStyle
}
