package panels

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/zappabad/sentimentdash/tui/format"
	"github.com/zappabad/sentimentdash/tui/styles"
)

// card holds what every data card shares: size, formatter and the loading
// placeholder shown until data arrives.
type card struct {
	title       string
	fmt         format.Formatter
	placeholder string
	width       int
	height      int
}

// SetSize sets the panel dimensions.
func (c *card) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// SetPlaceholder sets the text shown while the card has no data.
func (c *card) SetPlaceholder(s string) {
	c.placeholder = s
}

func (c *card) render(body string) string {
	title := styles.RenderTitle(c.title)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, body)
	return styles.PanelStyle.Width(max(c.width-2, 0)).Height(max(c.height-2, 0)).Render(panel)
}

func (c *card) renderLoading() string {
	placeholder := c.placeholder
	if placeholder == "" {
		placeholder = "Loading..."
	}
	return c.render(styles.PlaceholderStyle.Render(placeholder))
}
