package panels

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zappabad/sentimentdash/internal/stock"
	"github.com/zappabad/sentimentdash/tui/format"
	"github.com/zappabad/sentimentdash/tui/styles"
)

const maxSampleText = 100

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// TimelinePanel lists recent sentiment samples in a scrollable viewport.
type TimelinePanel struct {
	fmt      format.Formatter
	samples  []stock.SentimentSample
	viewport viewport.Model
	scroll   key.Binding // vertical only; left and right belong to the selector
	width    int
	height   int
}

// NewTimelinePanel creates a new timeline panel.
func NewTimelinePanel(f format.Formatter) *TimelinePanel {
	return &TimelinePanel{
		fmt:      f,
		viewport: viewport.New(0, 0),
		scroll:   key.NewBinding(key.WithKeys("up", "k", "down", "j", "pgup", "pgdown")),
	}
}

// Init initializes the panel.
func (p *TimelinePanel) Init() tea.Cmd {
	return nil
}

// Update scrolls the timeline.
func (p *TimelinePanel) Update(msg tea.Msg) (*TimelinePanel, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !p.Visible() || !key.Matches(km, p.scroll) {
		return p, nil
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// SetSamples replaces the listed samples and scrolls back to the top. The
// scroll position is kept when the samples are unchanged.
func (p *TimelinePanel) SetSamples(samples []stock.SentimentSample) {
	if slices.EqualFunc(p.samples, samples, sameSample) {
		return
	}
	p.samples = samples
	p.viewport.SetContent(p.renderRows())
	p.viewport.GotoTop()
}

func sameSample(a, b stock.SentimentSample) bool {
	return a.Score == b.Score && a.Text == b.Text && a.Timestamp.Equal(b.Timestamp.Time)
}

// sampleText flattens s onto one line and cuts it to maxSampleText runes.
func sampleText(s string) string {
	s = lineBreaks.Replace(s)
	if r := []rune(s); len(r) > maxSampleText {
		return string(r[:maxSampleText]) + "..."
	}
	return s
}

// Visible reports whether there is anything to show.
func (p *TimelinePanel) Visible() bool {
	return len(p.samples) > 0
}

func (p *TimelinePanel) renderRows() string {
	var b strings.Builder
	for i, s := range p.samples {
		score := styles.ScoreStyle(s.Score).Render(format.Score(s.Score))
		when := styles.TimeStyle.Render(p.fmt.TimeOfDay(s.Timestamp))
		b.WriteString(score + "  " + sampleText(s.Text) + "  " + when)
		if i < len(p.samples)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// View renders the panel, or nothing when there are no samples.
func (p *TimelinePanel) View() string {
	if !p.Visible() {
		return ""
	}
	title := styles.RenderTitle("📊 Recent Sentiment Timeline")
	panel := lipgloss.JoinVertical(lipgloss.Left, title, p.viewport.View())
	return styles.PanelStyle.Width(max(p.width-2, 0)).Render(panel)
}

// SetSize sets the panel dimensions.
func (p *TimelinePanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	// border, padding and title
	p.viewport.Width = max(width-4, 0)
	p.viewport.Height = max(height-3, 1)
	p.viewport.SetContent(p.renderRows())
}
