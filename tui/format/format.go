// Package format turns dashboard values into display strings.
package format

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/zappabad/sentimentdash/internal/stock"
)

// Indicators shown next to sentiment and prediction values.
const (
	IndicatorRising  = "📈"
	IndicatorFalling = "📉"
	IndicatorRocket  = "🚀"
)

// Regions whose clocks read 12-hour with AM/PM.
var twelveHourRegions = map[string]bool{
	"US": true, "CA": true, "AU": true, "NZ": true, "IN": true, "PH": true,
}

// Formatter formats values for one locale.
type Formatter struct {
	printer  *message.Printer
	clock    string
	location *time.Location
}

// New creates a Formatter for tag, rendering times in the local zone.
func New(tag language.Tag) Formatter {
	clock := "15:04:05"
	if region, _ := tag.Region(); twelveHourRegions[region.String()] {
		clock = "3:04:05 PM"
	}
	return Formatter{
		printer:  message.NewPrinter(tag),
		clock:    clock,
		location: time.Local,
	}
}

// In returns a copy of f that renders times in loc.
func (f Formatter) In(loc *time.Location) Formatter {
	f.location = loc
	return f
}

// Price renders a price with a dollar prefix, rounded to cents.
func (f Formatter) Price(p decimal.Decimal) string {
	return "$" + p.StringFixed(2)
}

// Volume renders a count with locale grouping separators.
func (f Formatter) Volume(v int64) string {
	return f.printer.Sprintf("%d", v)
}

// TimeOfDay renders the clock time of ts.
func (f Formatter) TimeOfDay(ts stock.Timestamp) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.In(f.location).Format(f.clock)
}

// Clock renders the clock time of t.
func (f Formatter) Clock(t time.Time) string {
	return f.TimeOfDay(stock.Timestamp{Time: t})
}

// Score renders a sentiment score with three decimals.
func Score(v float64) string {
	return fmt.Sprintf("%.3f", v)
}

// Positive reports whether a score counts as positive. Zero is positive.
func Positive(v float64) bool {
	return v >= 0
}

// SentimentIndicator returns the rising indicator for positive scores.
func SentimentIndicator(v float64) string {
	if Positive(v) {
		return IndicatorRising
	}
	return IndicatorFalling
}

// Confidence renders a [0,1] confidence as a percentage with one decimal.
func Confidence(c float64) string {
	return fmt.Sprintf("%.1f%%", c*100)
}

// PredictionIndicator returns the rocket for exactly "UP" and the falling
// indicator for everything else.
func PredictionIndicator(d stock.Direction) string {
	if d == stock.DirectionUp {
		return IndicatorRocket
	}
	return IndicatorFalling
}
