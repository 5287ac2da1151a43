package stock

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Symbol is a selectable ticker.
type Symbol struct {
	Ticker string
	Name   string
}

// ParseSymbol parses "AAPL" or "AAPL:Apple". The ticker is upper-cased.
func ParseSymbol(s string) (Symbol, error) {
	ticker, name, _ := strings.Cut(strings.TrimSpace(s), ":")
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return Symbol{}, fmt.Errorf("empty ticker in %q", s)
	}
	if strings.ContainsAny(ticker, " /") {
		return Symbol{}, fmt.Errorf("invalid ticker %q", ticker)
	}
	return Symbol{Ticker: ticker, Name: strings.TrimSpace(name)}, nil
}

// Label returns "Name (TICKER)", or just the ticker when no name is set.
func (s Symbol) Label() string {
	if s.Name == "" {
		return s.Ticker
	}
	return fmt.Sprintf("%s (%s)", s.Name, s.Ticker)
}

// StockQuote is the latest traded price snapshot for a symbol.
type StockQuote struct {
	Symbol    string          `json:"symbol"`
	Price     decimal.Decimal `json:"price"`
	Volume    int64           `json:"volume"`
	Timestamp Timestamp       `json:"timestamp"`
}

// SentimentSample is one scored piece of text.
type SentimentSample struct {
	Score     float64   `json:"score"`
	Text      string    `json:"text"`
	Timestamp Timestamp `json:"timestamp"`
}

// SentimentSummary aggregates recent sentiment for a symbol.
// LatestSentiments is ordered most-recent-first.
type SentimentSummary struct {
	Symbol           string            `json:"symbol"`
	AverageSentiment float64           `json:"average_sentiment"`
	SentimentCount   int               `json:"sentiment_count"`
	LatestSentiments []SentimentSample `json:"latest_sentiments"`
}

// Direction is a predicted price direction. Values other than the
// constants below are kept as received.
type Direction string

const (
	DirectionUp   Direction = "UP"
	DirectionDown Direction = "DOWN"
)

// Prediction is a directional forecast with a confidence in [0,1].
type Prediction struct {
	Symbol     string    `json:"symbol"`
	Prediction Direction `json:"prediction"`
	Confidence float64   `json:"confidence"`
	Timestamp  Timestamp `json:"timestamp"`
}
