package dashboard

import (
	"time"

	"github.com/zappabad/sentimentdash/internal/stock"
)

// Token identifies one fetch cycle. Zero is never issued.
type Token uint64

// Result is the outcome of a successful fetch cycle.
type Result struct {
	Quote      stock.StockQuote
	Sentiment  stock.SentimentSummary
	Prediction stock.Prediction
}

// Snapshot is an immutable view of the dashboard handed to the renderer.
// Nil data slots mean no cycle has succeeded yet.
type Snapshot struct {
	Selected   stock.Symbol
	Quote      *stock.StockQuote
	Sentiment  *stock.SentimentSummary
	Prediction *stock.Prediction
	Loading    bool
	UpdatedAt  time.Time
	Failures   int
	// Token is the latest cycle started when the snapshot was taken.
	Token Token
	// Version increases with every state change.
	Version uint64
}

// State holds the dashboard data slots. It is not safe for concurrent use;
// callers serialize access.
type State struct {
	selected   stock.Symbol
	quote      *stock.StockQuote
	sentiment  *stock.SentimentSummary
	prediction *stock.Prediction
	loading    bool
	updatedAt  time.Time
	failures   int
	version    uint64

	current Token
}

// NewState creates an empty state with sym selected.
func NewState(sym stock.Symbol) *State {
	return &State{selected: sym}
}

// Begin starts a fetch cycle for sym, making it the selected symbol, and
// returns the cycle's token. Any earlier token becomes stale.
func (s *State) Begin(sym stock.Symbol) Token {
	s.current++
	s.selected = sym
	s.loading = true
	s.version++
	return s.current
}

// Current returns the latest issued token.
func (s *State) Current() Token {
	return s.current
}

// Commit replaces all three slots with r if tok is the latest cycle.
// It reports whether the result was applied.
func (s *State) Commit(tok Token, r Result, at time.Time) bool {
	if tok != s.current {
		return false
	}
	quote, sentiment, prediction := r.Quote, r.Sentiment, r.Prediction
	s.quote = &quote
	s.sentiment = &sentiment
	s.prediction = &prediction
	s.loading = false
	s.updatedAt = at
	s.version++
	return true
}

// Fail ends the cycle tok without touching the data slots. It reports
// whether tok was the latest cycle.
func (s *State) Fail(tok Token) bool {
	if tok != s.current {
		return false
	}
	s.loading = false
	s.failures++
	s.version++
	return true
}

// Loading reports whether the latest cycle is still in flight.
func (s *State) Loading() bool {
	return s.loading
}

// Selected returns the selected symbol.
func (s *State) Selected() stock.Symbol {
	return s.selected
}

// Snapshot returns a deep copy of the state.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Selected:  s.selected,
		Loading:   s.loading,
		UpdatedAt: s.updatedAt,
		Failures:  s.failures,
		Token:     s.current,
		Version:   s.version,
	}
	if s.quote != nil {
		q := *s.quote
		snap.Quote = &q
	}
	if s.sentiment != nil {
		sent := *s.sentiment
		sent.LatestSentiments = append([]stock.SentimentSample(nil), s.sentiment.LatestSentiments...)
		snap.Sentiment = &sent
	}
	if s.prediction != nil {
		p := *s.prediction
		snap.Prediction = &p
	}
	return snap
}
