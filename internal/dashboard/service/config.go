package service

import (
	"time"

	"github.com/zappabad/sentimentdash/internal/stock"
)

// Config holds configuration for the dashboard service.
type Config struct {
	// Symbols is the selectable set. The first entry is selected on start.
	Symbols []stock.Symbol
	// CycleTimeout bounds one fetch cycle (all three requests).
	CycleTimeout time.Duration
	// EventBuffer is the size of the snapshot events channel.
	EventBuffer int
	// DropEvents discards the oldest buffered snapshot on overflow instead
	// of blocking.
	DropEvents bool
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Symbols: []stock.Symbol{
			{Ticker: "AAPL", Name: "Apple"},
			{Ticker: "GOOGL", Name: "Google"},
			{Ticker: "MSFT", Name: "Microsoft"},
		},
		CycleTimeout: 15 * time.Second,
		EventBuffer:  64,
		DropEvents:   true,
	}
}
