package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/zappabad/sentimentdash/internal/dashboard"
	"github.com/zappabad/sentimentdash/internal/stock"
)

// API is the read side of the stock API.
type API interface {
	Price(ctx context.Context, symbol string) (stock.StockQuote, error)
	Sentiment(ctx context.Context, symbol string) (stock.SentimentSummary, error)
	Prediction(ctx context.Context, symbol string) (stock.Prediction, error)
}

// Fetcher runs one fetch cycle: three concurrent reads joined all-or-nothing.
type Fetcher struct {
	api API
}

// NewFetcher creates a Fetcher over api.
func NewFetcher(api API) *Fetcher {
	return &Fetcher{api: api}
}

// Fetch reads price, sentiment and prediction for symbol concurrently.
// The first failure cancels the remaining reads and is returned.
func (f *Fetcher) Fetch(ctx context.Context, symbol string) (dashboard.Result, error) {
	g, gctx := errgroup.WithContext(ctx)

	var r dashboard.Result
	g.Go(func() error {
		q, err := f.api.Price(gctx, symbol)
		if err != nil {
			return err
		}
		r.Quote = q
		return nil
	})
	g.Go(func() error {
		s, err := f.api.Sentiment(gctx, symbol)
		if err != nil {
			return err
		}
		r.Sentiment = s
		return nil
	})
	g.Go(func() error {
		p, err := f.api.Prediction(gctx, symbol)
		if err != nil {
			return err
		}
		r.Prediction = p
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.Result{}, err
	}
	return r, nil
}
