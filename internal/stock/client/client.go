package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/zappabad/sentimentdash/internal/httputil"
	"github.com/zappabad/sentimentdash/internal/stock"
)

// Resource names one of the per-symbol API routes.
type Resource string

const (
	ResourcePrice      Resource = "price"
	ResourceSentiment  Resource = "sentiment"
	ResourcePrediction Resource = "prediction"
)

// FetchError is returned for any failed read: transport failure, non-2xx
// status or an undecodable body.
type FetchError struct {
	Resource Resource
	Symbol   string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s for %s: %v", e.Resource, e.Symbol, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client reads quotes, sentiment and predictions from the stock API.
type Client struct {
	base       *url.URL
	httpClient *http.Client
	retry      httputil.RetryConfig
	logger     *zap.Logger
}

// New creates a Client. BaseURL must be an absolute http(s) URL.
func New(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultConfig().BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", cfg.BaseURL)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		base:       base,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		retry:      cfg.Retry,
		logger:     logger,
	}, nil
}

// Price returns the latest quote for symbol.
func (c *Client) Price(ctx context.Context, symbol string) (stock.StockQuote, error) {
	var q stock.StockQuote
	err := c.getJSON(ctx, symbol, ResourcePrice, &q)
	return q, err
}

// Sentiment returns the sentiment summary for symbol.
func (c *Client) Sentiment(ctx context.Context, symbol string) (stock.SentimentSummary, error) {
	var s stock.SentimentSummary
	err := c.getJSON(ctx, symbol, ResourceSentiment, &s)
	return s, err
}

// Prediction returns the model's direction forecast for symbol.
func (c *Client) Prediction(ctx context.Context, symbol string) (stock.Prediction, error) {
	var p stock.Prediction
	err := c.getJSON(ctx, symbol, ResourcePrediction, &p)
	return p, err
}

// Ping checks that the API root answers with a 2xx status.
func (c *Client) Ping(ctx context.Context) error {
	u := c.base.JoinPath("/")
	resp, err := httputil.Do(ctx, c.httpClient, httputil.NoRetry, c.logger, func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	})
	if err != nil {
		return fmt.Errorf("ping %s: %w", u, err)
	}
	defer resp.Body.Close()
	if err := httputil.CheckStatus(resp); err != nil {
		return fmt.Errorf("ping %s: %w", u, err)
	}
	return nil
}

// URL returns the route for a resource of symbol.
func (c *Client) URL(symbol string, res Resource) string {
	return c.base.JoinPath("stocks", symbol, string(res)).String()
}

func (c *Client) getJSON(ctx context.Context, symbol string, res Resource, out any) error {
	u := c.URL(symbol, res)

	resp, err := httputil.Do(ctx, c.httpClient, c.retry, c.logger, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return &FetchError{Resource: res, Symbol: symbol, Err: err}
	}
	defer resp.Body.Close()

	if err := httputil.CheckStatus(resp); err != nil {
		return &FetchError{Resource: res, Symbol: symbol, Err: err}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{Resource: res, Symbol: symbol, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}
