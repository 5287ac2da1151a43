package stock

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseSymbol(t *testing.T) {
	sym, err := ParseSymbol(" aapl:Apple ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sym.Ticker != "AAPL" || sym.Name != "Apple" {
		t.Errorf("unexpected symbol %+v", sym)
	}
	if sym.Label() != "Apple (AAPL)" {
		t.Errorf("expected label 'Apple (AAPL)', got %q", sym.Label())
	}

	bare, err := ParseSymbol("msft")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bare.Label() != "MSFT" {
		t.Errorf("expected label MSFT, got %q", bare.Label())
	}

	for _, bad := range []string{"", ":Apple", "BRK A", "A/B"} {
		if _, err := ParseSymbol(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestTimestampLayouts(t *testing.T) {
	cases := map[string]time.Time{
		`"2024-03-01T14:30:00Z"`:              time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC),
		`"2024-03-01T14:30:00.123456"`:        time.Date(2024, 3, 1, 14, 30, 0, 123456000, time.UTC),
		`"2024-03-01 14:30:00"`:               time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC),
		`"2024-03-01T09:30:00-05:00"`:         time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC),
		`"2024-03-01T14:30:00.5+00:00"`:       time.Date(2024, 3, 1, 14, 30, 0, 500000000, time.UTC),
		`"2024-03-01 14:30:00.123456+00:00"`: time.Date(2024, 3, 1, 14, 30, 0, 123456000, time.UTC),
	}
	for raw, want := range cases {
		var ts Timestamp
		if err := json.Unmarshal([]byte(raw), &ts); err != nil {
			t.Errorf("%s: unexpected error: %v", raw, err)
			continue
		}
		if !ts.Equal(want) {
			t.Errorf("%s: expected %v, got %v", raw, want, ts.Time)
		}
	}

	var ts Timestamp
	if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Error("expected error for unparseable timestamp")
	}
	if err := json.Unmarshal([]byte(`null`), &ts); err != nil || !ts.IsZero() {
		t.Errorf("expected zero timestamp for null, got %v (err %v)", ts, err)
	}
}

func TestDecodeDTOs(t *testing.T) {
	raw := `{"symbol":"AAPL","price":189.25,"volume":1234567,"timestamp":"2024-03-01T14:30:00"}`
	var q StockQuote
	if err := json.Unmarshal([]byte(raw), &q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Price.StringFixed(2) != "189.25" {
		t.Errorf("expected price 189.25, got %s", q.Price)
	}
	if q.Volume != 1234567 {
		t.Errorf("expected volume 1234567, got %d", q.Volume)
	}

	raw = `{"symbol":"AAPL","average_sentiment":0.412,"sentiment_count":10,
		"latest_sentiments":[{"score":-0.2,"text":"meh","timestamp":"2024-03-01T14:30:00"}]}`
	var s SentimentSummary
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.LatestSentiments) != 1 || s.LatestSentiments[0].Text != "meh" {
		t.Errorf("unexpected samples %+v", s.LatestSentiments)
	}

	raw = `{"symbol":"AAPL","prediction":"SIDEWAYS","confidence":0.5,"timestamp":"2024-03-01T14:30:00"}`
	var p Prediction
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Prediction != "SIDEWAYS" {
		t.Errorf("expected unknown direction to be kept, got %q", p.Prediction)
	}
}
