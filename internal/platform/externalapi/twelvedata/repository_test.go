package twelvedata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stock_prediction/internal/feature/candles/domain"
	"stock_prediction/internal/feature/candles/domain/entity"
)

func TestNewTwelveDataMarket(t *testing.T) {
	t.Parallel()

	market := NewTwelveDataMarket(Config{TwelveDataAPIKey: "test-key"}, &http.Client{})

	if market == nil {
		t.Fatal("expected non-nil market")
	}
	if market.cfg.BaseURL != DefaultBaseURL {
		t.Errorf("expected default base URL %q, got %q", DefaultBaseURL, market.cfg.BaseURL)
	}
	if market.Name() != "twelvedata" {
		t.Errorf("expected name twelvedata, got %q", market.Name())
	}
}

func TestTwelveDataMarket_GetDailyBars_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path != "/time_series" {
			t.Errorf("expected path /time_series, got %s", r.URL.Path)
		}
		if q.Get("symbol") != "AAPL" {
			t.Errorf("expected symbol AAPL, got %s", q.Get("symbol"))
		}
		if q.Get("interval") != "1day" {
			t.Errorf("expected interval 1day, got %s", q.Get("interval"))
		}
		if q.Get("outputsize") != "253" {
			t.Errorf("expected outputsize 253, got %s", q.Get("outputsize"))
		}
		if q.Get("apikey") != "test-key" {
			t.Errorf("expected apikey test-key, got %s", q.Get("apikey"))
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "ok",
			"meta": {"symbol": "AAPL", "interval": "1day", "exchange_timezone": "America/New_York"},
			"values": [
				{"datetime": "2025-01-14", "open": "148.00", "high": "151.00", "low": "147.50", "close": "150.00", "volume": "900000"},
				{"datetime": "2025-01-15", "open": "150.00", "high": "155.00", "low": "149.00", "close": "154.50", "volume": ""}
			]
		}`))
	}))
	defer server.Close()

	market := NewTwelveDataMarket(Config{TwelveDataAPIKey: "test-key", BaseURL: server.URL}, server.Client())
	bars, err := market.GetDailyBars(context.Background(), "AAPL", entity.Period1Y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
	if bars[1].Close != 154.50 {
		t.Errorf("expected close 154.50, got %v", bars[1].Close)
	}
	if bars[1].Volume != 0 {
		t.Errorf("expected empty volume to parse as 0, got %d", bars[1].Volume)
	}
	if bars[0].Volume != 900000 {
		t.Errorf("expected volume 900000, got %d", bars[0].Volume)
	}
	if got := bars[0].Time.Location().String(); got != "America/New_York" {
		t.Errorf("expected exchange timezone, got %s", got)
	}
}

func TestTwelveDataMarket_GetDailyBars_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:    "unknown symbol in body",
			status:  http.StatusOK,
			body:    `{"status":"error","code":400,"message":"**symbol** not found: NOTREAL"}`,
			wantErr: domain.ErrSymbolNotFound,
		},
		{
			name:    "http 404",
			status:  http.StatusNotFound,
			body:    `{}`,
			wantErr: domain.ErrSymbolNotFound,
		},
		{
			name:    "rate limited in body",
			status:  http.StatusOK,
			body:    `{"status":"error","code":429,"message":"run out of API credits"}`,
			wantErr: domain.ErrUpstreamUnavailable,
		},
		{
			name:    "http 500",
			status:  http.StatusInternalServerError,
			body:    `oops`,
			wantErr: domain.ErrUpstreamUnavailable,
		},
		{
			name:    "invalid json",
			status:  http.StatusOK,
			body:    `{not json`,
			wantErr: domain.ErrUpstreamUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			market := NewTwelveDataMarket(Config{BaseURL: server.URL}, server.Client())
			_, err := market.GetDailyBars(context.Background(), "NOTREAL", entity.Period1Y)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestTwelveDataMarket_GetDailyBars_InvalidNumber(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","values":[{"datetime":"2025-01-15","open":"abc","high":"1","low":"1","close":"1","volume":"1"}]}`))
	}))
	defer server.Close()

	market := NewTwelveDataMarket(Config{BaseURL: server.URL}, server.Client())
	if _, err := market.GetDailyBars(context.Background(), "AAPL", entity.Period1Y); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestTwelveDataMarket_GetDailyBars_ContextCanceled(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	market := NewTwelveDataMarket(Config{BaseURL: server.URL}, server.Client())
	_, err := market.GetDailyBars(ctx, "AAPL", entity.Period1Y)
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Errorf("expected upstream unavailable, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled in chain, got %v", err)
	}
}

func TestTwelveDataMarket_GetDailyBars_NonFiniteRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		wantBars int
		wantErr  error
	}{
		{
			name: "non-finite rows are skipped",
			body: `{"status":"ok","values":[
				{"datetime":"2025-01-14","open":"NaN","high":"1","low":"1","close":"1","volume":"1"},
				{"datetime":"2025-01-15","open":"1","high":"Inf","low":"1","close":"1","volume":"1"},
				{"datetime":"2025-01-16","open":"1","high":"2","low":"0.5","close":"1.5","volume":"1"}
			]}`,
			wantBars: 1,
		},
		{
			name:    "only non-finite rows",
			body:    `{"status":"ok","values":[{"datetime":"2025-01-14","open":"1","high":"1","low":"1","close":"-Inf","volume":"1"}]}`,
			wantErr: domain.ErrNoData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			market := NewTwelveDataMarket(Config{BaseURL: server.URL}, server.Client())
			bars, err := market.GetDailyBars(context.Background(), "AAPL", entity.Period1Y)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(bars) != tt.wantBars {
				t.Fatalf("expected %d bars, got %d", tt.wantBars, len(bars))
			}
			if bars[0].Close != 1.5 {
				t.Errorf("expected close 1.5, got %v", bars[0].Close)
			}
		})
	}
}

func TestNewTwelveDataMarket_NilClientUsesTimeout(t *testing.T) {
	t.Parallel()

	market := NewTwelveDataMarket(Config{Timeout: 3 * time.Second}, nil)
	if market.client == nil {
		t.Fatal("expected a client to be created")
	}
	if market.client.Timeout != 3*time.Second {
		t.Errorf("expected timeout 3s, got %v", market.client.Timeout)
	}

	def := NewTwelveDataMarket(Config{}, nil)
	if def.client.Timeout != 10*time.Second {
		t.Errorf("expected default timeout 10s, got %v", def.client.Timeout)
	}
}
