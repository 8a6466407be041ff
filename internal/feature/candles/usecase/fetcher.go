// Package usecase implements market-data retrieval and the company detail lookup.
package usecase

import (
	"context"
	"errors"
	"log/slog"

	"stock_prediction/internal/feature/candles/domain"
	"stock_prediction/internal/feature/candles/domain/entity"
	"stock_prediction/internal/shared/ratelimiter"
)

// MarketRepository は株価データを取得するリポジトリのインターフェイスです。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MarketRepository interface {
	// GetDailyBars returns daily bars for symbol covering the trailing period.
	GetDailyBars(ctx context.Context, symbol string, period entity.Period) ([]entity.Bar, error)
	// Name identifies the provider in logs.
	Name() string
}

// Fetcher retrieves bar series from a MarketRepository and converts every failure into
// an "unavailable" result. It never returns an error to its caller.
type Fetcher struct {
	market      MarketRepository
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewFetcher creates a Fetcher. rateLimiter may be nil.
func NewFetcher(market MarketRepository, rateLimiter ratelimiter.RateLimiterInterface) *Fetcher {
	return &Fetcher{market: market, rateLimiter: rateLimiter}
}

// FetchBars returns the chronological bar series for symbol over period.
// The second result is false when the provider failed or returned no bars.
func (f *Fetcher) FetchBars(ctx context.Context, symbol string, period entity.Period) (entity.BarSeries, bool) {
	if f.rateLimiter != nil {
		if err := f.rateLimiter.WaitIfNeeded(ctx); err != nil {
			slog.Error("market data fetch aborted while throttled",
				"provider", f.market.Name(), "symbol", symbol, "kind", "unavailable", "error", err)
			return nil, false
		}
	}

	bars, err := f.market.GetDailyBars(ctx, symbol, period)
	if err != nil {
		slog.Error("failed to fetch market data",
			"provider", f.market.Name(), "symbol", symbol, "period", period, "kind", failureKind(err), "error", err)
		return nil, false
	}

	series := entity.NewBarSeries(bars)
	if len(series) == 0 {
		slog.Error("market data provider returned no bars",
			"provider", f.market.Name(), "symbol", symbol, "period", period, "kind", "empty")
		return nil, false
	}
	return series, true
}

// failureKind classifies a provider error for diagnostics.
func failureKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrSymbolNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrNoData):
		return "empty"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "timeout"
	default:
		return "unavailable"
	}
}
