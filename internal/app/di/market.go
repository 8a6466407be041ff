// Package di provides dependency injection factories for creating application components.
package di

import (
	"fmt"
	"time"

	"stock_prediction/internal/app/config"
	candleusecase "stock_prediction/internal/feature/candles/usecase"
	"stock_prediction/internal/platform/externalapi/twelvedata"
	"stock_prediction/internal/platform/externalapi/yahoo"
	infrahttp "stock_prediction/internal/platform/http"
	"stock_prediction/internal/shared/ratelimiter"
)

// NewMarket はMARKET_PROVIDERに応じたMarketRepositoryをHTTPクライアント付きで生成します。
func NewMarket(cfg config.MarketConfig) (candleusecase.MarketRepository, error) {
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)

	switch cfg.Provider {
	case config.ProviderYahoo:
		return yahoo.NewYahooMarket(yahoo.Config{
			BaseURL: cfg.YahooBaseURL,
			Timeout: cfg.Timeout,
		}, httpClient), nil
	case config.ProviderTwelveData:
		return twelvedata.NewTwelveDataMarket(twelvedata.Config{
			TwelveDataAPIKey: cfg.TwelveDataAPIKey,
			BaseURL:          cfg.TwelveDataBaseURL,
			Timeout:          cfg.Timeout,
		}, httpClient), nil
	default:
		return nil, fmt.Errorf("unknown market provider %q", cfg.Provider)
	}
}

// NewRateLimiter limits provider calls per minute. 0 disables throttling.
func NewRateLimiter(cfg config.MarketConfig) *ratelimiter.RateLimiter {
	return ratelimiter.NewRateLimiter(cfg.RateLimit, time.Minute)
}
