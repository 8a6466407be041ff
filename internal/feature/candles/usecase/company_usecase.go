package usecase

import (
	"context"
	"strings"

	"stock_prediction/internal/feature/candles/domain/entity"
)

const (
	// DefaultLookback はヒストリカルデータ取得のデフォルト期間です。
	DefaultLookback = entity.Period1Y
	// RecentBarsLimit は会社詳細で返す直近バーの件数です。
	RecentBarsLimit = 30
)

// BarFetcher abstracts the Data Fetcher for consumers of bar series.
type BarFetcher interface {
	FetchBars(ctx context.Context, symbol string, period entity.Period) (entity.BarSeries, bool)
}

// CompanyUsecase serves the company detail view.
type CompanyUsecase struct {
	fetcher  BarFetcher
	lookback entity.Period
}

// NewCompanyUsecase creates a CompanyUsecase. An empty lookback uses DefaultLookback.
func NewCompanyUsecase(fetcher BarFetcher, lookback entity.Period) *CompanyUsecase {
	if lookback == "" {
		lookback = DefaultLookback
	}
	return &CompanyUsecase{fetcher: fetcher, lookback: lookback}
}

// RecentBars returns the normalized symbol and its most recent RecentBarsLimit bars.
// ok is false when no data could be retrieved for the symbol.
func (u *CompanyUsecase) RecentBars(ctx context.Context, symbol string) (string, entity.BarSeries, bool) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return symbol, nil, false
	}

	series, ok := u.fetcher.FetchBars(ctx, symbol, u.lookback)
	if !ok {
		return symbol, nil, false
	}
	return symbol, series.Tail(RecentBarsLimit), true
}
