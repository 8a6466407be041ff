package usecase

import (
	"context"
	"log/slog"
	"math"

	candleentity "stock_prediction/internal/feature/candles/domain/entity"
	"stock_prediction/internal/shared/randsrc"
)

const (
	// TrendWindow is the number of most recent closes the trend is averaged over.
	TrendWindow = 10
	// NoiseRatio scales the noise standard deviation relative to the current price.
	NoiseRatio = 0.02
	// MinPrice is the floor applied to every estimate.
	MinPrice = 0.01
)

// BarFetcher abstracts the Data Fetcher.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider.
type BarFetcher interface {
	FetchBars(ctx context.Context, symbol string, period candleentity.Period) (candleentity.BarSeries, bool)
}

// Estimator produces a next-step price from recent trend plus gaussian noise.
// It holds no mutable state besides the shared random source.
type Estimator struct {
	fetcher  BarFetcher
	rnd      randsrc.Source
	lookback candleentity.Period
	minBars  int
}

// NewEstimator creates an Estimator reading lookback worth of bars per symbol.
func NewEstimator(fetcher BarFetcher, rnd randsrc.Source, lookback candleentity.Period) *Estimator {
	if lookback == "" {
		lookback = candleentity.Period1Y
	}
	return &Estimator{fetcher: fetcher, rnd: rnd, lookback: lookback, minBars: SequenceLength}
}

// Estimate returns a positive finite price for symbol, or false when no estimate
// can be made from the available data.
func (e *Estimator) Estimate(ctx context.Context, symbol string) (float64, bool) {
	series, ok := e.fetcher.FetchBars(ctx, symbol, e.lookback)
	if !ok {
		return 0, false
	}
	if len(series) < e.minBars {
		slog.Error("insufficient history for estimate",
			"symbol", symbol, "kind", "insufficient", "bars", len(series), "required", e.minBars)
		return 0, false
	}

	price, ok := estimateFromCloses(series.Closes(), e.rnd)
	if !ok {
		slog.Error("estimate is not finite", "symbol", symbol, "kind", "insufficient")
	}
	return price, ok
}

// estimateFromCloses computes current + trend + noise, floored at MinPrice.
func estimateFromCloses(closes []float64, rnd randsrc.Source) (float64, bool) {
	if len(closes) < 2 {
		return 0, false
	}

	recent := closes
	if len(recent) > TrendWindow {
		recent = recent[len(recent)-TrendWindow:]
	}
	trend := meanDiff(recent)
	current := closes[len(closes)-1]
	noise := rnd.NormFloat64() * math.Abs(current*NoiseRatio)

	est := current + trend + noise
	if math.IsNaN(est) || math.IsInf(est, 0) {
		return 0, false
	}
	return math.Max(est, MinPrice), true
}

// meanDiff returns the mean of consecutive differences, i.e. (last-first)/(n-1).
func meanDiff(xs []float64) float64 {
	var sum float64
	for i := 1; i < len(xs); i++ {
		sum += xs[i] - xs[i-1]
	}
	return sum / float64(len(xs)-1)
}
