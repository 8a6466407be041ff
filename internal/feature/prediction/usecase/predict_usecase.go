package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	companyentity "stock_prediction/internal/feature/companies/domain/entity"
	"stock_prediction/internal/feature/prediction/domain/entity"
	"stock_prediction/internal/shared/mathx"
	"stock_prediction/internal/shared/randsrc"
)

const (
	// FallbackMinPrice と FallbackMaxPrice はフォールバック価格の一様分布の範囲です。
	FallbackMinPrice = 50.0
	FallbackMaxPrice = 500.0
)

// ErrNoCompanies is returned when the catalogue is empty, which indicates a wiring fault.
var ErrNoCompanies = errors.New("company catalogue is empty")

// CompanyLister provides the fixed company list.
type CompanyLister interface {
	List(ctx context.Context) []companyentity.Company
}

// PriceEstimator produces one price per symbol or reports that none is available.
type PriceEstimator interface {
	Estimate(ctx context.Context, symbol string) (float64, bool)
}

// PredictUsecase builds the batch prediction for every configured company.
type PredictUsecase struct {
	companies CompanyLister
	estimator PriceEstimator
	rnd       randsrc.Source
	now       func() time.Time
}

// NewPredictUsecase creates a PredictUsecase. now may be nil to use time.Now.
func NewPredictUsecase(companies CompanyLister, estimator PriceEstimator, rnd randsrc.Source, now func() time.Time) *PredictUsecase {
	if now == nil {
		now = time.Now
	}
	return &PredictUsecase{companies: companies, estimator: estimator, rnd: rnd, now: now}
}

// PredictAll returns one prediction per company, in catalogue order. Companies without a
// real estimate receive a uniformly random price in [FallbackMinPrice, FallbackMaxPrice]
// marked with entity.FallbackNote. Per-symbol failures never surface as errors.
func (u *PredictUsecase) PredictAll(ctx context.Context) ([]entity.Prediction, error) {
	companies := u.companies.List(ctx)
	if len(companies) == 0 {
		return nil, ErrNoCompanies
	}

	slog.Info("starting stock prediction for all companies", "count", len(companies))

	out := make([]entity.Prediction, 0, len(companies))
	fallbacks := 0
	for _, c := range companies {
		slog.Info("predicting", "company", c.Name, "symbol", c.Symbol)

		p := entity.Prediction{Company: c.Name, Symbol: c.Symbol}
		if price, ok := u.estimator.Estimate(ctx, c.Symbol); ok {
			p.PredictedPrice = mathx.Round2(price)
		} else {
			p.PredictedPrice = mathx.Round2(u.fallbackPrice())
			p.Note = entity.FallbackNote
			fallbacks++
			slog.Warn("using fallback prediction", "symbol", c.Symbol, "fallback", true, "price", p.PredictedPrice)
		}
		p.Timestamp = u.now()
		out = append(out, p)
	}

	slog.Info("generated predictions", "count", len(out), "fallbacks", fallbacks)
	return out, nil
}

func (u *PredictUsecase) fallbackPrice() float64 {
	return FallbackMinPrice + u.rnd.Float64()*(FallbackMaxPrice-FallbackMinPrice)
}
