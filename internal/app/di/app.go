package di

import (
	"fmt"
	"time"

	"stock_prediction/internal/app/config"
	"stock_prediction/internal/app/router"
	candlehandler "stock_prediction/internal/feature/candles/transport/handler"
	candleusecase "stock_prediction/internal/feature/candles/usecase"
	companyadapters "stock_prediction/internal/feature/companies/adapters"
	companyhandler "stock_prediction/internal/feature/companies/transport/handler"
	companyusecase "stock_prediction/internal/feature/companies/usecase"
	predictionhandler "stock_prediction/internal/feature/prediction/transport/handler"
	predictionusecase "stock_prediction/internal/feature/prediction/usecase"
	"stock_prediction/internal/shared/randsrc"
)

// Deps are the replaceable edges of the object graph. Zero fields are built from cfg.
type Deps struct {
	Market candleusecase.MarketRepository
	Random randsrc.Source
	Now    func() time.Time
}

// App bundles the usecases shared by the HTTP server and the CLI.
type App struct {
	Predict   *predictionusecase.PredictUsecase
	Company   *candleusecase.CompanyUsecase
	Companies *companyusecase.CompanyUsecase
	Provider  string
}

// NewApp wires catalogue, market, fetcher and usecases.
func NewApp(cfg *config.Config, deps Deps) (*App, error) {
	catalog, err := companyadapters.LoadCatalog(cfg.CompaniesFile)
	if err != nil {
		return nil, fmt.Errorf("load company catalogue: %w", err)
	}

	market := deps.Market
	if market == nil {
		if market, err = NewMarket(cfg.Market); err != nil {
			return nil, err
		}
	}
	rnd := deps.Random
	if rnd == nil {
		rnd = randsrc.New(cfg.RandomSeed)
	}

	lookback := cfg.Market.Period()
	fetcher := candleusecase.NewFetcher(market, NewRateLimiter(cfg.Market))

	companiesUC := companyusecase.NewCompanyUsecase(catalog)
	estimator := predictionusecase.NewEstimator(fetcher, rnd, lookback)

	return &App{
		Predict:   predictionusecase.NewPredictUsecase(companiesUC, estimator, rnd, deps.Now),
		Company:   candleusecase.NewCompanyUsecase(fetcher, lookback),
		Companies: companiesUC,
		Provider:  market.Name(),
	}, nil
}

// Handlers adapts the usecases to the router's handler set.
func (a *App) Handlers() router.Handlers {
	return router.Handlers{
		Predict:   predictionhandler.NewPredictHandler(a.Predict),
		Company:   candlehandler.NewCompanyHandler(a.Company),
		Companies: companyhandler.NewCompaniesHandler(a.Companies),
	}
}
