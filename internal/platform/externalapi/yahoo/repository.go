package yahoo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"

	"stock_prediction/internal/feature/candles/domain"
	"stock_prediction/internal/feature/candles/domain/entity"
	"stock_prediction/internal/feature/candles/usecase"
	"stock_prediction/internal/platform/externalapi/yahoo/dto"
)

const (
	dailyInterval   = "1d"
	notFoundErrCode = "Not Found"
)

// YahooMarket はYahoo Financeのチャートエンドポイントから日足を取得するMarketRepository実装です。
type YahooMarket struct {
	client *resty.Client
}

var _ usecase.MarketRepository = (*YahooMarket)(nil)

// NewYahooMarket は渡されたHTTPクライアントを下層に持つrestyクライアントを構築します。
// httpClient が nil の場合は resty の既定クライアントを使います。
func NewYahooMarket(cfg Config, httpClient *http.Client) *YahooMarket {
	cfg = cfg.withDefaults()

	var c *resty.Client
	if httpClient != nil {
		c = resty.NewWithClient(httpClient)
	} else {
		c = resty.New().SetTimeout(cfg.Timeout)
	}
	c.SetBaseURL(cfg.BaseURL).
		SetHeaders(map[string]string{
			"Accept":     "application/json",
			"User-Agent": cfg.UserAgent,
		})

	return &YahooMarket{client: c}
}

// Name implements usecase.MarketRepository.
func (y *YahooMarket) Name() string { return "yahoo" }

// GetDailyBars は期間分の日足を古い順に返します。
// 値がnullの日（休場日など）は除外します。
func (y *YahooMarket) GetDailyBars(ctx context.Context, symbol string, period entity.Period) ([]entity.Bar, error) {
	var (
		result dto.ChartResponse
		failed dto.ChartResponse
	)
	resp, err := y.client.R().
		SetContext(ctx).
		SetPathParam("symbol", symbol).
		SetQueryParams(map[string]string{
			"range":    string(period),
			"interval": dailyInterval,
		}).
		SetResult(&result).
		SetError(&failed).
		Get("/{symbol}")
	if err != nil {
		return nil, fmt.Errorf("yahoo request: %w: %w", domain.ErrUpstreamUnavailable, err)
	}

	if resp.IsError() {
		if resp.StatusCode() == http.StatusNotFound || isNotFound(failed.Chart.Error) {
			return nil, fmt.Errorf("yahoo %s: %w", symbol, domain.ErrSymbolNotFound)
		}
		return nil, fmt.Errorf("yahoo http %d: %w", resp.StatusCode(), domain.ErrUpstreamUnavailable)
	}

	if e := result.Chart.Error; e != nil {
		if isNotFound(e) {
			return nil, fmt.Errorf("yahoo %s: %s: %w", symbol, e.Description, domain.ErrSymbolNotFound)
		}
		return nil, fmt.Errorf("yahoo api error: %s: %w", e.Description, domain.ErrUpstreamUnavailable)
	}
	if len(result.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo %s: %w", symbol, domain.ErrNoData)
	}

	bars := toBars(result.Chart.Result[0])
	if len(bars) == 0 {
		return nil, fmt.Errorf("yahoo %s: %w", symbol, domain.ErrNoData)
	}
	slog.Debug("yahoo bars fetched", "symbol", symbol, "period", period, "bars", len(bars))
	return bars, nil
}

func isNotFound(e *dto.ChartError) bool {
	return e != nil && e.Code == notFoundErrCode
}

// toBars は並列配列を日足に変換します。OHLCのいずれかがnullの行は捨てます。
func toBars(r dto.Result) []entity.Bar {
	if len(r.Indicators.Quote) == 0 {
		return nil
	}
	q := r.Indicators.Quote[0]
	loc := exchangeLocation(r.Meta)

	bars := make([]entity.Bar, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		o, okO := at(q.Open, i)
		h, okH := at(q.High, i)
		l, okL := at(q.Low, i)
		c, okC := at(q.Close, i)
		if !okO || !okH || !okL || !okC {
			continue
		}
		v, _ := at(q.Volume, i)
		bars = append(bars, entity.Bar{
			Time:   time.Unix(ts, 0).In(loc),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: int64(v),
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars
}

func at(vals []*float64, i int) (float64, bool) {
	if i >= len(vals) || vals[i] == nil {
		return 0, false
	}
	return *vals[i], true
}

// exchangeLocation は取引所のタイムゾーンを返します。
// tzdataが見つからない環境ではgmtoffsetの固定ゾーンに落とします。
func exchangeLocation(m dto.Meta) *time.Location {
	if m.ExchangeTimezoneName != "" {
		if loc, err := time.LoadLocation(m.ExchangeTimezoneName); err == nil {
			return loc
		}
	}
	if m.GMTOffset != 0 {
		return time.FixedZone("exchange", m.GMTOffset)
	}
	return time.UTC
}
