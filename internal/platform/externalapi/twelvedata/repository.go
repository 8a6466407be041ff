package twelvedata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"stock_prediction/internal/feature/candles/domain"
	"stock_prediction/internal/feature/candles/domain/entity"
	"stock_prediction/internal/feature/candles/usecase"
	"stock_prediction/internal/platform/externalapi/twelvedata/dto"
)

const dailyInterval = "1day"

// TwelveDataMarket はTwelve Data外部APIから株価データを取得するMarketRepository実装です。
type TwelveDataMarket struct {
	cfg    Config
	client *http.Client
}

// TwelveDataMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*TwelveDataMarket)(nil)

// NewTwelveDataMarket は指定された設定とHTTPクライアントでTwelveDataMarketの新しいインスタンスを生成します。
// client が nil の場合は cfg.Timeout を持つクライアントを作ります。
func NewTwelveDataMarket(cfg Config, client *http.Client) *TwelveDataMarket {
	cfg = cfg.withDefaults()
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &TwelveDataMarket{cfg: cfg, client: client}
}

// Name implements usecase.MarketRepository.
func (t *TwelveDataMarket) Name() string { return "twelvedata" }

// GetDailyBars はTwelve Data APIから日足データを取得し、entity.Barのスライスとして返します。
// 件数は期間の営業日数で上限を決めます。
func (t *TwelveDataMarket) GetDailyBars(ctx context.Context, symbol string, period entity.Period) ([]entity.Bar, error) {
	q := url.Values{}
	// クエリパラメータを追加
	q.Set("symbol", symbol)
	q.Set("interval", dailyInterval)
	q.Set("outputsize", strconv.Itoa(period.TradingDays()))
	q.Set("order", "ASC")
	q.Set("apikey", t.cfg.TwelveDataAPIKey)

	u := fmt.Sprintf("%s/time_series?%s", t.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("twelvedata request: %w: %w", domain.ErrUpstreamUnavailable, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("twelvedata http %d: %w", res.StatusCode, domain.ErrSymbolNotFound)
	case res.StatusCode >= 400:
		return nil, fmt.Errorf("twelvedata http %d: %w", res.StatusCode, domain.ErrUpstreamUnavailable)
	}

	// JSONレスポンスをDTOにデコード
	var body dto.TimeSeriesResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("twelvedata decode: %w: %w", domain.ErrUpstreamUnavailable, err)
	}
	if body.Status == "error" {
		// 存在しない銘柄は 400/404 で返される
		if body.Code == http.StatusBadRequest || body.Code == http.StatusNotFound {
			return nil, fmt.Errorf("twelvedata: %s: %w", body.Message, domain.ErrSymbolNotFound)
		}
		return nil, fmt.Errorf("twelvedata: %s: %w", body.Message, domain.ErrUpstreamUnavailable)
	}

	loc := time.UTC
	if body.Meta.Timezone != "" {
		if l, err := time.LoadLocation(body.Meta.Timezone); err == nil {
			loc = l
		}
	}

	bars := make([]entity.Bar, 0, len(body.Values))
	for _, v := range body.Values {
		// タイムスタンプをパース
		tm, err := time.ParseInLocation("2006-01-02 15:04:05", v.Datetime, loc)
		if err != nil {
			tm, err = time.ParseInLocation("2006-01-02", v.Datetime, loc)
			if err != nil {
				return nil, fmt.Errorf("parse time %q: %w", v.Datetime, err)
			}
		}
		o, err := strconv.ParseFloat(v.Open, 64)
		if err != nil {
			return nil, fmt.Errorf("parse open %q: %w", v.Open, err)
		}
		h, err := strconv.ParseFloat(v.High, 64)
		if err != nil {
			return nil, fmt.Errorf("parse high %q: %w", v.High, err)
		}
		l, err := strconv.ParseFloat(v.Low, 64)
		if err != nil {
			return nil, fmt.Errorf("parse low %q: %w", v.Low, err)
		}
		c, err := strconv.ParseFloat(v.Close, 64)
		if err != nil {
			return nil, fmt.Errorf("parse close %q: %w", v.Close, err)
		}
		// "NaN" や "Inf" も ParseFloat を通るため、欠損行として捨てる
		if !finite(o, h, l, c) {
			slog.Debug("twelvedata row skipped: non-finite price", "symbol", symbol, "datetime", v.Datetime)
			continue
		}
		// 出来高は指数・為替では空文字の場合がある
		var vol int64
		if v.Volume != "" {
			vol, err = strconv.ParseInt(v.Volume, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("parse volume %q: %w", v.Volume, err)
			}
		}

		bars = append(bars, entity.Bar{
			Time:   tm,
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: vol,
		})
	}
	if len(body.Values) > 0 && len(bars) == 0 {
		return nil, fmt.Errorf("twelvedata %s: %w", symbol, domain.ErrNoData)
	}
	return bars, nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
