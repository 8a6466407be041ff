// Package dto converts candles entities to API bodies.
package dto

import (
	"stock_prediction/internal/api"
	"stock_prediction/internal/feature/candles/domain/entity"
	"stock_prediction/internal/shared/mathx"
)

// DateLayout は日付の出力フォーマットです。
const DateLayout = "2006-01-02"

// ToBarResponses rounds prices to 2 decimals and formats the trading day.
func ToBarResponses(bars entity.BarSeries) []api.BarResponse {
	out := make([]api.BarResponse, 0, len(bars))
	for _, b := range bars {
		vol := b.Volume
		if vol < 0 {
			vol = 0
		}
		out = append(out, api.BarResponse{
			Date:   b.Time.Format(DateLayout),
			Open:   mathx.Round2(b.Open),
			High:   mathx.Round2(b.High),
			Low:    mathx.Round2(b.Low),
			Close:  mathx.Round2(b.Close),
			Volume: vol,
		})
	}
	return out
}
