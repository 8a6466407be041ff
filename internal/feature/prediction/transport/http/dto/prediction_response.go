// Package dto converts prediction entities to API bodies.
package dto

import (
	"time"

	"stock_prediction/internal/api"
	"stock_prediction/internal/feature/prediction/domain/entity"
)

// TimestampLayout はISO 8601形式のタイムスタンプです。
const TimestampLayout = time.RFC3339Nano

// ToPredictionResponses maps predictions to their API representation.
func ToPredictionResponses(ps []entity.Prediction) []api.PredictionResponse {
	out := make([]api.PredictionResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, api.PredictionResponse{
			Company:        p.Company,
			Symbol:         p.Symbol,
			PredictedPrice: p.PredictedPrice,
			Timestamp:      p.Timestamp.Format(TimestampLayout),
			Note:           p.Note,
		})
	}
	return out
}
