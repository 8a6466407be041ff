// Package handler はpredictionフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_prediction/internal/api"
	"stock_prediction/internal/feature/prediction/domain/entity"
	"stock_prediction/internal/feature/prediction/transport/http/dto"
)

// PredictUsecase は一括予測のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type PredictUsecase interface {
	PredictAll(ctx context.Context) ([]entity.Prediction, error)
}

// PredictHandler は株価予測のHTTPリクエストを処理します。
type PredictHandler struct {
	uc PredictUsecase
}

// NewPredictHandler はPredictHandlerの新しいインスタンスを生成します。
func NewPredictHandler(uc PredictUsecase) *PredictHandler {
	return &PredictHandler{uc: uc}
}

// Predict は全企業の翌営業日の予測価格を返します。
//
// エンドポイント: POST /predict
func (h *PredictHandler) Predict(c *gin.Context) {
	preds, err := h.uc.PredictAll(c.Request.Context())
	if err != nil {
		slog.Error("failed to generate predictions", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{
			Success: false,
			Error:   "Failed to generate predictions",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, api.PredictionsResponse{
		Success: true,
		Data:    dto.ToPredictionResponses(preds),
		Message: fmt.Sprintf("Predictions generated for %d companies", len(preds)),
	})
}
