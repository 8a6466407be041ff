// Package handler はcandlesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_prediction/internal/api"
	"stock_prediction/internal/feature/candles/domain/entity"
	"stock_prediction/internal/feature/candles/transport/http/dto"
)

// CompanyUsecase は会社詳細のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CompanyUsecase interface {
	RecentBars(ctx context.Context, symbol string) (string, entity.BarSeries, bool)
}

// CompanyHandler は会社詳細のHTTPリクエストを処理します。
type CompanyHandler struct {
	uc CompanyUsecase
}

// NewCompanyHandler は指定されたusecaseでCompanyHandlerの新しいインスタンスを生成します。
func NewCompanyHandler(uc CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// GetCompany は銘柄コードを受け取り、直近30営業日のOHLCVをJSONで返します。
//
// エンドポイント例:
// GET /company/AAPL
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	symbol, bars, ok := h.uc.RecentBars(c.Request.Context(), c.Param("symbol"))
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Success: false, Error: "Company not found"})
		return
	}

	c.JSON(http.StatusOK, api.CompanyDetailResponse{
		Success: true,
		Data: api.CompanyHistory{
			Symbol: symbol,
			Data:   dto.ToBarResponses(bars),
		},
	})
}
