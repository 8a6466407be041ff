// Package handler はcompaniesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_prediction/internal/api"
	"stock_prediction/internal/feature/companies/domain/entity"
	"stock_prediction/internal/feature/companies/transport/http/dto"
)

// CompanyUsecase は企業カタログのユースケースインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CompanyUsecase interface {
	List(ctx context.Context) []entity.Company
}

// CompaniesHandler serves the company catalogue.
type CompaniesHandler struct {
	uc CompanyUsecase
}

// NewCompaniesHandler は新しい CompaniesHandler を作成します。
func NewCompaniesHandler(uc CompanyUsecase) *CompaniesHandler {
	return &CompaniesHandler{uc: uc}
}

// List handles GET /companies.
func (h *CompaniesHandler) List(c *gin.Context) {
	items := dto.ToCompanyItems(h.uc.List(c.Request.Context()))
	c.JSON(http.StatusOK, api.CompaniesResponse{
		Success: true,
		Data:    items,
		Message: fmt.Sprintf("%d companies available", len(items)),
	})
}
