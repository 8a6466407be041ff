package router

import (
	"github.com/gin-gonic/gin"

	candlehandler "stock_prediction/internal/feature/candles/transport/handler"
	companyhandler "stock_prediction/internal/feature/companies/transport/handler"
	predictionhandler "stock_prediction/internal/feature/prediction/transport/handler"
	"stock_prediction/internal/platform/http/handler"
	"stock_prediction/internal/platform/http/middleware"
)

// Handlers are the feature handlers mounted by NewRouter.
type Handlers struct {
	Predict   *predictionhandler.PredictHandler
	Company   *candlehandler.CompanyHandler
	Companies *companyhandler.CompaniesHandler
}

func NewRouter(h Handlers, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), middleware.Recovery(), middleware.CORS(corsOrigins))

	// 導通確認用
	r.GET("/health", handler.Health)
	r.HEAD("/health", handler.Health)
	r.OPTIONS("/health", handler.Health)

	// 全銘柄の翌日終値予測
	r.POST("/predict", h.Predict.Predict)
	// 銘柄の直近30営業日
	r.GET("/company/:symbol", h.Company.GetCompany)
	r.GET("/companies", h.Companies.List)

	return r
}
