// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_prediction/internal/api"
)

// HealthMessage は稼働確認レスポンスに含める固定メッセージです。
const HealthMessage = "Stock prediction API is running"

// Health はサービスヘルスチェック用の /health エンドポイントを処理します。
// 外部データソースには一切依存せず、プロセスが応答可能であれば常に成功します。
func Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, api.HealthResponse{
			Status:  "healthy",
			Message: HealthMessage,
		})
	}
}
