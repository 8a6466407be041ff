package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_prediction/internal/api"
)

// Recovery はハンドラー内のpanicを捕捉し、500のJSONエラーに変換します。
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("panic recovered",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{
			Success: false,
			Error:   "Internal server error",
			Message: fmt.Sprint(recovered),
		})
	})
}
