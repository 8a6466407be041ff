// Command predict runs one batch prediction for every configured company and prints it as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"stock_prediction/internal/api"
	"stock_prediction/internal/app/config"
	"stock_prediction/internal/app/di"
	"stock_prediction/internal/feature/prediction/transport/http/dto"
	"stock_prediction/internal/platform/logger"
)

func main() {
	timeout := flag.Duration("timeout", 5*time.Minute, "overall deadline for the batch")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	// 標準出力はJSON結果専用にする
	slog.SetDefault(logger.NewWithWriter(cfg.Env, os.Stderr))

	app, err := di.NewApp(cfg, di.Deps{})
	if err != nil {
		slog.Error("failed to build application", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	preds, err := app.Predict.PredictAll(ctx)
	if err != nil {
		slog.Error("prediction failed", "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(api.PredictionsResponse{
		Success: true,
		Data:    dto.ToPredictionResponses(preds),
		Message: fmt.Sprintf("Predictions generated for %d companies", len(preds)),
	}); err != nil {
		slog.Error("failed to write output", "error", err)
		os.Exit(1)
	}
}
