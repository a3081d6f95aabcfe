package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"

	"mlb-scores-service/internal/app"
	"mlb-scores-service/internal/config"
	"mlb-scores-service/internal/logging"
)

const appVersion = "dev"

func main() {
	_ = godotenv.Load()

	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "mlb-scores-gated",
		Version: appVersion,
	})

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration invalid", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
	defer func() { _ = a.Shutdown(context.Background()) }()

	lambda.Start(func(ctx context.Context) error {
		return a.Pipeline.RunGated(ctx)
	})
}
