package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"serverless-api-template/config"
	_ "serverless-api-template/docs" // Swagger docs
	"serverless-api-template/internal/alert"
	alertUC "serverless-api-template/internal/alert/usecase"
	"serverless-api-template/internal/httpserver"
	"serverless-api-template/internal/middleware"
	"serverless-api-template/internal/model"
	"serverless-api-template/pkg/log"
	"serverless-api-template/pkg/slack"
)

// @title       Serverless API Template
// @description HTTP API, scheduled jobs and log alert relay sharing one response pipeline.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Serverless API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Alert domain (optional)
	var alertUseCase alert.UseCase
	if cfg.Slack.OAuthToken != "" && cfg.Slack.Channel != "" {
		alertUseCase = alertUC.New(logger, newSlack(logger, cfg))
	} else {
		logger.Warn(ctx, "Alert relay skipped: SLACK_BOT_OAUTH_TOKEN or SLACK_BOT_POST_CHANNEL is missing")
	}

	// 4. HTTP Server
	rateLimit := 0
	if cfg.RateLimit.Enabled {
		rateLimit = cfg.RateLimit.PerMin
	}
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.Config{
			CORS: middleware.CORSConfig{
				AllowedOrigins: cfg.CORS.AllowedOrigins,
				AllowedMethods: cfg.CORS.AllowedMethods,
			},
			BodyLimit:       cfg.HTTPServer.BodyLimit,
			RateLimitPerMin: rateLimit,
		},
		AlertUseCase: alertUseCase,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func newSlack(l log.Logger, cfg *config.Config) *slack.Client {
	return slack.New(l, slack.Config{
		Token:                cfg.Slack.OAuthToken,
		Channel:              cfg.Slack.Channel,
		APIURL:               cfg.Slack.APIURL,
		RetryAttempts:        cfg.Slack.RetryAttempts,
		RetryInitialInterval: cfg.Slack.RetryInitialInterval,
		RatePerSecond:        cfg.Slack.RatePerSec,
		DebugEnabled:         model.Environment(cfg.Environment.Name).DebugEnabled(),
	})
}
