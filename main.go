package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gofiber/fiber/v3"

	"tuberev/infrastructure/geo"
	"tuberev/infrastructure/logger"
	"tuberev/infrastructure/provider"
	"tuberev/infrastructure/storage"
	"tuberev/internal/config"
	"tuberev/internal/core/usecases"
	"tuberev/internal/handler/httpapi"
)

func main() {
	cfg := config.Load()

	baseLogger := logger.NewBase(cfg.LogLevel, "tuberev")
	appLogger := logger.NewZerologLogger(baseLogger)
	defer appLogger.Close()
	appLogger.Info("Application starting...")

	ctx := context.Background()

	mongoClient, err := storage.NewMongoClient(ctx, cfg.MongoURL)
	if err != nil {
		appLogger.Error("Failed to connect to mongodb", err)
		fmt.Fprintf(os.Stderr, "Failed to connect to mongodb: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			appLogger.Error("Failed to disconnect mongodb client", err)
		}
	}()

	if !cfg.APIKeyConfigured() {
		appLogger.Warning("YOUTUBE_API_KEY not configured, channel lookups will be refused")
	}

	youtubeProvider, err := provider.NewYoutubeProvider(ctx, cfg.YouTubeAPIKey, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize youtube provider", err)
		fmt.Fprintf(os.Stderr, "Failed to initialize youtube provider: %v\n", err)
		os.Exit(1)
	}

	channelUseCase := usecases.NewChannelUseCase(
		youtubeProvider,
		geo.NewProportionalDistributor(),
		appLogger,
		cfg.APIKeyConfigured(),
	)
	statusUseCase := usecases.NewStatusUseCase(
		storage.NewMongoStatusRepository(mongoClient, cfg.DBName),
		appLogger,
	)

	app := fiber.New(fiber.Config{
		AppName:      "tuberev",
		ServerHeader: "tuberev",
	})

	httpapi.Setup(app, &httpapi.Handlers{
		Channel: httpapi.NewChannelHandler(channelUseCase),
		Status:  httpapi.NewStatusHandler(statusUseCase),
		Health:  httpapi.NewHealthHandler(mongoClient),
	}, cfg.CORSOrigins, baseLogger)

	appLogger.Info(fmt.Sprintf("listening on :%s", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		appLogger.Error("server stopped", err)
		os.Exit(1)
	}
}
