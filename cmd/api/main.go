package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"roomstyler/internal/http/handlers"
	"roomstyler/internal/http/httpapi"
	"roomstyler/internal/imagegen"
	"roomstyler/internal/infra"
	"roomstyler/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := infra.LoadConfig()
	logger := infra.NewLogger(cfg.AppEnv)

	// Upload directories must exist before the first request; an unwritable
	// filesystem is fatal.
	store, err := storage.NewFileStore(cfg.UploadDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize upload storage")
	}

	generator := imagegen.NewOpenAIClient(imagegen.OpenAIOptions{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Size:    cfg.ImageSize,
		Timeout: cfg.GenTimeout,
	})
	if cfg.OpenAIAPIKey == "" {
		logger.Warn().Msg("OPENAI_API_KEY is not set; /apply-style will fail")
	}

	app := handlers.NewApp(cfg, logger, store, generator)
	router := httpapi.NewRouter(app, logger)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("Server running on port %s", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
