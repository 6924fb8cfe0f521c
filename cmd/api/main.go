package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"tryon-server/internal/catalog"
	"tryon-server/internal/http/handlers"
	"tryon-server/internal/http/httpapi"
	"tryon-server/internal/infra"
	"tryon-server/internal/providers/gemini"
	"tryon-server/internal/storage"
	"tryon-server/internal/tryon"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	results, err := storage.NewResultStore(cfg.ResultsDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to prepare results directory")
	}

	subjects := catalog.NewResolver(cfg.SubjectDir)
	garments := catalog.NewResolver(cfg.GarmentDir)

	ctx := context.Background()
	invoker, err := gemini.NewClient(ctx, gemini.Options{
		APIKey: cfg.GeminiAPIKey,
		Model:  cfg.GeminiModel,
		Logger: logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build model client")
	}

	svc := tryon.NewService(invoker, results, subjects, garments, logger)
	app := handlers.NewApp(cfg, logger, svc, results, subjects, garments)
	router := httpapi.NewRouter(app)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
