package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"exchange_calculator/docs"
	"exchange_calculator/internal/config"
	"exchange_calculator/internal/database"
	"exchange_calculator/internal/external"
	"exchange_calculator/internal/handlers"
	"exchange_calculator/internal/logger"
	"exchange_calculator/internal/middleware"
	"exchange_calculator/internal/rates"
	"exchange_calculator/internal/session"
	"exchange_calculator/internal/worker"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Exchange Calculator API
// @version 1.0
// @description Двусторонний калькулятор обмена валют по таблице курсов
// @BasePath /
func main() {
	cfg := config.Load()
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format).Logger

	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("Server failed")
	}
}

func run(cfg *config.Config, log *logrus.Logger) error {
	store, err := database.New(&cfg.Database, log)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source := rates.New(cfg.App.BaseCurrency, log)
	if err := loadInitialRates(ctx, store, source, log); err != nil {
		return err
	}

	sessions := session.NewManager(source, cfg.App.SessionTTL, cfg.App.MaxSessions, log).
		WithDefaultTarget(cfg.App.DefaultTarget)

	var feed worker.RatesFeed
	if cfg.External.BaseURL != "" {
		feed = external.New(&cfg.External, cfg.App.BaseCurrency, log)
	}
	w := worker.New(store, feed, source, sessions, log, cfg.Worker.RefreshInterval, cfg.Worker.SweepInterval)
	w.Start(ctx)
	defer w.Stop()

	router := mux.NewRouter()
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggingMiddleware(log))
	router.Use(middleware.CORSMiddleware(cfg.App.AllowedOrigins))

	handlers.New(source, sessions, log).RegisterRoutes(router)

	if cfg.App.EnableSwagger {
		docs.SwaggerInfo.Host = cfg.Server.Addr()
		router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	}

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{
			"addr":    server.Addr,
			"swagger": cfg.App.EnableSwagger,
		}).Info("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

// Берём курсы из хранилища, а при пустом хранилище заполняем его демонстрационной таблицей
func loadInitialRates(ctx context.Context, store database.RateStore, source *rates.Source, log *logrus.Logger) error {
	quotes, err := store.ListRates(ctx)
	if err != nil {
		return err
	}

	if len(quotes) == 0 {
		log.Info("Rate storage is empty, seeding default rates")
		quotes = rates.DefaultQuotes()
		if err := store.ReplaceRates(ctx, quotes); err != nil {
			return err
		}
	}

	return source.Load(quotes)
}
