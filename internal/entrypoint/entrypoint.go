// Package entrypoint wires configuration, storage, workflows, and the HTTP
// server together and runs the catalog until it is signalled to stop.
package entrypoint

import (
	"context"
	"crypto/rand"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/locallibrary/catalog/internal/catalog"
	"github.com/locallibrary/catalog/internal/config"
	"github.com/locallibrary/catalog/internal/database"
	"github.com/locallibrary/catalog/internal/database/authors"
	"github.com/locallibrary/catalog/internal/database/books"
	"github.com/locallibrary/catalog/internal/database/genres"
	"github.com/locallibrary/catalog/internal/database/instances"
	catalog_http "github.com/locallibrary/catalog/internal/http"
	"github.com/locallibrary/catalog/internal/logging"
	"github.com/locallibrary/catalog/internal/scheduler"
	"github.com/locallibrary/catalog/internal/session"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until SIGINT or SIGTERM, then shuts it down
// within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Info().Str("host", cfg.HTTP.Host).Int32("port", cfg.HTTP.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Dur("timeout", timeout).Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server shutdown failed")
	}

	log.Info().Msg("server exiting")
}

// Run builds the whole application from configuration and serves it.
func Run(cfg *config.Config, version string) {
	logging.Setup(cfg.Logging.Level)
	log.Info().Str("version", version).Msg("starting local library catalog")

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("error closing database")
		}
	}()

	authorRepo := authors.NewRepository(db.DB)
	bookRepo := books.NewRepository(db.DB)
	genreRepo := genres.NewRepository(db.DB)
	instanceRepo := instances.NewRepository(db.DB)

	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get SQL DB for sessions")
	}
	sessions, err := session.NewManager(sqlDB, cfg.Session)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize session manager")
	}

	csrfSecret := []byte(cfg.Session.CSRFSecret)
	if len(csrfSecret) == 0 {
		csrfSecret = make([]byte, 32)
		if _, err := rand.Read(csrfSecret); err != nil {
			log.Fatal().Err(err).Msg("failed to generate CSRF secret")
		}
		log.Info().Msg("generated CSRF secret (set CSRF_SECRET to persist across restarts)")
	}

	var sweeper *scheduler.OverdueSweeper
	if cfg.OverdueSweep.Enabled {
		sweeper = scheduler.NewOverdueSweeper(instanceRepo, cfg.OverdueSweep.Schedule)
		if err := sweeper.Start(); err != nil {
			log.Fatal().Err(err).Msg("failed to start overdue sweep")
		}
	}

	router := catalog_http.NewRouter(catalog_http.RouterConfig{
		Database:      db,
		Sessions:      sessions,
		CSRFSecret:    csrfSecret,
		SecureCookies: cfg.Session.SecureCookies,
		TemplatesPath: cfg.UI.TemplatesPath,
		StaticPath:    cfg.UI.StaticPath,
		Version:       version,
		Index:         catalog.NewIndexWorkflow(authorRepo, bookRepo, genreRepo, instanceRepo),
		Authors:       catalog.NewAuthorWorkflows(authorRepo, bookRepo),
		Books:         catalog.NewBookWorkflows(bookRepo, authorRepo, genreRepo, instanceRepo),
		Genres:        catalog.NewGenreWorkflows(genreRepo, bookRepo),
		Instances:     catalog.NewInstanceWorkflows(instanceRepo, bookRepo),
	})

	onShutdown := func(ctx context.Context) {
		if sweeper != nil {
			sweeper.Stop()
		}
	}

	Serve(router, cfg, onShutdown)
}
