package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Cheertaboi/minimal-shop/internal/api"
	"github.com/Cheertaboi/minimal-shop/internal/cache"
	"github.com/Cheertaboi/minimal-shop/internal/config"
	"github.com/Cheertaboi/minimal-shop/internal/format"
	"github.com/Cheertaboi/minimal-shop/internal/repository"
	"github.com/Cheertaboi/minimal-shop/internal/service"
	"github.com/Cheertaboi/minimal-shop/pkg/db"
)

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	cfg, cfgErr := config.Load()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfgErr != nil {
		logger.Fatal("load config", zap.Error(cfgErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var conn *sql.DB
	if cfg.NeedsPostgres() {
		conn, err = db.NewPostgresConnection(ctx, cfg.Postgres)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer conn.Close()
		if err := db.EnsureSchema(ctx, conn); err != nil {
			logger.Fatal("db schema", zap.Error(err))
		}
	}

	var catalog repository.Catalog = repository.NewStaticCatalog()
	if cfg.CatalogSource == config.SourcePostgres {
		catalog = repository.NewProductRepo(conn)
	}
	var inbox repository.MessageStore = repository.NewMemoryMessageStore()
	if cfg.InboxStore == config.SourcePostgres {
		inbox = repository.NewMessageRepo(conn)
	}

	sessions := cache.NewSessionCache(cfg.SessionTTL)
	svc := service.NewStorefrontService(catalog, inbox, sessions, logger)

	handler, err := api.NewRouter(svc, sessions, format.New(cfg.Locale), logger)
	if err != nil {
		logger.Fatal("build router", zap.Error(err))
	}

	// idle sessions take their carts with them
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if n := sessions.Sweep(now); n > 0 {
					logger.Debug("sessions expired", zap.Int("count", n))
				}
			}
		}
	}()

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server Shutdown", zap.Error(err))
		}
		close(idleConnsClosed)
	}()

	logger.Info("starting storefront",
		zap.String("addr", cfg.Addr),
		zap.String("catalog", cfg.CatalogSource),
		zap.String("inbox", cfg.InboxStore),
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("listen", zap.Error(err))
	}

	<-idleConnsClosed
	logger.Info("server stopped")
}
