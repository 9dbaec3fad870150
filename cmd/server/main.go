package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lixing-Zhang/restaurant-api/internal/config"
	"github.com/Lixing-Zhang/restaurant-api/internal/database"
	"github.com/Lixing-Zhang/restaurant-api/internal/repository"
	"github.com/Lixing-Zhang/restaurant-api/internal/router"
	"github.com/Lixing-Zhang/restaurant-api/pkg/logger"
)

const startupPingTimeout = 5 * time.Second

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	// `server migrate` applies the embedded schema and exits
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := database.Migrate(cfg.Database.DSN(), log); err != nil {
			log.Error("migration failed", "error", err)
			os.Exit(1)
		}
		return
	}

	log.Info("starting restaurant api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"store", cfg.Store,
		"log_level", cfg.LogLevel,
	)

	store, closeStore, err := openStore(cfg, log)
	if err != nil {
		log.Error("failed to initialize store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	handler := router.New(store, log, router.Options{
		RequestTimeout: time.Duration(cfg.Server.RequestTimeout) * time.Second,
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		return
	}

	log.Info("server stopped gracefully")
}

// openStore selects the backing store. For PostgreSQL an unreachable
// database is logged but not fatal: the server starts degraded and every
// data endpoint answers 500 until the database comes back.
func openStore(cfg *config.Config, log *slog.Logger) (*repository.Store, func(), error) {
	if cfg.Store == config.StoreMemory {
		log.Warn("using in-memory store, data is lost on restart")
		return repository.NewMemoryStore(), func() {}, nil
	}

	pool, err := database.NewPool(context.Background(), cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupPingTimeout)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		log.Error("database connection failed", "host", cfg.Database.Host, "error", err)
	} else {
		log.Info("database connection established", "max_conns", pool.Config().MaxConns)

		if cfg.Database.AutoMigrate {
			if err := database.Migrate(cfg.Database.DSN(), log); err != nil {
				pool.Close()
				return nil, nil, err
			}
		}
	}

	return repository.NewPostgresStore(pool), pool.Close, nil
}
