package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/platform/logger"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/payment"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/store"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	loadEnvFiles()
	cfg, warnings := loadConfig()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()
	for _, w := range warnings {
		log.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var catalogStore backend
	switch cfg.StoreDriver {
	case driverMemory:
		log.Warn("using in-memory store, data is lost on exit")
		catalogStore = store.NewMemory()
	default:
		pool := mustOpenDB(ctx, log, cfg.DSN)
		defer pool.Close()
		catalogStore = store.NewPostgres(pool, cfg.DBTimeout)
	}

	gateway := payment.NewSimulator(payment.WithLatency(cfg.PaymentLatency))

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      newServer(ctx, cfg, log, catalogStore, gateway),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", zap.Error(err))
		}
	}()

	log.Info("starting server", zap.String("addr", cfg.Addr), zap.String("store", cfg.StoreDriver))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server error", zap.Error(err))
	}
	log.Info("server stopped")
}

func mustOpenDB(ctx context.Context, log *zap.Logger, dsn string) *pgxpool.Pool {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatal("cannot create db pool", zap.Error(err))
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		log.Fatal("cannot ping database", zap.String("dsn", redactDSN(dsn)), zap.Error(err))
	}
	log.Info("database connection OK")
	return pool
}
