package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/catalog"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/fee"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/httpx"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/loan"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/payment"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/report"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/settlement"
	"go.uber.org/zap"
)

// backend is what a catalog store must provide to run the service.
type backend interface {
	catalog.Repository
	loan.Store
	loan.Transactor
	fee.Store
	report.Store
	Ping(ctx context.Context) error
}

// newServer wires services on top of store and returns the root handler.
// ctx bounds background work started by middlewares.
func newServer(ctx context.Context, cfg config, log *zap.Logger, store backend, gateway payment.Gateway) http.Handler {
	fees := fee.NewCalculator(store)
	engine := loan.NewEngine(store, store, fees, log.Named("loan"))

	catalogHandler := catalog.NewHTTPHandler(catalog.NewService(store))
	loanHandler := loan.NewHTTPHandler(engine)
	feeHandler := fee.NewHTTPHandler(fees)
	settlementHandler := settlement.NewHTTPHandler(settlement.NewService(fees, store, gateway, log.Named("settlement")))
	reportHandler := report.NewHTTPHandler(report.NewService(store))

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("GET /books", catalogHandler.List)
	router.HandleFunc("POST /books", catalogHandler.Create)
	router.HandleFunc("GET /books/{id}", catalogHandler.Get)
	router.HandleFunc("GET /search", catalogHandler.Search)

	router.HandleFunc("POST /borrow", loanHandler.Borrow)
	router.HandleFunc("POST /return", loanHandler.Return)

	router.HandleFunc("GET /api/late_fee/{patron_id}/{book_id}", feeHandler.Get)
	router.HandleFunc("POST /api/late_fee/{patron_id}/{book_id}/pay", settlementHandler.Pay)
	router.HandleFunc("POST /api/refunds", settlementHandler.Refund)
	router.HandleFunc("GET /api/payments/{transaction_id}", settlementHandler.Status)
	router.HandleFunc("GET /api/patron_status/{patron_id}", reportHandler.PatronStatus)

	limiter := httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.RecoveryMiddleware(log),
		httpx.AccessLogMiddleware(log.Named("http")),
		httpx.SecurityHeadersMiddleware(false),
		httpx.CORSMiddleware(cfg.CORSOrigins),
		limiter.Middleware,
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
	)
}
