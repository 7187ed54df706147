package httpapi

import (
	"net/http"
	"time"

	"github.com/aditya-1310/experiment-dehix-sub000/internal/config"
	"github.com/aditya-1310/experiment-dehix-sub000/internal/dedupe"
	"github.com/aditya-1310/experiment-dehix-sub000/internal/idempotency"
	"github.com/aditya-1310/experiment-dehix-sub000/internal/metrics"
	"github.com/aditya-1310/experiment-dehix-sub000/internal/ratelimit"
	"github.com/aditya-1310/experiment-dehix-sub000/internal/transport/httpapi/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Mount регистрирует все конечные точки API.
func Mount(r *chi.Mux, db *sqlx.DB, rdb *redis.Client, cfg config.Config, log *zap.Logger) {
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			metrics.RequestDuration.Observe(float64(time.Since(start).Milliseconds()))
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/business", func(api chi.Router) {
		api.Use(ratelimit.Middleware(rdb, cfg.RateRPS, cfg.RateBurst))
		api.Use(idempotency.Middleware(rdb, cfg.IdempotencyTTL))

		handlers.RegisterHire(api, db, log, cfg.HireCreationCost, dedupe.Middleware(rdb, cfg.DedupeTTL))
		handlers.RegisterCandidates(api, db, log)
		handlers.RegisterConnects(api, db)
	})
}
