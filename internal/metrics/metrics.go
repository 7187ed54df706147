package metrics

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HireCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hire_requests_created_total",
		Help: "Total number of hire requests created",
	})
	LobbyAddsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lobby_adds_total",
		Help: "Total number of lobby entries appended",
	})
	InvitationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "invitations_total",
		Help: "Total number of freelancers invited",
	})
	SelectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "selections_total",
		Help: "Total number of freelancers selected",
	})
	RejectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rejections_total",
		Help: "Total number of freelancers rejected",
	})
	NotificationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hire_notifications_total",
		Help: "Total number of hire notifications emitted",
	})
	InsufficientConnectsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "insufficient_connects_total",
		Help: "Total hire creations declined by the connects ledger",
	})
	RateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rate_limited_total",
		Help: "Total number of 429 responses",
	})
	IdempotencyHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "idempotency_hits_total",
		Help: "Total idempotency cache hits",
	})
	RequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{10, 25, 50, 100, 200, 300, 500, 1000},
	})
)

// Register регистрирует /metrics и готов к расширению для middleware измерений.
func Register(r *chi.Mux) {
	r.Handle("/metrics", promhttp.Handler())
}
