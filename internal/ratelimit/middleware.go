package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/aditya-1310/experiment-dehix-sub000/internal/metrics"
	"github.com/redis/go-redis/v9"
)

// Middleware — лимитер "фиксированное окно" на redis: счётчик на пару
// (маршрут, вызывающий) в секундном окне. Состояние в redis, а не в процессе,
// потому что воркеры stateless и их много.
func Middleware(rdb *redis.Client, rps, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		rps = 5
	}
	if burst < rps {
		burst = rps * 2
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := "rl:" + r.URL.Path + ":" + callerKey(r) + ":" + time.Now().Format("2006-01-02T15:04:05")

			pipe := rdb.TxPipeline()
			incr := pipe.Incr(r.Context(), key)
			pipe.Expire(r.Context(), key, 2*time.Second)
			_, _ = pipe.Exec(r.Context())

			if int(incr.Val()) > burst {
				metrics.RateLimitedTotal.Inc()
				w.Header().Set("Retry-After", "1")
				http.Error(w, "rate limited", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// callerKey предпочитает идентичность бизнеса; для неаутентифицированных
// запросов откатывается к IP.
func callerKey(r *http.Request) string {
	if bid := r.Header.Get("X-Business-ID"); bid != "" {
		return bid
	}
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
