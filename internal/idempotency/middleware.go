package idempotency

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/aditya-1310/experiment-dehix-sub000/internal/metrics"
	"github.com/redis/go-redis/v9"
)

// Middleware реализует идемпотентность по заголовку Idempotency-Key:
// успешный ответ сохраняется и повтор с тем же ключом отдаёт его из кеша.
// Ключ уникален для операции на стороне клиента; без ключа — обычная
// обработка (append-операции pipeline намеренно неидемпотентны).
func Middleware(rdb *redis.Client, ttl time.Duration) func(http.Handler) http.Handler {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("Idempotency-Key")
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}
			cacheKey := "idem:" + r.Method + ":" + r.URL.Path + ":" + key
			ctx := r.Context()

			cached, err := rdb.HGetAll(ctx, cacheKey).Result()
			if err == nil && cached["status"] != "" && cached["body"] != "" {
				metrics.IdempotencyHitsTotal.Inc()
				status, _ := strconv.Atoi(cached["status"])
				w.Header().Set("X-Idempotency", "hit")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(status)
				_, _ = w.Write([]byte(cached["body"]))
				return
			}

			rec := &recorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			// Кешируем только успешные ответы: неуспех клиент вправе повторить.
			if rec.status >= 200 && rec.status < 400 {
				_ = rdb.HSet(ctx, cacheKey, "status", strconv.Itoa(rec.status), "body", rec.buf.String()).Err()
				_ = rdb.Expire(ctx, cacheKey, ttl).Err()
			}
		})
	}
}

type recorder struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (r *recorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(p []byte) (int, error) {
	_, _ = r.buf.Write(p)
	return r.ResponseWriter.Write(p)
}
