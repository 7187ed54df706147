package dedupe

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Middleware гасит случайные double-submit: одинаковый write-запрос в
// коротком окне TTL получает сохранённый ответ вместо повторного исполнения.
// Вешается точечно (создание hire-запроса); на append-маршруты pipeline не
// ставится — повторный сев lobby обязан давать новые записи.
func Middleware(rdb *redis.Client, ttl time.Duration) func(http.Handler) http.Handler {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}
			var body []byte
			if r.Body != nil {
				body, _ = io.ReadAll(r.Body)
				r.Body.Close()
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			key := requestKey(r, body)
			ctx := r.Context()

			cached, err := rdb.HGetAll(ctx, key).Result()
			if err == nil && cached["status"] != "" && cached["body"] != "" {
				status, _ := strconv.Atoi(cached["status"])
				w.Header().Set("X-Dedupe", "hit")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(status)
				_, _ = w.Write([]byte(cached["body"]))
				return
			}

			// Замок на время обработки, чтобы конкурентный дубль дождался кеша.
			ok, _ := rdb.SetNX(ctx, key+":lock", "1", ttl).Result()
			if !ok {
				time.Sleep(50 * time.Millisecond)
				cached, _ = rdb.HGetAll(ctx, key).Result()
				if cached["status"] != "" {
					status, _ := strconv.Atoi(cached["status"])
					w.Header().Set("X-Dedupe", "wait-hit")
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(status)
					_, _ = w.Write([]byte(cached["body"]))
					return
				}
			}

			rec := &recorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			_ = rdb.HSet(ctx, key, "status", strconv.Itoa(rec.status), "body", rec.buf.String()).Err()
			_ = rdb.Expire(ctx, key, ttl).Err()
			_ = rdb.Del(ctx, key+":lock").Err()
		})
	}
}

// requestKey хеширует метод, путь, идентичность бизнеса и тело.
func requestKey(r *http.Request, body []byte) string {
	h := sha256.New()
	h.Write([]byte(r.Method))
	h.Write([]byte{0})
	h.Write([]byte(r.URL.Path))
	h.Write([]byte{0})
	h.Write([]byte(r.Header.Get("X-Business-ID")))
	h.Write([]byte{0})
	h.Write(body)
	return "dedupe:" + hex.EncodeToString(h.Sum(nil))
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
