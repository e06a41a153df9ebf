package middleware

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/hirepath/careers-backend-go/internal/handler/http/response"
	"github.com/hirepath/careers-backend-go/internal/pkg/redis"
)

// RateLimit caps requests per client IP using a Redis counter. A nil client
// or a Redis failure lets the request through: limiting is protective, not
// load-bearing.
func RateLimit(client *redis.Client, logger *slog.Logger, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if client == nil {
				next.ServeHTTP(w, r)
				return
			}

			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := fmt.Sprintf("rate:%s:%s", r.URL.Path, ip)

			allowed, err := client.CheckRateLimit(r.Context(), key, limit, window)
			if err != nil {
				logger.Warn("rate limiter unavailable", slog.Any("error", err))
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				response.TooManyRequests(w, "Too many requests, slow down")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
