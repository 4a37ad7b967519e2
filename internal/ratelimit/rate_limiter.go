package ratelimit

import (
	"log/slog"
	"net"
	"net/http"

	"github.com/bornholm/jis/internal/syncx"
	"github.com/bornholm/jis/pkg/log"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// RateLimiter throttles requests per key, each key owning its own token
// bucket.
type RateLimiter struct {
	rate  rate.Limit
	burst int
	keys  syncx.Map[string, *rate.Limiter]
}

type GetKeyFunc func(r *http.Request) (string, error)

// Allow consumes a token of the key bucket.
func (l *RateLimiter) Allow(key string) bool {
	limiter, _ := l.keys.LoadOrStore(key, rate.NewLimiter(l.rate, l.burst))
	return limiter.Allow()
}

func (l *RateLimiter) Middleware(getKey GetKeyFunc) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			key, err := getKey(r)
			if err != nil {
				slog.ErrorContext(ctx, "could not retrieve rate limit key", log.Error(errors.WithStack(err)))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			if !l.Allow(key) {
				slog.WarnContext(ctx, "rate limit exceeded", slog.String("key", key))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RemoteIP keys requests by client address.
func RemoteIP(r *http.Request) (string, error) {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return host, nil
}

// Only applies the middleware to requests with one of the given methods.
func Only(middleware func(http.Handler) http.Handler, methods ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		limited := middleware(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, m := range methods {
				if r.Method == m {
					limited.ServeHTTP(w, r)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func New(rate rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		rate:  rate,
		burst: burst,
	}
}
