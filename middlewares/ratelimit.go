package middlewares

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Default rate limit: 5 requests per minute per client, matching the
// expected cadence of a human filling out an application form.
const (
	DefaultRateLimit = rate.Limit(5.0 / 60.0)
	DefaultBurst     = 5
)

// defaultStaleAfter is how long an idle client entry survives before cleanup.
const defaultStaleAfter = 10 * time.Minute

// RateLimitConfig configures the rate limit middleware.
type RateLimitConfig struct {
	Limit   rate.Limit                         // Tokens added per second
	Burst   int                                // Max burst size
	KeyFunc func(r *http.Request) string       // Client identity; defaults to remote IP
	OnLimit func(w http.ResponseWriter, r *http.Request) // Custom 429 response
}

// RateLimitOption configures RateLimitConfig.
type RateLimitOption func(*RateLimitConfig)

// WithRateLimit sets the sustained request rate and burst size.
func WithRateLimit(limit rate.Limit, burst int) RateLimitOption {
	return func(cfg *RateLimitConfig) {
		cfg.Limit = limit
		cfg.Burst = burst
	}
}

// WithRateLimitKeyFunc sets a custom client identity function.
func WithRateLimitKeyFunc(fn func(r *http.Request) string) RateLimitOption {
	return func(cfg *RateLimitConfig) {
		cfg.KeyFunc = fn
	}
}

// WithRateLimitHandler sets a custom handler invoked when a request is limited.
func WithRateLimitHandler(fn func(w http.ResponseWriter, r *http.Request)) RateLimitOption {
	return func(cfg *RateLimitConfig) {
		cfg.OnLimit = fn
	}
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit returns middleware that enforces a per-client token bucket.
// Clients are keyed by remote IP unless a custom KeyFunc is provided.
// Stale client entries are evicted lazily as new clients arrive.
func RateLimit(opts ...RateLimitOption) Middleware {
	cfg := &RateLimitConfig{
		Limit:   DefaultRateLimit,
		Burst:   DefaultBurst,
		KeyFunc: clientIP,
		OnLimit: func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"Too many requests"}`))
		},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	var (
		mu        sync.Mutex
		clients   = make(map[string]*clientLimiter)
		lastSweep = time.Now()
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := cfg.KeyFunc(r)

			mu.Lock()
			now := time.Now()
			if now.Sub(lastSweep) > defaultStaleAfter {
				for k, c := range clients {
					if now.Sub(c.lastSeen) > defaultStaleAfter {
						delete(clients, k)
					}
				}
				lastSweep = now
			}

			c, ok := clients[key]
			if !ok {
				c = &clientLimiter{limiter: rate.NewLimiter(cfg.Limit, cfg.Burst)}
				clients[key] = c
			}
			c.lastSeen = now
			allowed := c.limiter.Allow()
			mu.Unlock()

			if !allowed {
				cfg.OnLimit(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP extracts the client IP from the request, preferring proxy headers.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// First entry is the originating client
		ip, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(ip)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
