package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitConfig configures the per-client rate limiter.
type RateLimitConfig struct {
	// Rate is the sustained requests-per-second budget per client.
	Rate rate.Limit

	// Burst is the short-term burst allowance per client.
	Burst int

	// KeyFunc derives the client key from a request. Defaults to the remote
	// IP.
	KeyFunc func(r *http.Request) string

	// TTL controls how long an idle client's limiter is kept before being
	// swept. Defaults to 10 minutes.
	TTL time.Duration
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit creates middleware limiting each client to the configured
// request budget. Clients over budget receive 429.
func RateLimit(config RateLimitConfig) func(http.Handler) http.Handler {
	if config.KeyFunc == nil {
		config.KeyFunc = remoteIP
	}
	if config.TTL == 0 {
		config.TTL = 10 * time.Minute
	}

	var (
		mu        sync.Mutex
		clients   = make(map[string]*clientLimiter)
		lastSweep = time.Now()
	)

	// Drops idle clients so the map does not grow without bound. Runs at
	// most once per TTL, inline on a request, so the middleware holds no
	// background goroutine. Caller must hold mu.
	sweep := func() {
		if time.Since(lastSweep) < config.TTL {
			return
		}
		for key, client := range clients {
			if time.Since(client.lastSeen) > config.TTL {
				delete(clients, key)
			}
		}
		lastSweep = time.Now()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := config.KeyFunc(r)

			mu.Lock()
			sweep()
			client, ok := clients[key]
			if !ok {
				client = &clientLimiter{limiter: rate.NewLimiter(config.Rate, config.Burst)}
				clients[key] = client
			}
			client.lastSeen = time.Now()
			allowed := client.limiter.Allow()
			mu.Unlock()

			if !allowed {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// remoteIP extracts the client IP from the request's remote address.
func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
