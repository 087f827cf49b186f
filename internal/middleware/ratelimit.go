package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit returns a per-IP token-bucket limiter. With enabled=false (dev)
// it is a pass-through. Typical use: a tight budget on login, registration
// and contact submissions.
func RateLimit(every time.Duration, burst int, enabled bool) func(http.Handler) http.Handler {
	clients := make(map[string]*ipLimiter)
	var mu sync.Mutex

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !enabled {
				next.ServeHTTP(w, r)
				return
			}
			ip := clientIP(r)

			mu.Lock()
			lim, ok := clients[ip]
			if !ok {
				lim = &ipLimiter{limiter: rate.NewLimiter(rate.Every(every), burst)}
				clients[ip] = lim
			}
			lim.lastSeen = time.Now()
			allowed := lim.limiter.Allow()
			for addr, cl := range clients {
				if time.Since(cl.lastSeen) > 30*time.Minute {
					delete(clients, addr)
				}
			}
			mu.Unlock()

			if !allowed {
				writeError(w, r, http.StatusTooManyRequests, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
