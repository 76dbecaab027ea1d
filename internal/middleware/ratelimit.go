package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/CampusStream/CS-Backend/internal/httpx"
	"golang.org/x/time/rate"
)

// RateLimit returns middleware enforcing a per-IP token bucket, intended
// for the login endpoint. Idle limiters are dropped after an hour.
func RateLimit(perMinute, burst int) func(http.Handler) http.Handler {
	type visitor struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}

	var (
		mu       sync.Mutex
		visitors = make(map[string]*visitor)
	)

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		now := time.Now()
		for k, v := range visitors {
			if now.Sub(v.lastSeen) > time.Hour {
				delete(visitors, k)
			}
		}

		v, ok := visitors[ip]
		if !ok {
			v = &visitor{limiter: rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), burst)}
			visitors[ip] = v
		}
		v.lastSeen = now
		return v.limiter
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			if !limiterFor(ip).Allow() {
				w.Header().Set("Retry-After", "60")
				httpx.WriteError(w, &httpx.Error{
					Kind:    httpx.KindRateLimited,
					Message: "Too many attempts, slow down",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
