package http

import (
	"net"
	"net/http"
	"sync"
	"time"
)

const (
	authRateLimit  = 10
	authRateWindow = time.Minute
)

// rateLimiter caps requests per client IP over a fixed window. It
// guards the credential endpoints against brute forcing; the rest of
// the API is not limited.
type rateLimiter struct {
	mu      sync.Mutex
	clients map[string]*rateWindow
	limit   int
	window  time.Duration

	// now is injectable so tests can advance the window.
	now func() time.Time
}

type rateWindow struct {
	start time.Time
	count int
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		clients: make(map[string]*rateWindow),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

func (rl *rateLimiter) allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.clients[clientIP]
	if !ok || now.Sub(w.start) > rl.window {
		rl.prune(now)
		rl.clients[clientIP] = &rateWindow{start: now, count: 1}
		return true
	}
	w.count++
	return w.count <= rl.limit
}

// prune drops windows that expired, so the map stays bounded by the
// number of distinct clients seen in the last window. Caller holds mu.
func (rl *rateLimiter) prune(now time.Time) {
	for ip, w := range rl.clients {
		if now.Sub(w.start) > rl.window {
			delete(rl.clients, ip)
		}
	}
}

func (rl *rateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !rl.allow(ip) {
			w.Header().Set("Retry-After", "60")
			respondJSON(w, http.StatusTooManyRequests, errorResponse{Error: "too many attempts, try again later"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
