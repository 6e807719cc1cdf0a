package httpx

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/todo/pkg/slogx"
	"golang.org/x/time/rate"
)

// Limit is a token bucket expressed as Requests per Window with a Burst.
type Limit struct {
	Requests int
	Window   time.Duration
	Burst    int
}

// Built-in profiles. Apply LimitFromEnv to let operators tune them.
var (
	// ModerateLimit suits account endpoints such as register and login.
	ModerateLimit = Limit{Requests: 20, Window: time.Minute, Burst: 20}

	// LenientLimit suits authenticated day-to-day traffic.
	LenientLimit = Limit{Requests: 100, Window: time.Minute, Burst: 100}
)

// LimitFromEnv overrides def with RATELIMIT_<name>_REQUESTS,
// RATELIMIT_<name>_WINDOW_SEC and RATELIMIT_<name>_BURST when they hold
// positive integers.
func LimitFromEnv(name string, def Limit) Limit {
	l := def
	if n, ok := positiveEnv("RATELIMIT_" + name + "_REQUESTS"); ok {
		l.Requests = n
	}
	if n, ok := positiveEnv("RATELIMIT_" + name + "_WINDOW_SEC"); ok {
		l.Window = time.Duration(n) * time.Second
	}
	if n, ok := positiveEnv("RATELIMIT_" + name + "_BURST"); ok {
		l.Burst = n
	}
	return l
}

func positiveEnv(key string) (int, bool) {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// KeyFunc groups requests into buckets. An empty key skips limiting.
type KeyFunc func(*http.Request) string

// ClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the
// peer address.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// UserOrIP keys authenticated requests by user id and the rest by client IP.
func UserOrIP(r *http.Request) string {
	if id := UserID(r.Context()); id != "" {
		return "user:" + id
	}
	return "ip:" + ClientIP(r)
}

const sweepEvery = 5 * time.Minute

type buckets struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	byKey     map[string]*rate.Limiter
	lastSweep time.Time
}

func (b *buckets) get(key string) *rate.Limiter {
	b.mu.Lock()
	defer b.mu.Unlock()

	if time.Since(b.lastSweep) > sweepEvery {
		// A full bucket means the key has been idle for at least one window.
		for k, l := range b.byKey {
			if l.Tokens() >= float64(b.burst) {
				delete(b.byKey, k)
			}
		}
		b.lastSweep = time.Now()
	}

	l, ok := b.byKey[key]
	if !ok {
		l = rate.NewLimiter(b.limit, b.burst)
		b.byKey[key] = l
	}
	return l
}

// RateLimit rejects requests over l with 429 and a Retry-After header. Each
// call builds an independent set of buckets.
func RateLimit(l Limit, key KeyFunc) Middleware {
	b := &buckets{
		limit:     rate.Limit(float64(l.Requests) / l.Window.Seconds()),
		burst:     l.Burst,
		byKey:     make(map[string]*rate.Limiter),
		lastSweep: time.Now(),
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			lim := b.get(k)
			if lim.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			res := lim.Reserve()
			retry := max(int(res.Delay().Seconds()), 1)
			res.Cancel()

			slogx.FromContext(r.Context()).Warn("rate limit exceeded",
				"key", k,
				"retry_after", retry,
			)

			w.Header().Set("Retry-After", strconv.Itoa(retry))
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.Requests))
			WriteJSON(w, http.StatusTooManyRequests, map[string]string{
				"error":             "rate_limit_exceeded",
				"error_description": "too many requests, try again later",
			})
		})
	}
}
