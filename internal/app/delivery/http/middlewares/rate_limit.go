package middlewares

import (
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	loginRatePerSecond = 1
	loginBurst         = 5

	loginLimiterIdleTTL        = 15 * time.Minute
	loginLimiterSweepThreshold = 512
)

type loginLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LoginRateLimit throttles credential endpoints per client IP. Kept
// in-process on purpose: a few extra attempts across replicas is
// acceptable, a redis round trip on every login is not.
func (m *Middlewares) LoginRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limiter := m.loginLimiterFor(clientIP(r))
		if !limiter.Allow() {
			utils.BuildErrorResponse(m.Log, w, exceptions.WrapWithoutError(
				constvars.StatusTooManyRequests,
				constvars.ErrClientTooManyRequests,
				constvars.ErrDevLoginRateLimited,
			))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *Middlewares) loginLimiterFor(ip string) *rate.Limiter {
	m.loginLimiterMu.Lock()
	defer m.loginLimiterMu.Unlock()

	now := time.Now()
	entry, ok := m.loginLimiters[ip]
	if !ok {
		if len(m.loginLimiters) >= loginLimiterSweepThreshold {
			m.sweepLoginLimitersLocked(now)
		}
		entry = &loginLimiterEntry{limiter: rate.NewLimiter(rate.Limit(loginRatePerSecond), loginBurst)}
		m.loginLimiters[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

// sweepLoginLimitersLocked drops limiters idle past the TTL. The
// caller holds loginLimiterMu.
func (m *Middlewares) sweepLoginLimitersLocked(now time.Time) {
	for ip, entry := range m.loginLimiters {
		if now.Sub(entry.lastSeen) > loginLimiterIdleTTL {
			delete(m.loginLimiters, ip)
		}
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
