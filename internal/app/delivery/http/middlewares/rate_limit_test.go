package middlewares

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestLoginRateLimit(t *testing.T) {
	mw := newTestMiddlewares(nil)
	handler := mw.LoginRateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	login := func(remoteAddr string) *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		request.RemoteAddr = remoteAddr
		handler.ServeHTTP(recorder, request)
		return recorder
	}

	t.Run("Burst Then Throttled", func(t *testing.T) {
		for i := 0; i < loginBurst; i++ {
			require.Equal(t, http.StatusOK, login("198.51.100.1:4000").Code)
		}
		assert.Equal(t, http.StatusTooManyRequests, login("198.51.100.1:4000").Code)
	})

	t.Run("Other Clients Unaffected", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, login("198.51.100.2:4000").Code)
	})
}

func TestLoginLimiterSweep(t *testing.T) {
	mw := newTestMiddlewares(nil)

	stale := time.Now().Add(-time.Hour)
	for i := 0; i < loginLimiterSweepThreshold; i++ {
		mw.loginLimiters[fmt.Sprintf("10.0.%d.%d", i/256, i%256)] = &loginLimiterEntry{
			limiter:  rate.NewLimiter(rate.Limit(loginRatePerSecond), loginBurst),
			lastSeen: stale,
		}
	}
	mw.loginLimiters["10.1.0.1"] = &loginLimiterEntry{
		limiter:  rate.NewLimiter(rate.Limit(loginRatePerSecond), loginBurst),
		lastSeen: time.Now(),
	}

	mw.loginLimiterFor("203.0.113.7")

	mw.loginLimiterMu.Lock()
	defer mw.loginLimiterMu.Unlock()
	assert.Len(t, mw.loginLimiters, 2, "idle limiters must be swept when the map fills up")
	assert.Contains(t, mw.loginLimiters, "10.1.0.1", "recently used limiters survive the sweep")
	assert.Contains(t, mw.loginLimiters, "203.0.113.7")
}
