package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/darkkaiser/monitoring-server/internal/service/api/constants"
	"github.com/darkkaiser/monitoring-server/internal/service/api/httputil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestNewIPRateLimiter(t *testing.T) {
	t.Parallel()

	limiter := newIPRateLimiter(10, 20)

	assert.NotNil(t, limiter.limiters)
	assert.Equal(t, rate.Limit(10), limiter.rate)
	assert.Equal(t, 20, limiter.burst)
	assert.Empty(t, limiter.limiters)
}

func TestIPRateLimiter_GetLimiter(t *testing.T) {
	t.Parallel()

	limiter := newIPRateLimiter(10, 20)

	t.Run("같은 IP는 같은 Limiter", func(t *testing.T) {
		assert.Same(t, limiter.getLimiter("10.0.0.1"), limiter.getLimiter("10.0.0.1"))
	})

	t.Run("동시 접근에도 IP당 하나만 생성", func(t *testing.T) {
		var wg sync.WaitGroup
		results := make([]*rate.Limiter, 50)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = limiter.getLimiter("10.0.0.2")
			}(i)
		}
		wg.Wait()

		for _, l := range results {
			assert.Same(t, results[0], l)
		}
	})
}

func TestRateLimiting_InputValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		requestsPerSecond int
		burst             int
		expectedMessage   string
	}{
		{"실패: requestsPerSecond 0", 0, 20, "[RateLimiting] requestsPerSecond는 양수여야 합니다"},
		{"실패: requestsPerSecond 음수", -10, 20, "[RateLimiting] requestsPerSecond는 양수여야 합니다"},
		{"실패: burst 0", 10, 0, "[RateLimiting] burst는 양수여야 합니다"},
		{"실패: burst 음수", 10, -20, "[RateLimiting] burst는 양수여야 합니다"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.PanicsWithValue(t, tt.expectedMessage, func() {
				RateLimiting(tt.requestsPerSecond, tt.burst)
			})
		})
	}

	assert.NotPanics(t, func() { RateLimiting(1, 1) })
}

func TestRateLimiting_Middleware(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.HTTPErrorHandler = httputil.ErrorHandler
	e.Use(RateLimiting(1, 2))
	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "pong"})
	})

	do := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, do("10.1.1.1:1000").Code)
	assert.Equal(t, http.StatusOK, do("10.1.1.1:1001").Code)

	rec := do("10.1.1.1:1002")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"`+constants.ErrMsgTooManyRequests+`"}`, rec.Body.String())

	// 다른 IP는 독립적인 버킷을 사용합니다.
	assert.Equal(t, http.StatusOK, do("10.2.2.2:1000").Code)
}
