package middleware

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/darkkaiser/monitoring-server/internal/service/api/constants"
	"github.com/darkkaiser/monitoring-server/internal/service/api/httputil"
	applog "github.com/darkkaiser/monitoring-server/pkg/log"
	"github.com/darkkaiser/monitoring-server/pkg/strutil"
	"github.com/labstack/echo/v4"
)

const (
	// defaultBytesIn Content-Length 헤더가 없는 요청의 bytes_in 필드 값
	defaultBytesIn = "0"
)

// sensitiveQueryParams 접근 로그에서 값을 가려야 하는 쿼리 파라미터 키 목록입니다.
var sensitiveQueryParams = []string{
	"api_key",
	"password",
	"token",
	"secret",
}

// HTTPLogger 요청마다 한 줄의 구조화된 접근 로그를 기록하는 미들웨어를 반환합니다.
//
// skipPaths와 경로가 정확히 일치하는 요청은 기록하지 않습니다.
// 핸들러가 반환한 에러는 c.Error로 즉시 처리하여 로그에 최종 상태 코드가 기록되도록 합니다.
func HTTPLogger(skipPaths ...string) echo.MiddlewareFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()

			if _, ok := skip[req.URL.Path]; ok {
				return next(c)
			}

			start := time.Now()

			defer func() {
				latency := time.Since(start)

				path := req.URL.Path
				if path == "" {
					path = "/"
				}

				bytesIn := req.Header.Get(echo.HeaderContentLength)
				if bytesIn == "" {
					bytesIn = defaultBytesIn
				}

				applog.WithComponentAndFields(constants.ComponentMiddleware, applog.Fields{
					"method":   req.Method,
					"path":     path,
					"uri":      maskSensitiveQueryParams(req.RequestURI),
					"host":     req.Host,
					"protocol": req.Proto,

					"remote_ip":  c.RealIP(),
					"user_agent": req.UserAgent(),
					"referer":    req.Referer(),

					"status":    res.Status,
					"bytes_in":  bytesIn,
					"bytes_out": strconv.FormatInt(res.Size, 10),

					"latency":       strconv.FormatInt(latency.Microseconds(), 10),
					"latency_human": latency.String(),

					"request_id": httputil.RequestID(c),
				}).Info("HTTP 요청")
			}()

			if err := next(c); err != nil {
				c.Error(err)
			}

			return nil
		}
	}
}

// maskSensitiveQueryParams URI에 포함된 민감한 쿼리 파라미터 값을 마스킹합니다.
// 파싱에 실패하면 원본을 그대로 반환합니다.
//
//	"/logs?token=secret123&lines=10" -> "/logs?lines=10&token=secr%2A%2A%2A"
func maskSensitiveQueryParams(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	q := u.Query()
	masked := false
	for key, values := range q {
		if !isSensitiveQueryParam(key) {
			continue
		}
		for i, v := range values {
			values[i] = strutil.Mask(v)
		}
		masked = true
	}

	if !masked {
		return uri
	}

	u.RawQuery = q.Encode()
	return u.String()
}

func isSensitiveQueryParam(key string) bool {
	key = strings.ToLower(key)
	for _, p := range sensitiveQueryParams {
		if key == p {
			return true
		}
	}
	return false
}
