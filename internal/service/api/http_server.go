package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/monitoring-server/internal/service/api/constants"
	"github.com/darkkaiser/monitoring-server/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/monitoring-server/internal/service/api/middleware"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// AllowOrigins CORS에서 허용할 Origin 목록 (기본: ["*"])
	AllowOrigins []string

	// RequestTimeout 각 HTTP 요청의 최대 처리 시간 (0이면 60초)
	// 초과하면 클라이언트에게 503을 반환합니다. 진행 중인 CPU 측정과 서비스 호출은 중단되지 않습니다.
	RequestTimeout time.Duration
}

// accessLogSkipPaths 접근 로그를 남기지 않는 경로입니다. 헬스체크 호출은 로그 파일을 변경하지 않습니다.
var accessLogSkipPaths = []string{"/health", "/ping"}

// NewHTTPServer 미들웨어 체인이 설정된 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다:
//
//  1. PanicRecovery - 다른 미들웨어의 panic까지 복구하도록 가장 먼저 적용
//  2. RequestID - X-Request-ID 헤더 부여 (UUID v4)
//  3. Server 헤더 제거
//  4. HTTPLogger - 429/503 응답도 기록되도록 RateLimit/Timeout 이전에 위치 (/health, /ping 제외)
//  5. RateLimiting - IP별 초당 20 요청, 버스트 40
//  6. BodyLimit - 64KB
//  7. Timeout - 기본 60초, 초과 시 503
//  8. CORS - GET, HEAD, OPTIONS만 허용
//  9. Secure - 보안 헤더
//
// 라우트는 포함되지 않으며 RegisterRoutes로 별도 등록합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	// Echo 내부 로그도 애플리케이션 로그 파일에 기록합니다.
	e.Logger = appmiddleware.NewLogger()

	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeout
	}

	allowOrigins := cfg.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}

	// 1. Panic 복구
	e.Use(appmiddleware.PanicRecovery())
	// 2. Request ID
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return uuid.NewString()
		},
		RequestIDHandler: func(c echo.Context, requestID string) {
			c.Set(constants.ContextKeyRequestID, requestID)
		},
	}))
	// 3. Server 헤더 제거
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Del(echo.HeaderServer)
			return next(c)
		}
	})
	// 4. HTTP 로깅
	e.Use(appmiddleware.HTTPLogger(accessLogSkipPaths...))
	// 5. Rate Limiting
	e.Use(appmiddleware.RateLimiting(constants.DefaultRateLimitPerSecond, constants.DefaultRateLimitBurst))
	// 6. Body Limit
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	// 7. Timeout
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout:      timeout,
		ErrorMessage: `{"error":"` + constants.ErrMsgRequestTimeout + `"}`,
	}))
	// 8. CORS
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))
	// 9. 보안 헤더
	e.Use(middleware.Secure())

	return e
}
