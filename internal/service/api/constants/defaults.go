package constants

import "time"

// 서버 설정 기본값 상수입니다.
const (
	// DefaultRequestTimeout HTTP 요청 처리의 기본 타임아웃 시간 (60초)
	// 요청 처리가 이 시간을 초과하면 요청 컨텍스트가 취소되고 503 응답을 반환합니다.
	DefaultRequestTimeout = 60 * time.Second

	DefaultReadTimeout       = 10 * time.Second
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultIdleTimeout       = 120 * time.Second

	// DefaultWriteTimeout 응답 쓰기 제한. 요청 타임아웃보다 길어야 타임아웃 응답(503)을 보낼 수 있습니다.
	DefaultWriteTimeout = DefaultRequestTimeout + 5*time.Second

	// DefaultRateLimitPerSecond IP별 초당 허용 요청 수
	DefaultRateLimitPerSecond = 20

	// DefaultRateLimitBurst IP별 버스트 허용량
	DefaultRateLimitBurst = 40

	// DefaultMaxBodySize 요청 본문 최대 크기. 모든 엔드포인트가 GET이므로 작게 유지합니다.
	DefaultMaxBodySize = "64K"
)

// ServiceName 헬스체크 응답에 포함되는 서비스 이름입니다.
const ServiceName = "monitoring"

// QueryParamLines /logs 엔드포인트의 줄 수 쿼리 파라미터 이름입니다.
const QueryParamLines = "lines"

// ContextKeyRequestID 요청 ID를 보관하는 echo.Context 키입니다.
const ContextKeyRequestID = "request_id"
