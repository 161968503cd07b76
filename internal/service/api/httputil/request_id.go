package httputil

import (
	"github.com/darkkaiser/monitoring-server/internal/service/api/constants"
	"github.com/labstack/echo/v4"
)

// RequestID 현재 요청의 ID를 반환합니다.
//
// Timeout 미들웨어 안쪽에서는 응답 Writer가 교체되어 응답 헤더로 ID를 읽을 수 없으므로
// RequestID 미들웨어가 컨텍스트에 보관한 값을 먼저 사용합니다.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(constants.ContextKeyRequestID).(string); ok && id != "" {
		return id
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
