package httputil

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/darkkaiser/monitoring-server/internal/service/api/constants"
	"github.com/darkkaiser/monitoring-server/internal/service/api/model/response"
	applog "github.com/darkkaiser/monitoring-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 에러를 {"error": "..."} 형식의 JSON으로 변환하여 반환합니다.
// 5xx는 Error, 4xx는 Warn 레벨로 기록합니다.
func ErrorHandler(err error, c echo.Context) {
	// 이미 응답이 전송된 경우 추가 응답이나 기록을 하지 않습니다.
	// Timeout 미들웨어는 에러를 직접 처리한 뒤 상위 체인으로도 전달하므로 같은 에러가 다시 들어올 수 있습니다.
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := constants.ErrMsgInternalServer

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch m := he.Message.(type) {
		case string:
			message = m
		case response.ErrorResponse:
			message = m.Error
		case error:
			message = m.Error()
		default:
			message = fmt.Sprintf("%v", m)
		}
	}

	switch code {
	case http.StatusNotFound:
		message = constants.ErrMsgNotFound
	case http.StatusTooManyRequests:
		message = constants.ErrMsgTooManyRequests
	}

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  RequestID(c),
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// HEAD 요청은 본문 없이 헤더만 반환합니다.
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.ErrorResponse{Error: message})
}
