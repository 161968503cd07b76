package httputil

import (
	"net/http"

	"github.com/darkkaiser/monitoring-server/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
)

// NewBadRequestError 400 Bad Request 에러를 생성합니다
func NewBadRequestError(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, response.ErrorResponse{Error: message})
}

// NewTooManyRequestsError 429 Too Many Requests 에러를 생성합니다
func NewTooManyRequestsError(message string) error {
	return echo.NewHTTPError(http.StatusTooManyRequests, response.ErrorResponse{Error: message})
}

// NewInternalServerError 500 Internal Server Error 에러를 생성합니다
//
// err가 주어지면 원인 에러를 내부에 보관하여 ErrorHandler가 로그에 함께 기록합니다.
func NewInternalServerError(message string, err error) error {
	he := echo.NewHTTPError(http.StatusInternalServerError, response.ErrorResponse{Error: message})
	if err != nil {
		he = he.SetInternal(err)
	}
	return he
}
