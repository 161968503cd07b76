// Package system 모니터링 서버 자체의 상태를 알려주는 엔드포인트 핸들러를 제공합니다.
package system

import (
	"net/http"
	"time"

	"github.com/darkkaiser/monitoring-server/internal/pkg/version"
	"github.com/darkkaiser/monitoring-server/internal/service/api/constants"
	"github.com/darkkaiser/monitoring-server/internal/service/api/model/system"
	applog "github.com/darkkaiser/monitoring-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler 헬스체크, Ping, 버전 정보 엔드포인트 핸들러
type Handler struct {
	buildInfo version.Info
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(buildInfo version.Info) *Handler {
	return &Handler{
		buildInfo: buildInfo,
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 모니터링 서버 프로세스가 살아 있는지 확인합니다. 의존 서비스의 상태는 /services를 사용하세요.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	logRequest(c, constants.LogMsgHealthCheck)

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   constants.ServiceName,
	})
}

// PingHandler godoc
// @Summary Ping
// @Tags System
// @Produce json
// @Success 200 {object} system.PingResponse
// @Router /ping [get]
func (h *Handler) PingHandler(c echo.Context) error {
	logRequest(c, constants.LogMsgPing)

	return c.JSON(http.StatusOK, system.PingResponse{Message: "pong"})
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전, 실행 플랫폼을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	logRequest(c, constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   h.buildInfo.GoVersion,
		OS:          h.buildInfo.OS,
		Arch:        h.buildInfo.Arch,
	})
}

func logRequest(c echo.Context, msg string) {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  c.Path(),
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(msg)
}
