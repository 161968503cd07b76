// Package monitor 호스트 사용량, 의존 서비스 상태, 로그, 알림 엔드포인트 핸들러를 제공합니다.
package monitor

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/darkkaiser/monitoring-server/internal/monitor/alert"
	"github.com/darkkaiser/monitoring-server/internal/monitor/logtail"
	"github.com/darkkaiser/monitoring-server/internal/monitor/probe"
	"github.com/darkkaiser/monitoring-server/internal/monitor/sysmetrics"
	apperrors "github.com/darkkaiser/monitoring-server/internal/pkg/errors"
	"github.com/darkkaiser/monitoring-server/internal/service/api/constants"
	"github.com/darkkaiser/monitoring-server/internal/service/api/httputil"
	"github.com/darkkaiser/monitoring-server/internal/service/api/model/monitor"
	applog "github.com/darkkaiser/monitoring-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// SnapshotSource 호스트 사용량을 측정합니다. *sysmetrics.Collector가 이를 구현합니다.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (sysmetrics.Snapshot, error)
}

// HealthChecker 의존 서비스의 상태를 확인합니다. *probe.Poller가 이를 구현합니다.
type HealthChecker interface {
	Check(ctx context.Context) probe.Report
}

// AlertChecker 임계치 초과 여부를 평가합니다. *alert.Evaluator가 이를 구현합니다.
type AlertChecker interface {
	Check(ctx context.Context) ([]alert.Alert, time.Time, error)
}

// Handler 모니터링 엔드포인트 핸들러
//
// 모든 의존성은 구동 시 한 번 주입되며 이후 변경되지 않습니다.
type Handler struct {
	metrics  SnapshotSource
	services HealthChecker
	alerts   AlertChecker

	logFilePath string

	now func() time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(metrics SnapshotSource, services HealthChecker, alerts AlertChecker, logFilePath string) *Handler {
	if metrics == nil {
		panic("SnapshotSource는 필수입니다")
	}
	if services == nil {
		panic("HealthChecker는 필수입니다")
	}
	if alerts == nil {
		panic("AlertChecker는 필수입니다")
	}

	return &Handler{
		metrics:  metrics,
		services: services,
		alerts:   alerts,

		logFilePath: logFilePath,

		now: time.Now,
	}
}

// MetricsHandler godoc
// @Summary 호스트 사용량 조회
// @Description CPU(1초 측정), 메모리, 루트 파일시스템 사용량을 반환합니다. 사용률은 소수점 첫째 자리로 반올림됩니다.
// @Tags Monitor
// @Produce json
// @Success 200 {object} monitor.MetricsResponse "사용량"
// @Failure 500 {object} response.ErrorResponse "OS 조회 실패"
// @Router /metrics [get]
func (h *Handler) MetricsHandler(c echo.Context) error {
	snap, err := h.metrics.Snapshot(detachedContext(c))
	if err != nil {
		return httputil.NewInternalServerError(errorMessage(err), err)
	}

	return c.JSON(http.StatusOK, monitor.MetricsResponse{
		CPU:       snap.CPU,
		Memory:    snap.Memory,
		Disk:      snap.Disk,
		Timestamp: h.now().UTC(),
	})
}

// ServicesHandler godoc
// @Summary 의존 서비스 헬스체크
// @Description 설정된 서비스(api, database, redis)를 순서대로 호출합니다. 하나라도 비정상이면 503을 반환합니다.
// @Tags Monitor
// @Produce json
// @Success 200 {object} monitor.ServicesResponse "모든 서비스 정상"
// @Failure 503 {object} monitor.ServicesResponse "하나 이상의 서비스 비정상"
// @Router /services [get]
func (h *Handler) ServicesHandler(c echo.Context) error {
	report := h.services.Check(detachedContext(c))

	code := http.StatusOK
	if !report.Healthy() {
		code = http.StatusServiceUnavailable
	}

	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"overall_status": report.OverallStatus,
		"services":       len(report.Services),
	}).Debug(constants.LogMsgServicesChecked)

	return c.JSON(code, monitor.ServicesResponse{
		OverallStatus: report.OverallStatus,
		Services:      report.Services,
		Timestamp:     report.Timestamp,
	})
}

// LogsHandler godoc
// @Summary 로그 조회
// @Description 모니터링 로그 파일의 마지막 N줄을 반환합니다. 정수가 아닌 lines 값은 기본값(100)으로 처리됩니다.
// @Tags Monitor
// @Produce json
// @Param lines query int false "반환할 줄 수" default(100) minimum(0)
// @Success 200 {object} monitor.LogsResponse "로그"
// @Failure 400 {object} response.ErrorResponse "음수 lines"
// @Failure 500 {object} response.ErrorResponse "로그 파일 읽기 실패"
// @Router /logs [get]
func (h *Handler) LogsHandler(c echo.Context) error {
	lines, err := parseLines(c.QueryParam(constants.QueryParamLines))
	if err != nil {
		return err
	}

	tail, err := logtail.ReadLast(h.logFilePath, lines)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c.JSON(http.StatusOK, monitor.LogsResponse{Logs: []string{}})
		}

		return httputil.NewInternalServerError(errorMessage(err), err)
	}

	returned := len(tail.Lines)

	return c.JSON(http.StatusOK, monitor.LogsResponse{
		Logs:          tail.Lines,
		TotalLines:    &tail.Total,
		ReturnedLines: &returned,
	})
}

// AlertsHandler godoc
// @Summary 임계치 알림 조회
// @Description 사용량을 새로 측정하여 CPU > 80%, 메모리 > 85%는 warning, 디스크 > 90%는 critical 알림을 반환합니다.
// @Tags Monitor
// @Produce json
// @Success 200 {object} monitor.AlertsResponse "알림 목록 (없으면 빈 배열)"
// @Failure 500 {object} response.ErrorResponse "OS 조회 실패"
// @Router /alerts [get]
func (h *Handler) AlertsHandler(c echo.Context) error {
	alerts, ts, err := h.alerts.Check(detachedContext(c))
	if err != nil {
		return httputil.NewInternalServerError(errorMessage(err), err)
	}

	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"count": len(alerts),
	}).Debug(constants.LogMsgAlertsEvaluated)

	return c.JSON(http.StatusOK, monitor.AlertsResponse{
		Alerts:    alerts,
		Count:     len(alerts),
		Timestamp: ts,
	})
}

// parseLines lines 쿼리 값을 해석합니다. 비어 있거나 정수가 아니면 기본값을 사용합니다.
func parseLines(raw string) (int, error) {
	if raw == "" {
		return logtail.DefaultLines, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return logtail.DefaultLines, nil
	}
	if n < 0 {
		return 0, httputil.NewBadRequestError(constants.ErrMsgNegativeLines)
	}

	return n, nil
}

// errorMessage 클라이언트에게 반환할 에러 메시지를 만듭니다.
func errorMessage(err error) string {
	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		if cause := apperrors.RootCause(err); cause != nil && cause != err {
			return appErr.Message() + ": " + cause.Error()
		}
		return appErr.Message()
	}
	return err.Error()
}

// detachedContext 요청 컨텍스트의 값은 유지하되 취소는 전파하지 않는 컨텍스트를 반환합니다.
//
// 클라이언트 연결이 끊기거나 요청 타임아웃이 발생해도 진행 중인 측정과 외부 호출은 끝까지 수행됩니다.
// 소요 시간의 상한은 CPU 측정 구간(1초)과 엔드포인트별 요청 타임아웃(5초)이 정합니다.
func detachedContext(c echo.Context) context.Context {
	return context.WithoutCancel(c.Request().Context())
}
