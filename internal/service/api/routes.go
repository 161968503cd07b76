package api

import (
	"github.com/darkkaiser/monitoring-server/internal/service/api/handler/monitor"
	"github.com/darkkaiser/monitoring-server/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes 모든 엔드포인트를 등록합니다.
//
//   - 시스템: /health, /ping, /version
//   - 모니터링: /metrics, /services, /logs, /alerts
//   - API 문서: /swagger/*
func RegisterRoutes(e *echo.Echo, sh *system.Handler, mh *monitor.Handler) {
	registerSystemRoutes(e, sh)
	registerMonitorRoutes(e, mh)
	registerSwaggerRoutes(e)
}

func registerSystemRoutes(e *echo.Echo, h *system.Handler) {
	e.GET("/health", h.HealthCheckHandler)
	e.GET("/ping", h.PingHandler)
	e.GET("/version", h.VersionHandler)
}

func registerMonitorRoutes(e *echo.Echo, h *monitor.Handler) {
	e.GET("/metrics", h.MetricsHandler)
	e.GET("/services", h.ServicesHandler)
	e.GET("/logs", h.LogsHandler)
	e.GET("/alerts", h.AlertsHandler)
}

func registerSwaggerRoutes(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		echoSwagger.URL("/swagger/doc.json"),
		echoSwagger.DeepLinking(true),
		echoSwagger.DocExpansion("list"),
	))
}
