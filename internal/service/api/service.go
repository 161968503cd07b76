// Package api 모니터링 HTTP API 서버를 제공합니다.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	_ "github.com/darkkaiser/monitoring-server/docs"
	"github.com/darkkaiser/monitoring-server/internal/config"
	"github.com/darkkaiser/monitoring-server/internal/monitor/alert"
	"github.com/darkkaiser/monitoring-server/internal/monitor/probe"
	"github.com/darkkaiser/monitoring-server/internal/monitor/sysmetrics"
	"github.com/darkkaiser/monitoring-server/internal/pkg/version"
	"github.com/darkkaiser/monitoring-server/internal/service/api/constants"
	"github.com/darkkaiser/monitoring-server/internal/service/api/handler/monitor"
	"github.com/darkkaiser/monitoring-server/internal/service/api/handler/system"
	applog "github.com/darkkaiser/monitoring-server/pkg/log"
	"github.com/labstack/echo/v4"
)

const (
	// shutdownTimeout Graceful Shutdown 시 최대 대기 시간 (5초)
	shutdownTimeout = 5 * time.Second
)

// Service 모니터링 API 서버의 생명주기를 관리하는 서비스입니다.
//
// Start로 시작하며 serviceStopCtx가 취소되면 Graceful Shutdown 후 serviceStopWG.Done을 호출합니다.
type Service struct {
	appConfig *config.AppConfig

	buildInfo version.Info

	// logFilePath /logs 엔드포인트가 읽는 파일 (로그 시스템이 기록하는 파일과 같음)
	logFilePath string

	sampler sysmetrics.Sampler
	fetcher probe.Fetcher

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, buildInfo version.Info, logFilePath string) *Service {
	if appConfig == nil {
		panic("AppConfig는 필수입니다")
	}

	return &Service{
		appConfig: appConfig,

		buildInfo: buildInfo,

		logFilePath: logFilePath,

		sampler: sysmetrics.NewHostSampler(),
		fetcher: probe.NewLoggingFetcher(probe.NewHTTPFetcher(probe.DefaultTimeout)),
	}
}

// Start API 서비스를 시작합니다. 실제 서버는 별도 고루틴에서 실행되며 이 함수는 즉시 반환됩니다.
//
// 이미 실행 중이면 경고만 남기고 serviceStopWG.Done을 호출합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer 모니터링 구성 요소와 핸들러를 만들고 라우트가 등록된 Echo 인스턴스를 반환합니다.
func (s *Service) setupServer() *echo.Echo {
	collector := sysmetrics.NewCollector(s.sampler)
	poller := probe.NewPoller(s.fetcher, s.appConfig.Services.Endpoints())
	evaluator := alert.NewEvaluator(collector)

	systemHandler := system.NewHandler(s.buildInfo)
	monitorHandler := monitor.NewHandler(collector, poller, evaluator, s.logFilePath)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:        s.appConfig.Debug,
		AllowOrigins: s.appConfig.HTTP.CORS.AllowOrigins,
	})

	RegisterRoutes(e, systemHandler, monitorHandler)

	return e
}

// startHTTPServer 서버를 시작하고 종료되면 done 채널을 닫습니다. 서버가 종료될 때까지 블로킹됩니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	port := s.appConfig.HTTP.ListenPort
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": port,
	}).Info(constants.LogMsgServiceHTTPServerStarting)

	s.handleServerError(e.Start(fmt.Sprintf(":%d", port)))
}

// handleServerError 서버 종료 사유를 기록합니다. Graceful Shutdown(http.ErrServerClosed)은 Info, 그 외는 Error 레벨입니다.
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.HTTP.ListenPort,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)
}

// waitForShutdown 종료 신호 또는 서버의 조기 종료를 기다린 뒤 정리합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)
	case <-httpServerDone:
		// 포트 바인딩 실패 등으로 서버가 먼저 종료된 경우
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
