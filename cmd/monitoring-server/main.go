package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/monitoring-server/internal/config"
	"github.com/darkkaiser/monitoring-server/internal/monitor/alert"
	"github.com/darkkaiser/monitoring-server/internal/monitor/sysmetrics"
	"github.com/darkkaiser/monitoring-server/internal/pkg/version"
	"github.com/darkkaiser/monitoring-server/internal/service"
	"github.com/darkkaiser/monitoring-server/internal/service/api"
	"github.com/darkkaiser/monitoring-server/internal/service/watch"
	applog "github.com/darkkaiser/monitoring-server/pkg/log"
)

// @title Monitoring Server API
// @version 1.0.0
// @description 호스트 사용량, 의존 서비스 상태, 로그, 임계치 알림을 조회하는 모니터링 서버의 REST API입니다.
// @description 인증 없이 호출할 수 있으며 모든 엔드포인트는 GET입니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser

// @license.name MIT

// @BasePath /

const (
	// logName 로그 파일 이름 (<log.dir>/monitoring.log)
	logName = "monitoring"

	banner = `
  __  __               _  _               _
 |  \/  |  ___   _ __ (_)| |_  ___   _ __(_) _ __    __ _
 | |\/| | / _ \ | '_ \| || __|/ _ \ | '__| || '_ \  / _' |
 | |  | || (_) || | | | || |_| (_) || |  | || | | || (_| |
 |_|  |_| \___/ |_| |_|_| \__|\___/ |_|  |_||_| |_| \__, |
                                                    |___/ %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`
)

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	logOpts := newLogOptions(appConfig)
	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()

	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields("main", applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
		"port":    appConfig.HTTP.ListenPort,
	}).Info("서버 초기화 시작")

	for _, w := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(w)
	}

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	for _, s := range newServices(appConfig, buildInfo, logOpts.FilePath()) {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel()
			serviceStopWG.Wait()

			applog.StandardLogger().Fatal("서비스 초기화 실패로 프로그램을 종료합니다")
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("서버 가동 완료")

	<-termC

	applog.WithComponent("main").Info("종료 신호 수신")
	cancel()
	serviceStopWG.Wait()
}

// newLogOptions 디버그 여부에 따라 로그 프로필을 선택합니다.
func newLogOptions(appConfig *config.AppConfig) applog.Options {
	if appConfig.Debug {
		return applog.NewDevelopmentOptions(logName, appConfig.Log.Dir)
	}
	return applog.NewProductionOptions(logName, appConfig.Log.Dir)
}

// newServices 시작 순서대로 서비스를 생성합니다.
func newServices(appConfig *config.AppConfig, buildInfo version.Info, logFilePath string) []service.Service {
	evaluator := alert.NewEvaluator(sysmetrics.NewCollector(sysmetrics.NewHostSampler()))

	return []service.Service{
		api.NewService(appConfig, buildInfo, logFilePath),
		watch.NewService(appConfig.AlertWatch, evaluator),
	}
}
