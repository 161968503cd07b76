// Package watch 주기적으로 알림 임계치를 평가하여 초과 항목을 로그에 기록하는 서비스를 제공합니다.
//
// 평가 결과는 로그로만 남으며 외부로 전송되지 않습니다.
package watch

import (
	"context"
	"sync"
	"time"

	"github.com/darkkaiser/monitoring-server/internal/config"
	"github.com/darkkaiser/monitoring-server/internal/monitor/alert"
	"github.com/darkkaiser/monitoring-server/pkg/cronx"
	applog "github.com/darkkaiser/monitoring-server/pkg/log"
	"github.com/robfig/cron/v3"
)

// component Watch 서비스의 로깅용 컴포넌트 이름
const component = "watch.service"

// checkTimeout 한 번의 평가에 허용되는 최대 시간
const checkTimeout = 30 * time.Second

// Checker 임계치 초과 여부를 평가합니다. *alert.Evaluator가 이를 구현합니다.
type Checker interface {
	Check(ctx context.Context) ([]alert.Alert, time.Time, error)
}

// Service alert_watch.time_spec 스케줄에 맞춰 Checker를 실행하는 서비스입니다.
type Service struct {
	config config.AlertWatchConfig

	checker Checker

	cron *cron.Cron

	running   bool
	runningMu sync.Mutex
}

// NewService 새로운 Watch 서비스 인스턴스를 생성합니다.
func NewService(cfg config.AlertWatchConfig, checker Checker) *Service {
	if checker == nil {
		panic("Checker는 필수입니다")
	}

	return &Service{
		config: cfg,

		checker: checker,
	}
}

// Start 감시 작업을 Cron 엔진에 등록하고 시작합니다.
//
// 설정에서 비활성화되어 있으면 아무 작업 없이 serviceStopWG.Done을 호출하고 반환합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.config.Enabled {
		serviceStopWG.Done()
		applog.WithComponent(component).Info("알림 감시 작업이 비활성화되어 있어 Watch 서비스를 시작하지 않습니다")
		return nil
	}

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Watch 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	// - StandardParser: 초 단위 스케줄링 (6개 필드: 초 분 시 일 월 요일)
	// - Recover: 평가 중 panic이 발생해도 다음 실행에 영향이 없도록 복구
	// - SkipIfStillRunning: 이전 평가(CPU 1초 측정 포함)가 끝나지 않았으면 건너뜀
	cronLogger := cron.VerbosePrintfLogger(applog.StandardLogger())
	c := cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(cronLogger),
		cron.WithChain(
			cron.Recover(cronLogger),
			cron.SkipIfStillRunning(cronLogger),
		),
	)

	if _, err := c.AddFunc(s.config.TimeSpec, s.runCheck); err != nil {
		serviceStopWG.Done()
		return NewErrInvalidCronSpec(s.config.TimeSpec, err)
	}

	s.cron = c
	s.cron.Start()
	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"time_spec": s.config.TimeSpec,
	}).Info("Watch 서비스 시작 완료")

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.Stop()
	}()

	return nil
}

// Stop 스케줄러를 중지하고 실행 중인 평가가 끝날 때까지 기다립니다.
func (s *Service) Stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	if s.cron != nil {
		<-s.cron.Stop().Done()
	}

	s.cron = nil
	s.running = false

	applog.WithComponent(component).Info("Watch 서비스 종료 완료")
}

// runCheck 한 번 평가하고 임계치를 초과한 항목을 Warn 레벨로 기록합니다.
func (s *Service) runCheck() {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	alerts, ts, err := s.checker.Check(ctx)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Error("알림 평가 실패: 호스트 사용량을 조회할 수 없습니다")
		return
	}

	if len(alerts) == 0 {
		applog.WithComponentAndFields(component, applog.Fields{
			"timestamp": ts,
		}).Debug("알림 평가 완료: 임계치를 초과한 항목이 없습니다")
		return
	}

	for _, a := range alerts {
		applog.WithComponentAndFields(component, applog.Fields{
			"alert_level": a.Level,
			"alert_type":  a.Type,
			"timestamp":   a.Timestamp,
		}).Warn(a.Message)
	}
}
