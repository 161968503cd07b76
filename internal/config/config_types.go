package config

import (
	"fmt"
	"strings"

	"github.com/darkkaiser/monitoring-server/internal/monitor/probe"
	apperrors "github.com/darkkaiser/monitoring-server/internal/pkg/errors"
	"github.com/darkkaiser/monitoring-server/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 루트 구조체
type AppConfig struct {
	Debug      bool             `json:"debug"`
	Services   ServicesConfig   `json:"services"`
	HTTP       HTTPConfig       `json:"http"`
	Log        LogConfig        `json:"log"`
	AlertWatch AlertWatchConfig `json:"alert_watch"`
}

// validate 각 설정 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *AppConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c.Services, "services"); err != nil {
		return err
	}
	if err := c.HTTP.validate(v); err != nil {
		return err
	}
	if err := checkStruct(v, c.Log, "log"); err != nil {
		return err
	}
	if err := c.AlertWatch.validate(); err != nil {
		return err
	}
	return nil
}

// VerifyRecommendations 구동을 막지는 않지만 운영상 주의가 필요한 설정에 대한 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.HTTP.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.HTTP.ListenPort))
	}
	if eps := c.Services.Endpoints(); eps[0].URL == eps[1].URL && eps[0].URL == eps[2].URL {
		warnings = append(warnings, fmt.Sprintf("api, database, redis 헬스체크 주소가 모두 동일합니다('%s'). 각 서비스의 실제 헬스체크 주소를 지정하는 것을 권장합니다", eps[0].URL))
	}

	return warnings
}

// ServicesConfig 헬스체크 대상 서비스의 주소입니다.
type ServicesConfig struct {
	API      string `json:"api" validate:"required,http_url"`
	Database string `json:"database" validate:"required,http_url"`
	Redis    string `json:"redis" validate:"required,http_url"`
}

// Endpoints 헬스체크 순서(api, database, redis)대로 정렬된 엔드포인트 목록을 반환합니다.
// 주소의 앞뒤 공백은 검증할 때와 마찬가지로 제거됩니다.
func (c ServicesConfig) Endpoints() []probe.Endpoint {
	return []probe.Endpoint{
		{Name: "api", URL: strings.TrimSpace(c.API)},
		{Name: "database", URL: strings.TrimSpace(c.Database)},
		{Name: "redis", URL: strings.TrimSpace(c.Redis)},
	}
}

// HTTPConfig 모니터링 API 서버 설정
type HTTPConfig struct {
	ListenPort int        `json:"listen_port" validate:"min=1,max=65535"`
	CORS       CORSConfig `json:"cors"`
}

func (c *HTTPConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c, "http"); err != nil {
		return err
	}
	return c.CORS.validate(v)
}

// CORSConfig 웹 브라우저의 교차 출처 리소스 공유(CORS) 정책
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *CORSConfig) validate(v *validator.Validate) error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}

	for _, origin := range c.AllowOrigins {
		if origin == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}

	return checkStruct(v, c, "http.cors")
}

// LogConfig 로그 파일 설정
type LogConfig struct {
	Dir string `json:"dir" validate:"required"`
}

// AlertWatchConfig 주기적인 알림 감시 작업 설정
type AlertWatchConfig struct {
	Enabled  bool   `json:"enabled"`
	TimeSpec string `json:"time_spec"`
}

func (c *AlertWatchConfig) validate() error {
	if !c.Enabled {
		return nil
	}
	if err := validation.ValidateCronExpression(c.TimeSpec); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("알림 감시 작업의 스케줄(alert_watch.time_spec) 설정이 유효하지 않습니다: '%s'", c.TimeSpec))
	}
	return nil
}
