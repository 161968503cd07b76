// Package monitor 모니터링 엔드포인트의 응답 모델을 정의합니다.
package monitor

import (
	"time"

	"github.com/darkkaiser/monitoring-server/internal/monitor/alert"
	"github.com/darkkaiser/monitoring-server/internal/monitor/probe"
	"github.com/darkkaiser/monitoring-server/internal/monitor/sysmetrics"
)

// MetricsResponse 호스트 사용량 응답입니다.
type MetricsResponse struct {
	CPU       sysmetrics.CPUStats    `json:"cpu"`
	Memory    sysmetrics.MemoryStats `json:"memory"`
	Disk      sysmetrics.DiskStats   `json:"disk"`
	Timestamp time.Time              `json:"timestamp"`
}

// ServicesResponse 의존 서비스 헬스체크 응답입니다.
type ServicesResponse struct {
	OverallStatus probe.OverallStatus     `json:"overall_status" example:"healthy"`
	Services      map[string]probe.Result `json:"services"`
	Timestamp     time.Time               `json:"timestamp"`
}

// LogsResponse 로그 파일의 마지막 N줄 응답입니다.
//
// 로그 파일이 아직 없으면 logs만 빈 배열로 반환되고 나머지 필드는 생략됩니다.
type LogsResponse struct {
	Logs          []string `json:"logs"`
	TotalLines    *int     `json:"total_lines,omitempty"`
	ReturnedLines *int     `json:"returned_lines,omitempty"`
}

// AlertsResponse 임계치 초과 알림 응답입니다. 알림이 없어도 200으로 응답합니다.
type AlertsResponse struct {
	Alerts    []alert.Alert `json:"alerts"`
	Count     int           `json:"count"`
	Timestamp time.Time     `json:"timestamp"`
}
