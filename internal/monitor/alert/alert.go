// Package alert 호스트 사용량에 고정 임계치를 적용하여 알림을 만듭니다.
//
// 알림은 응답과 로그로만 노출되며 외부로 전송되지 않습니다.
package alert

import (
	"context"
	"fmt"
	"time"

	"github.com/darkkaiser/monitoring-server/internal/monitor/sysmetrics"
)

// Level 알림의 심각도입니다.
type Level string

const (
	LevelWarning  Level = "warning"
	LevelCritical Level = "critical"
)

// Type 알림을 발생시킨 지표입니다.
type Type string

const (
	TypeCPU    Type = "cpu"
	TypeMemory Type = "memory"
	TypeDisk   Type = "disk"
)

const (
	CPUThreshold    = 80.0
	MemoryThreshold = 85.0
	DiskThreshold   = 90.0
)

// Alert 임계치를 초과한 지표 하나에 대한 알림입니다.
type Alert struct {
	Level     Level     `json:"level"`
	Type      Type      `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// rule 지표 하나에 대한 임계치 규칙입니다. 값이 threshold를 "초과"할 때만 알림이 발생합니다.
type rule struct {
	typ       Type
	level     Level
	threshold float64
	value     func(s sysmetrics.Snapshot) float64
	format    string
}

// rules 평가 순서대로 정렬된 규칙 목록 (cpu, memory, disk)
var rules = []rule{
	{
		typ:       TypeCPU,
		level:     LevelWarning,
		threshold: CPUThreshold,
		value:     func(s sysmetrics.Snapshot) float64 { return s.CPU.Percent },
		format:    "High CPU usage: %.1f%%",
	},
	{
		typ:       TypeMemory,
		level:     LevelWarning,
		threshold: MemoryThreshold,
		value:     func(s sysmetrics.Snapshot) float64 { return s.Memory.Percent },
		format:    "High memory usage: %.1f%%",
	},
	{
		typ:       TypeDisk,
		level:     LevelCritical,
		threshold: DiskThreshold,
		value:     func(s sysmetrics.Snapshot) float64 { return s.Disk.Percent },
		format:    "Low disk space: %.1f%% used",
	},
}

// Evaluate 스냅샷에 규칙을 적용하여 알림 목록을 반환합니다. 알림이 없으면 빈 슬라이스를 반환합니다.
func Evaluate(s sysmetrics.Snapshot, now time.Time) []Alert {
	alerts := make([]Alert, 0, len(rules))

	for _, r := range rules {
		v := r.value(s)
		if v > r.threshold {
			alerts = append(alerts, Alert{
				Level:     r.level,
				Type:      r.typ,
				Message:   fmt.Sprintf(r.format, v),
				Timestamp: now,
			})
		}
	}

	return alerts
}

// SnapshotSource 평가에 사용할 사용량을 측정합니다. *sysmetrics.Collector가 이를 구현합니다.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (sysmetrics.Snapshot, error)
}

// Evaluator 호출될 때마다 사용량을 새로 측정하여 평가합니다.
type Evaluator struct {
	source SnapshotSource

	now func() time.Time
}

// NewEvaluator 새로운 Evaluator를 생성합니다.
func NewEvaluator(source SnapshotSource) *Evaluator {
	return &Evaluator{
		source: source,
		now:    time.Now,
	}
}

// Check 사용량을 측정하고 임계치를 초과한 항목을 알림으로 반환합니다.
// 측정 실패는 에러로 반환되며, 임계치 초과 자체는 에러가 아닙니다.
func (e *Evaluator) Check(ctx context.Context) ([]Alert, time.Time, error) {
	s, err := e.source.Snapshot(ctx)
	if err != nil {
		return nil, time.Time{}, err
	}

	now := e.now().UTC()

	return Evaluate(s, now), now, nil
}
