package sysmetrics

import (
	"context"
	"math"
	"time"

	apperrors "github.com/darkkaiser/monitoring-server/internal/pkg/errors"
)

const (
	// DefaultCPUWindow CPU 사용률 측정 구간입니다.
	DefaultCPUWindow = time.Second

	// DefaultDiskPath 디스크 사용량을 조회하는 경로 (루트 파일시스템)
	DefaultDiskPath = "/"
)

var errEmptyCPUPercent = apperrors.New(apperrors.System, "CPU 사용률 측정 결과가 비어 있습니다")

// CPUStats CPU 사용률과 논리 코어 수입니다.
type CPUStats struct {
	Percent float64 `json:"percent"`
	Count   int     `json:"count"`
}

// MemoryStats 가상 메모리 사용량입니다. 크기는 바이트 단위입니다.
type MemoryStats struct {
	Total     uint64  `json:"total"`
	Available uint64  `json:"available"`
	Percent   float64 `json:"percent"`
	Used      uint64  `json:"used"`
}

// DiskStats 파일시스템 사용량입니다. 크기는 바이트 단위입니다.
type DiskStats struct {
	Total   uint64  `json:"total"`
	Used    uint64  `json:"used"`
	Free    uint64  `json:"free"`
	Percent float64 `json:"percent"`
}

// Snapshot 한 시점의 호스트 사용량입니다.
type Snapshot struct {
	CPU    CPUStats    `json:"cpu"`
	Memory MemoryStats `json:"memory"`
	Disk   DiskStats   `json:"disk"`
}

// Collector Sampler를 이용해 Snapshot을 만듭니다. 호출할 때마다 새로 측정하며 결과를 캐시하지 않습니다.
type Collector struct {
	sampler   Sampler
	cpuWindow time.Duration
	diskPath  string
}

// Option Collector의 선택 설정입니다.
type Option func(*Collector)

// WithCPUWindow CPU 사용률 측정 구간을 변경합니다.
func WithCPUWindow(d time.Duration) Option {
	return func(c *Collector) {
		c.cpuWindow = d
	}
}

// WithDiskPath 디스크 사용량을 조회할 경로를 변경합니다.
func WithDiskPath(path string) Option {
	return func(c *Collector) {
		c.diskPath = path
	}
}

// NewCollector 새로운 Collector를 생성합니다.
func NewCollector(s Sampler, opts ...Option) *Collector {
	c := &Collector{
		sampler:   s,
		cpuWindow: DefaultCPUWindow,
		diskPath:  DefaultDiskPath,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot CPU(cpuWindow 동안 블로킹), 메모리, 디스크 사용량을 측정합니다.
// 사용률(%)은 소수점 첫째 자리로 반올림됩니다.
func (c *Collector) Snapshot(ctx context.Context) (Snapshot, error) {
	cpuPercent, err := c.sampler.CPUPercent(ctx, c.cpuWindow)
	if err != nil {
		return Snapshot{}, apperrors.Wrap(err, apperrors.System, "CPU 사용률 조회 실패")
	}

	cpuCount, err := c.sampler.CPUCount(ctx)
	if err != nil {
		return Snapshot{}, apperrors.Wrap(err, apperrors.System, "CPU 코어 수 조회 실패")
	}

	memory, err := c.sampler.VirtualMemory(ctx)
	if err != nil {
		return Snapshot{}, apperrors.Wrap(err, apperrors.System, "메모리 사용량 조회 실패")
	}

	disk, err := c.sampler.DiskUsage(ctx, c.diskPath)
	if err != nil {
		return Snapshot{}, apperrors.Wrapf(err, apperrors.System, "디스크 사용량 조회 실패 (path=%s)", c.diskPath)
	}

	memory.Percent = round1(memory.Percent)
	disk.Percent = round1(disk.Percent)

	return Snapshot{
		CPU: CPUStats{
			Percent: round1(cpuPercent),
			Count:   cpuCount,
		},
		Memory: memory,
		Disk:   disk,
	}, nil
}

// round1 소수점 첫째 자리로 반올림합니다.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
