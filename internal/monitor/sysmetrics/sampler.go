// Package sysmetrics 호스트의 CPU, 메모리, 디스크 사용량을 수집합니다.
package sysmetrics

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

// Sampler 운영체제에 사용량 카운터를 질의하는 인터페이스입니다.
type Sampler interface {
	// CPUPercent window 동안 블로킹하며 전체 CPU 사용률(%)을 측정합니다.
	CPUPercent(ctx context.Context, window time.Duration) (float64, error)

	// CPUCount 논리 코어 수를 반환합니다.
	CPUCount(ctx context.Context) (int, error)

	VirtualMemory(ctx context.Context) (MemoryStats, error)

	DiskUsage(ctx context.Context, path string) (DiskStats, error)
}

// HostSampler gopsutil 기반의 Sampler 구현체입니다.
type HostSampler struct{}

// NewHostSampler 새로운 HostSampler를 생성합니다.
func NewHostSampler() *HostSampler {
	return &HostSampler{}
}

func (s *HostSampler) CPUPercent(ctx context.Context, window time.Duration) (float64, error) {
	percents, err := cpu.PercentWithContext(ctx, window, false)
	if err != nil {
		return 0, err
	}
	if len(percents) == 0 {
		return 0, errEmptyCPUPercent
	}
	return percents[0], nil
}

func (s *HostSampler) CPUCount(ctx context.Context) (int, error) {
	return cpu.CountsWithContext(ctx, true)
}

func (s *HostSampler) VirtualMemory(ctx context.Context) (MemoryStats, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemoryStats{}, err
	}

	return MemoryStats{
		Total:     vm.Total,
		Available: vm.Available,
		Used:      vm.Used,
		Percent:   vm.UsedPercent,
	}, nil
}

func (s *HostSampler) DiskUsage(ctx context.Context, path string) (DiskStats, error) {
	du, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return DiskStats{}, err
	}

	return DiskStats{
		Total:   du.Total,
		Used:    du.Used,
		Free:    du.Free,
		Percent: du.UsedPercent,
	}, nil
}
