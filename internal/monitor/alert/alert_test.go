package alert

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/darkkaiser/monitoring-server/internal/monitor/sysmetrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	snapshot sysmetrics.Snapshot
	err      error
}

func (f *fakeSource) Snapshot(context.Context) (sysmetrics.Snapshot, error) {
	return f.snapshot, f.err
}

func snapshot(cpu, memory, disk float64) sysmetrics.Snapshot {
	return sysmetrics.Snapshot{
		CPU:    sysmetrics.CPUStats{Percent: cpu, Count: 4},
		Memory: sysmetrics.MemoryStats{Percent: memory},
		Disk:   sysmetrics.DiskStats{Percent: disk},
	}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		snapshot sysmetrics.Snapshot
		expected []Alert
	}{
		{
			name:     "알림 없음",
			snapshot: snapshot(10, 20, 30),
			expected: []Alert{},
		},
		{
			name:     "임계치와 같으면 알림 없음",
			snapshot: snapshot(80, 85, 90),
			expected: []Alert{},
		},
		{
			name:     "CPU만 초과",
			snapshot: snapshot(80.1, 50, 50),
			expected: []Alert{
				{Level: LevelWarning, Type: TypeCPU, Message: "High CPU usage: 80.1%", Timestamp: now},
			},
		},
		{
			name:     "메모리와 디스크 초과",
			snapshot: snapshot(10, 92.5, 95),
			expected: []Alert{
				{Level: LevelWarning, Type: TypeMemory, Message: "High memory usage: 92.5%", Timestamp: now},
				{Level: LevelCritical, Type: TypeDisk, Message: "Low disk space: 95.0% used", Timestamp: now},
			},
		},
		{
			name:     "모두 초과 (cpu, memory, disk 순서)",
			snapshot: snapshot(99.9, 85.1, 90.1),
			expected: []Alert{
				{Level: LevelWarning, Type: TypeCPU, Message: "High CPU usage: 99.9%", Timestamp: now},
				{Level: LevelWarning, Type: TypeMemory, Message: "High memory usage: 85.1%", Timestamp: now},
				{Level: LevelCritical, Type: TypeDisk, Message: "Low disk space: 90.1% used", Timestamp: now},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Evaluate(tt.snapshot, now))
		})
	}
}

func TestEvaluator_Check(t *testing.T) {
	t.Parallel()

	t.Run("성공: 측정값을 평가하고 UTC 시각을 사용", func(t *testing.T) {
		t.Parallel()

		local := time.FixedZone("KST", 9*60*60)
		e := NewEvaluator(&fakeSource{snapshot: snapshot(10, 90, 10)})
		e.now = func() time.Time { return time.Date(2026, 10, 19, 21, 0, 0, 0, local) }

		alerts, at, err := e.Check(context.Background())
		require.NoError(t, err)
		require.Len(t, alerts, 1)
		assert.Equal(t, TypeMemory, alerts[0].Type)
		assert.Equal(t, time.UTC, at.Location())
		assert.Equal(t, 12, at.Hour())
		assert.Equal(t, at, alerts[0].Timestamp)
	})

	t.Run("실패: 측정 실패는 에러", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		alerts, _, err := NewEvaluator(&fakeSource{err: boom}).Check(context.Background())
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, alerts)
	})
}
