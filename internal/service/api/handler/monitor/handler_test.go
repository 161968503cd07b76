package monitor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/darkkaiser/monitoring-server/internal/monitor/alert"
	"github.com/darkkaiser/monitoring-server/internal/monitor/probe"
	"github.com/darkkaiser/monitoring-server/internal/monitor/sysmetrics"
	apperrors "github.com/darkkaiser/monitoring-server/internal/pkg/errors"
	"github.com/darkkaiser/monitoring-server/internal/service/api/constants"
	"github.com/darkkaiser/monitoring-server/internal/service/api/httputil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Helpers
// =============================================================================

type fakeSource struct {
	snap sysmetrics.Snapshot
	err  error
}

func (f *fakeSource) Snapshot(context.Context) (sysmetrics.Snapshot, error) {
	return f.snap, f.err
}

// ctxAwareSource 컨텍스트가 취소되어 있으면 측정에 실패하는 SnapshotSource입니다.
type ctxAwareSource struct {
	snap sysmetrics.Snapshot
}

func (f *ctxAwareSource) Snapshot(ctx context.Context) (sysmetrics.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return sysmetrics.Snapshot{}, apperrors.Wrap(err, apperrors.System, "CPU 사용률 조회 실패")
	}
	return f.snap, nil
}

type fakeChecker struct {
	report probe.Report
}

func (f *fakeChecker) Check(context.Context) probe.Report {
	return f.report
}

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func calmSnapshot() sysmetrics.Snapshot {
	return sysmetrics.Snapshot{
		CPU:    sysmetrics.CPUStats{Percent: 12.5, Count: 8},
		Memory: sysmetrics.MemoryStats{Total: 1000, Available: 600, Percent: 40.0, Used: 400},
		Disk:   sysmetrics.DiskStats{Total: 2000, Used: 1000, Free: 1000, Percent: 50.0},
	}
}

func newTestHandler(t *testing.T, source SnapshotSource, checker HealthChecker, logFile string) *Handler {
	t.Helper()

	h := NewHandler(source, checker, alert.NewEvaluator(source), logFile)
	h.now = func() time.Time { return fixedNow }
	return h
}

// serve 에러 핸들러까지 포함한 Echo 인스턴스로 요청을 처리합니다.
func serve(h *Handler, target string) *httptest.ResponseRecorder {
	return serveRequest(h, httptest.NewRequest(http.MethodGet, target, nil))
}

func serveRequest(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	e := echo.New()
	e.HTTPErrorHandler = httputil.ErrorHandler
	e.GET("/metrics", h.MetricsHandler)
	e.GET("/services", h.ServicesHandler)
	e.GET("/logs", h.LogsHandler)
	e.GET("/alerts", h.AlertsHandler)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

func TestNewHandler_Panics(t *testing.T) {
	t.Parallel()

	src := &fakeSource{}
	chk := &fakeChecker{}
	eval := alert.NewEvaluator(src)

	assert.Panics(t, func() { NewHandler(nil, chk, eval, "") })
	assert.Panics(t, func() { NewHandler(src, nil, eval, "") })
	assert.Panics(t, func() { NewHandler(src, chk, nil, "") })
}

// =============================================================================
// /metrics
// =============================================================================

func TestMetricsHandler(t *testing.T) {
	t.Parallel()

	t.Run("성공: 사용량 반환", func(t *testing.T) {
		t.Parallel()

		h := newTestHandler(t, &fakeSource{snap: calmSnapshot()}, &fakeChecker{}, "")
		rec := serve(h, "/metrics")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"cpu": {"percent": 12.5, "count": 8},
			"memory": {"total": 1000, "available": 600, "percent": 40, "used": 400},
			"disk": {"total": 2000, "used": 1000, "free": 1000, "percent": 50},
			"timestamp": "2026-10-19T12:00:00Z"
		}`, rec.Body.String())
	})

	t.Run("실패: OS 조회 실패는 500", func(t *testing.T) {
		t.Parallel()

		err := apperrors.Wrap(errors.New("permission denied"), apperrors.System, "CPU 사용률 조회 실패")
		h := newTestHandler(t, &fakeSource{err: err}, &fakeChecker{}, "")
		rec := serve(h, "/metrics")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "CPU 사용률 조회 실패: permission denied", decode(t, rec)["error"])
	})
}

// =============================================================================
// /services
// =============================================================================

func TestServicesHandler(t *testing.T) {
	t.Parallel()

	code := http.StatusOK
	rt := 0.012

	tests := []struct {
		name       string
		report     probe.Report
		wantStatus int
	}{
		{
			name: "성공: 모두 정상이면 200",
			report: probe.Report{
				OverallStatus: probe.OverallHealthy,
				Services: map[string]probe.Result{
					"api": {Status: probe.StatusHealthy, StatusCode: &code, ResponseTime: &rt},
				},
				Timestamp: fixedNow,
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "성공: 하나라도 비정상이면 503",
			report: probe.Report{
				OverallStatus: probe.OverallDegraded,
				Services: map[string]probe.Result{
					"api":   {Status: probe.StatusHealthy, StatusCode: &code, ResponseTime: &rt},
					"redis": {Status: probe.StatusUnhealthy, Error: "connection refused"},
				},
				Timestamp: fixedNow,
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newTestHandler(t, &fakeSource{}, &fakeChecker{report: tt.report}, "")
			rec := serve(h, "/services")

			assert.Equal(t, tt.wantStatus, rec.Code)

			body := decode(t, rec)
			assert.Equal(t, string(tt.report.OverallStatus), body["overall_status"])
			assert.Equal(t, "2026-10-19T12:00:00Z", body["timestamp"])
			assert.Len(t, body["services"], len(tt.report.Services))
		})
	}
}

func TestServicesHandler_WithPoller(t *testing.T) {
	t.Parallel()

	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer up.Close()

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer down.Close()

	poller := probe.NewPoller(probe.NewHTTPFetcher(time.Second), []probe.Endpoint{
		{Name: "api", URL: up.URL},
		{Name: "database", URL: up.URL},
		{Name: "redis", URL: down.URL},
	})

	h := newTestHandler(t, &fakeSource{}, poller, "")
	rec := serve(h, "/services")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "degraded", body["overall_status"])

	services := body["services"].(map[string]any)
	api := services["api"].(map[string]any)
	assert.Equal(t, "healthy", api["status"])
	assert.Equal(t, float64(200), api["status_code"])
	assert.Equal(t, "ok", api["reported_status"])

	redis := services["redis"].(map[string]any)
	assert.Equal(t, "unhealthy", redis["status"])
	assert.Equal(t, float64(500), redis["status_code"])
	assert.NotNil(t, redis["response_time"])
}

// =============================================================================
// /logs
// =============================================================================

func writeLogFile(t *testing.T, lines int) string {
	t.Helper()

	var sb strings.Builder
	for i := 1; i <= lines; i++ {
		fmt.Fprintf(&sb, "  line %d \t\n", i)
	}

	path := filepath.Join(t.TempDir(), "monitoring.log")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o644))
	return path
}

func TestLogsHandler(t *testing.T) {
	t.Parallel()

	path := writeLogFile(t, 150)

	tests := []struct {
		name         string
		query        string
		wantStatus   int
		wantReturned int
	}{
		{"성공: 기본값 100줄", "", http.StatusOK, 100},
		{"성공: 지정한 줄 수", "?lines=5", http.StatusOK, 5},
		{"성공: 파일보다 큰 값", "?lines=1000", http.StatusOK, 150},
		{"성공: 0은 빈 목록", "?lines=0", http.StatusOK, 0},
		{"성공: 정수가 아니면 기본값", "?lines=abc", http.StatusOK, 100},
		{"성공: 실수는 기본값", "?lines=1.5", http.StatusOK, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newTestHandler(t, &fakeSource{}, &fakeChecker{}, path)
			rec := serve(h, "/logs"+tt.query)

			require.Equal(t, tt.wantStatus, rec.Code)

			body := decode(t, rec)
			assert.Equal(t, float64(150), body["total_lines"])
			assert.Equal(t, float64(tt.wantReturned), body["returned_lines"])
			assert.Len(t, body["logs"], tt.wantReturned)
		})
	}

	t.Run("성공: 마지막 줄이 끝에 오고 공백이 제거됨", func(t *testing.T) {
		t.Parallel()

		h := newTestHandler(t, &fakeSource{}, &fakeChecker{}, path)
		rec := serve(h, "/logs?lines=2")

		logs := decode(t, rec)["logs"].([]any)
		require.Len(t, logs, 2)
		assert.Equal(t, "line 149", logs[0])
		assert.Equal(t, "line 150", logs[1])
	})

	t.Run("실패: 음수는 400", func(t *testing.T) {
		t.Parallel()

		h := newTestHandler(t, &fakeSource{}, &fakeChecker{}, path)
		rec := serve(h, "/logs?lines=-1")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"`+constants.ErrMsgNegativeLines+`"}`, rec.Body.String())
	})

	t.Run("성공: 파일이 없으면 빈 목록", func(t *testing.T) {
		t.Parallel()

		h := newTestHandler(t, &fakeSource{}, &fakeChecker{}, filepath.Join(t.TempDir(), "missing.log"))
		rec := serve(h, "/logs")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"logs":[]}`, rec.Body.String())
	})

	t.Run("실패: 읽을 수 없는 경로는 500", func(t *testing.T) {
		t.Parallel()

		// 디렉터리는 열 수 있지만 읽기에 실패합니다.
		h := newTestHandler(t, &fakeSource{}, &fakeChecker{}, t.TempDir())
		rec := serve(h, "/logs")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotEmpty(t, decode(t, rec)["error"])
	})
}

func TestParseLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"", 100, false},
		{"10", 10, false},
		{"0", 0, false},
		{"abc", 100, false},
		{"-5", 0, true},
	}

	for _, tt := range tests {
		got, err := parseLines(tt.raw)
		if tt.wantErr {
			assert.Error(t, err, tt.raw)
			continue
		}
		assert.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

// =============================================================================
// /alerts
// =============================================================================

func TestAlertsHandler(t *testing.T) {
	t.Parallel()

	t.Run("성공: 임계치 이하이면 빈 목록", func(t *testing.T) {
		t.Parallel()

		h := newTestHandler(t, &fakeSource{snap: calmSnapshot()}, &fakeChecker{}, "")
		rec := serve(h, "/alerts")

		assert.Equal(t, http.StatusOK, rec.Code)

		body := decode(t, rec)
		assert.Equal(t, float64(0), body["count"])
		assert.Equal(t, []any{}, body["alerts"])
	})

	t.Run("성공: 모든 임계치 초과", func(t *testing.T) {
		t.Parallel()

		snap := calmSnapshot()
		snap.CPU.Percent = 95.5
		snap.Memory.Percent = 90.0
		snap.Disk.Percent = 97.2

		h := newTestHandler(t, &fakeSource{snap: snap}, &fakeChecker{}, "")
		rec := serve(h, "/alerts")

		assert.Equal(t, http.StatusOK, rec.Code)

		body := decode(t, rec)
		assert.Equal(t, float64(3), body["count"])

		alerts := body["alerts"].([]any)
		require.Len(t, alerts, 3)

		disk := alerts[2].(map[string]any)
		assert.Equal(t, "critical", disk["level"])
		assert.Equal(t, "disk", disk["type"])
		assert.Equal(t, "Low disk space: 97.2% used", disk["message"])
	})

	t.Run("실패: 측정 실패는 500", func(t *testing.T) {
		t.Parallel()

		err := apperrors.New(apperrors.System, "메모리 사용량 조회 실패")
		h := newTestHandler(t, &fakeSource{err: err}, &fakeChecker{}, "")
		rec := serve(h, "/alerts")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "메모리 사용량 조회 실패", decode(t, rec)["error"])
	})
}

// =============================================================================
// 클라이언트 연결 종료
// =============================================================================

func TestHandlers_ClientDisconnect(t *testing.T) {
	t.Parallel()

	t.Run("성공: 취소된 요청도 측정은 끝까지 수행", func(t *testing.T) {
		t.Parallel()

		src := &ctxAwareSource{snap: calmSnapshot()}
		h := NewHandler(src, &fakeChecker{}, alert.NewEvaluator(src), "")

		for _, target := range []string{"/metrics", "/alerts"} {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			rec := serveRequest(h, httptest.NewRequest(http.MethodGet, target, nil).WithContext(ctx))
			assert.Equal(t, http.StatusOK, rec.Code, target)
		}
	})

	t.Run("성공: 헬스체크 도중 연결이 끊겨도 결과는 정상", func(t *testing.T) {
		t.Parallel()

		slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		}))
		defer slow.Close()

		poller := probe.NewPoller(probe.NewHTTPFetcher(time.Second), []probe.Endpoint{
			{Name: "api", URL: slow.URL},
			{Name: "database", URL: slow.URL},
			{Name: "redis", URL: slow.URL},
		})
		h := newTestHandler(t, &fakeSource{}, poller, "")

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		time.AfterFunc(50*time.Millisecond, cancel)

		rec := serveRequest(h, httptest.NewRequest(http.MethodGet, "/services", nil).WithContext(ctx))

		assert.Equal(t, http.StatusOK, rec.Code)

		body := decode(t, rec)
		assert.Equal(t, "healthy", body["overall_status"])
		for name, v := range body["services"].(map[string]any) {
			result := v.(map[string]any)
			assert.Equal(t, "healthy", result["status"], name)
			assert.Nil(t, result["error"], name)
		}
	})
}
