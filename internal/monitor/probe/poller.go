package probe

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	apperrors "github.com/darkkaiser/monitoring-server/internal/pkg/errors"
	applog "github.com/darkkaiser/monitoring-server/pkg/log"
	"github.com/tidwall/gjson"
)

// Status 서비스 단위의 헬스체크 판정 결과입니다.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// OverallStatus 전체 서비스의 종합 상태입니다.
type OverallStatus string

const (
	OverallHealthy  OverallStatus = "healthy"
	OverallDegraded OverallStatus = "degraded"
)

// Endpoint 헬스체크 대상 서비스입니다. 구동 시 설정으로부터 한 번 만들어지며 이후 변경되지 않습니다.
type Endpoint struct {
	Name string
	URL  string
}

// Result 엔드포인트 하나에 대한 헬스체크 결과입니다.
//
// 전송 단계에서 실패하면 StatusCode는 비어 있고 ResponseTime은 null로 직렬화됩니다.
// ReportedStatus는 응답 본문(JSON)의 "status" 값을 그대로 옮긴 참고 정보이며 판정에는 쓰이지 않습니다.
type Result struct {
	Status         Status   `json:"status"`
	StatusCode     *int     `json:"status_code,omitempty"`
	ResponseTime   *float64 `json:"response_time"`
	Error          string   `json:"error,omitempty"`
	ReportedStatus string   `json:"reported_status,omitempty"`
}

// Report 모든 엔드포인트의 헬스체크 결과입니다.
type Report struct {
	OverallStatus OverallStatus     `json:"overall_status"`
	Services      map[string]Result `json:"services"`
	Timestamp     time.Time         `json:"timestamp"`
}

// Healthy 모든 서비스가 정상이면 true를 반환합니다.
func (r Report) Healthy() bool {
	return r.OverallStatus == OverallHealthy
}

// Poller 설정된 엔드포인트를 정해진 순서대로 하나씩 호출합니다. 재시도는 하지 않습니다.
type Poller struct {
	fetcher   Fetcher
	endpoints []Endpoint

	now func() time.Time
}

// NewPoller 새로운 Poller를 생성합니다. endpoints는 복사되어 보관됩니다.
func NewPoller(f Fetcher, endpoints []Endpoint) *Poller {
	eps := make([]Endpoint, len(endpoints))
	copy(eps, endpoints)

	return &Poller{
		fetcher:   f,
		endpoints: eps,
		now:       time.Now,
	}
}

// Check 모든 엔드포인트를 순차적으로 호출하고 결과를 모아 반환합니다.
//
// ctx가 취소되면 남은 엔드포인트는 즉시 실패(unhealthy)로 기록됩니다.
func (p *Poller) Check(ctx context.Context) Report {
	report := Report{
		OverallStatus: OverallHealthy,
		Services:      make(map[string]Result, len(p.endpoints)),
	}

	for _, ep := range p.endpoints {
		result := p.checkOne(ctx, ep)
		if result.Status != StatusHealthy {
			report.OverallStatus = OverallDegraded
		}
		report.Services[ep.Name] = result
	}

	report.Timestamp = p.now().UTC()

	return report
}

func (p *Poller) checkOne(ctx context.Context, ep Endpoint) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ep.URL, nil)
	if err != nil {
		// 요청이 만들어지지 않아 Fetcher 로그에도 남지 않으므로 여기서 기록합니다.
		applog.WithComponentAndFields(component, applog.Fields{
			"service": ep.Name,
			"url":     redactRawURL(ep.URL),
			"error":   err,
		}).Warn("서비스 헬스체크 실패: 요청을 만들 수 없습니다")

		return p.failed(apperrors.Wrap(err, apperrors.InvalidInput, "헬스체크 요청 생성 실패"))
	}

	start := time.Now()
	resp, err := p.fetcher.Do(req)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		return p.failed(classifyTransportError(err))
	}
	defer drainAndCloseBody(resp.Body)

	statusCode := resp.StatusCode
	result := Result{
		Status:       StatusUnhealthy,
		StatusCode:   &statusCode,
		ResponseTime: &elapsed,
	}
	if statusCode == http.StatusOK {
		result.Status = StatusHealthy
	}

	result.ReportedStatus = reportedStatus(resp.Body)

	return result
}

// failed 전송 단계의 실패를 결과로 변환합니다. 상태 코드와 응답 시간은 기록하지 않습니다.
//
// 전송 실패 로그는 LoggingFetcher가 남깁니다.
func (p *Poller) failed(err error) Result {
	return Result{
		Status: StatusUnhealthy,
		Error:  apperrors.RootCause(err).Error(),
	}
}

// classifyTransportError 전송 에러를 시간 초과(Timeout)와 연결 불가(Unavailable)로 구분합니다.
func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return apperrors.Wrap(err, apperrors.Timeout, "헬스체크 응답 시간 초과")
	}
	return apperrors.Wrap(err, apperrors.Unavailable, "헬스체크 대상에 연결할 수 없습니다")
}

// reportedStatus 본문이 JSON이고 문자열 "status" 필드를 가지고 있으면 그 값을 반환합니다.
func reportedStatus(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxBodyBytes))
	if err != nil || !gjson.ValidBytes(data) {
		return ""
	}

	if v := gjson.GetBytes(data, "status"); v.Type == gjson.String {
		return v.String()
	}
	return ""
}
