// Package probe 의존 서비스의 헬스체크 URL을 순차적으로 호출하여 상태를 판정합니다.
package probe

import (
	"io"
	"net/http"
	"time"
)

// component 헬스체크 로깅용 컴포넌트 이름
const component = "monitor.probe"

const (
	// DefaultTimeout 엔드포인트 하나에 허용되는 최대 요청 시간입니다.
	DefaultTimeout = 5 * time.Second

	// maxBodyBytes 응답 본문에서 읽는 최대 바이트 수 (64KB)
	maxBodyBytes = 64 * 1024
)

// Fetcher HTTP 요청을 수행하는 인터페이스입니다.
//
// 로깅 같은 부가 기능은 데코레이터로 조합합니다. 반환된 응답의 Body는 호출자가 닫아야 합니다.
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPFetcher 고정된 타임아웃을 갖는 기본 Fetcher 구현체입니다.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher 주어진 타임아웃으로 HTTPFetcher를 생성합니다. 0 이하이면 DefaultTimeout을 사용합니다.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &HTTPFetcher{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Do HTTP 요청을 수행합니다.
func (f *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	return f.client.Do(req)
}

// drainAndCloseBody 커넥션 재사용을 위해 남은 본문을 최대 maxBodyBytes 만큼 비우고 닫습니다.
func drainAndCloseBody(body io.ReadCloser) {
	if body == nil {
		return
	}
	defer body.Close()

	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxBodyBytes))
}
