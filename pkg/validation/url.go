package validation

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateHTTPURL 헬스체크 대상 주소가 http(s) 절대 URL인지 검증합니다.
//
// 호스트명은 RFC 1123보다 느슨하게 취급합니다. 컨테이너 네트워크의 서비스명
// (예: "safescan_apis")처럼 밑줄이 포함된 이름도 허용되어야 하기 때문입니다.
func ValidateHTTPURL(rawURL string) error {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return fmt.Errorf("URL은 비어있을 수 없습니다")
	}

	parsedURL, err := url.Parse(trimmed)
	if err != nil {
		return fmt.Errorf("URL 파싱 실패 (input=%q): %w", trimmed, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL 스키마 오류: 'http' 또는 'https'만 허용됩니다 (input=%q)", trimmed)
	}

	if parsedURL.Hostname() == "" {
		return fmt.Errorf("URL 포맷 오류: 호스트(Host) 정보가 누락되었습니다 (input=%q)", trimmed)
	}

	return nil
}
