// Package strutil 로그 출력 등에 사용하는 문자열 유틸리티를 제공합니다.
package strutil

import "strings"

// Mask 민감한 값을 로그에 남길 수 있도록 일부만 노출하고 나머지를 가립니다.
//
//	""                     -> ""
//	"abc"                  -> "***"
//	"secret123"            -> "secr***"
//	"abcdefghijklmnopqrst" -> "abcd***qrst"
func Mask(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	// 3자 이하는 전체 마스킹
	if len(s) <= 3 {
		return "***"
	}

	if len(s) <= 12 {
		return s[:4] + "***"
	}

	// 긴 토큰은 앞 4자 + 마스킹 + 뒤 4자
	return s[:4] + "***" + s[len(s)-4:]
}
