package validation

import (
	"github.com/darkkaiser/monitoring-server/pkg/cronx"
)

// ValidateCronExpression Cron 표현식의 유효성을 검사합니다.
//
// 표준 Linux Cron(5필드)이 아닌, 초(Seconds) 단위를 포함하는 6필드 포맷을 기준으로 검증합니다.
// 예: "0 */5 * * * *" (5분마다 0초)
func ValidateCronExpression(spec string) error {
	return cronx.Validate(spec)
}
