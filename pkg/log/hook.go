package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// hook 로그 이벤트를 포맷팅하여 메인 로그 파일과 콘솔(선택)로 분배합니다.
//
// Logrus의 기본 출력은 io.Discard로 비활성화되어 있으며, 실제 기록은 모두 이 Hook을 통해서만 이루어집니다.
// 메인 로그 파일은 /logs 엔드포인트가 그대로 읽어가는 파일이므로 한 레코드가 반드시 한 줄로 기록되어야 합니다.
type hook struct {
	mainWriter    io.Writer // 로테이션되는 메인 로그 파일
	consoleWriter io.Writer // 표준 출력(Stdout), nil이면 출력하지 않음

	formatter Formatter

	mu sync.RWMutex // 로그 기록(Read Lock)과 종료 처리(Write Lock) 간의 동시성 제어

	closed bool // true일 경우 모든 로그 기록 요청을 거부
}

// Levels 이 Hook이 수신할 로그 레벨의 집합을 반환합니다.
func (h *hook) Levels() []Level {
	return AllLevels
}

// Fire 발생한 로그 이벤트를 포맷팅하여 설정된 Writer들에 기록합니다.
func (h *hook) Fire(entry *Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	// 로그 포맷팅 (한 번만 수행하여 재사용)
	msg, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	if h.consoleWriter != nil {
		// 콘솔 출력 실패는 로깅 시스템 전체의 가용성에 영향을 주지 않도록 전파하지 않습니다.
		if _, err := h.consoleWriter.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-WARN] 표준 출력(Console) 쓰기 실패: %v\n", err)
		}
	}

	if h.mainWriter != nil {
		if _, err := h.mainWriter.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-FAILURE] Main 로그 파일 쓰기 실패 (운영 기록 유실 위험): %v\n", err)
			return err
		}
	}

	return nil
}

// Close Hook을 종료 상태로 전환하여 더 이상의 로그 기록을 차단합니다.
func (h *hook) Close() error {
	// 현재 실행 중인 모든 로깅 작업(Read Lock)이 완료될 때까지 대기합니다.
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true

	return nil
}
