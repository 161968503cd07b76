package log

import (
	"errors"
	"io"
	"sync/atomic"
)

// closer 로그 파일 리소스의 해제를 통합 관리합니다.
//
// Hook을 먼저 비활성화하여 닫히는 중인 파일에 대한 쓰기 시도를 막고,
// Close()를 여러 번 호출해도 두 번째 호출부터는 즉시 nil을 반환합니다.
type closer struct {
	closers []io.Closer

	hook *hook

	// closed 중복 Close() 호출을 방지하기 위한 원자적 플래그 (0: open, 1: closed)
	closed int32
}

func (c *closer) Close() error {
	if !atomic.CompareAndSwapInt32(&c.closed, 0, 1) {
		return nil // 이미 닫힘
	}

	if c.hook != nil {
		c.hook.Close()
	}

	// 일부 파일 닫기에 실패하더라도 중단하지 않고 모든 리소스 해제를 시도합니다.
	var errs error
	for _, closer := range c.closers {
		if closer != nil {
			if s, ok := closer.(interface{ Sync() error }); ok {
				_ = s.Sync()
			}

			if err := closer.Close(); err != nil {
				errs = errors.Join(errs, err)
			}
		}
	}

	return errs
}
