package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStd = errors.New("standard error")

// =============================================================================
// Error Creation Tests
// =============================================================================

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		errType  ErrorType
		message  string
		expected string
	}{
		{"System", System, "디스크 조회 실패", "[System] 디스크 조회 실패"},
		{"InvalidInput", InvalidInput, "잘못된 값", "[InvalidInput] 잘못된 값"},
		{"Unavailable", Unavailable, "연결 거부", "[Unavailable] 연결 거부"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := New(tt.errType, tt.message)
			require.Error(t, err)
			assert.Equal(t, tt.expected, err.Error())

			var appErr *AppError
			require.True(t, As(err, &appErr))
			assert.Equal(t, tt.errType, appErr.Type())
			assert.Equal(t, tt.message, appErr.Message())
			assert.NotEmpty(t, appErr.Stack(), "스택 트레이스가 수집되어야 합니다")
		})
	}
}

func TestNewf(t *testing.T) {
	t.Parallel()

	err := Newf(NotFound, "로그 파일(%s)이 없습니다", "logs/monitoring.log")
	assert.Equal(t, "[NotFound] 로그 파일(logs/monitoring.log)이 없습니다", err.Error())
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("nil 에러는 nil을 반환", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, Wrap(nil, System, "무시됨"))
		assert.Nil(t, Wrapf(nil, System, "무시됨 %d", 1))
	})

	t.Run("원인 에러를 메시지에 포함", func(t *testing.T) {
		t.Parallel()
		err := Wrap(errStd, System, "CPU 사용률 조회 실패")
		assert.Equal(t, "[System] CPU 사용률 조회 실패: standard error", err.Error())
		assert.ErrorIs(t, err, errStd)
	})

	t.Run("Wrapf 포맷 지원", func(t *testing.T) {
		t.Parallel()
		err := Wrapf(errStd, Timeout, "%s 응답 시간 초과", "api")
		assert.Equal(t, "[Timeout] api 응답 시간 초과: standard error", err.Error())
	})
}

// =============================================================================
// Error Chain Tests
// =============================================================================

func TestIs(t *testing.T) {
	t.Parallel()

	err := Wrap(New(Timeout, "timeout"), System, "상위 컨텍스트")

	assert.True(t, Is(err, System))
	assert.True(t, Is(err, Timeout))
	assert.False(t, Is(err, NotFound))
	assert.False(t, Is(errStd, System))
	assert.False(t, Is(nil, System))
}

func TestRootCause(t *testing.T) {
	t.Parallel()

	assert.Nil(t, RootCause(nil))
	assert.Equal(t, errStd, RootCause(errStd))

	err := Wrap(Wrap(errStd, System, "1단계"), Internal, "2단계")
	assert.Equal(t, errStd, RootCause(err))
}

func TestAppError_Format(t *testing.T) {
	t.Parallel()

	err := Wrap(errStd, System, "메모리 조회 실패")

	assert.Equal(t, err.Error(), fmt.Sprintf("%s", err))
	assert.Equal(t, err.Error(), fmt.Sprintf("%v", err))
	assert.Equal(t, fmt.Sprintf("%q", err.Error()), fmt.Sprintf("%q", err))

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "[System] 메모리 조회 실패")
	assert.Contains(t, detailed, "Stack trace:")
	assert.Contains(t, detailed, "Caused by:")
	assert.Contains(t, detailed, "standard error")
}

// =============================================================================
// ErrorType Tests
// =============================================================================

func TestErrorType_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		errType ErrorType
		str     string
	}{
		{Unknown, "Unknown"},
		{Internal, "Internal"},
		{System, "System"},
		{InvalidInput, "InvalidInput"},
		{NotFound, "NotFound"},
		{Timeout, "Timeout"},
		{Unavailable, "Unavailable"},
		{ErrorType(-1), "ErrorType(-1)"},
		{ErrorType(999), "ErrorType(999)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.str, tt.errType.String())
	}
}
