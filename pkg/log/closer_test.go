package log

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockCloser struct {
	closeCount int
	syncCount  int
	err        error
}

func (m *mockCloser) Close() error {
	m.closeCount++
	return m.err
}

func (m *mockCloser) Sync() error {
	m.syncCount++
	return nil
}

func TestCloser_Close(t *testing.T) {
	t.Parallel()

	t.Run("성공: 모든 리소스를 Sync 후 Close", func(t *testing.T) {
		t.Parallel()

		c1, c2 := &mockCloser{}, &mockCloser{}
		h := &hook{}
		c := &closer{closers: []io.Closer{c1, nil, c2}, hook: h}

		assert.NoError(t, c.Close())
		assert.True(t, h.closed)
		assert.Equal(t, 1, c1.closeCount)
		assert.Equal(t, 1, c1.syncCount)
		assert.Equal(t, 1, c2.closeCount)
	})

	t.Run("성공: 중복 호출은 무시", func(t *testing.T) {
		t.Parallel()

		c1 := &mockCloser{}
		c := &closer{closers: []io.Closer{c1}}

		assert.NoError(t, c.Close())
		assert.NoError(t, c.Close())
		assert.Equal(t, 1, c1.closeCount)
	})

	t.Run("실패: 일부 실패해도 나머지를 모두 닫고 에러를 합침", func(t *testing.T) {
		t.Parallel()

		errA, errB := errors.New("a"), errors.New("b")
		c1, c2, c3 := &mockCloser{err: errA}, &mockCloser{}, &mockCloser{err: errB}
		c := &closer{closers: []io.Closer{c1, c2, c3}}

		err := c.Close()
		assert.ErrorIs(t, err, errA)
		assert.ErrorIs(t, err, errB)
		assert.Equal(t, 1, c2.closeCount)
	})
}
