// Package logtail 로그 파일의 마지막 N줄을 읽습니다.
package logtail

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	apperrors "github.com/darkkaiser/monitoring-server/internal/pkg/errors"
)

// DefaultLines 요청에 줄 수가 지정되지 않았을 때 반환하는 줄 수입니다.
const DefaultLines = 100

// Tail 로그 파일의 끝부분입니다.
type Tail struct {
	Lines []string // 파일 순서를 유지한 마지막 줄들 (앞뒤 공백 제거)
	Total int      // 파일 전체의 줄 수
}

// ReadLast path의 파일을 처음부터 끝까지 읽어 마지막 n줄을 반환합니다.
//
// 파일이 없으면 apperrors.NotFound 타입의 에러를 반환하며 errors.Is(err, os.ErrNotExist)도 만족합니다.
// n이 0이면 Lines는 비어 있고 Total만 계산됩니다.
func ReadLast(path string, n int) (Tail, error) {
	if n < 0 {
		return Tail{}, apperrors.Newf(apperrors.InvalidInput, "줄 수는 0 이상이어야 합니다 (lines=%d)", n)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Tail{}, apperrors.Wrapf(err, apperrors.NotFound, "로그 파일이 존재하지 않습니다 (path=%s)", path)
		}
		return Tail{}, apperrors.Wrapf(err, apperrors.System, "로그 파일 열기 실패 (path=%s)", path)
	}
	defer f.Close()

	ring := newRing(n)
	total := 0

	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			total++
			ring.push(strings.TrimSpace(line))
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return Tail{}, apperrors.Wrapf(err, apperrors.System, "로그 파일 읽기 실패 (path=%s)", path)
		}
	}

	return Tail{
		Lines: ring.items(),
		Total: total,
	}, nil
}

// ring 최근 size개의 줄만 보관하는 고정 크기 버퍼입니다.
type ring struct {
	buf   []string
	size  int
	next  int
	count int
}

func newRing(size int) *ring {
	return &ring{
		buf:  make([]string, 0, min(size, 1024)),
		size: size,
	}
}

func (r *ring) push(s string) {
	if r.size == 0 {
		return
	}

	if len(r.buf) < r.size {
		r.buf = append(r.buf, s)
	} else {
		r.buf[r.next] = s
	}
	r.next = (r.next + 1) % r.size
	r.count++
}

// items 보관 중인 줄을 들어온 순서대로 반환합니다.
func (r *ring) items() []string {
	out := make([]string, 0, len(r.buf))
	if r.count <= r.size {
		return append(out, r.buf...)
	}
	out = append(out, r.buf[r.next:]...)
	return append(out, r.buf[:r.next]...)
}
