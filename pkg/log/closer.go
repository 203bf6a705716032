package log

import (
	"errors"
	"io"
	"sync/atomic"
)

type syncer interface {
	Sync() error
}

// closer Setup이 생성한 로그 파일들을 한 번에 닫습니다.
// hook을 먼저 닫아 종료된 파일로의 쓰기를 막고, 일부 파일 닫기에 실패해도 나머지를 계속 닫습니다.
type closer struct {
	hook    *hook
	closers []io.Closer
	closed  atomic.Bool
}

func (c *closer) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	if c.hook != nil {
		_ = c.hook.Close()
	}

	var errs []error
	for _, cl := range c.closers {
		if cl == nil {
			continue
		}
		if s, ok := cl.(syncer); ok {
			_ = s.Sync()
		}
		if err := cl.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
