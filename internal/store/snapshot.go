package store

import (
	"context"
	"sync"
	"time"
)

// snapshot 메모리에 적재된 레코드 집합입니다. 조회와 교체가 동시에 일어나도 안전합니다.
type snapshot struct {
	mu       sync.RWMutex
	records  []RawProduct
	loadedAt time.Time
	closed   bool
}

func (s *snapshot) find(ctx context.Context, f Filter) ([]RawProduct, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}
	return filterRecords(s.records, f), nil
}

// replace 레코드 집합을 통째로 교체합니다. 진행 중인 조회는 이전 집합을 끝까지 사용합니다.
func (s *snapshot) replace(records []RawProduct) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = records
	s.loadedAt = time.Now()
}

func (s *snapshot) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}

func (s *snapshot) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.records = nil
}
