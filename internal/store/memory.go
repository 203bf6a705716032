package store

import (
	"context"
	"slices"

	"github.com/darkkaiser/grocery-price-server/internal/config"
)

type memoryOptions struct {
	Records []RawProduct `json:"records"`
}

// memoryStore 생성 시 전달된 레코드를 그대로 제공하는 저장소입니다.
type memoryStore struct {
	snapshot
}

var _ Store = (*memoryStore)(nil)

// NewMemoryStore records를 복사하여 메모리 저장소를 생성합니다.
func NewMemoryStore(records []RawProduct) Store {
	s := &memoryStore{}
	s.replace(slices.Clone(records))
	return s
}

func (s *memoryStore) Find(ctx context.Context, f Filter) ([]RawProduct, error) {
	return s.find(ctx, f)
}

func (s *memoryStore) Driver() string {
	return config.DriverMemory
}

func (s *memoryStore) Close() error {
	s.close()
	return nil
}
