package mocks

import (
	"context"

	"github.com/darkkaiser/grocery-price-server/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockStore store.Store 인터페이스의 Mock 구현체입니다.
type MockStore struct {
	mock.Mock
}

var _ store.Store = (*MockStore)(nil)

// Find 조건에 맞는 레코드를 반환하는 Mock 메서드입니다.
func (m *MockStore) Find(ctx context.Context, filter store.Filter) ([]store.RawProduct, error) {
	args := m.Called(ctx, filter)
	records, _ := args.Get(0).([]store.RawProduct)
	return records, args.Error(1)
}

// Driver 드라이버 이름을 반환하는 Mock 메서드입니다.
func (m *MockStore) Driver() string {
	args := m.Called()
	return args.String(0)
}

// Close 저장소를 닫는 Mock 메서드입니다.
func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockReloadableStore Reload와 Ping을 함께 구현하는 Mock 저장소입니다.
type MockReloadableStore struct {
	MockStore
}

var (
	_ store.Reloader = (*MockReloadableStore)(nil)
	_ store.Pinger   = (*MockReloadableStore)(nil)
)

// Reload 스냅샷을 다시 읽는 Mock 메서드입니다.
func (m *MockReloadableStore) Reload(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Ping 연결 상태를 확인하는 Mock 메서드입니다.
func (m *MockReloadableStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
