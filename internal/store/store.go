package store

import "context"

// component 저장소 로깅용 컴포넌트 이름
const component = "store"

// Store 한 판매처의 상품 레코드를 조회하는 저장소입니다.
type Store interface {
	// Find 조건에 맞는 레코드를 저장소의 조회 순서대로 반환합니다.
	Find(ctx context.Context, filter Filter) ([]RawProduct, error)

	// Driver 저장소 드라이버 이름을 반환합니다.
	Driver() string

	Close() error
}

// Reloader 스냅샷을 다시 읽어 들일 수 있는 저장소가 구현합니다.
type Reloader interface {
	Reload(ctx context.Context) error
}

// Pinger 연결 상태를 확인할 수 있는 저장소가 구현합니다.
type Pinger interface {
	Ping(ctx context.Context) error
}
