package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/darkkaiser/grocery-price-server/internal/config"
	"github.com/darkkaiser/grocery-price-server/pkg/maputil"
)

// openFunc 드라이버 옵션 맵으로 저장소를 생성하는 함수입니다.
type openFunc func(ctx context.Context, retailer string, options map[string]any) (Store, error)

var drivers = map[string]openFunc{
	config.DriverSQLite: func(ctx context.Context, retailer string, options map[string]any) (Store, error) {
		opts, err := decodeOptions[sqliteOptions](retailer, options)
		if err != nil {
			return nil, err
		}
		return newSQLiteStore(ctx, retailer, opts)
	},
	config.DriverCSV: func(ctx context.Context, retailer string, options map[string]any) (Store, error) {
		opts, err := decodeOptions[csvOptions](retailer, options)
		if err != nil {
			return nil, err
		}
		return newCSVStore(ctx, retailer, opts)
	},
	config.DriverJSON: func(ctx context.Context, retailer string, options map[string]any) (Store, error) {
		opts, err := decodeOptions[jsonOptions](retailer, options)
		if err != nil {
			return nil, err
		}
		return newJSONStore(ctx, retailer, opts)
	},
	config.DriverMemory: func(_ context.Context, retailer string, options map[string]any) (Store, error) {
		opts, err := decodeOptions[memoryOptions](retailer, options)
		if err != nil {
			return nil, err
		}
		return NewMemoryStore(opts.Records), nil
	},
}

// Open 설정에 지정된 드라이버로 retailer 판매처의 저장소를 생성합니다.
func Open(ctx context.Context, retailer string, cfg config.StoreConfig) (Store, error) {
	open, ok := drivers[cfg.Driver]
	if !ok {
		return nil, NewErrUnsupportedDriver(cfg.Driver)
	}
	return open(ctx, retailer, cfg.Options)
}

// decodeOptions 드라이버 옵션 맵을 옵션 구조체로 변환하고 validate 태그를 검사합니다.
// 알 수 없는 옵션 키는 오타일 가능성이 높으므로 에러로 처리합니다.
func decodeOptions[T any](retailer string, options map[string]any) (*T, error) {
	contextName := fmt.Sprintf("retailers.%s.store.options", retailer)

	if options == nil {
		options = map[string]any{}
	}
	opts, err := maputil.Decode[T](options, maputil.WithErrorUnused(true))
	if err != nil {
		return nil, NewErrInvalidOptions(err, contextName)
	}
	if err := config.ValidateStruct(opts, contextName); err != nil {
		return nil, err
	}
	return opts, nil
}

// Registry 판매처 이름별 저장소 모음입니다.
type Registry struct {
	stores map[string]Store
	names  []string
}

// OpenAll 설정된 모든 판매처의 저장소를 엽니다. 하나라도 실패하면 이미 연 저장소를 닫고 에러를 반환합니다.
func OpenAll(ctx context.Context, cfg config.RetailersConfig) (*Registry, error) {
	r := NewRegistry()

	for _, name := range config.RetailerNames() {
		retailerCfg, _ := cfg.Get(name)

		s, err := Open(ctx, name, retailerCfg.Store)
		if err != nil {
			_ = r.Close()
			return nil, err
		}
		r.Add(name, s)
	}

	return r, nil
}

// NewRegistry 이미 생성된 저장소로 Registry를 구성합니다.
func NewRegistry() *Registry {
	return &Registry{stores: make(map[string]Store)}
}

// Add 판매처 저장소를 등록합니다. 같은 이름이 있으면 교체합니다.
func (r *Registry) Add(retailer string, s Store) {
	if _, exists := r.stores[retailer]; !exists {
		r.names = append(r.names, retailer)
	}
	r.stores[retailer] = s
}

// Get 판매처 저장소를 반환합니다.
func (r *Registry) Get(retailer string) (Store, bool) {
	s, ok := r.stores[retailer]
	return s, ok
}

// Names 등록 순서대로 판매처 이름을 반환합니다.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Close 모든 저장소를 닫습니다.
func (r *Registry) Close() error {
	var errs []error
	for _, name := range r.names {
		if err := r.stores[name].Close(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
