package store

import (
	"context"
	"os"
	"strings"

	"github.com/darkkaiser/grocery-price-server/internal/config"
	applog "github.com/darkkaiser/grocery-price-server/pkg/log"
	"github.com/tidwall/gjson"
)

// defaultArrayPath JSON 스냅샷에서 상품 배열을 찾는 기본 gjson 경로
const defaultArrayPath = "products"

type jsonOptions struct {
	Path string `json:"path" validate:"required,file"`

	// ArrayPath 상품 배열의 gjson 경로입니다. "@this"이면 최상위 값을 배열로 사용합니다.
	ArrayPath string `json:"array_path"`
}

// jsonStore 스크래퍼가 내보낸 JSON 스냅샷 파일을 읽는 저장소입니다.
//
//	{"products": [{"name": "Молоко 2,5% 900г", "price": 42.5, "unit": "г", "quantity": "900"}]}
//
// price, price_bot, quantity는 숫자와 문자열을 모두 허용합니다.
type jsonStore struct {
	snapshot

	retailer  string
	path      string
	arrayPath string
}

var (
	_ Store    = (*jsonStore)(nil)
	_ Reloader = (*jsonStore)(nil)
)

func newJSONStore(ctx context.Context, retailer string, opts *jsonOptions) (*jsonStore, error) {
	s := &jsonStore{retailer: retailer, path: opts.Path, arrayPath: opts.ArrayPath}
	if s.arrayPath == "" {
		s.arrayPath = defaultArrayPath
	}

	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *jsonStore) Find(ctx context.Context, f Filter) ([]RawProduct, error) {
	return s.find(ctx, f)
}

func (s *jsonStore) Driver() string {
	return config.DriverJSON
}

func (s *jsonStore) Close() error {
	s.close()
	return nil
}

// Reload 스냅샷 파일을 다시 읽습니다. 실패하면 기존 레코드를 유지합니다.
func (s *jsonStore) Reload(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return NewErrSnapshotReadFailed(err, s.path)
	}
	if !gjson.ValidBytes(data) {
		return NewErrSnapshotFormat(s.path, "올바른 JSON 문서가 아닙니다")
	}

	array := gjson.GetBytes(data, s.arrayPath)
	if !array.IsArray() {
		return NewErrSnapshotFormat(s.path, "'"+s.arrayPath+"' 경로에 상품 배열이 없습니다")
	}

	items := array.Array()
	records := make([]RawProduct, 0, len(items))
	for _, item := range items {
		if !item.IsObject() {
			continue
		}
		records = append(records, RawProduct{
			ID:       scalarText(item.Get("id")),
			Name:     strings.TrimSpace(item.Get("name").String()),
			Category: strings.TrimSpace(item.Get("category").String()),
			Price:    scalarText(item.Get("price")),
			BotPrice: scalarText(item.Get("price_bot")),
			Unit:     strings.TrimSpace(item.Get("unit").String()),
			Quantity: parseQuantity(scalarText(item.Get("quantity"))),
			ImageURL: strings.TrimSpace(item.Get("image_url").String()),
		})
	}
	s.replace(records)

	applog.WithComponentAndFields(component, applog.Fields{
		"retailer": s.retailer,
		"driver":   config.DriverJSON,
		"path":     s.path,
		"records":  len(records),
	}).Info("상품 스냅샷 적재 완료")

	return nil
}

// scalarText 숫자는 파일에 기록된 표기 그대로, 문자열은 공백을 제거하여 반환합니다. null과 그 외 타입은 빈 문자열입니다.
func scalarText(r gjson.Result) string {
	switch r.Type {
	case gjson.Number:
		return r.Raw
	case gjson.String:
		return strings.TrimSpace(r.Str)
	}
	return ""
}
