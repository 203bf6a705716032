package store

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/darkkaiser/grocery-price-server/internal/config"
	applog "github.com/darkkaiser/grocery-price-server/pkg/log"
)

type csvOptions struct {
	Path      string `json:"path" validate:"required,file"`
	Delimiter string `json:"delimiter" validate:"omitempty,len=1"`
}

// utf8BOM 엑셀 등에서 내보낸 CSV 파일 앞에 붙는 BOM
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// csvStore 스크래퍼가 내보낸 CSV 스냅샷 파일을 읽는 저장소입니다.
//
// 첫 행은 헤더이며 열 순서는 자유롭습니다. 인식하는 열 이름은 RawProduct의 json 태그와 같습니다.
// (id, name, category, price, price_bot, unit, quantity, image_url) 그 외의 열은 무시합니다.
type csvStore struct {
	snapshot

	retailer  string
	path      string
	delimiter rune
}

var (
	_ Store    = (*csvStore)(nil)
	_ Reloader = (*csvStore)(nil)
)

func newCSVStore(ctx context.Context, retailer string, opts *csvOptions) (*csvStore, error) {
	s := &csvStore{retailer: retailer, path: opts.Path, delimiter: ','}
	if opts.Delimiter != "" {
		s.delimiter, _ = utf8.DecodeRuneInString(opts.Delimiter)
	}

	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *csvStore) Find(ctx context.Context, f Filter) ([]RawProduct, error) {
	return s.find(ctx, f)
}

func (s *csvStore) Driver() string {
	return config.DriverCSV
}

func (s *csvStore) Close() error {
	s.close()
	return nil
}

// Reload 스냅샷 파일을 다시 읽습니다. 실패하면 기존 레코드를 유지합니다.
func (s *csvStore) Reload(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return NewErrSnapshotReadFailed(err, s.path)
	}

	records, err := s.decode(data)
	if err != nil {
		return err
	}
	s.replace(records)

	applog.WithComponentAndFields(component, applog.Fields{
		"retailer": s.retailer,
		"driver":   config.DriverCSV,
		"path":     s.path,
		"records":  len(records),
	}).Info("상품 스냅샷 적재 완료")

	return nil
}

func (s *csvStore) decode(data []byte) ([]RawProduct, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	r.Comma = s.delimiter
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, NewErrSnapshotFormat(s.path, "헤더 행이 없습니다")
		}
		return nil, NewErrSnapshotParseFailed(err, s.path)
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := columns["name"]; !ok {
		return nil, NewErrSnapshotFormat(s.path, "name 열이 없습니다")
	}
	if _, ok := columns["price"]; !ok {
		return nil, NewErrSnapshotFormat(s.path, "price 열이 없습니다")
	}

	var records []RawProduct
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, NewErrSnapshotParseFailed(err, s.path)
		}

		field := func(name string) string {
			i, ok := columns[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		records = append(records, RawProduct{
			ID:       field("id"),
			Name:     field("name"),
			Category: field("category"),
			Price:    field("price"),
			BotPrice: field("price_bot"),
			Unit:     field("unit"),
			Quantity: parseQuantity(field("quantity")),
			ImageURL: field("image_url"),
		})
	}

	return records, nil
}
