package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/darkkaiser/grocery-price-server/internal/config"
	applog "github.com/darkkaiser/grocery-price-server/pkg/log"
	"github.com/iancoleman/strcase"
	_ "modernc.org/sqlite"
)

type sqliteOptions struct {
	Path string `json:"path" validate:"required,file"`

	// Table 상품 테이블 이름입니다. 비어 있으면 <판매처>_products 를 사용합니다.
	Table string `json:"table" validate:"omitempty,sql_identifier"`

	// MaxOpenConns 동시에 열 수 있는 최대 연결 수 (0이면 제한 없음)
	MaxOpenConns int `json:"max_open_conns" validate:"min=0"`
}

// sqliteStore 스크래퍼가 적재한 SQLite 상품 테이블을 조회하는 저장소입니다.
//
// 테이블의 열 구성은 판매처마다 다를 수 있으므로(예: price_bot, unit 열이 없는 테이블)
// SELECT * 결과를 열 이름으로 매핑하고, 테이블에 없는 열은 빈 값으로 둡니다. 가격과 수량은 REAL/TEXT 어느 쪽이든 텍스트로 읽습니다.
// SQLite의 LOWER()는 ASCII만 변환하므로 키릴 문자 필터는 Go에서 적용합니다.
type sqliteStore struct {
	db       *sql.DB
	retailer string
	path     string
	table    string
}

var (
	_ Store  = (*sqliteStore)(nil)
	_ Pinger = (*sqliteStore)(nil)
)

// defaultTableName 판매처 이름으로부터 기본 상품 테이블 이름을 만듭니다. 예: "atb" -> "atb_products"
func defaultTableName(retailer string) string {
	return strcase.ToSnake(retailer) + "_products"
}

func newSQLiteStore(ctx context.Context, retailer string, opts *sqliteOptions) (*sqliteStore, error) {
	table := opts.Table
	if table == "" {
		table = defaultTableName(retailer)
	}

	db, err := sql.Open("sqlite", opts.Path)
	if err != nil {
		return nil, NewErrOpenFailed(err, opts.Path)
	}
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}

	s := &sqliteStore{db: db, retailer: retailer, path: opts.Path, table: table}
	if err := s.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"retailer": retailer,
		"driver":   config.DriverSQLite,
		"path":     opts.Path,
		"table":    table,
	}).Info("상품 데이터베이스 연결 완료")

	return s, nil
}

func (s *sqliteStore) Driver() string {
	return config.DriverSQLite
}

// Ping 데이터베이스 연결과 상품 테이블 존재 여부를 확인합니다.
func (s *sqliteStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return NewErrOpenFailed(err, s.path)
	}

	var name string
	err := s.db.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type IN ('table', 'view') AND name = ?`, s.table).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NewErrQueryFailed(errors.New("테이블이 존재하지 않습니다"), s.table)
		}
		return NewErrQueryFailed(err, s.table)
	}
	return nil
}

func (s *sqliteStore) Find(ctx context.Context, f Filter) ([]RawProduct, error) {
	// 테이블 이름은 sql_identifier 검증을 통과한 값이므로 그대로 사용할 수 있다.
	rows, err := s.db.QueryContext(ctx, `SELECT * FROM "`+s.table+`"`)
	if err != nil {
		return nil, NewErrQueryFailed(err, s.table)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, NewErrQueryFailed(err, s.table)
	}

	index := make(map[string]int, len(names))
	for i, name := range names {
		index[strings.ToLower(name)] = i
	}

	values := make([]sql.NullString, len(names))
	dest := make([]any, len(names))
	for i := range values {
		dest[i] = &values[i]
	}

	field := func(name string) string {
		if i, ok := index[name]; ok && values[i].Valid {
			return strings.TrimSpace(values[i].String)
		}
		return ""
	}

	records := make([]RawProduct, 0)
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, NewErrQueryFailed(err, s.table)
		}

		p := RawProduct{
			ID:       field("id"),
			Name:     field("name"),
			Category: field("category"),
			Price:    field("price"),
			BotPrice: field("price_bot"),
			Unit:     field("unit"),
			Quantity: parseQuantity(field("quantity")),
			ImageURL: field("image_url"),
		}
		if f.Matches(p) {
			records = append(records, p)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, NewErrQueryFailed(err, s.table)
	}

	return records, nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
