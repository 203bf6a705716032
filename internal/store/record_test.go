package store

import (
	"context"
	"testing"

	apperrors "github.com/darkkaiser/grocery-price-server/internal/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(records []RawProduct) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func sampleRecords() []RawProduct {
	return []RawProduct{
		{ID: "1", Name: "Молоко 2,5% 900г", Category: "Молочні продукти", Price: "42.50", Unit: "г", Quantity: decimal.NewNullDecimal(decimal.NewFromInt(900))},
		{ID: "2", Name: "Сир твердий", Category: "Сири", Price: "450", Unit: "кг"},
		{ID: "3", Name: "МОЛОКО безлактозне 1л", Category: "молочні продукти", Price: "58,90", Unit: "л", Quantity: decimal.NewNullDecimal(decimal.NewFromInt(1))},
		{ID: "4", Name: "Хліб", Category: "Хлібобулочні вироби", Price: "35", Unit: "шт"},
	}
}

// =============================================================================
// Filter
// =============================================================================

func TestFilter_Matches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"조건 없음", Filter{}, []string{"Молоко 2,5% 900г", "Сир твердий", "МОЛОКО безлактозне 1л", "Хліб"}},
		{"이름 부분 일치(대소문자 무시)", Filter{Name: "молоко"}, []string{"Молоко 2,5% 900г", "МОЛОКО безлактозне 1л"}},
		{"이름 공백은 조건 없음", Filter{Name: "   "}, []string{"Молоко 2,5% 900г", "Сир твердий", "МОЛОКО безлактозне 1л", "Хліб"}},
		{"카테고리 완전 일치", Filter{Category: "МОЛОЧНІ ПРОДУКТИ"}, []string{"Молоко 2,5% 900г", "МОЛОКО безлактозне 1л"}},
		{"카테고리 완전 일치는 부분 문자열 불일치", Filter{Category: "молочні"}, []string{}},
		{"카테고리 부분 일치", Filter{Category: "молочні", CategoryMatch: CategorySubstring}, []string{"Молоко 2,5% 900г", "МОЛОКО безлактозне 1л"}},
		{"이름과 카테고리 모두 적용", Filter{Name: "без", Category: "молочні продукти"}, []string{"МОЛОКО безлактозне 1л"}},
		{"일치 없음", Filter{Name: "кава"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, names(filterRecords(sampleRecords(), tt.filter)))
		})
	}
}

func TestParseQuantity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in        string
		wantValid bool
		want      string
	}{
		{"900", true, "900"},
		{" 0,5 ", true, "0.5"},
		{"1.25", true, "1.25"},
		{"", false, "0"},
		{"n/a", false, "0"},
	}

	for _, tt := range tests {
		got := parseQuantity(tt.in)
		assert.Equal(t, tt.wantValid, got.Valid, "input=%q", tt.in)
		assert.True(t, decimal.RequireFromString(tt.want).Equal(got.Decimal), "input=%q", tt.in)
	}
}

// =============================================================================
// Memory
// =============================================================================

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	t.Run("조회 순서 유지", func(t *testing.T) {
		t.Parallel()

		s := NewMemoryStore(sampleRecords())
		got, err := s.Find(context.Background(), Filter{})
		require.NoError(t, err)
		assert.Equal(t, names(sampleRecords()), names(got))
		assert.Equal(t, "memory", s.Driver())
	})

	t.Run("원본 슬라이스와 분리", func(t *testing.T) {
		t.Parallel()

		records := sampleRecords()
		s := NewMemoryStore(records)
		records[0].Name = "changed"

		got, err := s.Find(context.Background(), Filter{Name: "changed"})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("취소된 컨텍스트", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewMemoryStore(sampleRecords()).Find(ctx, Filter{})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("닫힌 저장소", func(t *testing.T) {
		t.Parallel()

		s := NewMemoryStore(sampleRecords())
		require.NoError(t, s.Close())

		_, err := s.Find(context.Background(), Filter{})
		assert.ErrorIs(t, err, ErrStoreClosed)
		assert.True(t, apperrors.Is(err, apperrors.Unavailable))
	})
}
