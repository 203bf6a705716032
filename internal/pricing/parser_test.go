package pricing

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		priceText    string
		productName  string
		wantPrice    float64
		wantPer100g  float64
		wantUnitType UnitType
	}{
		// 가격 문자열의 중량 표기
		{"100г 기준", "89.99 грн/100г", "Milk", 89.99, 89.99, UnitPer100g},
		{"1кг 기준", "120 грн/1кг", "Сир", 120, 12, UnitPerKg},
		{"1000г 기준", "55,50 грн/1000 г", "Гречка", 55.5, 5.55, UnitPerKg},
		{"임의 중량", "30 грн/200г", "Печиво", 30, 15, UnitPerCustom},
		{"리터", "40 грн/1л", "Молоко", 40, 4, UnitPerKg},
		{"라틴 단위 대문자", "12.5 UAH/250G", "Butter", 12.5, 5, UnitPerCustom},
		{"grams 표기", "10 / 50 grams", "Tea", 10, 20, UnitPerCustom},

		// 상품명의 중량 표기
		{"상품명 ml", "25 грн", "Water 500мл", 25, 5, UnitPerCustom},
		{"상품명 kg", "90 грн", "Цукор 1кг", 90, 9, UnitPerKg},
		{"상품명 소수 리터", "30 грн", "Пиво 0,5л", 30, 6, UnitPerCustom},
		{"상품명 gram 우선 매칭", "18", "Шоколад 100 грам", 18, 18, UnitPer100g},
		{"퍼센트는 중량이 아님", "42", "Молоко 2,5% 900г", 42, 42.0 * 100 / 900, UnitPerCustom},

		// 접미사 휴리스틱
		{"kg 접미사", "450 грн/кг", "Cheese", 450, 45, UnitPerKg},
		{"kg 라틴 접미사", "300/KG", "Beef", 300, 30, UnitPerKg},
		{"단위 없음", "35,90 грн", "Хліб", 35.9, 35.9, UnitPerPiece},
		{"개수 단위", "60 грн", "Яйця 10шт", 60, 60, UnitPerPiece},
		{"천 단위 공백", "1 234,50 грн", "TV", 1234.5, 1234.5, UnitPerPiece},
		{"천 단위 NBSP", "12\u00a0499 грн", "Кавомашина", 12499, 12499, UnitPerPiece},
		{"천 단위 공백과 kg 접미사", "1 200 грн/кг", "Ікра", 1200, 120, UnitPerKg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Parse(tt.priceText, tt.productName)

			assert.Equal(t, tt.priceText, got.OriginalPrice)
			assert.InDelta(t, tt.wantPrice, got.NumericPrice, delta)
			require.NotNil(t, got.PricePer100g)
			assert.InDelta(t, tt.wantPer100g, *got.PricePer100g, delta)
			assert.Equal(t, tt.wantUnitType, got.UnitType)
		})
	}
}

func TestParse_ZeroWeightFallsThrough(t *testing.T) {
	t.Parallel()

	t.Run("가격 문자열의 0g은 무시하고 상품명 사용", func(t *testing.T) {
		t.Parallel()

		got := Parse("20 грн/0г", "Сік 250мл")
		assert.Equal(t, UnitPerCustom, got.UnitType)
		assert.InDelta(t, 8, *got.PricePer100g, delta)
	})

	t.Run("상품명의 0g도 무시", func(t *testing.T) {
		t.Parallel()

		got := Parse("20 грн", "Жуйка 0г")
		assert.Equal(t, UnitPerPiece, got.UnitType)
		assert.InDelta(t, 20, *got.PricePer100g, delta)
	})
}

func TestParse_UnitMustEndWord(t *testing.T) {
	t.Parallel()

	// "2 лимони" 의 "л" 은 리터가 아니다.
	got := Parse("50 грн", "Лимон 2 лимони")
	assert.Equal(t, UnitPerPiece, got.UnitType)
}

func TestParse_Unparseable(t *testing.T) {
	t.Parallel()

	got := Parse("ціна за запитом", "Кава 250г")

	assert.True(t, math.IsNaN(got.NumericPrice))
	require.NotNil(t, got.PricePer100g)
	assert.True(t, math.IsNaN(*got.PricePer100g))
	assert.Equal(t, UnitPerCustom, got.UnitType)
	assert.True(t, math.IsNaN(got.SortKey()))
}

func TestPriceDescriptor_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("정상 값", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(Parse("450 грн/кг", "Cheese"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"originalPrice":"450 грн/кг","numericPrice":450,"pricePer100g":45,"unitType":"perKg"}`, string(b))
	})

	t.Run("NaN은 null", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(Parse("n/a", "Water"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"originalPrice":"n/a","numericPrice":null,"unitType":"perPiece"}`, string(b))
	})
}

func TestPriceDescriptor_SortKey(t *testing.T) {
	t.Parallel()

	per100g := 7.5
	assert.Equal(t, 7.5, PriceDescriptor{NumericPrice: 30, PricePer100g: &per100g}.SortKey())
	assert.Equal(t, 30.0, PriceDescriptor{NumericPrice: 30}.SortKey())
}
