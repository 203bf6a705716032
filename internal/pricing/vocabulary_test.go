package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qty(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

var noQty = decimal.NullDecimal{}

func TestParseVocabulary(t *testing.T) {
	t.Parallel()

	v, err := ParseVocabulary("a")
	require.NoError(t, err)
	assert.Equal(t, VocabularyA, v)

	v, err = ParseVocabulary(" B ")
	require.NoError(t, err)
	assert.Equal(t, VocabularyB, v)

	_, err = ParseVocabulary("C")
	assert.Error(t, err)

	assert.Equal(t, "A", VocabularyA.String())
	assert.Equal(t, "B", VocabularyB.String())
	assert.Equal(t, "Vocabulary(0)", Vocabulary(0).String())
}

func TestVocabulary_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		vocab    Vocabulary
		unit     string
		quantity decimal.NullDecimal
		want     string
	}{
		// Vocabulary A
		{"A: g는 수량 그대로", VocabularyA, "g", qty("450"), "450"},
		{"A: 키릴 г", VocabularyA, "г", qty("200"), "200"},
		{"A: g 수량 없음", VocabularyA, "g", noQty, "1000"},
		{"A: kg는 수량 × 1000", VocabularyA, "kg", qty("1.5"), "1500"},
		{"A: kg 수량 없음", VocabularyA, "кг", noQty, "1000"},
		{"A: piece는 기본값", VocabularyA, "шт", qty("6"), "1000"},
		{"A: 알 수 없는 단위", VocabularyA, "pack", qty("3"), "1000"},
		{"A: 빈 단위", VocabularyA, "", noQty, "1000"},
		{"A: 0 수량은 기본값", VocabularyA, "g", qty("0"), "1000"},
		{"A: 음수 수량은 기본값", VocabularyA, "kg", qty("-2"), "1000"},

		// Vocabulary B
		{"B: 기본은 수량", VocabularyB, "ml", qty("330"), "330"},
		{"B: 기본 수량 없음", VocabularyB, "", noQty, "1000"},
		{"B: kg는 수량 × 1000", VocabularyB, "KG", qty("2"), "2000"},
		{"B: l은 수량 × 1000", VocabularyB, "л", qty("0.5"), "500"},
		{"B: l 수량 없음", VocabularyB, "l", noQty, "1000"},
		{"B: piece는 항상 1", VocabularyB, "piece", qty("12"), "1"},
		{"B: pcs 별칭", VocabularyB, " PCS ", noQty, "1"},
		{"B: g는 수량", VocabularyB, "гр", qty("750"), "750"},
		{"B: g 수량 없음", VocabularyB, "g", noQty, "1000"},
		{"B: 0 수량은 기본값", VocabularyB, "g", qty("0"), "1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.vocab.Normalize(tt.unit, tt.quantity)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "want=%s got=%s", tt.want, got)
			assert.True(t, got.IsPositive())
		})
	}
}

// piece 단위는 수량 필드와 관계없이 기준 수량이 1이다.
func TestVocabularyB_PieceIgnoresQuantity(t *testing.T) {
	t.Parallel()

	for _, q := range []decimal.NullDecimal{noQty, qty("0"), qty("1"), qty("7.25"), qty("1000")} {
		assert.True(t, one.Equal(VocabularyB.Normalize("piece", q)))
	}
}
