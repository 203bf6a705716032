package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPriceFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		raw           string
		secondary     decimal.NullDecimal
		base          string
		target        string
		wantPrice     string
		wantSecondary string
	}{
		{"kg 가격을 100g으로", "120", qty("99.9"), "1000", "100", "12", "9.99"},
		{"500g 포장을 250g으로", "60", noQty, "500", "250", "30", "0"},
		{"개당 가격", "15", qty("12"), "1", "100", "1500", "1200"},
		{"보조 가격 0", "80", qty("0"), "1000", "500", "40", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			price, secondary := PriceFor(dec(tt.raw), tt.secondary, dec(tt.base), dec(tt.target))
			assert.True(t, dec(tt.wantPrice).Equal(price), "price=%s", price)
			assert.True(t, dec(tt.wantSecondary).Equal(secondary), "secondary=%s", secondary)
		})
	}
}

// Vocabulary A, 단위 g, 수량 Q 인 상품의 목표 중량 T 가격은 price / Q * T 이다.
func TestPriceFor_VocabularyAGram(t *testing.T) {
	t.Parallel()

	for _, q := range []string{"1", "90", "250", "333", "1200.5"} {
		for _, target := range []string{"1", "100", "250", "1000"} {
			raw := dec("47.30")
			base := VocabularyA.Normalize("g", qty(q))

			price, _ := PriceFor(raw, noQty, base, dec(target))
			assert.True(t, raw.Div(dec(q)).Mul(dec(target)).Equal(price), "q=%s target=%s", q, target)
		}
	}
}

func TestPriceFor_Linear(t *testing.T) {
	t.Parallel()

	raw, secondary, base := dec("89.99"), qty("79.99"), dec("900")

	for _, target := range []string{"1", "50", "100", "333", "1000"} {
		t1 := dec(target)
		p1, s1 := PriceFor(raw, secondary, base, t1)
		p2, s2 := PriceFor(raw, secondary, base, t1.Mul(decimal.NewFromInt(2)))

		assert.True(t, p1.Mul(decimal.NewFromInt(2)).Equal(p2), "target=%s", target)
		assert.True(t, s1.Mul(decimal.NewFromInt(2)).Equal(s2), "target=%s", target)
	}
}

func TestPriceFor_MissingSecondaryIsZero(t *testing.T) {
	t.Parallel()

	_, secondary := PriceFor(dec("10"), noQty, dec("1000"), dec("100"))
	assert.True(t, secondary.IsZero())
}

func TestPerGram(t *testing.T) {
	t.Parallel()

	assert.True(t, dec("0.12").Equal(PerGram(dec("12"), dec("100"))))
}

// =============================================================================
// Amount
// =============================================================================

func TestParseAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"42.50", "42.5", true},
		{"42,50 грн", "42.5", true},
		{" 99 ", "99", true},
		{"1 234,50 грн", "1234.5", true},
		{"1 234.50", "1234.5", true},
		{"2\u00a0500\u00a0000", "2500000", true},
		{"12 шт по 1 000", "12", true},
		{"-15", "15", true},
		{"", "0", false},
		{"немає", "0", false},
	}

	for _, tt := range tests {
		got, ok := ParseAmount(tt.in)
		assert.Equal(t, tt.wantOK, ok, "input=%q", tt.in)
		assert.True(t, dec(tt.want).Equal(got), "input=%q got=%s", tt.in, got)
	}

	assert.False(t, ParseOptionalAmount("").Valid)
	assert.True(t, ParseOptionalAmount("12,3").Valid)
}
