package pricing

import "github.com/shopspring/decimal"

// PriceFor 기준 수량 base 당 가격 raw를 목표 중량 target 가격으로 환산합니다.
//
//	price = raw / base * target
//	secondaryPrice = secondary / base * target  (secondary가 없으면 0)
//
// 표시용 반올림은 하지 않습니다. base > 0 은 Vocabulary.Normalize 가 보장합니다.
func PriceFor(raw decimal.Decimal, secondary decimal.NullDecimal, base, target decimal.Decimal) (price, secondaryPrice decimal.Decimal) {
	price = raw.Div(base).Mul(target)

	secondaryPrice = decimal.Zero
	if secondary.Valid {
		secondaryPrice = secondary.Decimal.Div(base).Mul(target)
	}
	return price, secondaryPrice
}

// PerGram 목표 중량 가격을 g당 가격으로 환산합니다. 판매처 간 비교 정렬 키로 사용합니다.
func PerGram(price, target decimal.Decimal) decimal.Decimal {
	return price.Div(target)
}
