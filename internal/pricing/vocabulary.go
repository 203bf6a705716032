package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Vocabulary 판매처가 사용하는 단위 코드 체계입니다.
type Vocabulary int

const (
	// VocabularyA 기본 1000g, "g"는 수량 그대로, "kg"는 수량 × 1000
	VocabularyA Vocabulary = iota + 1

	// VocabularyB 기본은 수량(없으면 1000), "kg"/"l"은 수량 × 1000, "piece"는 항상 1
	VocabularyB
)

// ParseVocabulary 설정 값 "A" 또는 "B"를 Vocabulary로 변환합니다.
func ParseVocabulary(s string) (Vocabulary, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return VocabularyA, nil
	case "B":
		return VocabularyB, nil
	}
	return 0, fmt.Errorf("지원하지 않는 단위 어휘입니다: %q", s)
}

func (v Vocabulary) String() string {
	switch v {
	case VocabularyA:
		return "A"
	case VocabularyB:
		return "B"
	}
	return fmt.Sprintf("Vocabulary(%d)", int(v))
}

// 정규화된 단위 코드
const (
	unitGram     = "g"
	unitKilogram = "kg"
	unitLiter    = "l"
	unitPiece    = "piece"
)

var unitAliases = map[string]string{
	"g": unitGram, "г": unitGram, "гр": unitGram,
	"kg": unitKilogram, "кг": unitKilogram,
	"l": unitLiter, "л": unitLiter,
	"piece": unitPiece, "шт": unitPiece, "pc": unitPiece, "pcs": unitPiece,
}

// canonicalUnit 라틴/키릴 별칭을 정규화된 단위 코드로 변환합니다. 알 수 없는 코드는 소문자로만 변환합니다.
func canonicalUnit(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if canonical, ok := unitAliases[code]; ok {
		return canonical
	}
	return code
}

var (
	thousand = decimal.NewFromInt(1000)
	one      = decimal.NewFromInt(1)
)

// Normalize 단위 코드와 수량으로부터 가격의 기준 수량(g 환산)을 계산합니다.
// 결과는 항상 0보다 크며, 0 이하가 되는 경우 1000을 사용합니다.
func (v Vocabulary) Normalize(unitCode string, quantity decimal.NullDecimal) decimal.Decimal {
	var base decimal.Decimal

	unit := canonicalUnit(unitCode)
	switch v {
	case VocabularyB:
		switch unit {
		case unitKilogram, unitLiter:
			base = orDefault(quantity, thousand, func(q decimal.Decimal) decimal.Decimal { return q.Mul(thousand) })
		case unitPiece:
			base = one
		default:
			base = orDefault(quantity, thousand, identity)
		}
	default:
		switch unit {
		case unitGram:
			base = orDefault(quantity, thousand, identity)
		case unitKilogram:
			base = orDefault(quantity, thousand, func(q decimal.Decimal) decimal.Decimal { return q.Mul(thousand) })
		default:
			base = thousand
		}
	}

	if !base.IsPositive() {
		return thousand
	}
	return base
}

func identity(q decimal.Decimal) decimal.Decimal {
	return q
}

func orDefault(q decimal.NullDecimal, fallback decimal.Decimal, fn func(decimal.Decimal) decimal.Decimal) decimal.Decimal {
	if !q.Valid {
		return fallback
	}
	return fn(q.Decimal)
}
